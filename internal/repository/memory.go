package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/yourusername/blog-api/internal/model"
)

// MemoryStore is an in-memory implementation of both repositories, used by
// tests in place of a running database. It mimics the relational behavior
// the SQL implementations rely on, including the cascade delete from users
// to blogs.
type MemoryStore struct {
	mu         sync.Mutex
	users      map[int]*model.User
	blogs      map[int]*model.Blog
	nextUserID int
	nextBlogID int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:      make(map[int]*model.User),
		blogs:      make(map[int]*model.Blog),
		nextUserID: 1,
		nextBlogID: 1,
	}
}

// Users returns the store as a UserRepository.
func (m *MemoryStore) Users() UserRepository { return (*memoryUserRepo)(m) }

// Blogs returns the store as a BlogRepository.
func (m *MemoryStore) Blogs() BlogRepository { return (*memoryBlogRepo)(m) }

type memoryUserRepo MemoryStore

func (r *memoryUserRepo) Create(ctx context.Context, user *model.User) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextUserID
	r.nextUserID++
	copied := *user
	r.users[user.ID] = &copied
	return user.ID, nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id int) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryUserRepo) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false, nil
	}
	delete(r.users, id)
	// cascade, as the blogs.creator_id foreign key does
	for blogID, blog := range r.blogs {
		if blog.CreatorID == id {
			delete(r.blogs, blogID)
		}
	}
	return true, nil
}

type memoryBlogRepo MemoryStore

func (r *memoryBlogRepo) Create(ctx context.Context, blog *model.Blog) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog.ID = r.nextBlogID
	r.nextBlogID++
	copied := *blog
	copied.Creator = nil
	r.blogs[blog.ID] = &copied
	return blog.ID, nil
}

func (r *memoryBlogRepo) List(ctx context.Context) ([]model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var blogs []model.Blog
	for _, blog := range r.blogs {
		blogs = append(blogs, r.withCreator(blog))
	}
	sort.Slice(blogs, func(i, j int) bool { return blogs[i].ID < blogs[j].ID })
	return blogs, nil
}

func (r *memoryBlogRepo) GetByID(ctx context.Context, id int) (*model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog, ok := r.blogs[id]
	if !ok {
		return nil, nil
	}
	copied := r.withCreator(blog)
	return &copied, nil
}

func (r *memoryBlogRepo) ListByCreator(ctx context.Context, creatorID int) ([]model.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var blogs []model.Blog
	for _, blog := range r.blogs {
		if blog.CreatorID == creatorID {
			blogs = append(blogs, *blog)
		}
	}
	sort.Slice(blogs, func(i, j int) bool { return blogs[i].ID < blogs[j].ID })
	return blogs, nil
}

func (r *memoryBlogRepo) Update(ctx context.Context, id, creatorID int, title, body string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog, ok := r.blogs[id]
	if !ok || blog.CreatorID != creatorID {
		return false, nil
	}
	blog.Title = title
	blog.Body = body
	return true, nil
}

func (r *memoryBlogRepo) Delete(ctx context.Context, id, creatorID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog, ok := r.blogs[id]
	if !ok || blog.CreatorID != creatorID {
		return false, nil
	}
	delete(r.blogs, id)
	return true, nil
}

func (r *memoryBlogRepo) withCreator(blog *model.Blog) model.Blog {
	copied := *blog
	if user, ok := r.users[blog.CreatorID]; ok {
		creator := *user
		copied.Creator = &creator
	}
	return copied
}

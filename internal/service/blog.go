package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/blog-api/internal/model"
	"github.com/yourusername/blog-api/internal/repository"
)

// ErrBlogNotFound covers both a missing blog and a blog owned by another
// user; callers cannot tell the two apart.
var ErrBlogNotFound = errors.New("blog not found")

// BlogService handles blog CRUD.
type BlogService struct {
	blogs repository.BlogRepository
}

// NewBlogService constructs a BlogService.
func NewBlogService(blogs repository.BlogRepository) *BlogService {
	return &BlogService{blogs: blogs}
}

// Create persists a new blog owned by creatorID and returns it with the
// creator populated.
func (s *BlogService) Create(ctx context.Context, creatorID int, req model.BlogInput) (*model.BlogInfo, error) {
	blog := &model.Blog{Title: req.Title, Body: req.Body, CreatorID: creatorID}
	id, err := s.blogs.Create(ctx, blog)
	if err != nil {
		return nil, err
	}

	created, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("blog %d vanished after insert", id)
	}

	info := created.Info()
	return &info, nil
}

// List returns all blogs. No pagination.
func (s *BlogService) List(ctx context.Context) ([]model.BlogInfo, error) {
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]model.BlogInfo, 0, len(blogs))
	for i := range blogs {
		infos = append(infos, blogs[i].Info())
	}
	return infos, nil
}

// Get returns a blog by id.
func (s *BlogService) Get(ctx context.Context, id int) (*model.BlogInfo, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	info := blog.Info()
	return &info, nil
}

// Update rewrites a blog owned by creatorID. A blog owned by someone else
// yields ErrBlogNotFound, same as a missing id.
func (s *BlogService) Update(ctx context.Context, id, creatorID int, req model.BlogInput) error {
	ok, err := s.blogs.Update(ctx, id, creatorID, req.Title, req.Body)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBlogNotFound
	}
	return nil
}

// Delete removes a blog owned by creatorID, with the same not-found
// semantics as Update.
func (s *BlogService) Delete(ctx context.Context, id, creatorID int) error {
	ok, err := s.blogs.Delete(ctx, id, creatorID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBlogNotFound
	}
	return nil
}

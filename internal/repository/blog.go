package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yourusername/blog-api/internal/model"
)

// BlogRepository exposes the typed query operations on the blogs table.
// Update and Delete combine the blog id and the owner id in one predicate:
// a blog owned by someone else behaves exactly like a missing one.
type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) (int, error)
	List(ctx context.Context) ([]model.Blog, error)
	GetByID(ctx context.Context, id int) (*model.Blog, error)
	ListByCreator(ctx context.Context, creatorID int) ([]model.Blog, error)
	Update(ctx context.Context, id, creatorID int, title, body string) (bool, error)
	Delete(ctx context.Context, id, creatorID int) (bool, error)
}

type blogRepository struct {
	db DBTX
}

// NewBlogRepository returns a BlogRepository bound to the given handle.
func NewBlogRepository(db DBTX) BlogRepository {
	return &blogRepository{db: db}
}

// Create inserts a new blog and returns the generated id.
func (r *blogRepository) Create(ctx context.Context, blog *model.Blog) (int, error) {
	query := `
		INSERT INTO blogs (title, body, creator_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int
	err := r.db.QueryRowContext(ctx, query, blog.Title, blog.Body, blog.CreatorID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	blog.ID = id
	return id, nil
}

// List returns all blogs with their creators.
func (r *blogRepository) List(ctx context.Context) ([]model.Blog, error) {
	query := `
		SELECT b.id, b.title, b.body, b.creator_id, u.id, u.username, u.email
		FROM blogs b
		JOIN users u ON u.id = b.creator_id
		ORDER BY b.id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var blogs []model.Blog
	for rows.Next() {
		blog, err := scanBlogWithCreator(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *blog)
	}

	return blogs, rows.Err()
}

// GetByID returns a blog with its creator, or (nil, nil) if absent.
func (r *blogRepository) GetByID(ctx context.Context, id int) (*model.Blog, error) {
	query := `
		SELECT b.id, b.title, b.body, b.creator_id, u.id, u.username, u.email
		FROM blogs b
		JOIN users u ON u.id = b.creator_id
		WHERE b.id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanBlogWithCreator(rows)
}

// ListByCreator returns the blogs created by one user, for nesting in the
// user detail view.
func (r *blogRepository) ListByCreator(ctx context.Context, creatorID int) ([]model.Blog, error) {
	query := `
		SELECT id, title, body, creator_id
		FROM blogs WHERE creator_id = $1 ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var blogs []model.Blog
	for rows.Next() {
		var blog model.Blog
		if err := rows.Scan(&blog.ID, &blog.Title, &blog.Body, &blog.CreatorID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		blogs = append(blogs, blog)
	}

	return blogs, rows.Err()
}

// Update rewrites title and body of a blog owned by creatorID. It reports
// false when no row matched the combined predicate.
func (r *blogRepository) Update(ctx context.Context, id, creatorID int, title, body string) (bool, error) {
	query := `UPDATE blogs SET title = $1, body = $2 WHERE id = $3 AND creator_id = $4`

	result, err := r.db.ExecContext(ctx, query, title, body, id, creatorID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes a blog owned by creatorID. It reports false when no row
// matched the combined predicate.
func (r *blogRepository) Delete(ctx context.Context, id, creatorID int) (bool, error) {
	query := `DELETE FROM blogs WHERE id = $1 AND creator_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, creatorID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func scanBlogWithCreator(rows *sql.Rows) (*model.Blog, error) {
	blog := &model.Blog{Creator: &model.User{}}
	err := rows.Scan(
		&blog.ID, &blog.Title, &blog.Body, &blog.CreatorID,
		&blog.Creator.ID, &blog.Creator.Username, &blog.Creator.Email,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return blog, nil
}

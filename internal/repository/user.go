package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/yourusername/blog-api/internal/model"
)

// UserRepository exposes the typed query operations on the users table.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (int, error)
	GetByID(ctx context.Context, id int) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository returns a UserRepository bound to the given handle.
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user and returns the generated id. The password
// field must already contain the bcrypt hash.
func (r *userRepository) Create(ctx context.Context, user *model.User) (int, error) {
	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int
	err := r.db.QueryRowContext(ctx, query, user.Username, user.Email, user.Password).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	user.ID = id
	return id, nil
}

// GetByID returns a user by id.
func (r *userRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	query := `
		SELECT id, username, email, password
		FROM users WHERE id = $1
	`

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByUsername returns a user by username.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT id, username, email, password
		FROM users WHERE username = $1
	`

	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

// ExistsByUsernameOrEmail reports whether any user already holds the given
// username or email, in a single combined query.
func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := `SELECT 1 FROM users WHERE username = $1 OR email = $2`

	var exists int
	err := r.db.QueryRowContext(ctx, query, username, email).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

// Delete removes a user. The blogs foreign key is declared ON DELETE
// CASCADE, so the user's blogs go with it.
func (r *userRepository) Delete(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *userRepository) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

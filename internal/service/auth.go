// Package service contains the business logic between the HTTP handlers
// and the repositories.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourusername/blog-api/internal/model"
	"github.com/yourusername/blog-api/internal/pkg/hash"
	"github.com/yourusername/blog-api/internal/pkg/token"
	"github.com/yourusername/blog-api/internal/repository"
)

var (
	ErrDuplicateUser      = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles registration, login, and token resolution.
type AuthService struct {
	users  repository.UserRepository
	blogs  repository.BlogRepository
	issuer *token.Issuer
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repository.UserRepository, blogs repository.BlogRepository, issuer *token.Issuer) *AuthService {
	return &AuthService{users: users, blogs: blogs, issuer: issuer}
}

// Register creates a new user and returns the public view. The username and
// email are checked for uniqueness in one combined query before the insert.
func (s *AuthService) Register(ctx context.Context, req model.UserRegister) (*model.UserInfo, error) {
	exists, err := s.users.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateUser
	}

	hashed, err := hash.Password(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{Username: req.Username, Email: req.Email, Password: hashed}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	info := user.Info()
	return &info, nil
}

// Login verifies the credentials and returns a bearer token. An unknown
// username and a wrong password produce the same error, so the response
// does not reveal which field was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !hash.Verify(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.issuer.Generate(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{AccessToken: accessToken, TokenType: "bearer"}, nil
}

// Authenticate resolves a bearer token to the user it was issued for. The
// token error is returned as-is so the caller can report expiry separately;
// a token whose subject no longer exists is invalid.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*model.User, error) {
	userID, err := s.issuer.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, token.ErrInvalidToken
	}
	return user, nil
}

// GetUser returns a user with their blogs nested.
func (s *AuthService) GetUser(ctx context.Context, id int) (*model.UserDetail, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	blogs, err := s.blogs.ListByCreator(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &model.UserDetail{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Blogs:    []model.BlogSummary{},
	}
	for i := range blogs {
		detail.Blogs = append(detail.Blogs, blogs[i].Summary())
	}
	return detail, nil
}

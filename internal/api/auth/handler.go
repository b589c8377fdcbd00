// Package auth provides the login endpoint and the bearer-token middleware.
package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/blog-api/internal/model"
	"github.com/yourusername/blog-api/internal/pkg/token"
	"github.com/yourusername/blog-api/internal/ratelimit"
	"github.com/yourusername/blog-api/internal/service"
)

// ContextUserIDKey is the gin context key holding the authenticated user id.
const ContextUserIDKey = "user_id"

// Service is the part of the auth service the handlers need.
type Service interface {
	Login(ctx context.Context, username, password string) (*model.TokenResponse, error)
	Authenticate(ctx context.Context, tokenString string) (*model.User, error)
}

// Handler serves /token and supplies the authentication middleware.
type Handler struct {
	svc     Service
	limiter ratelimit.Limiter
}

// NewHandler constructs a Handler.
func NewHandler(svc Service, limiter ratelimit.Limiter) *Handler {
	return &Handler{svc: svc, limiter: limiter}
}

// Token handles POST /token. It accepts JSON or form-encoded credentials
// and returns a bearer token.
func (h *Handler) Token(c *gin.Context) {
	if !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"detail": "Too many login attempts. Try again later."})
		return
	}

	var req model.UserLogin
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Middleware validates the bearer token and stores the resolved user id in
// the context. Missing header, bad format, bad signature, expiry, and a
// subject that no longer exists all yield 401.
func (h *Handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authorization header missing"})
			c.Abort()
			return
		}

		tok, err := token.ExtractBearer(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid authorization header format"})
			c.Abort()
			return
		}

		user, err := h.svc.Authenticate(c.Request.Context(), tok)
		if err != nil {
			if errors.Is(err, token.ErrExpiredToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token has expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			}
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

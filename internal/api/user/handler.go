// Package user provides the registration and user lookup endpoints.
package user

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/blog-api/internal/model"
	"github.com/yourusername/blog-api/internal/ratelimit"
	"github.com/yourusername/blog-api/internal/service"
)

// Service is the part of the auth service the handlers need.
type Service interface {
	Register(ctx context.Context, req model.UserRegister) (*model.UserInfo, error)
	GetUser(ctx context.Context, id int) (*model.UserDetail, error)
}

// Handler serves the /user endpoints.
type Handler struct {
	svc     Service
	limiter ratelimit.Limiter
}

// NewHandler constructs a Handler.
func NewHandler(svc Service, limiter ratelimit.Limiter) *Handler {
	return &Handler{svc: svc, limiter: limiter}
}

// Register handles POST /user/. Duplicate username or email yields 400; the
// response never contains the password.
func (h *Handler) Register(c *gin.Context) {
	if !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"detail": "Too many registration attempts. Try again later."})
		return
	}

	var req model.UserRegister
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	info, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Username or email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, info)
}

// GetByID handles GET /user/:id and returns the user with their blogs.
func (h *Handler) GetByID(c *gin.Context) {
	var id int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid user ID"})
		return
	}

	detail, err := h.svc.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("User with ID %d not found", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Package blog provides the blog CRUD endpoints.
package blog

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/blog-api/internal/api/auth"
	"github.com/yourusername/blog-api/internal/model"
	"github.com/yourusername/blog-api/internal/service"
)

// Service is the part of the blog service the handlers need.
type Service interface {
	Create(ctx context.Context, creatorID int, req model.BlogInput) (*model.BlogInfo, error)
	List(ctx context.Context) ([]model.BlogInfo, error)
	Get(ctx context.Context, id int) (*model.BlogInfo, error)
	Update(ctx context.Context, id, creatorID int, req model.BlogInput) error
	Delete(ctx context.Context, id, creatorID int) error
}

// Handler serves the /blog endpoints.
type Handler struct {
	svc Service
}

// NewHandler constructs a Handler.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /blog. The owner is the authenticated user.
func (h *Handler) Create(c *gin.Context) {
	var req model.BlogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	info, err := h.svc.Create(c.Request.Context(), c.GetInt(auth.ContextUserIDKey), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, info)
}

// List handles GET /blog. All blogs, no pagination.
func (h *Handler) List(c *gin.Context) {
	infos, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, infos)
}

// Get handles GET /blog/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := h.blogID(c)
	if !ok {
		return
	}

	info, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

// Update handles PUT /blog/:id. A blog owned by another user yields the
// same 404 as a missing one.
func (h *Handler) Update(c *gin.Context) {
	id, ok := h.blogID(c)
	if !ok {
		return
	}

	var req model.BlogInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, c.GetInt(auth.ContextUserIDKey), req); err != nil {
		h.renderError(c, id, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"detail": fmt.Sprintf("Blog %d has been updated", id)})
}

// Delete handles DELETE /blog/:id, with the same 404 semantics as Update.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.blogID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, c.GetInt(auth.ContextUserIDKey)); err != nil {
		h.renderError(c, id, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) blogID(c *gin.Context) (int, bool) {
	var id int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid blog ID"})
		return 0, false
	}
	return id, true
}

func (h *Handler) renderError(c *gin.Context, id int, err error) {
	if errors.Is(err, service.ErrBlogNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": fmt.Sprintf("Blog with ID %d not found", id)})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}

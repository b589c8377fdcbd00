// Package api wires the HTTP routes.
package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/blog-api/internal/api/auth"
	"github.com/yourusername/blog-api/internal/api/blog"
	"github.com/yourusername/blog-api/internal/api/user"
)

// SetupRouter registers the CORS middleware and all routes.
func SetupRouter(r *gin.Engine, allowedOrigins string, authH *auth.Handler, userH *user.Handler, blogH *blog.Handler) {
	corsConfig := cors.DefaultConfig()
	origins := strings.Split(allowedOrigins, ",")
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Blog API"})
	})

	r.POST("/token", authH.Token)

	blogRoutes := r.Group("/blog")
	{
		blogRoutes.GET("", blogH.List)
		blogRoutes.GET("/:id", blogH.Get)
		blogRoutes.POST("", authH.Middleware(), blogH.Create)
		blogRoutes.PUT("/:id", authH.Middleware(), blogH.Update)
		blogRoutes.DELETE("/:id", authH.Middleware(), blogH.Delete)
	}

	userRoutes := r.Group("/user")
	{
		userRoutes.POST("/", userH.Register)
		userRoutes.GET("/:id", userH.GetByID)
	}
}

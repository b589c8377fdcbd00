package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yourusername/blog-api/internal/api"
	"github.com/yourusername/blog-api/internal/api/auth"
	"github.com/yourusername/blog-api/internal/api/blog"
	"github.com/yourusername/blog-api/internal/api/user"
	"github.com/yourusername/blog-api/internal/pkg/config"
	"github.com/yourusername/blog-api/internal/pkg/logger"
	"github.com/yourusername/blog-api/internal/pkg/token"
	"github.com/yourusername/blog-api/internal/ratelimit"
	"github.com/yourusername/blog-api/internal/repository"
	"github.com/yourusername/blog-api/internal/service"
)

// Rate limit for the unauthenticated write endpoints.
const (
	rateLimitWindow = 5 * time.Minute
	rateLimitMax    = 10
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	zap.L().Info("Starting Blog API")

	ctx := context.Background()

	store, err := repository.Open(ctx, cfg.DatabaseDSN())
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		zap.L().Fatal("Failed to migrate database", zap.Error(err))
	}

	limiter := newLimiter(ctx, cfg)

	users := repository.NewUserRepository(store.DB())
	blogs := repository.NewBlogRepository(store.DB())

	issuer := token.NewIssuer(cfg.SecretKey, cfg.TokenTTL())
	authService := service.NewAuthService(users, blogs, issuer)
	blogService := service.NewBlogService(blogs)

	authHandler := auth.NewHandler(authService, limiter)
	userHandler := user.NewHandler(authService, limiter)
	blogHandler := blog.NewHandler(blogService)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	api.SetupRouter(r, cfg.CORSAllowedOrigins, authHandler, userHandler, blogHandler)

	zap.L().Info("Listening", zap.String("addr", cfg.ListenAddr()))
	if err := r.Run(cfg.ListenAddr()); err != nil {
		zap.L().Fatal("Failed to start server", zap.Error(err))
	}
}

// newLimiter returns the redis-backed rate limiter when redis is configured
// and reachable, otherwise the in-memory fallback.
func newLimiter(ctx context.Context, cfg *config.Config) ratelimit.Limiter {
	if cfg.RedisAddr == "" {
		return ratelimit.NewWindowLimiter(rateLimitWindow, rateLimitMax)
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		zap.L().Warn("Redis unreachable, using in-memory rate limiter", zap.Error(err))
		_ = client.Close()
		return ratelimit.NewWindowLimiter(rateLimitWindow, rateLimitMax)
	}

	zap.L().Info("Redis connected", zap.String("addr", cfg.RedisAddr))
	return ratelimit.NewRedisLimiter(client, rateLimitWindow, rateLimitMax)
}

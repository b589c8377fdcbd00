// Package config loads application configuration from the environment.
// Every setting has a development default; the defaults for the database
// password and the signing secret are insecure and must be overridden in
// production.
package config

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Insecure development defaults, mirrored in Validate.
const (
	defaultSecretKey        = "a_very_secret_key"
	defaultDatabasePassword = "postgres"
)

// Config holds the application configuration.
type Config struct {
	// Database settings
	DatabaseUsername string
	DatabasePassword string
	DatabaseHost     string
	DatabasePort     int
	DatabaseName     string

	// Token settings
	SecretKey                string
	AccessTokenExpireMinutes int

	// Server settings
	Port    int
	GinMode string

	// CORS settings
	CORSAllowedOrigins string

	// Logging settings
	LogLevel  string
	LogFormat string

	// Rate limiting settings; empty RedisAddr disables the redis limiter
	RedisAddr string
	RedisDB   int
}

// Load reads the configuration from environment variables, falling back to
// development defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("DATABASE_USERNAME", "postgres")
	v.SetDefault("DATABASE_PASSWORD", defaultDatabasePassword)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_NAME", "blog_db")
	v.SetDefault("SECRET_KEY", defaultSecretKey)
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	v.SetDefault("PORT", 8000)
	v.SetDefault("GIN_MODE", gin.DebugMode)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_DB", 0)

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseUsername:         v.GetString("DATABASE_USERNAME"),
		DatabasePassword:         v.GetString("DATABASE_PASSWORD"),
		DatabaseHost:             v.GetString("DATABASE_HOST"),
		DatabasePort:             v.GetInt("DATABASE_PORT"),
		DatabaseName:             v.GetString("DATABASE_NAME"),
		SecretKey:                v.GetString("SECRET_KEY"),
		AccessTokenExpireMinutes: v.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES"),
		Port:                     v.GetInt("PORT"),
		GinMode:                  v.GetString("GIN_MODE"),
		CORSAllowedOrigins:       v.GetString("CORS_ALLOWED_ORIGINS"),
		LogLevel:                 v.GetString("LOG_LEVEL"),
		LogFormat:                v.GetString("LOG_FORMAT"),
		RedisAddr:                v.GetString("REDIS_ADDR"),
		RedisDB:                  v.GetInt("REDIS_DB"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects insecure defaults when running in release mode.
func (c *Config) Validate() error {
	if c.GinMode == gin.ReleaseMode {
		if c.SecretKey == defaultSecretKey {
			return fmt.Errorf("SECRET_KEY must be set in release mode")
		}
		if c.DatabasePassword == defaultDatabasePassword {
			return fmt.Errorf("DATABASE_PASSWORD must be set in release mode")
		}
	}
	return nil
}

// DatabaseDSN returns the Postgres connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DatabaseUsername, c.DatabasePassword, c.DatabaseHost, c.DatabasePort, c.DatabaseName)
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// TokenTTL returns the access token lifetime.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DatabaseUsername)
	assert.Equal(t, "localhost", cfg.DatabaseHost)
	assert.Equal(t, 5432, cfg.DatabasePort)
	assert.Equal(t, "blog_db", cfg.DatabaseName)
	assert.Equal(t, 30, cfg.AccessTokenExpireMinutes)
	assert.Equal(t, 8000, cfg.Port)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_PORT", "5433")
	t.Setenv("SECRET_KEY", "sekrit")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DatabaseHost)
	assert.Equal(t, 5433, cfg.DatabasePort)
	assert.Equal(t, "sekrit", cfg.SecretKey)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL())
}

func TestLoad_ReleaseModeRejectsDefaultSecret(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DATABASE_PASSWORD", "real-password")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &Config{
		DatabaseUsername: "blog",
		DatabasePassword: "pw",
		DatabaseHost:     "localhost",
		DatabasePort:     5432,
		DatabaseName:     "blog_db",
	}

	assert.Equal(t, "postgres://blog:pw@localhost:5432/blog_db?sslmode=disable", cfg.DatabaseDSN())
}

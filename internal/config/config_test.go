package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notably-dev/notably/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "notably", cfg.MongoDatabase)
	assert.Equal(t, config.AuthModeAllowAny, cfg.AuthMode)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:3000")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_DATABASE", "scratch")
	t.Setenv("ALLOWED_ORIGINS", "https://notes.example.com, https://admin.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "scratch", cfg.MongoDatabase)
	assert.Contains(t, cfg.AllowedOrigins, "https://notes.example.com")
	assert.Contains(t, cfg.AllowedOrigins, "https://admin.example.com")
}

func TestJWTModeRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_MODE", "jwt")
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestJWTModeWithSecret(t *testing.T) {
	t.Setenv("AUTH_MODE", "jwt")
	t.Setenv("JWT_SECRET", "hunter2")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.AuthModeJWT, cfg.AuthMode)
}

func TestUnknownAuthMode(t *testing.T) {
	t.Setenv("AUTH_MODE", "oauth")

	_, err := config.Load()
	assert.Error(t, err)
}

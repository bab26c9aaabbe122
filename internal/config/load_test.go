package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Contains(t, cfg.Database.URL, "postgres://")
	assert.Equal(t, "pepShopSuperSecreto", cfg.Auth.JWTSecret)
	assert.Equal(t, 120, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "admin-token-12345", cfg.Auth.AdminToken)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PEPSHOP_SERVER_PORT", "8080")
	t.Setenv("PEPSHOP_SERVER_LOG_LEVEL", "debug")
	t.Setenv("PEPSHOP_DATABASE_URL", "postgres://app:app@db:5432/pepshop")
	t.Setenv("PEPSHOP_AUTH_JWT_SECRET", "an-override-secret-key")
	t.Setenv("PEPSHOP_AUTH_TOKEN_LIFETIME_MINUTES", "30")
	t.Setenv("PEPSHOP_AUTH_ADMIN_TOKEN", "different-admin-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://app:app@db:5432/pepshop", cfg.Database.URL)
	assert.Equal(t, "an-override-secret-key", cfg.Auth.JWTSecret)
	assert.Equal(t, 30, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "different-admin-token", cfg.Auth.AdminToken)
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("PEPSHOP_AUTH_JWT_SECRET", "short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PEPSHOP_SERVER_PORT", "99999")

	_, err := Load()
	require.Error(t, err)
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("DB_SSLMODE", "")
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL_HOURS", "")
	t.Setenv("COOKIE_SECURE", "")

	cfg := New()

	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24, cfg.SessionTTLHours)
	assert.False(t, cfg.CookieSecure)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_SSLMODE", "require")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL_HOURS", "72")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := New()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "require", cfg.DBSSLMode)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 72, cfg.SessionTTLHours)
	assert.True(t, cfg.CookieSecure)
}

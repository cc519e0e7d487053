package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 5, cfg.RateLimitMax)
	assert.Equal(t, 1000, cfg.RateLimitSweepAt)
	assert.Equal(t, 3*time.Second, cfg.MinFillTime)
	assert.Contains(t, cfg.AllowedOrigins, "sabordeemociones.com")
	assert.Contains(t, cfg.AllowedOrigins, "localhost:3000")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "2")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")
	t.Setenv("ALLOWED_ORIGINS", "example.com, other.test ,")

	cfg := LoadConfig()

	assert.Equal(t, 2, cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, []string{"example.com", "other.test"}, cfg.AllowedOrigins)
}

func TestEmailReady(t *testing.T) {
	cfg := &Config{
		EmailHost: "smtp.example.com",
		EmailPort: 465,
		EmailUser: "orders@example.com",
		EmailPass: "secret",
		EmailTo:   "owner@example.com",
	}
	assert.True(t, cfg.EmailReady())

	cfg.EmailTo = ""
	assert.False(t, cfg.EmailReady())
}

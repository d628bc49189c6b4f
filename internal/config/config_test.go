package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.PreferIPv4)
	assert.Equal(t, 180*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 240*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.GeminiBaseURL)
	assert.Equal(t, "v1beta", cfg.GeminiAPIVersion)
	assert.Equal(t, "gemini-2.5-flash-image", cfg.ImageModel)
	assert.Equal(t, 8, cfg.MaxImageCount)
	assert.Equal(t, int64(32<<20), cfg.MaxBodyBytes())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WEB_ADDR", ":9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_TIMEOUT", "90s")
	t.Setenv("IMAGE_MODEL", "gemini-x-test")
	t.Setenv("MAX_IMAGE_COUNT", "2")
	t.Setenv("MAX_BODY_MB", "4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 90*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "gemini-x-test", cfg.ImageModel)
	assert.Equal(t, 2, cfg.MaxImageCount)
	assert.Equal(t, int64(4<<20), cfg.MaxBodyBytes())
}

func TestLoadClampsInvalidValues(t *testing.T) {
	t.Setenv("MAX_IMAGE_COUNT", "0")
	t.Setenv("MAX_BODY_MB", "-3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.MaxImageCount)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes())
}

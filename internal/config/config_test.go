package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("BRAVE_API_KEY", "")

	cfg, err := Load()
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Nil(t, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BRAVE_API_KEY", "BSAabcdef123")
	t.Setenv("SEARCH_RESULT_COUNT", "")
	t.Setenv("SEARCH_TIMEOUT_SECONDS", "")
	t.Setenv("CAST_ERRORS_FATAL", "")
	t.Setenv("BRAVE_ENDPOINT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "BSAabcdef123", cfg.BraveAPIKey)
	assert.Equal(t, defaultBraveEndpoint, cfg.BraveEndpoint)
	assert.Equal(t, 5, cfg.ResultCount)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.CastErrorsFatal)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("BRAVE_API_KEY", "key")
	t.Setenv("SEARCH_RESULT_COUNT", "10")
	t.Setenv("SEARCH_TIMEOUT_SECONDS", "-3")
	t.Setenv("CAST_ERRORS_FATAL", "yes")
	t.Setenv("BRAVE_ENDPOINT", "http://localhost:9999/search")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.ResultCount)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout, "invalid values fall back to default")
	assert.True(t, cfg.CastErrorsFatal)
	assert.Equal(t, "http://localhost:9999/search", cfg.BraveEndpoint)
}

func TestAPIKeyPreview(t *testing.T) {
	assert.Equal(t, "BSAab...", (&Config{BraveAPIKey: "BSAabcdef"}).APIKeyPreview())
	assert.Equal(t, "***", (&Config{BraveAPIKey: "abc"}).APIKeyPreview())
}

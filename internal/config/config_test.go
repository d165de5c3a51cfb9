package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.BaseURL = "https://finsight.example.com"
	cfg.TimeoutSeconds = 30

	path := filepath.Join(t.TempDir(), "finsight.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.BaseURL, got.BaseURL)
	assert.Equal(t, cfg.TimeoutSeconds, got.TimeoutSeconds)
	assert.Equal(t, cfg.Currency, got.Currency)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.Timeout())
	assert.Equal(t, "IDR", cfg.Currency)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().BaseURL, cfg.BaseURL)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("FINSIGHT_BASE_URL", "http://api.internal:9000")
	t.Setenv("FINSIGHT_TIMEOUT_SECONDS", "15")

	cfg, err := Load(filepath.Join(t.TempDir(), "finsight.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://api.internal:9000", cfg.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout())
}

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moorhawk/datapoint/internal/keyfile"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATAPOINT_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATAPOINT_API_KEY", "test-key")
	t.Setenv("DATAPOINT_BASE_URL", "http://localhost:8080")
	t.Setenv("DATAPOINT_HTTP_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadKeyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, keyfile.ToJSONFile(path, "file-key"))

	t.Setenv("DATAPOINT_API_KEY", "")
	t.Setenv("DATAPOINT_API_KEY_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.APIKey)
}

func TestLoadMissingKey(t *testing.T) {
	t.Setenv("DATAPOINT_API_KEY", "")
	t.Setenv("DATAPOINT_API_KEY_FILE", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATAPOINT_API_KEY")
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Setenv("DATAPOINT_API_KEY", "test-key")
	t.Setenv("DATAPOINT_HTTP_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATAPOINT_HTTP_TIMEOUT")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, filepath.Join(dir, "session.json"), cfg.Session.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
api:
  base_url: https://plaza.example.com/
  timeout: 10s
log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	// Trailing slash is trimmed so path joins stay clean.
	assert.Equal(t, "https://plaza.example.com", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PLAZACTL_API_BASE_URL", "https://env.example.com")
	t.Setenv("PLAZACTL_LOG_LEVEL", "warn")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.API.BaseURL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFromInvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api: [not a map"), 0o600))

	_, err := LoadFrom(dir)
	assert.Error(t, err)
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("PLAZACTL_HOME", "/tmp/plazactl-home")
	assert.Equal(t, "/tmp/plazactl-home", DefaultDir())
}

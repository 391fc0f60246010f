package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysProvidedFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_base_url": "http://localhost:9090/3",
		"request_timeout": "30s",
		"debug": true
	}`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cli", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "http://localhost:9090/3", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Debug)

	// Untouched fields keep their defaults.
	assert.Equal(t, "movie-explorer.db", cfg.DatabaseFile)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500", cfg.ImageBaseURL)
}

func TestParseJson_NoConfigFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cli"}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "https://api.themoviedb.org/3", cfg.APIBaseURL)
}

func TestParseJson_NumericTimeout(t *testing.T) {
	path := writeConfigFile(t, `{"request_timeout": 5000000000}`)

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cli", "-c", path}

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cli", "-c", filepath.Join(t.TempDir(), "missing.json")}

	var cfg Config
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(&cfg) })
}

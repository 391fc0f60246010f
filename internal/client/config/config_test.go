package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://api.themoviedb.org/3", c.APIBaseURL)
	assert.NotEmpty(t, c.APIKey)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500", c.ImageBaseURL)
	assert.Equal(t, "movie-explorer.db", c.DatabaseFile)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.False(t, c.Debug)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cli"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

// Package config assembles runtime settings for the Movie Explorer CLI from
// defaults, an optional JSON file, and command-line flags, in that order of
// precedence (later sources win).
package config

import "time"

// Config holds runtime settings for the Movie Explorer CLI.
//
// Fields:
//   - APIBaseURL: root of the remote catalog API (version path included).
//   - APIKey: the api_key query parameter sent on every request.
//   - ImageBaseURL: prefix for poster/backdrop paths returned by the catalog.
//   - DatabaseFile: SQLite file for the locally persisted session.
//   - RequestTimeout: per-request HTTP timeout.
//   - Debug: verbose colored logging instead of JSON.
type Config struct {
	APIBaseURL     string
	APIKey         string
	ImageBaseURL   string
	DatabaseFile   string
	RequestTimeout time.Duration
	Debug          bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://api.themoviedb.org/3"
	c.APIKey = "65e5d5f63efe394bba67bbd98ae226b7"
	c.ImageBaseURL = "https://image.tmdb.org/t/p/w500"
	c.DatabaseFile = "movie-explorer.db"
	c.RequestTimeout = 10 * time.Second
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

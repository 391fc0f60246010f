package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/kan-1337/movie-explorer/internal/flagx"
	"github.com/kan-1337/movie-explorer/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. Absent fields keep their current values.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	APIKey         *string         `json:"api_key"`
	ImageBaseURL   *string         `json:"image_base_url"`
	DatabaseFile   *string         `json:"database_file"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	Debug          *bool           `json:"debug"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when neither is given, nothing is
// loaded. Read or unmarshal errors panic (the CLI has no useful way to
// continue with a half-read config).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.APIKey != nil {
		cfg.APIKey = *jc.APIKey
	}
	if jc.ImageBaseURL != nil {
		cfg.ImageBaseURL = *jc.ImageBaseURL
	}
	if jc.DatabaseFile != nil {
		cfg.DatabaseFile = *jc.DatabaseFile
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}

package config

import (
	"flag"
	"os"
	"time"

	"github.com/kan-1337/movie-explorer/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string   base URL of the catalog API (default from Config)
//	-k string   API key (default from Config)
//	-d string   path to the local session database (default from Config)
//	-t int      request timeout in seconds (default from Config)
//	-debug      enable verbose colored logging
//
// os.Args is filtered down to these flags via flagx.FilterArgs so parsing
// does not interfere with flags owned by other packages.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-k", "-d", "-t", "-debug"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "base URL of the catalog API")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key")
	fs.StringVar(&cfg.DatabaseFile, "d", cfg.DatabaseFile, "path to the local session database")
	timeoutSeconds := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSeconds) * time.Second
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/kan-1337/movie-explorer/internal/buildinfo"
	"github.com/kan-1337/movie-explorer/internal/client/cli"
	"github.com/kan-1337/movie-explorer/internal/client/config"
	"github.com/kan-1337/movie-explorer/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.Setup(cfg.Debug)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}

// Package cli implements the interactive Movie Explorer terminal client:
// a REPL dispatching to the auth and movie services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/kan-1337/movie-explorer/internal/client/config"
	"github.com/kan-1337/movie-explorer/internal/client/repositories/session"
	"github.com/kan-1337/movie-explorer/internal/client/services"
	"github.com/kan-1337/movie-explorer/internal/client/tmdb"
	"github.com/kan-1337/movie-explorer/internal/logging"
)

type App struct {
	config *config.Config
	auth   services.AuthService
	movies services.MovieService
	log    logging.Logger
	reader *bufio.Reader
}

// NewApp wires the application together: local database, API client, and
// the services on top of them.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, cfg.DatabaseFile)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	api := tmdb.New(cfg.APIBaseURL, cfg.APIKey, cfg.RequestTimeout, log)
	auth := services.NewAuthService(api, session.NewSQLiteRepository(db), log)
	movies := services.NewMovieService(api, auth, log)

	return &App{
		config: cfg,
		auth:   auth,
		movies: movies,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and enters the command loop. It returns
// when the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	user, err := a.auth.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}
	if user != nil {
		printfFn("Welcome back, %s!\n", user.Username)
	}

	printlnFn("Movie Explorer CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.auth.CurrentUser() != nil
}

func (a *App) getStatus() string {
	if user := a.auth.CurrentUser(); user != nil {
		return fmt.Sprintf("(%s)", user.Username)
	}
	return ""
}

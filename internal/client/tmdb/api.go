package tmdb

import (
	"context"

	"github.com/kan-1337/movie-explorer/internal/client/models"
)

// API is the full remote surface of the catalog service. Services depend on
// this interface so tests can substitute fakes for the HTTP client.
type API interface {
	// Authentication handshake.
	NewRequestToken(ctx context.Context) (string, error)
	ValidateWithLogin(ctx context.Context, username, password, requestToken string) (string, error)
	CreateSession(ctx context.Context, requestToken string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
	AccountDetails(ctx context.Context, sessionID string) (*AccountDetails, error)

	// Catalog reads.
	PopularMovies(ctx context.Context, page int) (*models.MoviePage, error)
	SearchMovies(ctx context.Context, query string, page int) (*models.MoviePage, error)
	MovieDetails(ctx context.Context, movieID int64) (*models.MovieDetails, error)

	// Authenticated rating operations.
	RateMovie(ctx context.Context, movieID int64, raw float64, sessionID string) (bool, error)
	DeleteRating(ctx context.Context, movieID int64, sessionID string) (bool, error)
	AccountState(ctx context.Context, movieID int64, sessionID string) (*models.AccountState, error)
}

var _ API = (*Client)(nil)

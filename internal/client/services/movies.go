package services

import (
	"context"
	"fmt"

	"github.com/kan-1337/movie-explorer/internal/client/models"
	"github.com/kan-1337/movie-explorer/internal/client/tmdb"
	"github.com/kan-1337/movie-explorer/internal/common"
	"github.com/kan-1337/movie-explorer/internal/logging"
)

// MovieService exposes the catalog to the UI layer. Reads are anonymous;
// rating operations require a logged-in session, read through the
// SessionReader view. No retries, no fallback values: remote errors reach
// the caller as-is.
type MovieService interface {
	Popular(ctx context.Context, page int) (*models.MoviePage, error)
	Search(ctx context.Context, query string, page int) (*models.MoviePage, error)
	Details(ctx context.Context, movieID int64) (*models.MovieDetails, error)

	Rate(ctx context.Context, movieID int64, value float64) (bool, error)
	Unrate(ctx context.Context, movieID int64) (bool, error)
	RatingFor(ctx context.Context, movieID int64) (*models.AccountState, error)
}

type movieService struct {
	api     tmdb.API
	session SessionReader
	log     logging.Logger
}

// NewMovieService constructs a MovieService over the API client and a
// read-only session view.
func NewMovieService(api tmdb.API, session SessionReader, log logging.Logger) MovieService {
	return &movieService{api: api, session: session, log: log.With("component", "movies")}
}

func (s *movieService) Popular(ctx context.Context, page int) (*models.MoviePage, error) {
	return s.api.PopularMovies(ctx, page)
}

func (s *movieService) Search(ctx context.Context, query string, page int) (*models.MoviePage, error) {
	return s.api.SearchMovies(ctx, query, page)
}

func (s *movieService) Details(ctx context.Context, movieID int64) (*models.MovieDetails, error) {
	return s.api.MovieDetails(ctx, movieID)
}

// sessionID resolves the active token or fails without a network call.
func (s *movieService) sessionID() (string, error) {
	id := s.session.SessionID()
	if id == "" {
		return "", fmt.Errorf("%w: login required", common.ErrUnauthorized)
	}
	return id, nil
}

func (s *movieService) Rate(ctx context.Context, movieID int64, value float64) (bool, error) {
	sessionID, err := s.sessionID()
	if err != nil {
		return false, err
	}
	ok, err := s.api.RateMovie(ctx, movieID, value, sessionID)
	if err != nil {
		return false, err
	}
	s.log.Info(ctx, "rating submitted", "movie_id", movieID, "value", tmdb.NormalizeRating(value), "accepted", ok)
	return ok, nil
}

func (s *movieService) Unrate(ctx context.Context, movieID int64) (bool, error) {
	sessionID, err := s.sessionID()
	if err != nil {
		return false, err
	}
	ok, err := s.api.DeleteRating(ctx, movieID, sessionID)
	if err != nil {
		return false, err
	}
	s.log.Info(ctx, "rating deleted", "movie_id", movieID, "accepted", ok)
	return ok, nil
}

func (s *movieService) RatingFor(ctx context.Context, movieID int64) (*models.AccountState, error) {
	sessionID, err := s.sessionID()
	if err != nil {
		return nil, err
	}
	return s.api.AccountState(ctx, movieID, sessionID)
}

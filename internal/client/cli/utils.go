package cli

import (
	"errors"

	"github.com/kan-1337/movie-explorer/internal/client/tmdb"
	"github.com/kan-1337/movie-explorer/internal/common"
)

// friendlyError maps service errors to user-facing text: validation and
// remote rejections carry an actionable message, transport and storage
// failures get a generic retry prompt.
func friendlyError(err error) string {
	var apiErr *tmdb.APIError
	switch {
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.As(err, &apiErr):
		return apiErr.StatusMessage
	case errors.Is(err, common.ErrUnauthorized):
		return "you need to log in first"
	case errors.Is(err, common.ErrUnavailable):
		return "the catalog service is unreachable, please try again"
	case errors.Is(err, common.ErrStorage):
		return "local storage is unavailable, please try again"
	default:
		return err.Error()
	}
}

// truncate shortens s for tabular output, counting runes so multibyte
// titles are not split mid-character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// releaseYear extracts the year from a catalog release date ("2010-07-15").
func releaseYear(date string) string {
	if len(date) < 4 {
		return "????"
	}
	return date[:4]
}

package tmdb

import (
	"fmt"
	"net/http"

	"github.com/kan-1337/movie-explorer/internal/common"
)

// APIError is a non-success response from the catalog service. The message
// comes from the remote status payload when one could be decoded.
type APIError struct {
	HTTPStatus    int
	StatusCode    int
	StatusMessage string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.HTTPStatus, e.StatusMessage)
}

// Is lets errors.Is(err, common.ErrUnauthorized) match rejected sessions.
func (e *APIError) Is(target error) bool {
	return target == common.ErrUnauthorized && e.HTTPStatus == http.StatusUnauthorized
}

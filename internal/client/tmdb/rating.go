package tmdb

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/kan-1337/movie-explorer/internal/client/models"
)

// Rating bounds imposed by the catalog service: [0.5, 10] in 0.5 steps.
const (
	MinRating = 0.5
	MaxRating = 10.0
)

// NormalizeRating rounds raw to the nearest 0.5 and clamps it into the
// service's accepted range.
func NormalizeRating(raw float64) float64 {
	value := math.Round(raw*2) / 2
	return math.Max(MinRating, math.Min(MaxRating, value))
}

type rateRequest struct {
	Value float64 `json:"value"`
}

// RateMovie submits the user's rating for a movie. The raw value is
// normalized before sending. Returns whether the service reported success.
func (c *Client) RateMovie(ctx context.Context, movieID int64, raw float64, sessionID string) (bool, error) {
	body := rateRequest{Value: NormalizeRating(raw)}

	var resp statusPayload
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/movie/%d/rating", movieID), withSession(sessionID), body, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

// DeleteRating removes the user's rating for a movie. Returns whether the
// service reported success.
func (c *Client) DeleteRating(ctx context.Context, movieID int64, sessionID string) (bool, error) {
	var resp statusPayload
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/movie/%d/rating", movieID), withSession(sessionID), nil, &resp); err != nil {
		return false, err
	}
	return resp.Success, nil
}

// AccountState reports whether, and how, the current user rated a movie.
func (c *Client) AccountState(ctx context.Context, movieID int64, sessionID string) (*models.AccountState, error) {
	var state models.AccountState
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movie/%d/account_states", movieID), withSession(sessionID), nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Package session persists the authenticated user between runs. At most one
// user is ever stored, under a single fixed key.
package session

import (
	"context"
	"errors"

	"github.com/kan-1337/movie-explorer/internal/client/models"
)

// ErrMalformed reports that a stored record exists but cannot be decoded.
// Callers typically treat this the same as "no session".
var ErrMalformed = errors.New("malformed session record")

// Repository is the durable store for the current user.
//
// Contract:
//   - Save(u) followed by Load() returns a value equal to u.
//   - Clear() followed by Load() returns (nil, nil).
//   - Load() returns (nil, nil) when nothing is stored.
type Repository interface {
	Save(ctx context.Context, user *models.User) error
	Load(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}

// Package common defines shared constants and sentinel errors used across
// the Movie Explorer client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// ErrValidation marks a local precondition failure (e.g. empty
	// credentials). No remote call has been made when it is returned.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized marks a missing or rejected session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable marks a transport-level failure (timeout, connectivity).
	ErrUnavailable = errors.New("service unavailable")

	// ErrStorage marks a local persistence failure, kept distinct from remote
	// errors so callers can tell "not logged in" from "storage unavailable".
	ErrStorage = errors.New("storage unavailable")
)

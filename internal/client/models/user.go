// Package models defines the client-side data shapes: the authenticated
// user and the movie catalog wire types.
package models

// User is the authenticated account, assembled at the end of a successful
// login handshake and persisted locally until logout.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	SessionID string `json:"session_id"`
}

// Clone returns an independent copy, so holders of a snapshot cannot mutate
// the session owner's state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

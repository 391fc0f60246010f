package tmdb

import (
	"context"
	"net/http"
)

// AccountDetails is the account record behind a session.
type AccountDetails struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// authResponse covers all authentication endpoints; each populates the
// subset of fields it cares about.
type authResponse struct {
	Success       bool   `json:"success"`
	RequestToken  string `json:"request_token"`
	SessionID     string `json:"session_id"`
	ExpiresAt     string `json:"expires_at"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

// rejected converts a 2xx response that still reports failure into an
// APIError, preferring the remote status message.
func (r *authResponse) rejected(fallback string) error {
	msg := r.StatusMessage
	if msg == "" {
		msg = fallback
	}
	return &APIError{HTTPStatus: http.StatusOK, StatusCode: r.StatusCode, StatusMessage: msg}
}

// NewRequestToken asks the service for a fresh anonymous request token, the
// first step of the login handshake.
func (c *Client) NewRequestToken(ctx context.Context) (string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodGet, "/authentication/token/new", nil, nil, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.RequestToken == "" {
		return "", resp.rejected("failed to get request token")
	}
	return resp.RequestToken, nil
}

type validateLoginRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	RequestToken string `json:"request_token"`
}

// ValidateWithLogin exchanges the request token plus credentials for a
// validated token. The service authenticates the credentials at this step.
func (c *Client) ValidateWithLogin(ctx context.Context, username, password, requestToken string) (string, error) {
	body := validateLoginRequest{Username: username, Password: password, RequestToken: requestToken}

	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/authentication/token/validate_with_login", nil, body, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.RequestToken == "" {
		return "", resp.rejected("login failed")
	}
	return resp.RequestToken, nil
}

type sessionRequest struct {
	RequestToken string `json:"request_token"`
}

// CreateSession exchanges a validated token for a session identifier.
func (c *Client) CreateSession(ctx context.Context, requestToken string) (string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/authentication/session/new", nil, sessionRequest{RequestToken: requestToken}, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.SessionID == "" {
		return "", resp.rejected("failed to create session")
	}
	return resp.SessionID, nil
}

type deleteSessionRequest struct {
	SessionID string `json:"session_id"`
}

// DeleteSession invalidates a session server-side.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	var resp authResponse
	if err := c.do(ctx, http.MethodDelete, "/authentication/session", nil, deleteSessionRequest{SessionID: sessionID}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return resp.rejected("failed to delete session")
	}
	return nil
}

// AccountDetails fetches the account (numeric id, username) behind the
// session identifier.
func (c *Client) AccountDetails(ctx context.Context, sessionID string) (*AccountDetails, error) {
	var details AccountDetails
	if err := c.do(ctx, http.MethodGet, "/account", withSession(sessionID), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

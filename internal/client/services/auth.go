// Package services contains the application services of the Movie Explorer
// client. This file defines the authentication service: the login handshake,
// logout, and restoring a persisted session at startup.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/kan-1337/movie-explorer/internal/client/models"
	"github.com/kan-1337/movie-explorer/internal/client/repositories/session"
	"github.com/kan-1337/movie-explorer/internal/client/tmdb"
	"github.com/kan-1337/movie-explorer/internal/common"
	"github.com/kan-1337/movie-explorer/internal/logging"
)

// SessionReader is the read-only view of the current session handed to
// collaborators that must not mutate it.
type SessionReader interface {
	CurrentUser() *models.User
	SessionID() string
}

// AuthService owns the session lifecycle. It is the only writer of the
// current user, both in memory and in the session store.
//
// Contract:
//   - Login: run the token handshake and persist the resulting user.
//   - Logout: invalidate remotely best-effort, always clear local state.
//   - Restore: load the persisted user at startup, without remote validation.
type AuthService interface {
	SessionReader
	Login(ctx context.Context, username, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*models.User, error)
}

// loginStage names the handshake step currently in flight, so a failure
// reports exactly where the sequence stopped.
type loginStage int

const (
	stageRequestToken loginStage = iota
	stageValidateCredentials
	stageCreateSession
	stageFetchAccount
	stagePersistSession
)

func (s loginStage) String() string {
	switch s {
	case stageRequestToken:
		return "request token"
	case stageValidateCredentials:
		return "validate credentials"
	case stageCreateSession:
		return "create session"
	case stageFetchAccount:
		return "fetch account"
	case stagePersistSession:
		return "persist session"
	default:
		return "unknown stage"
	}
}

// credentials is validated locally before any network call is made.
type credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type authService struct {
	api      tmdb.API
	sessions session.Repository
	log      logging.Logger
	validate *govalidator.Validate

	mu      sync.RWMutex
	current *models.User
}

// NewAuthService constructs an AuthService bound to the given API client and
// session repository.
func NewAuthService(api tmdb.API, sessions session.Repository, log logging.Logger) AuthService {
	return &authService{
		api:      api,
		sessions: sessions,
		log:      log.With("component", "auth"),
		validate: govalidator.New(govalidator.WithRequiredStructEnabled()),
	}
}

// Login converts a credential pair into a persisted, authenticated user.
//
// The four remote steps run strictly in order, each consuming the previous
// step's output: request token, validate with login, create session, fetch
// account. Any failure aborts the sequence and nothing is persisted, so the
// session store keeps whatever it held before the call. The returned error
// names the failed stage; remote rejections keep the service's own message.
func (a *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	creds := credentials{
		Username: strings.TrimSpace(username),
		Password: strings.TrimSpace(password),
	}
	if err := a.validate.Struct(creds); err != nil {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}

	stage := stageRequestToken
	a.log.Debug(ctx, "login stage", "stage", stage.String(), "username", creds.Username)
	requestToken, err := a.api.NewRequestToken(ctx)
	if err != nil {
		return nil, a.loginFailed(ctx, stage, err)
	}

	stage = stageValidateCredentials
	a.log.Debug(ctx, "login stage", "stage", stage.String())
	validatedToken, err := a.api.ValidateWithLogin(ctx, creds.Username, creds.Password, requestToken)
	if err != nil {
		return nil, a.loginFailed(ctx, stage, err)
	}

	stage = stageCreateSession
	a.log.Debug(ctx, "login stage", "stage", stage.String())
	sessionID, err := a.api.CreateSession(ctx, validatedToken)
	if err != nil {
		return nil, a.loginFailed(ctx, stage, err)
	}

	stage = stageFetchAccount
	a.log.Debug(ctx, "login stage", "stage", stage.String())
	account, err := a.api.AccountDetails(ctx, sessionID)
	if err != nil {
		return nil, a.loginFailed(ctx, stage, err)
	}

	user := &models.User{
		ID:        account.ID,
		Username:  account.Username,
		SessionID: sessionID,
	}

	stage = stagePersistSession
	if err := a.sessions.Save(ctx, user); err != nil {
		return nil, a.loginFailed(ctx, stage, err)
	}

	a.setCurrent(user)
	a.log.Info(ctx, "login successful", "username", user.Username, "account_id", user.ID)
	return user.Clone(), nil
}

func (a *authService) loginFailed(ctx context.Context, stage loginStage, err error) error {
	a.log.Warn(ctx, "login failed", "stage", stage.String(), "error", err)
	return fmt.Errorf("%s: %w", stage, err)
}

// Logout tears down the session. The remote invalidation is best-effort:
// its failure is logged and never aborts the logout. The in-memory user is
// cleared before the store, so even a storage failure never leaves the
// client looking authenticated.
func (a *authService) Logout(ctx context.Context) error {
	user := a.CurrentUser()
	if user == nil {
		stored, err := a.sessions.Load(ctx)
		if err == nil {
			user = stored
		}
	}

	if user != nil && user.SessionID != "" {
		if err := a.api.DeleteSession(ctx, user.SessionID); err != nil {
			a.log.Warn(ctx, "remote session invalidation failed", "error", err)
		}
	}

	a.setCurrent(nil)
	if err := a.sessions.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// Restore loads the persisted user, if any, into memory. It does not check
// the session against the remote service; a revoked token only surfaces on
// the next authenticated call. A malformed record is treated as absent.
func (a *authService) Restore(ctx context.Context) (*models.User, error) {
	user, err := a.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, session.ErrMalformed) {
			a.log.Warn(ctx, "discarding malformed session record", "error", err)
			return nil, nil
		}
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	a.setCurrent(user)
	a.log.Info(ctx, "session restored", "username", user.Username)
	return user.Clone(), nil
}

// CurrentUser returns a snapshot of the logged-in user, or nil.
func (a *authService) CurrentUser() *models.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.current.Clone()
}

// SessionID returns the active session token, or "" when logged out.
func (a *authService) SessionID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.current == nil {
		return ""
	}
	return a.current.SessionID
}

func (a *authService) setCurrent(user *models.User) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = user
}

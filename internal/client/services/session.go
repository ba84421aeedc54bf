// Package services contains the application services of the DevClimate
// client: the session store and the weather history client. Both are thin
// request/response layers over the API client; neither retries.
package services

import (
	"context"
	"strings"

	"github.com/raghhhava7/devclimate/internal/client/api"
	"github.com/raghhhava7/devclimate/internal/client/models"
	"github.com/raghhhava7/devclimate/internal/client/repositories/state"
	"github.com/raghhhava7/devclimate/internal/logging"
)

// Session holds the authenticated-identity-plus-credential state for the
// process lifetime.
//
// Contract:
//   - Restore: validate a persisted token against the profile endpoint.
//     Runs at most once per process; a rejected token downgrades silently
//     to the unauthenticated state and erases the persisted token.
//   - Login/Register: exchange credentials for a session; the token is
//     persisted only on success.
//   - Logout: best-effort, never fails.
//
// The user is present only while a validated token is present. Session is
// owned by the CLI loop and is not safe for concurrent use.
type Session interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, username, email, password string) error
	Logout(ctx context.Context)
	IsAuthenticated() bool
	User() *models.User
	Loading() bool
}

type session struct {
	client api.Client
	states state.Repository
	log    logging.Logger

	token    string
	user     *models.User
	loading  bool
	restored bool
}

// NewSession constructs a Session bound to the given API client and local
// state repository. The caller is the single owner of its lifecycle.
func NewSession(client api.Client, states state.Repository, log logging.Logger) Session {
	return &session{client: client, states: states, log: log}
}

func (s *session) IsAuthenticated() bool { return s.token != "" && s.user != nil }

func (s *session) User() *models.User { return s.user }

func (s *session) Loading() bool { return s.loading }

// Restore validates the persisted token, if any, against the profile
// endpoint. Any rejection or transport failure clears the session and the
// persisted token; the error is absorbed, not surfaced. A second call is
// a no-op.
func (s *session) Restore(ctx context.Context) error {
	if s.restored {
		return nil
	}
	s.restored = true

	token, err := s.states.Get(ctx, state.KeyAuthToken)
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	s.loading = true
	defer func() { s.loading = false }()

	s.client.SetToken(token)
	user, err := s.client.Profile(ctx)
	if err != nil {
		s.log.Warn(ctx, "persisted token rejected, clearing session", "error", err.Error())
		s.clear(ctx)
		return nil
	}

	s.token = token
	s.user = user
	return nil
}

func (s *session) Login(ctx context.Context, email, password string) error {
	token, user, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.install(ctx, token, user)
	return nil
}

func (s *session) Register(ctx context.Context, username, email, password string) error {
	token, user, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	s.install(ctx, token, user)
	return nil
}

// Logout clears the in-memory session and erases the persisted token.
// Best-effort: a failing local store is logged and ignored.
func (s *session) Logout(ctx context.Context) {
	s.clear(ctx)
}

func (s *session) install(ctx context.Context, token string, user *models.User) {
	s.token = token
	s.user = user
	s.client.SetToken(token)
	if err := s.states.Set(ctx, state.KeyAuthToken, token); err != nil {
		s.log.Warn(ctx, "failed to persist auth token", "error", err.Error())
	}
}

func (s *session) clear(ctx context.Context) {
	s.token = ""
	s.user = nil
	s.client.ClearToken()
	if err := s.states.Delete(ctx, state.KeyAuthToken); err != nil {
		s.log.Warn(ctx, "failed to erase persisted token", "error", err.Error())
	}
}

// trimCity normalizes user-entered city names before they hit the wire.
func trimCity(name string) string {
	return strings.TrimSpace(name)
}

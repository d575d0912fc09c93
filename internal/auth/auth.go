// Package auth tracks who is signed in. It owns the transition from a stored
// token to a loaded profile and back to a cleared session.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MrJamesThe3rd/finboard/internal/apiclient"
	"github.com/MrJamesThe3rd/finboard/internal/session"
	"github.com/MrJamesThe3rd/finboard/internal/user"
)

type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateLoadingProfile  State = "loading_profile"
	StateAuthenticated   State = "authenticated"
	StateLoggedOut       State = "logged_out"
)

// HomePath is where a login lands when no redirect was stored.
const HomePath = "/dashboard"

var ErrNoSession = errors.New("no active session")

type Users interface {
	Login(ctx context.Context, creds user.Credentials) (*user.AuthResult, error)
	Register(ctx context.Context, params user.RegisterParams) (*user.AuthResult, error)
	Me(ctx context.Context) (*user.User, error)
	Logout(ctx context.Context) error
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Session is the signed-in state of one client.
type Session struct {
	users  Users
	store  session.Provider
	logger *slog.Logger
	now    func() time.Time

	profile singleflight.Group

	mu    sync.RWMutex
	state State
	user  *user.User
}

func New(users Users, store session.Provider, opts ...Option) *Session {
	s := &Session{
		users:  users,
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
		state:  StateUnauthenticated,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// User is the loaded profile, nil unless authenticated.
func (s *Session) User() *user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user
}

// Bootstrap loads the profile of the stored token. Callers racing on the same
// session share one /auth/me request.
func (s *Session) Bootstrap(ctx context.Context) (*user.User, error) {
	token := s.store.Token()
	if token == "" {
		s.set(StateUnauthenticated, nil)
		return nil, ErrNoSession
	}

	if session.Expired(token, s.now()) {
		s.forceLogout("token expired")
		return nil, fmt.Errorf("token expired: %w", ErrNoSession)
	}

	if u := s.User(); u != nil && s.State() == StateAuthenticated {
		return u, nil
	}

	s.set(StateLoadingProfile, nil)

	// The fetch outlives any single caller; each caller still honours its own ctx.
	ch := s.profile.DoChan(token, func() (any, error) {
		return s.users.Me(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		s.transition(StateLoadingProfile, StateUnauthenticated)
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, s.profileFailed(res.Err)
		}

		u := res.Val.(*user.User)
		s.set(StateAuthenticated, u)

		return u, nil
	}
}

func (s *Session) profileFailed(err error) error {
	if errors.Is(err, apiclient.ErrUnauthorized) {
		s.forceLogout("profile rejected")
		return fmt.Errorf("loading profile: %w", err)
	}

	// Keep the token: a network blip is not a reason to sign out.
	s.set(StateUnauthenticated, nil)
	s.logger.Error("failed to load profile", "error", err)

	return fmt.Errorf("loading profile: %w", err)
}

// Login stores the new token and returns where the user should land next.
// A redirect stored by a forced logout is handed out once.
func (s *Session) Login(ctx context.Context, creds user.Credentials) (string, error) {
	res, err := s.users.Login(ctx, creds)
	if err != nil {
		return "", err
	}

	return s.start(res)
}

// Register creates the account and signs it in.
func (s *Session) Register(ctx context.Context, params user.RegisterParams) (string, error) {
	res, err := s.users.Register(ctx, params)
	if err != nil {
		return "", err
	}

	if res.Token == "" {
		return "", user.ErrNoToken
	}

	return s.start(res)
}

func (s *Session) start(res *user.AuthResult) (string, error) {
	if err := s.store.SetToken(res.Token); err != nil {
		return "", fmt.Errorf("storing token: %w", err)
	}

	s.set(StateAuthenticated, res.User)

	redirect := s.store.RedirectPath()
	if redirect == "" {
		return HomePath, nil
	}

	if err := s.store.SetRedirectPath(""); err != nil {
		s.logger.Warn("failed to clear redirect path", "error", err)
	}

	return redirect, nil
}

// Logout tells the backend and clears the local session whatever it answers.
func (s *Session) Logout(ctx context.Context) error {
	if s.store.Token() != "" {
		if err := s.users.Logout(ctx); err != nil {
			s.logger.Warn("remote logout failed", "error", err)
		}
	}

	if err := s.store.ClearToken(); err != nil {
		return fmt.Errorf("clearing token: %w", err)
	}

	s.set(StateLoggedOut, nil)

	return nil
}

// Expire ends a session the backend stopped accepting mid-use.
func (s *Session) Expire() {
	s.forceLogout("rejected by backend")
}

func (s *Session) forceLogout(reason string) {
	if err := s.store.ClearToken(); err != nil {
		s.logger.Error("failed to clear token", "error", err)
	}

	s.set(StateLoggedOut, nil)
	s.logger.Info("session ended", "reason", reason)
}

func (s *Session) set(state State, u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
	s.user = u
}

// transition moves to next only while the state is still from.
func (s *Session) transition(from, next State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == from {
		s.state = next
	}
}

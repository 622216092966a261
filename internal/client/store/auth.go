package store

import (
	"context"
	"errors"

	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/api"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/client/models"
	"github.com/yujian0924/dali-climbing-website-sub000/internal/common"
)

// AuthState is the auth slice: the logged-in user plus the usual async
// flags. The token itself lives only in the session layer.
type AuthState struct {
	User     *models.User
	LoggedIn bool
	Loading  bool
	Error    string
}

// Auth returns a copy of the auth slice.
func (s *Store) Auth() AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.auth
	if s.auth.User != nil {
		u := *s.auth.User
		out.User = &u
	}
	return out
}

func (s *Store) beginAuth() {
	s.mu.Lock()
	s.auth.Loading = true
	s.auth.Error = ""
	s.mu.Unlock()
	s.notify()
}

func (s *Store) rejectAuth(msg string) {
	s.mu.Lock()
	s.auth.Loading = false
	s.auth.Error = msg
	s.mu.Unlock()
	s.notify()
}

func (s *Store) fulfillAuth(user *models.User) {
	s.mu.Lock()
	s.auth.Loading = false
	s.auth.Error = ""
	s.auth.User = user
	s.auth.LoggedIn = user != nil
	s.mu.Unlock()
	s.notify()
}

// Login authenticates, persists the credentials, and populates the auth
// slice.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.beginAuth()
	creds, err := s.api.Auth.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.rejectAuth(s.failure(ctx, err, "login failed"))
		return err
	}
	if s.session != nil {
		if err := s.session.SetCredentials(ctx, creds.Token, &creds.User); err != nil {
			s.rejectAuth(s.failure(ctx, err, "failed to persist session"))
			return err
		}
	}
	user := creds.User
	s.fulfillAuth(&user)
	return nil
}

// Register creates an account; the backend logs the new user straight in.
func (s *Store) Register(ctx context.Context, req api.RegisterRequest) error {
	s.beginAuth()
	creds, err := s.api.Auth.Register(ctx, req)
	if err != nil {
		s.rejectAuth(s.failure(ctx, err, "registration failed"))
		return err
	}
	if s.session != nil {
		if err := s.session.SetCredentials(ctx, creds.Token, &creds.User); err != nil {
			s.rejectAuth(s.failure(ctx, err, "failed to persist session"))
			return err
		}
	}
	user := creds.User
	s.fulfillAuth(&user)
	return nil
}

// Logout tells the backend, clears the persisted session, and resets the
// auth slice. A failed logout call is logged but never blocks the local
// cleanup.
func (s *Store) Logout(ctx context.Context) error {
	s.beginAuth()
	if err := s.api.Auth.Logout(ctx); err != nil && !errors.Is(err, common.ErrUnauthorized) {
		s.log.Warn(ctx, "server logout failed, clearing local session anyway", "err", err)
	}
	if s.session != nil {
		if err := s.session.Clear(ctx); err != nil {
			s.rejectAuth(s.failure(ctx, err, "failed to clear session"))
			return err
		}
	}
	s.fulfillAuth(nil)
	return nil
}

// FetchProfile refreshes the logged-in user from the backend.
func (s *Store) FetchProfile(ctx context.Context) error {
	s.beginAuth()
	user, err := s.api.Auth.Me(ctx)
	if err != nil {
		s.rejectAuth(s.failure(ctx, err, "failed to fetch profile"))
		return err
	}
	s.fulfillAuth(user)
	return nil
}

// UpdateProfile saves profile changes and refreshes the auth slice with
// the server's copy.
func (s *Store) UpdateProfile(ctx context.Context, user models.User) error {
	s.beginAuth()
	updated, err := s.api.Auth.UpdateProfile(ctx, user)
	if err != nil {
		s.rejectAuth(s.failure(ctx, err, "failed to update profile"))
		return err
	}
	s.fulfillAuth(updated)
	return nil
}

// RestoreSession loads the persisted user at startup, if any.
func (s *Store) RestoreSession(ctx context.Context) error {
	if s.session == nil {
		return nil
	}
	user, err := s.session.User(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNoSession) {
			return nil
		}
		return err
	}
	s.fulfillAuth(user)
	return nil
}

// ForceLogout resets the auth slice after the HTTP wrapper's 401 handling
// already wiped the persisted session. Synchronous, no network.
func (s *Store) ForceLogout() {
	s.mu.Lock()
	s.auth = AuthState{}
	s.mu.Unlock()
	s.notify()
}

// ClearAuthError clears the auth slice's error field.
func (s *Store) ClearAuthError() {
	s.mu.Lock()
	s.auth.Error = ""
	s.mu.Unlock()
	s.notify()
}

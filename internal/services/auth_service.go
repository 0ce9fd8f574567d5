package services

import (
	"context"
	"sync"

	"topup_store_echo/internal/models"
)

// UnsubscribeFunc removes a previously registered session listener
type UnsubscribeFunc func()

// AuthService mediates all identity-provider interaction and is the single
// source of truth for "who is the current user". It holds at most one active
// session per process.
type AuthService struct {
	provider IdentityProvider

	mu        sync.Mutex
	session   *models.Session
	listeners map[int]func(*models.Session)
	nextID    int
}

// NewAuthService creates a session manager backed by the given provider.
func NewAuthService(provider IdentityProvider) *AuthService {
	return &AuthService{
		provider:  provider,
		listeners: make(map[int]func(*models.Session)),
	}
}

// SignUp registers a new account with the provider. On success the returned
// session becomes the active one. Email and password are required; the
// display name is optional profile metadata.
func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (*models.Session, *models.AuthError) {
	if email == "" || password == "" {
		return nil, &models.AuthError{Code: models.AuthErrInvalidCredentials, Message: "email and password are required"}
	}

	sess, authErr := s.provider.SignUp(ctx, email, password, name)
	if authErr != nil {
		return nil, authErr
	}
	s.setSession(sess)
	return sess, nil
}

// SignIn exchanges credentials with the provider. A failed attempt leaves
// the current session unchanged.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.Session, *models.AuthError) {
	if email == "" || password == "" {
		return nil, &models.AuthError{Code: models.AuthErrInvalidCredentials, Message: "email and password are required"}
	}

	sess, authErr := s.provider.SignIn(ctx, email, password)
	if authErr != nil {
		return nil, authErr
	}
	s.setSession(sess)
	return sess, nil
}

// SignOut invalidates the active session with the provider and notifies
// subscribers with a nil session. Signing out while signed out is a no-op.
func (s *AuthService) SignOut(ctx context.Context) *models.AuthError {
	s.mu.Lock()
	current := s.session
	s.mu.Unlock()

	if authErr := s.provider.SignOut(ctx, current); authErr != nil {
		return authErr
	}
	s.setSession(nil)
	return nil
}

// GetCurrentSession returns a copy of the cached session without a provider
// round trip, or nil when signed out. Used once at startup to seed client
// state; afterwards the change subscription is authoritative.
func (s *AuthService) GetCurrentSession(ctx context.Context) (*models.Session, *models.AuthError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, nil
	}
	sess := *s.session
	return &sess, nil
}

// OnSessionChange registers a listener invoked on every session transition
// (sign-in, sign-up, sign-out) with the new session, nil meaning signed out.
// The returned func unregisters it.
func (s *AuthService) OnSessionChange(fn func(*models.Session)) UnsubscribeFunc {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// setSession replaces the active session and notifies listeners outside the
// lock. Each listener receives its own copy.
func (s *AuthService) setSession(sess *models.Session) {
	s.mu.Lock()
	s.session = sess
	fns := make([]func(*models.Session), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		var snapshot *models.Session
		if sess != nil {
			copied := *sess
			snapshot = &copied
		}
		fn(snapshot)
	}
}

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/omer2190/portfolio-backend/internal/auth"
	"github.com/omer2190/portfolio-backend/internal/auth/domain"
)

// AuthService ties the credential store and the session store together for
// the local auth backend.
type AuthService struct {
	creds    auth.CredentialStore
	sessions auth.SessionStore

	// now is swappable so expiry can be tested without sleeping.
	now func() time.Time
}

func NewAuthService(creds auth.CredentialStore, sessions auth.SessionStore) *AuthService {
	return &AuthService{
		creds:    creds,
		sessions: sessions,
		now:      time.Now,
	}
}

// SetClock overrides the service clock. Tests only.
func (s *AuthService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *AuthService) ValidateLogin(username, password string) error {
	return s.creds.Validate(username, password)
}

// CreateSession issues a fresh token with the fixed TTL policy: one hour,
// or thirty days when the login asked to be remembered.
func (s *AuthService) CreateSession(ctx context.Context, username string, remember bool) (*domain.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	ttl := domain.SessionTTL
	if remember {
		ttl = domain.RememberTTL
	}

	session := &domain.Session{
		Username:  username,
		Token:     token,
		Timestamp: s.now().UnixMilli(),
		ExpiresIn: ttl.Milliseconds(),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// IsAuthenticated reports whether the token names a live session. Expiry is
// lazy: an outlived record is cleared here, on access, not by a background
// job.
func (s *AuthService) IsAuthenticated(ctx context.Context, token string) bool {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return false
	}
	if session.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, token)
		return false
	}
	return true
}

// CurrentSession returns the live session for a token, or
// domain.ErrSessionNotFound.
func (s *AuthService) CurrentSession(ctx context.Context, token string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, token)
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AuthService) ChangePassword(current, next string) error {
	return s.creds.ChangePassword(current, next)
}

// ResetToDefault restores the seeded credentials and invalidates the
// caller's session. Other outstanding sessions simply age out.
func (s *AuthService) ResetToDefault(ctx context.Context, token string) error {
	if err := s.creds.ResetToDefault(); err != nil {
		return err
	}
	if token != "" {
		_ = s.sessions.Delete(ctx, token)
	}
	return nil
}

func newToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrPasswordTooShort   = errors.New("password too short")
)

const (
	// SessionTTL is the default session lifetime.
	SessionTTL = time.Hour
	// RememberTTL is the lifetime with "remember me".
	RememberTTL = 30 * 24 * time.Hour
	// MinPasswordLen matches the dashboard's password rule.
	MinPasswordLen = 6
)

// Session is the time-bounded proof of admin identity. Timestamp and
// ExpiresIn are unix milliseconds, the wire shape the session record always
// had.
type Session struct {
	Username  string `json:"username"`
	Token     string `json:"token"`
	Timestamp int64  `json:"timestamp"`
	ExpiresIn int64  `json:"expiresIn"`
}

// Expired reports whether the session has outlived its TTL at the given time.
func (s Session) Expired(now time.Time) bool {
	return now.UnixMilli()-s.Timestamp > s.ExpiresIn
}

// Credentials is the stored admin account: a username and a bcrypt hash.
type Credentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/omer2190/portfolio-backend/internal/auth/domain"
)

// CredentialStore validates and rewrites the single admin account's secret.
type CredentialStore interface {
	Validate(username, password string) error
	ChangePassword(current, next string) error
	ResetToDefault() error
	Username() (string, error)
}

const (
	defaultUsername = "admin"
	defaultPassword = "omer2190"
)

// FileCredentialStore keeps the admin account in a small JSON file, seeded
// with the default credentials on first use. One account, one owner; bcrypt
// carries the hashing.
type FileCredentialStore struct {
	mu   sync.Mutex
	path string
}

func OpenCredentialFile(path string) (*FileCredentialStore, error) {
	s := &FileCredentialStore{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeDefault(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if _, err := s.read(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileCredentialStore) read() (*domain.Credentials, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var c domain.Credentials
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	return &c, nil
}

func (s *FileCredentialStore) write(c *domain.Credentials) error {
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

func (s *FileCredentialStore) writeDefault() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.write(&domain.Credentials{
		Username:     defaultUsername,
		PasswordHash: string(hash),
	})
}

func (s *FileCredentialStore) Validate(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.read()
	if err != nil {
		return err
	}
	if username != c.Username {
		return domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func (s *FileCredentialStore) ChangePassword(current, next string) error {
	if len(next) < domain.MinPasswordLen {
		return domain.ErrPasswordTooShort
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.read()
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(current)); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.PasswordHash = string(hash)
	return s.write(c)
}

// ResetToDefault restores the seeded account. This is the whole "forgot
// password" story for a single-owner deployment.
func (s *FileCredentialStore) ResetToDefault() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeDefault()
}

func (s *FileCredentialStore) Username() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.read()
	if err != nil {
		return "", err
	}
	return c.Username, nil
}

var _ CredentialStore = (*FileCredentialStore)(nil)

// ErrNotSupported marks operations a credential backend does not offer.
var ErrNotSupported = errors.New("operation not supported by this auth backend")

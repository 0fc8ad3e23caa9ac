package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"recipe-api/logger"
	"recipe-api/model"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// TokenStore persists the bearer token between runs.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryTokenStore keeps the token for the lifetime of the process.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryTokenStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryTokenStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTokenStore) Clear() error {
	return m.Save("")
}

// FileTokenStore keeps the token in a single file readable only by the
// current user.
type FileTokenStore struct {
	Path string
}

// DefaultTokenPath is <user config dir>/recipectl/token.
func DefaultTokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "recipectl", "token"), nil
}

func (f FileTokenStore) Load() (string, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (f FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(f.Path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	return nil
}

func (f FileTokenStore) Clear() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}

// Session is the client's view of who is logged in. It never verifies the
// token; the server does that on every call.
type Session struct {
	mu    sync.RWMutex
	store TokenStore
	token string
}

// NewSession restores a previously saved token from store.
func NewSession(store TokenStore) (*Session, error) {
	token, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{store: store, token: token}, nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) IsLoggedIn() bool {
	return s.Token() != ""
}

// UserID reads the userId claim of the current token. A token that cannot
// be decoded ends the session.
func (s *Session) UserID() (string, bool) {
	token := s.Token()
	if token == "" {
		return "", false
	}

	claims := &model.AppClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil || claims.UserID == "" {
		logger.Log.WithError(err).Warn("Stored token could not be decoded, clearing session")
		s.Clear()
		return "", false
	}
	return claims.UserID, true
}

func (s *Session) set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(token); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Clear drops the token locally. The token itself stays valid on the
// server until it expires.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if err := s.store.Clear(); err != nil {
		logger.Log.WithError(err).Warn("Failed to clear stored token")
	}
}

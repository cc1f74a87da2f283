package backend

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Tokens is a persisted session.
type Tokens struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	UserID       uuid.UUID `json:"user_id"`
}

// TokenStore persists the session between runs. Load returns nil when no session is stored.
type TokenStore interface {
	Load() (*Tokens, error)
	Save(tokens *Tokens) error
	Clear() error
}

// FileTokenStore keeps the session in a JSON file readable only by its owner.
type FileTokenStore struct {
	path string
	mu   sync.Mutex
}

// NewFileTokenStore returns a store backed by path. The directory is created on first save.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

func (s *FileTokenStore) Load() (*Tokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read session file")
	}

	var tokens Tokens
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return nil, errors.Wrap(err, "decode session file")
	}

	return &tokens, nil
}

func (s *FileTokenStore) Save(tokens *Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(tokens)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create session directory")
	}

	return errors.Wrap(os.WriteFile(s.path, raw, 0o600), "write session file")
}

func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove session file")
	}

	return nil
}

// MemoryTokenStore keeps the session in memory.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens *Tokens
}

func (s *MemoryTokenStore) Load() (*Tokens, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tokens == nil {
		return nil, nil
	}
	copied := *s.tokens

	return &copied, nil
}

func (s *MemoryTokenStore) Save(tokens *Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *tokens
	s.tokens = &copied

	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = nil

	return nil
}

package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// sessionDocument is the on-disk layout: token and profile live in one
// JSON document so neither half can outlive the other.
type sessionDocument struct {
	Token   string       `json:"token"`
	Profile *UserProfile `json:"profile"`
}

// FileStore persists the session as a single JSON file, written via a
// temp file and rename so partially written sessions are never read.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the given file path. Parent
// directories are created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save persists the token and profile together.
func (f *FileStore) Save(token string, profile *UserProfile) error {
	if token == "" || profile == nil {
		return NewError(ErrStoreFailed, "token and profile are both required")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return WrapError(ErrStoreFailed, "failed to create session directory", err)
	}

	data, err := json.MarshalIndent(sessionDocument{Token: token, Profile: profile}, "", "  ")
	if err != nil {
		return WrapError(ErrStoreFailed, "failed to encode session", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return WrapError(ErrStoreFailed, "failed to write session file", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return WrapError(ErrStoreFailed, "failed to commit session file", err)
	}
	return nil
}

// Load retrieves the persisted session. A missing, unreadable or
// half-complete file reads as "no session", never as a partial one.
func (f *FileStore) Load() (string, *UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", nil, WrapError(ErrSessionNotFound, "no stored session", err)
	}

	var doc sessionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", nil, WrapError(ErrSessionNotFound, "stored session is unparsable", err)
	}
	if doc.Token == "" || doc.Profile == nil {
		return "", nil, NewError(ErrSessionNotFound, "stored session is incomplete")
	}
	return doc.Token, doc.Profile, nil
}

// Clear removes the persisted session. Idempotent.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return WrapError(ErrStoreFailed, "failed to remove session file", err)
	}
	return nil
}

package auth

import "sync"

// Store persists the current session across process restarts.
//
// Implementations must be atomic from the caller's perspective: Load
// never returns a token without its matching profile or vice versa.
type Store interface {
	// Save persists the token and profile together.
	Save(token string, profile *UserProfile) error

	// Load retrieves the persisted session. Returns an AuthError with
	// code ErrSessionNotFound when either half is missing or unparsable.
	Load() (string, *UserProfile, error)

	// Clear removes the persisted session. Idempotent.
	Clear() error
}

// MemoryStore is an in-memory Store for tests and embedders that manage
// their own persistence.
type MemoryStore struct {
	mu      sync.Mutex
	token   string
	profile *UserProfile
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save persists the token and profile together.
func (m *MemoryStore) Save(token string, profile *UserProfile) error {
	if token == "" || profile == nil {
		return NewError(ErrStoreFailed, "token and profile are both required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.profile = profile
	return nil
}

// Load retrieves the persisted session.
func (m *MemoryStore) Load() (string, *UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token == "" || m.profile == nil {
		return "", nil, NewError(ErrSessionNotFound, "no stored session")
	}
	return m.token, m.profile, nil
}

// Clear removes the persisted session.
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.profile = nil
	return nil
}

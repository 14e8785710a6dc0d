package sessionstore

import (
	"sync"

	"github.com/hrsuite/hrsuite-console/internal/domain/session"
)

// MemoryStore holds the session in memory only. Used by tests and anywhere a
// throwaway session is acceptable.
type MemoryStore struct {
	mu      sync.RWMutex
	current session.Session
	active  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get() (session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.active {
		return session.Session{}, session.ErrNoSession
	}
	return m.current, nil
}

func (m *MemoryStore) Set(s session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = s
	m.active = true
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = session.Session{}
	m.active = false
	return nil
}

package storage

import "sync"

// Store persists named integer counters
type Store interface {
	// LoadInt returns the stored value, or 0 when the key was never saved
	LoadInt(key string) (int, error)
	SaveInt(key string, value int) error
}

// MemoryStore is a Store kept in memory only
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// LoadInt implements Store
func (s *MemoryStore) LoadInt(key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key], nil
}

// SaveInt implements Store
func (s *MemoryStore) SaveInt(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

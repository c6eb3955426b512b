package persistence

import "sync"

// MemoryStore is an in-process Port, used in tests and wherever no database
// is configured. Contents survive a new Registry over the same store, which
// is what a "session restart" looks like to the engine.
type MemoryStore struct {
	mu       sync.RWMutex
	payloads map[string][]byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{payloads: make(map[string][]byte)}
}

// Load fetches a payload by key.
func (s *MemoryStore) Load(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payloads[key]
	return p, ok, nil
}

// Save stores a payload under key.
func (s *MemoryStore) Save(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.payloads[key] = cp
	return nil
}

package cache

import (
	"context"
	"encoding/json"
	"sync"

	"trainingcentre/internal/domain"
)

// MemorySessionStore is a map-backed SessionStore for tests and local runs
// without Redis. It serializes through JSON like the Redis store so both
// share the same malformed-payload behavior.
type MemorySessionStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{slots: make(map[string][]byte)}
}

func (s *MemorySessionStore) Load(_ context.Context, sessionID string) (*domain.User, error) {
	s.mu.RLock()
	data, ok := s.slots[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		s.mu.Lock()
		delete(s.slots, sessionID)
		s.mu.Unlock()
		return nil, nil
	}
	return &user, nil
}

func (s *MemorySessionStore) Save(_ context.Context, sessionID string, user *domain.User) error {
	if user == nil {
		s.mu.Lock()
		delete(s.slots, sessionID)
		s.mu.Unlock()
		return nil
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.slots[sessionID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.slots, sessionID)
	s.mu.Unlock()
	return nil
}

// Corrupt overwrites a slot with a payload that will not parse. Test helper.
func (s *MemorySessionStore) Corrupt(sessionID string) {
	s.mu.Lock()
	s.slots[sessionID] = []byte("{not json")
	s.mu.Unlock()
}

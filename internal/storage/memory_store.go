package storage

import "sync"

// MemoryStore keeps values in process memory. It backs --ephemeral runs and tests.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
	// FailWrites makes every Set return this error when non-nil
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Init() error { return nil }
func (s *MemoryStore) Load() error { return nil }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryStore) GetConfigPath() string { return ":memory:" }

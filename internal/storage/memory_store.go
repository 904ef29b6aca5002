package storage

import (
	"strconv"
	"sync"
)

// MemoryStore is an in-process Provider used by tests and dry runs.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Init() error    { return nil }
func (s *MemoryStore) Close() error   { return nil }
func (s *MemoryStore) Refresh() error { return nil }

func (s *MemoryStore) GetString(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *MemoryStore) SetString(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) GetInt(key string) (int64, bool) {
	raw, ok := s.GetString(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *MemoryStore) SetInt(key string, value int64) error {
	return s.SetString(key, strconv.FormatInt(value, 10))
}

func (s *MemoryStore) GetFloat(key string) (float64, bool) {
	raw, ok := s.GetString(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (s *MemoryStore) SetFloat(key string, value float64) error {
	return s.SetString(key, strconv.FormatFloat(value, 'f', -1, 64))
}

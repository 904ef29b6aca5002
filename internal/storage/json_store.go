package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/chuwg/change-work/internal/logger"
)

// JSONStore keeps the shared store as a flat JSON object on disk. Values are
// stored as strings so the file stays readable regardless of which process
// wrote a key last. Every write reloads the file first, so concurrent
// writers lose at key granularity, not file granularity.
type JSONStore struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path:   path,
		values: make(map[string]string),
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if _, err := os.Stat(s.path); err == nil {
		return s.Refresh()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *JSONStore) Close() error {
	return nil
}

// Refresh re-reads the file. A missing or corrupt file yields an empty
// store rather than an error: reads from the shared store are total.
func (s *JSONStore) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *JSONStore) load() error {
	s.values = make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read store: %w", err)
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		logger.Warn("Shared store file is corrupt, treating as empty", "path", s.path, "error", err)
		return nil
	}
	s.values = values
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}
	return nil
}

func (s *JSONStore) get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *JSONStore) set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Pick up other processes' writes before writing back the full map.
	if err := s.load(); err != nil {
		return err
	}
	s.values[key] = value
	return s.save()
}

func (s *JSONStore) GetString(key string) (string, bool) {
	return s.get(key)
}

func (s *JSONStore) SetString(key, value string) error {
	return s.set(key, value)
}

func (s *JSONStore) GetInt(key string) (int64, bool) {
	raw, ok := s.get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *JSONStore) SetInt(key string, value int64) error {
	return s.set(key, strconv.FormatInt(value, 10))
}

func (s *JSONStore) GetFloat(key string) (float64, bool) {
	raw, ok := s.get(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (s *JSONStore) SetFloat(key string, value float64) error {
	return s.set(key, strconv.FormatFloat(value, 'f', -1, 64))
}

package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/chuwg/change-work/internal/migration"
)

// SQLiteStore backs the shared store with a single key-value table. SQLite's
// own locking gives last-writer-wins across processes, which makes it the
// sturdier choice when the main application and this engine write
// concurrently.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	s.db = db

	runner := migration.NewRunner(s.db, migration.StoreMigrations)
	if err := runner.Run(); err != nil {
		return fmt.Errorf("failed to migrate store schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Refresh is a no-op: every read goes to the database.
func (s *SQLiteStore) Refresh() error {
	return nil
}

func (s *SQLiteStore) get(key string) (string, bool) {
	if s.db == nil {
		return "", false
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM widget_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *SQLiteStore) set(key, value string) error {
	if s.db == nil {
		return fmt.Errorf("store not initialized")
	}
	_, err := s.db.Exec(
		`INSERT INTO widget_store (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetString(key string) (string, bool) {
	return s.get(key)
}

func (s *SQLiteStore) SetString(key, value string) error {
	return s.set(key, value)
}

func (s *SQLiteStore) GetInt(key string) (int64, bool) {
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

func (s *SQLiteStore) SetInt(key string, value int64) error {
	return s.set(key, strconv.FormatInt(value, 10))
}

func (s *SQLiteStore) GetFloat(key string) (float64, bool) {
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

func (s *SQLiteStore) SetFloat(key string, value float64) error {
	return s.set(key, strconv.FormatFloat(value, 'f', -1, 64))
}

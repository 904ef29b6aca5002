package notify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/chuwg/change-work/internal/logger"
)

// Spool is the file-backed stand-in for a platform notification service:
// scheduled plans wait in a JSON file keyed by identifier until the daemon
// delivers the due ones. A corrupt spool file reads as empty.
type Spool struct {
	path string
	mu   sync.Mutex
}

func NewSpool(path string) *Spool {
	return &Spool{path: path}
}

func (s *Spool) load() map[string]Plan {
	plans := make(map[string]Plan)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return plans
	}
	if err := json.Unmarshal(data, &plans); err != nil {
		logger.Warn("Notification spool is corrupt, treating as empty", "path", s.path, "error", err)
		return make(map[string]Plan)
	}
	return plans
}

func (s *Spool) save(plans map[string]Plan) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create spool directory: %w", err)
	}
	data, err := json.MarshalIndent(plans, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize spool: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write spool: %w", err)
	}
	return nil
}

// Cancel removes the given identifiers. Unknown identifiers are ignored.
func (s *Spool) Cancel(ids ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans := s.load()
	for _, id := range ids {
		delete(plans, id)
	}
	return s.save(plans)
}

// Schedule stores plans by identifier, replacing any live plan with the
// same identifier.
func (s *Spool) Schedule(plans ...Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.load()
	for _, p := range plans {
		stored[p.ID] = p
	}
	return s.save(stored)
}

// Pending returns all spooled plans ordered by fire time.
func (s *Spool) Pending() []Plan {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.load()
	plans := make([]Plan, 0, len(stored))
	for _, p := range stored {
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].FireAt.Before(plans[j].FireAt)
	})
	return plans
}

// Due returns the spooled plans whose fire time is at or before now.
func (s *Spool) Due(now time.Time) []Plan {
	var due []Plan
	for _, p := range s.Pending() {
		if !p.FireAt.After(now) {
			due = append(due, p)
		}
	}
	return due
}

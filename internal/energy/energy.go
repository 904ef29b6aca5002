// Package energy implements the watch-side energy record outbox: an
// append-only pending queue the main application drains, plus a mirrored
// "latest" value for immediate display.
package energy

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/chuwg/change-work/internal/logger"
	"github.com/chuwg/change-work/internal/models"
	"github.com/chuwg/change-work/internal/storage"
)

const recordSource = "watch"

// Recorder appends energy records to the shared store. The read-modify-write
// on the pending queue is serialized per process; the consuming application
// is responsible for idempotent ingestion, so at-least-once is enough here.
type Recorder struct {
	p  storage.Provider
	mu sync.Mutex
}

func NewRecorder(p storage.Provider) *Recorder {
	return &Recorder{p: p}
}

// Record appends one energy record for now and mirrors the level into the
// latest-value key. Levels outside 1..5 are rejected.
func (r *Recorder) Record(level int, now time.Time) error {
	if level < 1 || level > 5 {
		return fmt.Errorf("invalid energy level %d: must be 1-5", level)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pending := r.readPending()
	pending = append(pending, models.EnergyRecord{
		EnergyLevel: level,
		Timestamp:   now.Format(time.RFC3339),
		Source:      recordSource,
	})

	data, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to serialize pending records: %w", err)
	}
	if err := r.p.SetString(storage.KeyEnergyPending, string(data)); err != nil {
		return fmt.Errorf("failed to write pending records: %w", err)
	}

	// Mirror so the watch UI reflects the new level immediately.
	if err := r.p.SetInt(storage.KeyEnergyLatest, int64(level)); err != nil {
		return fmt.Errorf("failed to update latest energy level: %w", err)
	}

	logger.Debug("Recorded energy level", "level", level)
	return nil
}

// Pending returns the not-yet-consumed records. A corrupt queue reads as
// empty; the next Record call starts a fresh queue rather than failing.
func (r *Recorder) Pending() []models.EnergyRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readPending()
}

func (r *Recorder) readPending() []models.EnergyRecord {
	raw, ok := r.p.GetString(storage.KeyEnergyPending)
	if !ok || raw == "" {
		return nil
	}
	var records []models.EnergyRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		logger.Warn("Pending energy records are corrupt, starting fresh", "error", err)
		return nil
	}
	return records
}

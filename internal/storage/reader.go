package storage

import (
	"encoding/json"
	"time"

	"github.com/chuwg/change-work/internal/logger"
	"github.com/chuwg/change-work/internal/models"
	"github.com/chuwg/change-work/internal/utils"
)

// Reader turns the raw shared store into typed snapshots. Every field falls
// back to a documented default when the key is absent or malformed, so Read
// is total: it always returns a usable Snapshot.
type Reader struct {
	p Provider
}

func NewReader(p Provider) *Reader {
	return &Reader{p: p}
}

// Read returns today's shift snapshot. It refreshes the underlying store
// first so each evaluation cycle observes the main app's latest publish.
func (r *Reader) Read() models.Snapshot {
	if err := r.p.Refresh(); err != nil {
		logger.Warn("Store refresh failed, reading stale values", "error", err)
	}

	snap := models.Snapshot{
		Type:         models.ShiftNone,
		Label:        models.ShiftNone.Label(),
		DaysUntilOff: -1,
	}

	if raw, ok := r.p.GetString(KeyTodayShiftType); ok {
		snap.Type = models.ParseShiftType(raw)
	}
	if label, ok := r.p.GetString(KeyTodayShiftLabel); ok && label != "" {
		snap.Label = label
	}
	if start, ok := r.p.GetString(KeyTodayShiftStart); ok {
		snap.StartTime = start
	}
	if end, ok := r.p.GetString(KeyTodayShiftEnd); ok {
		snap.EndTime = end
	}
	if days, ok := r.p.GetInt(KeyDaysUntilOff); ok {
		snap.DaysUntilOff = int(days)
	}
	snap.WeekShifts = r.readWeekShifts()

	return snap
}

// readWeekShifts decodes the published week strip. A malformed container is
// an empty week, never a partial one; individual records with an invalid
// date are dropped rather than defaulted.
func (r *Reader) readWeekShifts() []models.DayShift {
	raw, ok := r.p.GetString(KeyWeekShifts)
	if !ok || raw == "" {
		return nil
	}

	var records []struct {
		Date  string `json:"date"`
		Type  string `json:"type"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		logger.Warn("Week shifts payload is malformed, dropping week", "error", err)
		return nil
	}

	week := make([]models.DayShift, 0, len(records))
	for _, rec := range records {
		date, err := utils.ParseDate(rec.Date, time.Local)
		if err != nil {
			continue
		}
		label := rec.Label
		if label == "" {
			label = "-"
		}
		week = append(week, models.DayShift{
			Date:  date,
			Type:  models.ParseShiftType(rec.Type),
			Label: label,
		})
		if len(week) == 7 {
			break
		}
	}
	return week
}

// ReadHealth returns the health/energy display metrics. Missing values stay
// at their zero defaults.
func (r *Reader) ReadHealth() models.HealthMetrics {
	var m models.HealthMetrics
	if v, ok := r.p.GetInt(KeyEnergyLatest); ok {
		m.EnergyLatest = int(v)
	}
	if v, ok := r.p.GetFloat(KeyEnergyAvg); ok {
		m.EnergyAvg = v
	}
	if v, ok := r.p.GetFloat(KeySleepHours); ok {
		m.SleepHours = v
	}
	if v, ok := r.p.GetInt(KeySleepQuality); ok {
		m.SleepQuality = int(v)
	}
	if raw, ok := r.p.GetString(KeyLastUpdated); ok {
		if t, valid := utils.ParseLastUpdated(raw); valid {
			m.LastUpdated = t
		}
	}
	return m
}

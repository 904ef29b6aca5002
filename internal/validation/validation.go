// Package validation inspects the raw shared-store contents that the
// defaulting reader would otherwise silently paper over. It exists for
// diagnostics: the render path never fails on bad data, so this is the only
// place a user can see what the main app actually published.
package validation

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/chuwg/change-work/internal/models"
	"github.com/chuwg/change-work/internal/storage"
	"github.com/chuwg/change-work/internal/utils"
)

// ConflictType represents the kind of problem found in the store
type ConflictType string

const (
	ConflictUnknownShiftType ConflictType = "unknown_shift_type"
	ConflictMissingTime      ConflictType = "missing_time"
	ConflictInvalidTime      ConflictType = "invalid_time"
	ConflictMalformedWeek    ConflictType = "malformed_week"
	ConflictWeekOutOfOrder   ConflictType = "week_out_of_order"
	ConflictStaleSnapshot    ConflictType = "stale_snapshot"
	ConflictMalformedQueue   ConflictType = "malformed_queue"
)

// Conflict is one detected problem in the published store data
type Conflict struct {
	Type        ConflictType
	Key         string
	Description string
}

// Result collects all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No problems detected."
	}
	report := "Problems detected:\n"
	for _, c := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", c.Description)
	}
	return report
}

// staleAfter is how old the published snapshot may be before it is flagged.
// The main app republishes at least daily, so two missed days means the
// sync path is broken.
const staleAfter = 48 * time.Hour

// Validator checks raw store values against the published wire formats
type Validator struct {
	store storage.Provider
}

// New creates a validator over the given store
func New(store storage.Provider) *Validator {
	return &Validator{store: store}
}

// Validate inspects every published key and reports what does not parse.
// Absent keys are not conflicts; an empty store is a valid fresh install.
func (v *Validator) Validate(now time.Time) Result {
	result := Result{Conflicts: []Conflict{}}

	result.Conflicts = append(result.Conflicts, v.checkToday()...)
	result.Conflicts = append(result.Conflicts, v.checkWeek()...)
	result.Conflicts = append(result.Conflicts, v.checkFreshness(now)...)
	result.Conflicts = append(result.Conflicts, v.checkEnergyQueue()...)

	return result
}

func (v *Validator) checkToday() []Conflict {
	var conflicts []Conflict

	rawType, hasType := v.store.GetString(storage.KeyTodayShiftType)
	if hasType && rawType != "" && models.ParseShiftType(rawType) == models.ShiftNone && rawType != string(models.ShiftNone) {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictUnknownShiftType,
			Key:         storage.KeyTodayShiftType,
			Description: fmt.Sprintf("unknown shift type %q, will render as unregistered", rawType),
		})
	}

	shiftType := models.ShiftNone
	if hasType {
		shiftType = models.ParseShiftType(rawType)
	}

	start, _ := v.store.GetString(storage.KeyTodayShiftStart)
	end, _ := v.store.GetString(storage.KeyTodayShiftEnd)

	for key, value := range map[string]string{
		storage.KeyTodayShiftStart: start,
		storage.KeyTodayShiftEnd:   end,
	} {
		if value != "" && !utils.ValidateTimeFormat(value) {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictInvalidTime,
				Key:         key,
				Description: fmt.Sprintf("%s = %q is not HH:MM", key, value),
			})
		}
	}

	if shiftType.Working() && (start == "" || end == "") {
		conflicts = append(conflicts, Conflict{
			Type:        ConflictMissingTime,
			Key:         storage.KeyTodayShiftStart,
			Description: fmt.Sprintf("working shift %q published without start/end times", shiftType),
		})
	}

	return conflicts
}

type weekRecord struct {
	Date string `json:"date"`
	Type string `json:"type"`
}

func (v *Validator) checkWeek() []Conflict {
	raw, ok := v.store.GetString(storage.KeyWeekShifts)
	if !ok || raw == "" {
		return nil
	}

	var records []weekRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return []Conflict{{
			Type:        ConflictMalformedWeek,
			Key:         storage.KeyWeekShifts,
			Description: fmt.Sprintf("%s is not a JSON array: %v", storage.KeyWeekShifts, err),
		}}
	}

	var conflicts []Conflict
	var prev time.Time
	for i, r := range records {
		d, err := utils.ParseDate(r.Date, time.Local)
		if err != nil {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictMalformedWeek,
				Key:         storage.KeyWeekShifts,
				Description: fmt.Sprintf("week entry %d has bad date %q, entry will be dropped", i, r.Date),
			})
			continue
		}
		if !prev.IsZero() && !d.After(prev) {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictWeekOutOfOrder,
				Key:         storage.KeyWeekShifts,
				Description: fmt.Sprintf("week entry %d (%s) is not after the previous entry", i, r.Date),
			})
		}
		prev = d
	}
	return conflicts
}

func (v *Validator) checkFreshness(now time.Time) []Conflict {
	raw, ok := v.store.GetString(storage.KeyLastUpdated)
	if !ok || raw == "" {
		return nil
	}

	updated, ok := utils.ParseLastUpdated(raw)
	if !ok {
		return []Conflict{{
			Type:        ConflictStaleSnapshot,
			Key:         storage.KeyLastUpdated,
			Description: fmt.Sprintf("%s = %q is not a timestamp", storage.KeyLastUpdated, raw),
		}}
	}

	if now.Sub(updated) > staleAfter {
		return []Conflict{{
			Type:        ConflictStaleSnapshot,
			Key:         storage.KeyLastUpdated,
			Description: fmt.Sprintf("snapshot last published %s, main app sync looks broken", updated.Format(time.RFC3339)),
		}}
	}
	return nil
}

func (v *Validator) checkEnergyQueue() []Conflict {
	raw, ok := v.store.GetString(storage.KeyEnergyPending)
	if !ok || raw == "" {
		return nil
	}

	var records []models.EnergyRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return []Conflict{{
			Type:        ConflictMalformedQueue,
			Key:         storage.KeyEnergyPending,
			Description: fmt.Sprintf("%s is corrupt and will be reset on the next record: %v", storage.KeyEnergyPending, err),
		}}
	}

	var conflicts []Conflict
	for i, r := range records {
		if r.EnergyLevel < 1 || r.EnergyLevel > 5 {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictMalformedQueue,
				Key:         storage.KeyEnergyPending,
				Description: fmt.Sprintf("energy record %d has out-of-range level %d", i, r.EnergyLevel),
			})
		}
	}
	return conflicts
}

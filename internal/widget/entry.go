// Package widget builds the read-only entries the home-screen and
// complication surfaces render. Entries carry no behavior; the host decides
// when to rebuild them (daily widgets refresh at the next midnight).
package widget

import (
	"fmt"
	"time"

	"github.com/chuwg/change-work/internal/models"
	"github.com/chuwg/change-work/internal/storage"
	"github.com/chuwg/change-work/internal/utils"
)

// Entry is the full widget payload: today's shift plus the week strip.
type Entry struct {
	Date         time.Time
	Type         models.ShiftType
	Label        string
	TimeString   string
	DaysUntilOff int
	WeekShifts   []models.DayShift
}

// ComplicationEntry is the compact payload for wearable complications.
// Its time string has no spaces to fit the smaller surface.
type ComplicationEntry struct {
	Date         time.Time
	Type         models.ShiftType
	Label        string
	TimeString   string
	DaysUntilOff int
}

// BuildEntry reads a fresh snapshot and assembles the widget entry. An
// empty published week is replaced with a placeholder strip so the layout
// always has seven rows to paint.
func BuildEntry(r *storage.Reader, now time.Time) Entry {
	snap := r.Read()

	week := snap.WeekShifts
	if len(week) == 0 {
		week = PlaceholderWeek(now)
	}

	return Entry{
		Date:         now,
		Type:         snap.Type,
		Label:        snap.Label,
		TimeString:   snap.TimeString(),
		DaysUntilOff: snap.DaysUntilOff,
		WeekShifts:   week,
	}
}

// BuildComplicationEntry assembles the compact complication entry.
func BuildComplicationEntry(r *storage.Reader, now time.Time) ComplicationEntry {
	snap := r.Read()

	timeStr := ""
	if snap.StartTime != "" && snap.EndTime != "" {
		timeStr = fmt.Sprintf("%s-%s", snap.StartTime, snap.EndTime)
	}

	return ComplicationEntry{
		Date:         now,
		Type:         snap.Type,
		Label:        snap.Label,
		TimeString:   timeStr,
		DaysUntilOff: snap.DaysUntilOff,
	}
}

// PlaceholderWeek returns seven unregistered days starting today.
func PlaceholderWeek(now time.Time) []models.DayShift {
	today := utils.StartOfDay(now)
	week := make([]models.DayShift, 7)
	for i := range week {
		week[i] = models.DayShift{
			Date:  today.AddDate(0, 0, i),
			Type:  models.ShiftNone,
			Label: "-",
		}
	}
	return week
}

// NextRefresh returns when a daily widget should next rebuild its entry.
func NextRefresh(now time.Time) time.Time {
	return utils.NextMidnight(now)
}

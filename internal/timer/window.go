// Package timer resolves a shift's absolute time window for "today" and
// classifies the current instant against it. Everything here is pure: the
// same inputs always produce the same outputs, and nothing is retained
// between evaluations.
package timer

import (
	"time"

	"github.com/chuwg/change-work/internal/utils"
)

// Window is the resolved absolute span of a single shift occurrence.
// End is always after Start once resolved.
type Window struct {
	Start time.Time
	End   time.Time
}

// Duration returns the shift length.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Contains reports whether now falls inside [Start, End).
func (w Window) Contains(now time.Time) bool {
	return !now.Before(w.Start) && now.Before(w.End)
}

// Resolve places the HH:MM start/end strings on the calendar day containing
// now and disambiguates shifts that cross midnight. It returns false when
// either string is empty or unparsable (off day, unregistered day).
//
// For a midnight-crossing shift (end <= start on the same date) the relevant
// occurrence is chosen by comparing now to the candidate start alone: before
// the start the occurrence that began yesterday is still the live one, so
// the start moves back a day; otherwise today's occurrence is live and the
// end moves forward a day.
func Resolve(startStr, endStr string, now time.Time) (Window, bool) {
	start, err := utils.AtTime(now, startStr)
	if err != nil {
		return Window{}, false
	}
	end, err := utils.AtTime(now, endStr)
	if err != nil {
		return Window{}, false
	}

	if !end.After(start) {
		if now.Before(start) {
			start = start.AddDate(0, 0, -1)
		} else {
			end = end.AddDate(0, 0, 1)
		}
	}

	return Window{Start: start, End: end}, true
}

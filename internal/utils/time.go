package utils

import (
	"time"

	"github.com/chuwg/change-work/internal/constants"
)

var koreanWeekdays = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ParseDate parses a date string (YYYY-MM-DD) in the given location,
// returning midnight of that day.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// AtTime places a time-of-day string (HH:MM) on the calendar day containing
// day, in day's location.
func AtTime(day time.Time, timeStr string) (time.Time, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), nil
}

// StartOfDay returns midnight of the calendar day containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextMidnight returns midnight of the day after t.
func NextMidnight(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// WeekdayLabel returns the Korean single-character weekday label for a date.
func WeekdayLabel(t time.Time) string {
	return koreanWeekdays[int(t.Weekday())]
}

// ParseLastUpdated parses the snapshot publish timestamp, which the main app
// writes as RFC3339 with or without fractional seconds.
func ParseLastUpdated(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

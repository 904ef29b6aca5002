package models

import (
	"fmt"
	"time"
)

// Snapshot is today's published shift state, read once per evaluation cycle.
// All fields carry safe defaults; a Snapshot is never partially valid.
type Snapshot struct {
	Type         ShiftType
	Label        string
	StartTime    string // HH:MM, empty means no time information
	EndTime      string // HH:MM, empty means no time information
	DaysUntilOff int    // -1 = unknown
	WeekShifts   []DayShift
}

// TimeString renders the widget time range ("06:00 - 14:00"), or "" when
// either bound is missing.
func (s Snapshot) TimeString() string {
	if s.StartTime == "" || s.EndTime == "" {
		return ""
	}
	return fmt.Sprintf("%s - %s", s.StartTime, s.EndTime)
}

// HealthMetrics are read-only display values mirrored by the main app.
// A zero LastUpdated means the publish time is unknown.
type HealthMetrics struct {
	EnergyLatest int
	EnergyAvg    float64
	SleepHours   float64
	SleepQuality int
	LastUpdated  time.Time
}

// EnergyRecord is one entry of the watch-side outbox consumed by the main
// app. Field names follow the shared-store wire format.
type EnergyRecord struct {
	EnergyLevel int    `json:"energy_level"`
	Timestamp   string `json:"timestamp"` // RFC3339
	Source      string `json:"source"`
}

// EnergyLevelLabel returns the display label for a 1..5 energy level.
func EnergyLevelLabel(level int) string {
	switch level {
	case 5:
		return "최고"
	case 4:
		return "좋음"
	case 3:
		return "보통"
	case 2:
		return "피곤"
	case 1:
		return "탈진"
	default:
		return "-"
	}
}

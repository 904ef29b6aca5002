package models

import "time"

// ShiftType is the closed set of shift variants published by the main app.
// Unknown wire values map to ShiftNone.
type ShiftType string

const (
	ShiftDay     ShiftType = "day"
	ShiftEvening ShiftType = "evening"
	ShiftNight   ShiftType = "night"
	ShiftOff     ShiftType = "off"
	ShiftNone    ShiftType = "none"
)

// Display metadata is kept in lookup tables keyed by the tag rather than on
// the values themselves, so new surfaces can render a ShiftType without
// touching this package.
var (
	shiftLabels = map[ShiftType]string{
		ShiftDay:     "주간",
		ShiftEvening: "오후",
		ShiftNight:   "야간",
		ShiftOff:     "휴무",
		ShiftNone:    "미등록",
	}

	shiftShortLabels = map[ShiftType]string{
		ShiftDay:     "주",
		ShiftEvening: "오",
		ShiftNight:   "야",
		ShiftOff:     "휴",
		ShiftNone:    "-",
	}

	shiftColors = map[ShiftType]string{
		ShiftDay:     "#FFB840",
		ShiftEvening: "#FF6B35",
		ShiftNight:   "#7364F0",
		ShiftOff:     "#5DB882",
		ShiftNone:    "#666666",
	}

	shiftIcons = map[ShiftType]string{
		ShiftDay:     "☀",
		ShiftEvening: "🌇",
		ShiftNight:   "🌙",
		ShiftOff:     "🏠",
		ShiftNone:    "?",
	}
)

// ParseShiftType maps a raw store value onto a ShiftType. Anything outside
// the closed set, including the empty string, is ShiftNone.
func ParseShiftType(raw string) ShiftType {
	t := ShiftType(raw)
	if _, ok := shiftLabels[t]; !ok {
		return ShiftNone
	}
	return t
}

// Label returns the full display label (e.g. "주간").
func (t ShiftType) Label() string {
	if l, ok := shiftLabels[t]; ok {
		return l
	}
	return shiftLabels[ShiftNone]
}

// ShortLabel returns the single-character label used in the week strip.
func (t ShiftType) ShortLabel() string {
	if l, ok := shiftShortLabels[t]; ok {
		return l
	}
	return shiftShortLabels[ShiftNone]
}

// Color returns the display color as a hex string.
func (t ShiftType) Color() string {
	if c, ok := shiftColors[t]; ok {
		return c
	}
	return shiftColors[ShiftNone]
}

// Icon returns a glyph for the shift type.
func (t ShiftType) Icon() string {
	if i, ok := shiftIcons[t]; ok {
		return i
	}
	return shiftIcons[ShiftNone]
}

// Working reports whether the type represents an actual work shift.
func (t ShiftType) Working() bool {
	return t == ShiftDay || t == ShiftEvening || t == ShiftNight
}

// DayShift is one entry of the published week strip.
type DayShift struct {
	Date  time.Time
	Type  ShiftType
	Label string
}

package models

import "testing"

func TestParseShiftType(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ShiftType
	}{
		{
			name: "day",
			raw:  "day",
			want: ShiftDay,
		},
		{
			name: "evening",
			raw:  "evening",
			want: ShiftEvening,
		},
		{
			name: "night",
			raw:  "night",
			want: ShiftNight,
		},
		{
			name: "off",
			raw:  "off",
			want: ShiftOff,
		},
		{
			name: "none",
			raw:  "none",
			want: ShiftNone,
		},
		{
			name: "unknown value maps to none",
			raw:  "overtime",
			want: ShiftNone,
		},
		{
			name: "empty string maps to none",
			raw:  "",
			want: ShiftNone,
		},
		{
			name: "case sensitive",
			raw:  "Day",
			want: ShiftNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseShiftType(tt.raw); got != tt.want {
				t.Errorf("ParseShiftType(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestShiftTypeLookups(t *testing.T) {
	all := []ShiftType{ShiftDay, ShiftEvening, ShiftNight, ShiftOff, ShiftNone}
	for _, typ := range all {
		if typ.Label() == "" {
			t.Errorf("%v has empty label", typ)
		}
		if typ.ShortLabel() == "" {
			t.Errorf("%v has empty short label", typ)
		}
		if typ.Color() == "" || typ.Color()[0] != '#' {
			t.Errorf("%v has invalid color %q", typ, typ.Color())
		}
		if typ.Icon() == "" {
			t.Errorf("%v has empty icon", typ)
		}
	}

	// Unknown tags fall back to the unregistered entry instead of zero values.
	unknown := ShiftType("bogus")
	if unknown.Label() != ShiftNone.Label() {
		t.Errorf("unknown label = %q, want %q", unknown.Label(), ShiftNone.Label())
	}
	if unknown.ShortLabel() != "-" {
		t.Errorf("unknown short label = %q, want -", unknown.ShortLabel())
	}
}

func TestShiftTypeWorking(t *testing.T) {
	tests := []struct {
		typ  ShiftType
		want bool
	}{
		{ShiftDay, true},
		{ShiftEvening, true},
		{ShiftNight, true},
		{ShiftOff, false},
		{ShiftNone, false},
	}

	for _, tt := range tests {
		if got := tt.typ.Working(); got != tt.want {
			t.Errorf("%v.Working() = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestSnapshotTimeString(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want string
	}{
		{
			name: "both times present",
			snap: Snapshot{StartTime: "06:00", EndTime: "14:00"},
			want: "06:00 - 14:00",
		},
		{
			name: "missing start",
			snap: Snapshot{EndTime: "14:00"},
			want: "",
		},
		{
			name: "missing end",
			snap: Snapshot{StartTime: "06:00"},
			want: "",
		},
		{
			name: "both missing",
			snap: Snapshot{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snap.TimeString(); got != tt.want {
				t.Errorf("TimeString() = %q, want %q", got, tt.want)
			}
		})
	}
}

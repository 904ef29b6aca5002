package storage

import (
	"testing"

	"github.com/chuwg/change-work/internal/models"
)

func TestReadDefaults(t *testing.T) {
	// A completely empty store still yields a usable snapshot.
	snap := NewReader(NewMemoryStore()).Read()

	if snap.Type != models.ShiftNone {
		t.Errorf("type = %v, want none", snap.Type)
	}
	if snap.Label != "미등록" {
		t.Errorf("label = %q, want 미등록", snap.Label)
	}
	if snap.StartTime != "" || snap.EndTime != "" {
		t.Errorf("times = %q, %q; want empty", snap.StartTime, snap.EndTime)
	}
	if snap.DaysUntilOff != -1 {
		t.Errorf("days until off = %d, want -1", snap.DaysUntilOff)
	}
	if len(snap.WeekShifts) != 0 {
		t.Errorf("week shifts = %d, want 0", len(snap.WeekShifts))
	}
}

func TestReadPopulatedSnapshot(t *testing.T) {
	store := NewMemoryStore()
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(store.SetString(KeyTodayShiftType, "night"))
	must(store.SetString(KeyTodayShiftLabel, "야간"))
	must(store.SetString(KeyTodayShiftStart, "22:00"))
	must(store.SetString(KeyTodayShiftEnd, "06:00"))
	must(store.SetInt(KeyDaysUntilOff, 3))

	snap := NewReader(store).Read()

	if snap.Type != models.ShiftNight {
		t.Errorf("type = %v, want night", snap.Type)
	}
	if snap.Label != "야간" {
		t.Errorf("label = %q, want 야간", snap.Label)
	}
	if snap.StartTime != "22:00" || snap.EndTime != "06:00" {
		t.Errorf("times = %q, %q; want 22:00, 06:00", snap.StartTime, snap.EndTime)
	}
	if snap.DaysUntilOff != 3 {
		t.Errorf("days until off = %d, want 3", snap.DaysUntilOff)
	}
}

func TestReadUnknownShiftType(t *testing.T) {
	store := NewMemoryStore()
	if err := store.SetString(KeyTodayShiftType, "overtime"); err != nil {
		t.Fatal(err)
	}

	snap := NewReader(store).Read()
	if snap.Type != models.ShiftNone {
		t.Errorf("type = %v, want none for unknown value", snap.Type)
	}
}

func TestReadWeekShifts(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCount int
	}{
		{
			name: "valid week",
			raw: `[{"date":"2025-03-14","type":"day","label":"주간"},
			       {"date":"2025-03-15","type":"off","label":"휴무"}]`,
			wantCount: 2,
		},
		{
			name:      "malformed container drops whole week",
			raw:       `[{"date":"2025-03-14"`,
			wantCount: 0,
		},
		{
			name:      "not an array drops whole week",
			raw:       `{"date":"2025-03-14"}`,
			wantCount: 0,
		},
		{
			name: "record with bad date is dropped, not defaulted",
			raw: `[{"date":"not-a-date","type":"day","label":"주간"},
			       {"date":"2025-03-15","type":"night","label":"야간"}]`,
			wantCount: 1,
		},
		{
			name:      "record missing date is dropped",
			raw:       `[{"type":"day","label":"주간"}]`,
			wantCount: 0,
		},
		{
			name:      "empty array",
			raw:       `[]`,
			wantCount: 0,
		},
		{
			name: "more than seven records are capped",
			raw: `[{"date":"2025-03-14","type":"day","label":"a"},
			       {"date":"2025-03-15","type":"day","label":"b"},
			       {"date":"2025-03-16","type":"day","label":"c"},
			       {"date":"2025-03-17","type":"day","label":"d"},
			       {"date":"2025-03-18","type":"day","label":"e"},
			       {"date":"2025-03-19","type":"day","label":"f"},
			       {"date":"2025-03-20","type":"day","label":"g"},
			       {"date":"2025-03-21","type":"day","label":"h"}]`,
			wantCount: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			if err := store.SetString(KeyWeekShifts, tt.raw); err != nil {
				t.Fatal(err)
			}

			snap := NewReader(store).Read()
			if len(snap.WeekShifts) != tt.wantCount {
				t.Errorf("got %d week shifts, want %d", len(snap.WeekShifts), tt.wantCount)
			}
		})
	}
}

func TestReadWeekShiftUnknownTypeMapsToNone(t *testing.T) {
	store := NewMemoryStore()
	raw := `[{"date":"2025-03-14","type":"mystery","label":"x"}]`
	if err := store.SetString(KeyWeekShifts, raw); err != nil {
		t.Fatal(err)
	}

	snap := NewReader(store).Read()
	if len(snap.WeekShifts) != 1 {
		t.Fatalf("got %d week shifts, want 1", len(snap.WeekShifts))
	}
	if snap.WeekShifts[0].Type != models.ShiftNone {
		t.Errorf("type = %v, want none", snap.WeekShifts[0].Type)
	}
}

func TestReadHealth(t *testing.T) {
	store := NewMemoryStore()
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(store.SetInt(KeyEnergyLatest, 4))
	must(store.SetFloat(KeyEnergyAvg, 3.5))
	must(store.SetFloat(KeySleepHours, 7.2))
	must(store.SetInt(KeySleepQuality, 80))
	must(store.SetString(KeyLastUpdated, "2025-03-14T06:00:00Z"))

	m := NewReader(store).ReadHealth()

	if m.EnergyLatest != 4 {
		t.Errorf("energy latest = %d, want 4", m.EnergyLatest)
	}
	if m.EnergyAvg != 3.5 {
		t.Errorf("energy avg = %v, want 3.5", m.EnergyAvg)
	}
	if m.SleepHours != 7.2 {
		t.Errorf("sleep hours = %v, want 7.2", m.SleepHours)
	}
	if m.SleepQuality != 80 {
		t.Errorf("sleep quality = %d, want 80", m.SleepQuality)
	}
	if m.LastUpdated.IsZero() {
		t.Error("last updated is zero, want parsed timestamp")
	}
}

func TestReadHealthDefaults(t *testing.T) {
	m := NewReader(NewMemoryStore()).ReadHealth()

	if m.EnergyLatest != 0 || m.EnergyAvg != 0 || m.SleepHours != 0 || m.SleepQuality != 0 {
		t.Errorf("metrics = %+v, want zero values", m)
	}
	if !m.LastUpdated.IsZero() {
		t.Errorf("last updated = %v, want zero", m.LastUpdated)
	}
}

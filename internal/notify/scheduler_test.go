package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/chuwg/change-work/internal/models"
)

// fakeService records calls so tests can assert cancellation order and the
// submitted plan set.
type fakeService struct {
	cancelled [][]string
	scheduled [][]Plan
	denied    bool
}

func (f *fakeService) Cancel(ids ...string) error {
	if f.denied {
		return ErrNotAuthorized
	}
	f.cancelled = append(f.cancelled, ids)
	return nil
}

func (f *fakeService) Schedule(plans ...Plan) error {
	if f.denied {
		return ErrNotAuthorized
	}
	f.scheduled = append(f.scheduled, plans)
	return nil
}

func at(day, hour, min int) time.Time {
	return time.Date(2025, 3, day, hour, min, 0, 0, time.UTC)
}

func workingSnapshot(start, end string) models.Snapshot {
	return models.Snapshot{
		Type:      models.ShiftDay,
		Label:     "주간",
		StartTime: start,
		EndTime:   end,
	}
}

func TestBuildPlansDayShift(t *testing.T) {
	snap := workingSnapshot("06:00", "14:00")
	now := at(14, 5, 0)

	plans := BuildPlans(snap, now)
	if len(plans) != 2 {
		t.Fatalf("got %d plans, want 2", len(plans))
	}

	start := plans[0]
	if start.ID != IDShiftStart {
		t.Errorf("first plan id = %q, want %q", start.ID, IDShiftStart)
	}
	if !start.FireAt.Equal(at(14, 5, 50)) {
		t.Errorf("start fires at %v, want 05:50", start.FireAt)
	}
	if !strings.Contains(start.Body, "주간") || !strings.Contains(start.Body, "06:00") {
		t.Errorf("start body missing label or time: %q", start.Body)
	}

	end := plans[1]
	if end.ID != IDShiftEnd {
		t.Errorf("second plan id = %q, want %q", end.ID, IDShiftEnd)
	}
	if !end.FireAt.Equal(at(14, 14, 0)) {
		t.Errorf("end fires at %v, want 14:00", end.FireAt)
	}
}

func TestBuildPlansDropsPastStartReminder(t *testing.T) {
	snap := workingSnapshot("06:00", "14:00")

	tests := []struct {
		name    string
		now     time.Time
		wantIDs []string
	}{
		{
			// Lead instant has passed but the shift has not started: the
			// reminder is dropped outright, never rescheduled near-term.
			name:    "inside lead window",
			now:     at(14, 5, 55),
			wantIDs: []string{IDShiftEnd},
		},
		{
			name:    "mid shift",
			now:     at(14, 10, 0),
			wantIDs: []string{IDShiftEnd},
		},
		{
			name:    "after shift",
			now:     at(14, 15, 0),
			wantIDs: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans := BuildPlans(snap, tt.now)
			if len(plans) != len(tt.wantIDs) {
				t.Fatalf("got %d plans, want %d", len(plans), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if plans[i].ID != id {
					t.Errorf("plan[%d].ID = %q, want %q", i, plans[i].ID, id)
				}
			}
		})
	}
}

func TestBuildPlansOvernightEndOnNextDay(t *testing.T) {
	snap := models.Snapshot{
		Type:      models.ShiftNight,
		Label:     "야간",
		StartTime: "22:00",
		EndTime:   "06:00",
	}
	now := at(14, 23, 0) // day 1, shift running

	plans := BuildPlans(snap, now)
	if len(plans) != 1 {
		t.Fatalf("got %d plans, want 1", len(plans))
	}
	if plans[0].ID != IDShiftEnd {
		t.Fatalf("plan id = %q, want %q", plans[0].ID, IDShiftEnd)
	}
	if !plans[0].FireAt.Equal(at(15, 6, 0)) {
		t.Errorf("end fires at %v, want 06:00 on day 2", plans[0].FireAt)
	}
}

func TestBuildPlansNonWorkingDays(t *testing.T) {
	tests := []struct {
		name string
		snap models.Snapshot
	}{
		{
			name: "off day",
			snap: models.Snapshot{Type: models.ShiftOff, Label: "휴무", StartTime: "06:00", EndTime: "14:00"},
		},
		{
			name: "unregistered day",
			snap: models.Snapshot{Type: models.ShiftNone},
		},
		{
			name: "working day without times",
			snap: models.Snapshot{Type: models.ShiftDay, Label: "주간"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if plans := BuildPlans(tt.snap, at(14, 5, 0)); len(plans) != 0 {
				t.Errorf("got %d plans, want 0", len(plans))
			}
		})
	}
}

func TestReconcileIdempotent(t *testing.T) {
	svc := &fakeService{}
	s := NewScheduler(svc)
	snap := workingSnapshot("06:00", "14:00")

	first, err := s.Reconcile(snap, at(14, 5, 0))
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	second, err := s.Reconcile(snap, at(14, 5, 0).Add(30*time.Second))
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("plan counts = %d, %d; want 2, 2", len(first), len(second))
	}

	// Every reconcile cancels exactly the two engine identifiers before
	// resubmitting, so there is never more than one live plan per id.
	if len(svc.cancelled) != 2 {
		t.Fatalf("got %d cancel calls, want 2", len(svc.cancelled))
	}
	for _, ids := range svc.cancelled {
		if len(ids) != 2 || ids[0] != IDShiftStart || ids[1] != IDShiftEnd {
			t.Errorf("cancel called with %v, want both fixed identifiers", ids)
		}
	}
	if len(svc.scheduled) != 2 {
		t.Fatalf("got %d schedule calls, want 2", len(svc.scheduled))
	}
}

func TestReconcileOffDayCancelsEverything(t *testing.T) {
	svc := &fakeService{}
	s := NewScheduler(svc)
	snap := models.Snapshot{Type: models.ShiftOff, Label: "휴무"}

	plans, err := s.Reconcile(snap, at(14, 5, 0))
	if err != nil {
		t.Fatalf("Reconcile() error = %v", err)
	}
	if len(plans) != 0 {
		t.Errorf("got %d plans, want 0", len(plans))
	}
	// Cancellation still happens so reminders from a previous working day
	// cannot survive into an off day.
	if len(svc.cancelled) != 1 {
		t.Errorf("got %d cancel calls, want 1", len(svc.cancelled))
	}
	if len(svc.scheduled) != 0 {
		t.Errorf("got %d schedule calls, want 0", len(svc.scheduled))
	}
}

func TestReconcileUnauthorizedIsSilent(t *testing.T) {
	svc := &fakeService{denied: true}
	s := NewScheduler(svc)

	plans, err := s.Reconcile(workingSnapshot("06:00", "14:00"), at(14, 5, 0))
	if err != nil {
		t.Fatalf("Reconcile() error = %v, want nil", err)
	}
	if plans != nil {
		t.Errorf("got plans %v, want none", plans)
	}
}

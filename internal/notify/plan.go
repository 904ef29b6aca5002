// Package notify decides which shift reminders should exist, keeps them in
// a pending spool, and hands due ones to the local tray notifier.
package notify

import (
	"fmt"
	"time"

	"github.com/chuwg/change-work/internal/constants"
	"github.com/chuwg/change-work/internal/models"
	"github.com/chuwg/change-work/internal/timer"
)

// Fixed notification identifiers. At most one live plan exists per
// identifier; they double as cancellation keys across reconciliations.
const (
	IDShiftStart = "shift_start"
	IDShiftEnd   = "shift_end"
)

// Plan is one scheduled local notification.
type Plan struct {
	ID     string    `json:"id"`
	FireAt time.Time `json:"fire_at"`
	Title  string    `json:"title"`
	Body   string    `json:"body"`
}

// BuildPlans computes the reminder set for a snapshot: a pre-start reminder
// and an end-of-shift alert, each dropped when its fire time has already
// passed. Non-working days and days without a resolvable window produce no
// plans. Pure; Reconcile wraps this with cancellation and submission.
func BuildPlans(snap models.Snapshot, now time.Time) []Plan {
	if snap.Type == models.ShiftOff || snap.Type == models.ShiftNone {
		return nil
	}

	window, ok := timer.Resolve(snap.StartTime, snap.EndTime, now)
	if !ok {
		return nil
	}

	var plans []Plan

	// Pre-start reminder. If the lead instant is already past the reminder
	// is simply dropped, even when the shift itself has not started yet.
	startFire := window.Start.Add(-constants.ShiftStartLeadMin * time.Minute)
	if startFire.After(now) {
		plans = append(plans, Plan{
			ID:     IDShiftStart,
			FireAt: startFire,
			Title:  "근무 시작 알림",
			Body: fmt.Sprintf("%s 근무가 %d분 후 시작됩니다 (%s)",
				snap.Label, constants.ShiftStartLeadMin, snap.StartTime),
		})
	}

	// End-of-shift alert fires at the midnight-adjusted window end, so an
	// overnight shift notifies on the correct calendar day.
	if window.End.After(now) {
		plans = append(plans, Plan{
			ID:     IDShiftEnd,
			FireAt: window.End,
			Title:  "근무 종료",
			Body:   fmt.Sprintf("%s 근무가 종료되었습니다. 수고하셨습니다!", snap.Label),
		})
	}

	return plans
}

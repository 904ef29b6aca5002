package notify

import (
	"errors"
	"fmt"
	"time"

	"github.com/chuwg/change-work/internal/logger"
	"github.com/chuwg/change-work/internal/models"
)

// Scheduler reconciles the live notification set against the current
// snapshot. It owns exactly two identifiers and cancels both before every
// resubmission, so running it any number of times leaves at most one plan
// per identifier.
type Scheduler struct {
	svc Service
}

func NewScheduler(svc Service) *Scheduler {
	return &Scheduler{svc: svc}
}

// Reconcile is meant to run whenever the host app is foregrounded or
// launched. It returns the plans submitted this cycle. A service that
// refuses authorization makes the whole call a silent no-op.
func (s *Scheduler) Reconcile(snap models.Snapshot, now time.Time) ([]Plan, error) {
	if err := s.svc.Cancel(IDShiftStart, IDShiftEnd); err != nil {
		if errors.Is(err, ErrNotAuthorized) {
			logger.Debug("Notification service not authorized, skipping reconcile")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to cancel pending notifications: %w", err)
	}

	plans := BuildPlans(snap, now)
	if len(plans) == 0 {
		return nil, nil
	}

	if err := s.svc.Schedule(plans...); err != nil {
		if errors.Is(err, ErrNotAuthorized) {
			logger.Debug("Notification service not authorized, dropping plans", "count", len(plans))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to schedule notifications: %w", err)
	}

	for _, p := range plans {
		logger.Debug("Scheduled notification", "id", p.ID, "fire_at", p.FireAt)
	}
	return plans, nil
}

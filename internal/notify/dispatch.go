package notify

import (
	"errors"
	"time"

	"github.com/chuwg/change-work/internal/logger"
)

// Sender delivers a single notification to the user.
type Sender interface {
	Notify(title, body string) error
}

// Dispatcher drains due plans from the spool and hands them to a Sender.
// Delivery is best-effort: a plan is removed from the spool after one
// attempt whether or not it reached the user, matching one-shot platform
// triggers.
type Dispatcher struct {
	spool  *Spool
	sender Sender
}

func NewDispatcher(spool *Spool, sender Sender) *Dispatcher {
	return &Dispatcher{spool: spool, sender: sender}
}

// DispatchDue fires every plan whose time has come and returns the number
// delivered. An unauthorized sender silently drops the due plans.
func (d *Dispatcher) DispatchDue(now time.Time) int {
	due := d.spool.Due(now)
	if len(due) == 0 {
		return 0
	}

	delivered := 0
	for _, p := range due {
		err := d.sender.Notify(p.Title, p.Body)
		switch {
		case err == nil:
			delivered++
			logger.Info("Delivered notification", "id", p.ID)
		case errors.Is(err, ErrNotAuthorized):
			logger.Debug("Notification dropped, sender not authorized", "id", p.ID)
		default:
			logger.Warn("Notification delivery failed", "id", p.ID, "error", err)
		}
		if err := d.spool.Cancel(p.ID); err != nil {
			logger.Warn("Failed to remove dispatched plan from spool", "id", p.ID, "error", err)
		}
	}
	return delivered
}

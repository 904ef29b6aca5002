package cli

import (
	"fmt"
	"time"

	"github.com/chuwg/change-work/internal/models"
	"github.com/chuwg/change-work/internal/notify"
	"github.com/chuwg/change-work/internal/utils"
	"github.com/chuwg/change-work/internal/validation"
)

type DoctorCmd struct{}

// Run checks the engine's collaborators and reports what a user would need
// to fix: an unreachable store, a stale snapshot, a missing tray daemon.
func (c *DoctorCmd) Run(ctx *Context) error {
	ok := func(pass bool) string {
		if pass {
			return "✓"
		}
		return "✗"
	}

	storeOK := ctx.Store.Refresh() == nil
	fmt.Printf("%s shared store reachable\n", ok(storeOK))

	snap := ctx.Reader.Read()
	registered := snap.Type != models.ShiftNone
	fmt.Printf("%s today's shift published (%s)\n", ok(registered), snap.Type.Label())

	if snap.Type.Working() {
		timesOK := utils.ValidateTimeFormat(snap.StartTime) && utils.ValidateTimeFormat(snap.EndTime)
		fmt.Printf("%s shift times parse (%s - %s)\n", ok(timesOK), snap.StartTime, snap.EndTime)
	}

	health := ctx.Reader.ReadHealth()
	fresh := !health.LastUpdated.IsZero() && time.Since(health.LastUpdated) < 48*time.Hour
	fmt.Printf("%s snapshot fresh (updated %s)\n", ok(fresh), formatAge(health.LastUpdated))

	trayOK := notify.NewTraySender().Available()
	fmt.Printf("%s notifier daemon running\n", ok(trayOK))
	if !trayOK {
		fmt.Println("  reminders will be silently dropped until change-notifier is started")
	}

	pending := ctx.Spool().Pending()
	fmt.Printf("· %d pending notification(s)\n", len(pending))

	result := validation.New(ctx.Store).Validate(time.Now())
	fmt.Println()
	fmt.Print(result.FormatReport())
	return nil
}

func formatAge(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	age := time.Since(t).Round(time.Minute)
	if age < time.Hour {
		return fmt.Sprintf("%d min ago", int(age.Minutes()))
	}
	return fmt.Sprintf("%.1f h ago", age.Hours())
}

// Package daemon runs the background cadences a mobile platform would own:
// the per-minute check for due notifications and the midnight re-reconcile
// when "today" rolls over.
package daemon

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/chuwg/change-work/internal/logger"
	"github.com/chuwg/change-work/internal/notify"
	"github.com/chuwg/change-work/internal/storage"
)

type Daemon struct {
	reader     *storage.Reader
	scheduler  *notify.Scheduler
	dispatcher *notify.Dispatcher
	cron       *cron.Cron
}

func New(reader *storage.Reader, scheduler *notify.Scheduler, dispatcher *notify.Dispatcher) *Daemon {
	return &Daemon{
		reader:     reader,
		scheduler:  scheduler,
		dispatcher: dispatcher,
		cron:       cron.New(),
	}
}

// Start reconciles once immediately (the launch counts as a foreground
// event), then begins the cron cadences. Blockless; call Stop to shut down.
func (d *Daemon) Start() error {
	d.reconcile("startup")

	if _, err := d.cron.AddFunc("* * * * *", d.tick); err != nil {
		return fmt.Errorf("failed to register dispatch cadence: %w", err)
	}
	if _, err := d.cron.AddFunc("0 0 * * *", func() { d.reconcile("midnight") }); err != nil {
		return fmt.Errorf("failed to register midnight reconcile: %w", err)
	}

	d.cron.Start()
	logger.Info("Daemon started")
	return nil
}

// Stop halts the cron cadences and waits for a running job to finish.
func (d *Daemon) Stop() {
	ctx := d.cron.Stop()
	<-ctx.Done()
	logger.Info("Daemon stopped")
}

func (d *Daemon) tick() {
	now := time.Now()
	if n := d.dispatcher.DispatchDue(now); n > 0 {
		logger.Info("Dispatched due notifications", "count", n)
	}
}

func (d *Daemon) reconcile(reason string) {
	run := uuid.NewString()[:8]
	now := time.Now()

	snap := d.reader.Read()
	plans, err := d.scheduler.Reconcile(snap, now)
	if err != nil {
		logger.Warn("Reconcile failed", "run", run, "reason", reason, "error", err)
		return
	}
	logger.Info("Reconciled notifications",
		"run", run, "reason", reason, "shift", snap.Type, "plans", len(plans))
}

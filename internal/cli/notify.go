package cli

import (
	"fmt"
	"time"
)

type NotifyReconcileCmd struct{}

// Run reconciles the pending notification set against the current snapshot.
// This is the hook the host runs on every launch/foreground.
func (c *NotifyReconcileCmd) Run(ctx *Context) error {
	snap := ctx.Reader.Read()
	plans, err := ctx.Scheduler().Reconcile(snap, time.Now())
	if err != nil {
		return err
	}

	if len(plans) == 0 {
		fmt.Println("No reminders scheduled.")
		return nil
	}
	for _, p := range plans {
		fmt.Printf("%s  fires %s\n", p.ID, p.FireAt.Format("2006-01-02 15:04"))
	}
	return nil
}

type NotifyPendingCmd struct{}

// Run lists the spooled plans without touching them.
func (c *NotifyPendingCmd) Run(ctx *Context) error {
	pending := ctx.Spool().Pending()
	if len(pending) == 0 {
		fmt.Println("No pending notifications.")
		return nil
	}
	for _, p := range pending {
		fmt.Printf("%s  fires %s  %s\n", p.ID, p.FireAt.Format("2006-01-02 15:04"), p.Title)
	}
	return nil
}

type NotifyDispatchCmd struct{}

// Run delivers any due plans immediately, the same step the daemon runs
// every minute.
func (c *NotifyDispatchCmd) Run(ctx *Context) error {
	n := ctx.Dispatcher().DispatchDue(time.Now())
	fmt.Printf("Delivered %d notification(s).\n", n)
	return nil
}

package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chuwg/change-work/internal/daemon"
)

type DaemonCmd struct{}

// Run starts the background dispatcher and blocks until interrupted.
func (c *DaemonCmd) Run(ctx *Context) error {
	d := daemon.New(ctx.Reader, ctx.Scheduler(), ctx.Dispatcher())
	if err := d.Start(); err != nil {
		return err
	}
	defer d.Stop()

	fmt.Println("change daemon running; press Ctrl+C to stop")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

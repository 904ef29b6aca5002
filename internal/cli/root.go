package cli

import (
	"path/filepath"

	"github.com/chuwg/change-work/internal/constants"
	"github.com/chuwg/change-work/internal/energy"
	"github.com/chuwg/change-work/internal/notify"
	"github.com/chuwg/change-work/internal/storage"
)

// Context carries the wired collaborators into every command.
type Context struct {
	Store     storage.Provider
	Reader    *storage.Reader
	ConfigDir string
}

// SpoolPath returns the pending-notification spool location.
func (c *Context) SpoolPath() string {
	return filepath.Join(c.ConfigDir, constants.SpoolFileName)
}

// Spool returns the notification spool acting as the platform service.
func (c *Context) Spool() *notify.Spool {
	return notify.NewSpool(c.SpoolPath())
}

// Scheduler returns a reconciling scheduler backed by the spool.
func (c *Context) Scheduler() *notify.Scheduler {
	return notify.NewScheduler(c.Spool())
}

// Dispatcher returns a dispatcher that delivers due plans to the tray daemon.
func (c *Context) Dispatcher() *notify.Dispatcher {
	return notify.NewDispatcher(c.Spool(), notify.NewTraySender())
}

// Recorder returns the energy record recorder.
func (c *Context) Recorder() *energy.Recorder {
	return energy.NewRecorder(c.Store)
}

package cli

import (
	"fmt"
	"time"

	"github.com/chuwg/change-work/internal/models"
	"github.com/chuwg/change-work/internal/storage"
	"github.com/chuwg/change-work/internal/utils"
)

// PublishCmd writes today's shift keys into the shared store the way the
// main app would. Hidden; used for local testing and troubleshooting.
type PublishCmd struct {
	Type  string `arg:"" help:"Shift type (day, evening, night, off, none)."`
	Start string `help:"Shift start time (HH:MM)." default:""`
	End   string `help:"Shift end time (HH:MM)." default:""`
}

func (c *PublishCmd) Validate() error {
	t := models.ParseShiftType(c.Type)
	if t.Working() {
		if !utils.ValidateTimeFormat(c.Start) || !utils.ValidateTimeFormat(c.End) {
			return fmt.Errorf("working shift %q needs --start and --end in HH:MM", c.Type)
		}
	}
	return nil
}

func (c *PublishCmd) Run(ctx *Context) error {
	t := models.ParseShiftType(c.Type)

	sets := []struct {
		key   string
		value string
	}{
		{storage.KeyTodayShiftType, string(t)},
		{storage.KeyTodayShiftLabel, t.Label()},
		{storage.KeyTodayShiftStart, c.Start},
		{storage.KeyTodayShiftEnd, c.End},
		{storage.KeyLastUpdated, time.Now().Format(time.RFC3339)},
	}
	for _, s := range sets {
		if err := ctx.Store.SetString(s.key, s.value); err != nil {
			return fmt.Errorf("failed to publish %s: %w", s.key, err)
		}
	}

	fmt.Printf("published %s %s\n", t.Label(), c.Start)
	return nil
}

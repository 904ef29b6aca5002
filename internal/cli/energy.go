package cli

import (
	"fmt"
	"time"

	"github.com/chuwg/change-work/internal/models"
)

type EnergyRecordCmd struct {
	Level int `arg:"" help:"Energy level (1-5, 5 is best)."`
}

func (c *EnergyRecordCmd) Validate() error {
	if c.Level < 1 || c.Level > 5 {
		return fmt.Errorf("level must be between 1 and 5, got %d", c.Level)
	}
	return nil
}

// Run appends an energy record to the watch outbox and mirrors the level
// for immediate display.
func (c *EnergyRecordCmd) Run(ctx *Context) error {
	if err := ctx.Recorder().Record(c.Level, time.Now()); err != nil {
		return err
	}
	fmt.Printf("기록 완료! %s (%d)\n", models.EnergyLevelLabel(c.Level), c.Level)
	return nil
}

type EnergyPendingCmd struct{}

// Run lists the records waiting for the main app to consume.
func (c *EnergyPendingCmd) Run(ctx *Context) error {
	pending := ctx.Recorder().Pending()
	if len(pending) == 0 {
		fmt.Println("No pending energy records.")
		return nil
	}
	for _, rec := range pending {
		fmt.Printf("%s  %d (%s)  [%s]\n",
			rec.Timestamp, rec.EnergyLevel, models.EnergyLevelLabel(rec.EnergyLevel), rec.Source)
	}
	return nil
}

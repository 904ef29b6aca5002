package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/chuwg/change-work/internal/utils"
	"github.com/chuwg/change-work/internal/widget"
)

type WeekCmd struct{}

// Run prints the week strip: weekday, day of month and shift per day.
func (c *WeekCmd) Run(ctx *Context) error {
	now := time.Now()
	entry := widget.BuildEntry(ctx.Reader, now)

	var b strings.Builder
	for i, ds := range entry.WeekShifts {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(ds.Type.Color()))
		marker := " "
		if i == 0 {
			marker = "▸" // today
		}
		b.WriteString(fmt.Sprintf("%s %s %2d  %s %s\n",
			marker,
			utils.WeekdayLabel(ds.Date),
			ds.Date.Day(),
			style.Render(ds.Type.ShortLabel()),
			ds.Label,
		))
	}
	fmt.Print(b.String())
	return nil
}

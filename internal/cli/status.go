package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/chuwg/change-work/internal/models"
	"github.com/chuwg/change-work/internal/timer"
	"github.com/chuwg/change-work/internal/widget"
)

type StatusCmd struct{}

// Run prints the medium-widget view of today's shift: type, label, time
// range, countdown and days until the next off day.
func (c *StatusCmd) Run(ctx *Context) error {
	now := time.Now()
	entry := widget.BuildEntry(ctx.Reader, now)

	typeStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(entry.Type.Color())).
		Bold(true)

	fmt.Printf("%s %s\n", entry.Type.Icon(), typeStyle.Render(entry.Label))
	if entry.TimeString != "" {
		fmt.Println(entry.TimeString)
	}

	snap := ctx.Reader.Read()
	if window, ok := timer.Resolve(snap.StartTime, snap.EndTime, now); ok && snap.Type.Working() {
		state := timer.Classify(now, window)
		fmt.Printf("%s %s\n", state.Remaining, state.Caption)
	}

	if entry.DaysUntilOff == 0 {
		fmt.Println("오늘 휴무")
	} else if entry.DaysUntilOff > 0 {
		fmt.Printf("휴무까지 %d일\n", entry.DaysUntilOff)
	}
	return nil
}

type TimerCmd struct{}

// Run prints the live timer state once: phase, progress and countdown.
func (c *TimerCmd) Run(ctx *Context) error {
	now := time.Now()
	snap := ctx.Reader.Read()

	switch {
	case snap.Type == models.ShiftOff:
		fmt.Println("오늘 휴무 — 푹 쉬세요!")
		return nil
	case !snap.Type.Working():
		fmt.Println("근무 정보 없음 — 앱에서 근무를 등록해주세요")
		return nil
	}

	window, ok := timer.Resolve(snap.StartTime, snap.EndTime, now)
	if !ok {
		fmt.Println("근무 정보 없음 — 앱에서 근무를 등록해주세요")
		return nil
	}

	state := timer.Classify(now, window)
	fmt.Printf("%s %s\n", snap.Type.Icon(), snap.Label)
	fmt.Printf("%s %s\n", state.Remaining, state.Caption)
	fmt.Printf("진행률 %3.0f%% (%s → %s)\n",
		state.Progress*100, snap.StartTime, snap.EndTime)
	return nil
}

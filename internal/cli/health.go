package cli

import (
	"fmt"

	"github.com/chuwg/change-work/internal/energy"
	"github.com/chuwg/change-work/internal/models"
)

type HealthCmd struct{}

// Run prints the health/energy summary published by the main app.
func (c *HealthCmd) Run(ctx *Context) error {
	m := ctx.Reader.ReadHealth()

	if m.EnergyLatest >= 1 && m.EnergyLatest <= 5 {
		fmt.Printf("에너지  %d/5 (%s)\n", m.EnergyLatest, models.EnergyLevelLabel(m.EnergyLatest))
	} else {
		fmt.Println("에너지  기록 없음")
	}
	if m.EnergyAvg > 0 {
		fmt.Printf("평균    %.1f\n", m.EnergyAvg)
	}
	if m.SleepHours > 0 {
		fmt.Printf("수면    %.1f시간", m.SleepHours)
		if m.SleepQuality > 0 {
			fmt.Printf(" (질 %d)", m.SleepQuality)
		}
		fmt.Println()
	}
	if !m.LastUpdated.IsZero() {
		fmt.Printf("갱신    %s\n", m.LastUpdated.Local().Format("2006-01-02 15:04"))
	}

	if analysis := energy.Analyze(ctx.Recorder().Pending()); analysis.Trend != energy.TrendUnknown {
		fmt.Printf("추세    %s (최근 %d회 평균 %.1f)\n", analysis.Trend.Label(), analysis.Count, analysis.Average)
	}
	return nil
}

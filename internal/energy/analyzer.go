package energy

import "github.com/chuwg/change-work/internal/models"

// Trend classifies how queued energy levels have moved over time.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendSteady    Trend = "steady"
	TrendUnknown   Trend = "unknown"
)

func (t Trend) Label() string {
	switch t {
	case TrendImproving:
		return "좋아지는 중"
	case TrendDeclining:
		return "나빠지는 중"
	case TrendSteady:
		return "유지 중"
	default:
		return "-"
	}
}

// Analysis summarizes the queued energy records.
type Analysis struct {
	Count   int
	Average float64
	Trend   Trend
}

// trendThreshold is the minimum mean difference between the older and newer
// half of the queue before a trend is reported.
const trendThreshold = 0.5

// Analyze summarizes the queue. Records are assumed appended in time order;
// entries with out-of-range levels are skipped. Fewer than two usable
// records yield TrendUnknown.
func Analyze(records []models.EnergyRecord) Analysis {
	levels := make([]int, 0, len(records))
	for _, r := range records {
		if r.EnergyLevel >= 1 && r.EnergyLevel <= 5 {
			levels = append(levels, r.EnergyLevel)
		}
	}

	if len(levels) == 0 {
		return Analysis{Trend: TrendUnknown}
	}

	sum := 0
	for _, l := range levels {
		sum += l
	}
	avg := float64(sum) / float64(len(levels))

	if len(levels) < 2 {
		return Analysis{Count: len(levels), Average: avg, Trend: TrendUnknown}
	}

	mid := len(levels) / 2
	older := mean(levels[:mid])
	newer := mean(levels[mid:])

	trend := TrendSteady
	switch {
	case newer-older >= trendThreshold:
		trend = TrendImproving
	case older-newer >= trendThreshold:
		trend = TrendDeclining
	}

	return Analysis{Count: len(levels), Average: avg, Trend: trend}
}

func mean(levels []int) float64 {
	sum := 0
	for _, l := range levels {
		sum += l
	}
	return float64(sum) / float64(len(levels))
}

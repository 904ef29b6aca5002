package timer

import (
	"fmt"
	"time"
)

// Phase classifies now against a resolved window.
type Phase int

const (
	Upcoming Phase = iota // now < start
	Active                // start <= now < end
	Ended                 // now >= end
)

func (p Phase) String() string {
	switch p {
	case Upcoming:
		return "upcoming"
	case Active:
		return "active"
	case Ended:
		return "ended"
	default:
		return "unknown"
	}
}

// EndedLabel is the fixed countdown token shown once the shift is over.
const EndedLabel = "종료"

// State is the derived timer display state for one evaluation. It is
// recomputed on every tick and discarded after render.
type State struct {
	Phase     Phase
	Progress  float64 // in [0,1]
	Remaining string  // countdown label, or EndedLabel
	Caption   string  // secondary line under the countdown
}

// Classify derives the timer state for now against the window. Pure; safe
// to call from any surface at any cadence.
func Classify(now time.Time, w Window) State {
	if now.Before(w.Start) {
		return State{
			Phase:     Upcoming,
			Progress:  0,
			Remaining: FormatCountdown(w.Start.Sub(now)),
			Caption:   "시작까지",
		}
	}

	if !now.Before(w.End) {
		return State{
			Phase:     Ended,
			Progress:  1,
			Remaining: EndedLabel,
			Caption:   "수고하셨습니다",
		}
	}

	total := w.Duration()
	progress := 1.0
	if total > 0 {
		progress = float64(now.Sub(w.Start)) / float64(total)
	}
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}

	return State{
		Phase:     Active,
		Progress:  progress,
		Remaining: FormatCountdown(w.End.Sub(now)),
		Caption:   "남은 시간",
	}
}

// FormatCountdown renders a duration as "H:MM" when at least an hour
// remains, otherwise as minutes only ("M분"). Displayed values are
// minute-granular; sub-minute remainders truncate toward zero.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalMinutes := int(d.Minutes())
	hours := totalMinutes / 60
	minutes := totalMinutes % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d", hours, minutes)
	}
	return fmt.Sprintf("%d분", minutes)
}

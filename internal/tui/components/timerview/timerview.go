package timerview

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/chuwg/change-work/internal/models"
	"github.com/chuwg/change-work/internal/timer"
)

var (
	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 0).
			Align(lipgloss.Center)

	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	restStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#5DB882")).
			Bold(true).
			Padding(1, 2)
)

type Model struct {
	Snapshot models.Snapshot
	Time     time.Time
	gauge    progress.Model
	width    int
	height   int
}

func New() Model {
	g := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	g.Width = 32
	return Model{Time: time.Now(), gauge: g}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 12 && width < 44 {
		m.gauge.Width = width - 8
	}
}

func (m *Model) SetSnapshot(snap models.Snapshot) {
	m.Snapshot = snap
}

func (m Model) View() string {
	content := m.viewTimer()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) viewTimer() string {
	snap := m.Snapshot

	if snap.Type == models.ShiftOff {
		return restStyle.Render("오늘 휴무 — 푹 쉬세요!")
	}
	if !snap.Type.Working() {
		return captionStyle.Render("근무 정보 없음")
	}

	w, ok := timer.Resolve(snap.StartTime, snap.EndTime, m.Time)
	if !ok {
		return captionStyle.Render("근무 정보 없음")
	}

	state := timer.Classify(m.Time, w)
	color := lipgloss.Color(snap.Type.Color())

	return lipgloss.JoinVertical(lipgloss.Center,
		captionStyle.Render(snap.Label+" "+snap.TimeString()),
		countdownStyle.Foreground(color).Render(state.Remaining),
		captionStyle.Render(state.Caption),
		m.gauge.ViewAs(state.Progress),
	)
}

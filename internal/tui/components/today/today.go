package today

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/chuwg/change-work/internal/models"
	"github.com/chuwg/change-work/internal/utils"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			Width(30).
			Align(lipgloss.Center)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	Snapshot models.Snapshot
	Time     time.Time
	width    int
	height   int
}

func New() Model {
	return Model{Time: time.Now()}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetSnapshot(snap models.Snapshot) {
	m.Snapshot = snap
}

func (m Model) View() string {
	snap := m.Snapshot

	card := labelStyle.
		Foreground(lipgloss.Color(snap.Type.Color())).
		BorderForeground(lipgloss.Color(snap.Type.Color())).
		Render(fmt.Sprintf("%s %s", snap.Type.Icon(), snap.Label))

	lines := []string{
		mutedStyle.Render(fmt.Sprintf("%s (%s)", m.Time.Format("2006-01-02"), utils.WeekdayLabel(m.Time))),
		card,
	}

	if ts := snap.TimeString(); ts != "" {
		lines = append(lines, timeStyle.Render(ts))
	}
	if snap.DaysUntilOff == 0 && snap.Type == models.ShiftOff {
		lines = append(lines, mutedStyle.Render("오늘은 휴무입니다"))
	} else if snap.DaysUntilOff > 0 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("휴무까지 %d일", snap.DaysUntilOff)))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

package week

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/chuwg/change-work/internal/models"
	"github.com/chuwg/change-work/internal/utils"
)

var (
	dayStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Center)

	todayStyle = dayStyle.
			Border(lipgloss.RoundedBorder()).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)
)

type Model struct {
	Shifts []models.DayShift
	Time   time.Time
	width  int
	height int
}

func New() Model {
	return Model{Time: time.Now()}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetShifts(shifts []models.DayShift) {
	m.Shifts = shifts
}

func (m Model) View() string {
	if len(m.Shifts) == 0 {
		return headerStyle.Render("주간 근무 정보 없음")
	}

	today := utils.StartOfDay(m.Time)
	var cols []string
	for _, d := range m.Shifts {
		cell := lipgloss.JoinVertical(lipgloss.Center,
			headerStyle.Render(utils.WeekdayLabel(d.Date)),
			headerStyle.Render(fmt.Sprintf("%d", d.Date.Day())),
			lipgloss.NewStyle().Foreground(lipgloss.Color(d.Type.Color())).Render(d.Type.ShortLabel()),
		)
		if utils.StartOfDay(d.Date).Equal(today) {
			cols = append(cols, todayStyle.Render(cell))
		} else {
			cols = append(cols, dayStyle.Render(cell))
		}
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

package health

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/chuwg/change-work/internal/models"
)

var (
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	staleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)
)

type Model struct {
	Metrics models.HealthMetrics
	width   int
	height  int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetMetrics(metrics models.HealthMetrics) {
	m.Metrics = metrics
}

func (m Model) View() string {
	h := m.Metrics

	row := func(key, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(key), valueStyle.Render(value))
	}

	energy := "-"
	if h.EnergyLatest >= 1 && h.EnergyLatest <= 5 {
		energy = fmt.Sprintf("%s (%d/5)", models.EnergyLevelLabel(h.EnergyLatest), h.EnergyLatest)
	}
	avg := "-"
	if h.EnergyAvg > 0 {
		avg = fmt.Sprintf("%.1f/5", h.EnergyAvg)
	}
	sleep := "-"
	if h.SleepHours > 0 {
		sleep = fmt.Sprintf("%.1f시간", h.SleepHours)
	}
	quality := "-"
	if h.SleepQuality > 0 {
		quality = fmt.Sprintf("%d/100", h.SleepQuality)
	}

	lines := []string{
		row("에너지", energy),
		row("평균", avg),
		row("수면", sleep),
		row("수면 질", quality),
	}

	if !h.LastUpdated.IsZero() {
		age := time.Since(h.LastUpdated)
		updated := h.LastUpdated.Format("01-02 15:04")
		if age > 24*time.Hour {
			lines = append(lines, staleStyle.Render("갱신 "+updated+" (오래됨)"))
		} else {
			lines = append(lines, keyStyle.Width(0).Render("갱신 "+updated))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

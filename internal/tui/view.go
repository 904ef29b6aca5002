package tui

import "github.com/charmbracelet/lipgloss"

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.todayModel.View()
	case StateTimer:
		content = m.timerModel.View()
	case StateWeek:
		content = m.weekModel.View()
	case StateHealth:
		content = docStyle.Render(m.healthModel.View())
	case StateRecordEnergy:
		content = m.form.View()
	}

	var notice string
	if m.notice != "" {
		notice = noticeStyle.Render(m.notice)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		notice,
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"오늘", "타이머", "주간", "건강"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

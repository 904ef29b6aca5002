package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/chuwg/change-work/internal/models"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle the energy form state
	if m.state == StateRecordEnergy {
		if t, ok := msg.(TickMsg); ok {
			m.todayModel.Time = time.Time(t)
			m.timerModel.Time = time.Time(t)
			return m, tick()
		}
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = m.previousState
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		if m.form.State == huh.StateCompleted {
			now := time.Now()
			if err := m.recorder.Record(m.energyForm.Level, now); err != nil {
				m.notice = "기록 실패: " + err.Error()
			} else {
				m.notice = "기록 완료!"
			}
			m.state = m.previousState
			m.refresh(now)
		}
		return m, tea.Batch(cmds...)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4
		m.todayModel.SetSize(msg.Width, contentHeight)
		m.timerModel.SetSize(msg.Width, contentHeight)
		m.weekModel.SetSize(msg.Width, contentHeight)
		m.healthModel.SetSize(msg.Width, contentHeight)
		return m, nil

	case TickMsg:
		now := time.Time(msg)
		if m.todayModel.Time.Minute() != now.Minute() {
			m.refresh(now)
		} else {
			m.todayModel.Time = now
			m.timerModel.Time = now
			m.weekModel.Time = now
		}
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.notice = ""
			m.state = nextState(m.state)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.notice = ""
			m.state = prevState(m.state)
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.refresh(time.Now())
			return m, nil
		case key.Matches(msg, m.keys.Record):
			m.notice = ""
			return m.startEnergyForm()
		}
	}

	return m, tea.Batch(cmds...)
}

func nextState(s SessionState) SessionState {
	switch s {
	case StateToday:
		return StateTimer
	case StateTimer:
		return StateWeek
	case StateWeek:
		return StateHealth
	default:
		return StateToday
	}
}

func prevState(s SessionState) SessionState {
	switch s {
	case StateToday:
		return StateHealth
	case StateTimer:
		return StateToday
	case StateWeek:
		return StateTimer
	default:
		return StateWeek
	}
}

func (m Model) startEnergyForm() (tea.Model, tea.Cmd) {
	m.energyForm = &EnergyFormModel{Level: 3}

	options := make([]huh.Option[int], 0, 5)
	for level := 5; level >= 1; level-- {
		options = append(options,
			huh.NewOption(fmt.Sprintf("%s (%d)", models.EnergyLevelLabel(level), level), level))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("지금 에너지는 어떤가요?").
				Options(options...).
				Value(&m.energyForm.Level),
		),
	)

	m.previousState = m.state
	m.state = StateRecordEnergy
	return m, m.form.Init()
}

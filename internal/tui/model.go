package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/chuwg/change-work/internal/energy"
	"github.com/chuwg/change-work/internal/storage"
	"github.com/chuwg/change-work/internal/tui/components/health"
	"github.com/chuwg/change-work/internal/tui/components/timerview"
	"github.com/chuwg/change-work/internal/tui/components/today"
	"github.com/chuwg/change-work/internal/tui/components/week"
	"github.com/chuwg/change-work/internal/widget"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateTimer
	StateWeek
	StateHealth
	StateRecordEnergy
)

type EnergyFormModel struct {
	Level int
}

type Model struct {
	store    storage.Provider
	reader   *storage.Reader
	recorder *energy.Recorder

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	todayModel  today.Model
	timerModel  timerview.Model
	weekModel   week.Model
	healthModel health.Model

	form       *huh.Form
	energyForm *EnergyFormModel
	notice     string

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, reader *storage.Reader) Model {
	m := Model{
		store:       store,
		reader:      reader,
		recorder:    energy.NewRecorder(store),
		state:       StateToday,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		todayModel:  today.New(),
		timerModel:  timerview.New(),
		weekModel:   week.New(),
		healthModel: health.New(),
	}
	m.refresh(time.Now())
	return m
}

// refresh re-reads the shared store and pushes the snapshot into every view.
func (m *Model) refresh(now time.Time) {
	_ = m.store.Refresh()
	snap := m.reader.Read()
	if len(snap.WeekShifts) == 0 {
		snap.WeekShifts = widget.PlaceholderWeek(now)
	}

	m.todayModel.Time = now
	m.todayModel.SetSnapshot(snap)
	m.timerModel.Time = now
	m.timerModel.SetSnapshot(snap)
	m.weekModel.Time = now
	m.weekModel.SetShifts(snap.WeekShifts)
	m.healthModel.SetMetrics(m.reader.ReadHealth())
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Record, m.keys.Refresh, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab},
		{m.keys.Record, m.keys.Refresh},
		{m.keys.Quit, m.keys.Help},
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Package tui renders the interactive pomodoro view. It owns no timer
// logic: a one-second tick message drives the engine, and the engine
// decides when a session is durable.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studyos/studyos/internal/timer"
)

type tickMsg time.Time

var (
	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("219")).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder())
	phaseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginLeft(2)
	breakStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// Model wraps a timer engine for interactive use.
type Model struct {
	engine       *timer.Engine
	focusMinutes int
	breakMinutes int

	labelInput   textinput.Model
	editingLabel bool
	notice       string
	err          error
}

func NewModel(engine *timer.Engine, focusMinutes, breakMinutes int) Model {
	input := textinput.New()
	input.Placeholder = "session label"
	input.CharLimit = 60
	return Model{
		engine:       engine,
		focusMinutes: focusMinutes,
		breakMinutes: breakMinutes,
		labelInput:   input,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		wasRunning := m.engine.State() == timer.Running
		if err := m.engine.Tick(time.Time(msg)); err != nil {
			m.err = err
			return m, tea.Quit
		}
		if wasRunning && m.engine.State() == timer.Idle {
			if m.engine.Mode() == timer.Focus {
				m.notice = fmt.Sprintf("Session complete! +%dm", m.engine.Total()/60)
			} else {
				m.notice = "Break over!"
			}
		}
		return m, tick()

	case tea.KeyMsg:
		if m.editingLabel {
			switch msg.String() {
			case "enter":
				m.engine.SetLabel(m.labelInput.Value())
				m.editingLabel = false
				m.labelInput.Blur()
				return m, nil
			case "esc":
				m.editingLabel = false
				m.labelInput.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.labelInput, cmd = m.labelInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.notice = ""
			if m.engine.State() == timer.Running {
				m.engine.Pause()
			} else {
				m.engine.Start()
			}
		case "r":
			m.notice = ""
			m.engine.Reset()
		case "f":
			m.notice = ""
			if err := m.engine.Configure(m.focusMinutes, timer.Focus); err != nil {
				m.err = err
				return m, tea.Quit
			}
		case "b":
			m.notice = ""
			if err := m.engine.Configure(m.breakMinutes, timer.Break); err != nil {
				m.err = err
				return m, tea.Quit
			}
		case "l":
			m.editingLabel = true
			m.labelInput.SetValue(m.engine.Label())
			m.labelInput.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m Model) View() string {
	remaining := m.engine.Remaining()
	clock := fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)

	phase := fmt.Sprintf("%s · %s", m.engine.Mode(), m.engine.State())
	rendered := phaseStyle.Render(phase)
	if m.engine.Mode() == timer.Break {
		rendered = breakStyle.MarginLeft(2).Render(phase)
	}

	label := m.engine.Label()
	if label == "" {
		label = "Focus Session"
	}
	if m.editingLabel {
		label = m.labelInput.View()
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		clockStyle.Render(clock),
		rendered,
		phaseStyle.Render("label: "+label),
		statsStyle.MarginLeft(2).Render(
			fmt.Sprintf("sessions this run: %d · focus minutes: %d", m.engine.SessionCount, m.engine.TotalMinutes)),
	)
	if m.notice != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, noticeStyle.MarginLeft(2).Render(m.notice))
	}
	help := helpStyle.Render("space start/pause · r reset · f focus · b break · l label · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, help) + "\n"
}

// Err reports a failure that ended the program, if any.
func (m Model) Err() error { return m.err }

// Package tui is the interactive clock: a tick loop, the active display
// mode and the settings panel.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/render"
	"github.com/julianstephens/techclock/internal/settings"
	"github.com/julianstephens/techclock/internal/timefmt"
)

const panelWidth = 44

// tickMsg carries the sequence number of the schedule that produced it
type tickMsg struct {
	seq int
	at  time.Time
}

type animMsg struct {
	seq int
}

type Model struct {
	store    *settings.Store
	clock    timefmt.Clock
	settings models.Settings

	state constants.SessionState
	keys  KeyMap
	help  help.Model

	form  *huh.Form
	panel *PanelForm
	reset *resetChoice

	now       time.Time
	modeSince time.Time
	tickSeq   int
	animSeq   int
	interval  time.Duration

	width     int
	height    int
	formError string
	status    string
	notice    string
	quitting  bool
}

// NewModel builds the root model around a loaded settings store
func NewModel(store *settings.Store, clock timefmt.Clock) Model {
	if clock == nil {
		clock = timefmt.SystemClock{}
	}
	current := store.Current()
	now := clock.Now()
	m := Model{
		store:     store,
		clock:     clock,
		settings:  current,
		state:     constants.StateClock,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		now:       now,
		modeSince: now,
		tickSeq:   1,
		interval:  render.TickInterval(current),
	}
	if current.DisplayMode == models.DisplayMatrix {
		m.animSeq = 1
	}
	return m
}

// WithNotice shows a one-line message under the clock until the next key press
func (m Model) WithNotice(notice string) Model {
	m.notice = notice
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{scheduleTick(m.tickSeq, m.interval)}
	if m.animSeq > 0 {
		cmds = append(cmds, scheduleAnim(m.animSeq))
	}
	return tea.Batch(cmds...)
}

// scheduleTick fires on the next multiple of interval so the displayed
// second turns over with the wall clock.
func scheduleTick(seq int, interval time.Duration) tea.Cmd {
	return tea.Every(interval, func(t time.Time) tea.Msg {
		return tickMsg{seq: seq, at: t}
	})
}

func scheduleAnim(seq int) tea.Cmd {
	return tea.Tick(constants.MatrixAnimationFrame, func(time.Time) tea.Msg {
		return animMsg{seq: seq}
	})
}

// Settings returns the record currently on screen, including unsaved panel edits
func (m Model) Settings() models.Settings {
	if m.state == constants.StateSettings && m.panel != nil {
		return m.panel.Apply(m.settings)
	}
	return m.settings
}

// applySettings swaps the active record. A display mode change restarts the
// mode timer and a new tick interval starts a fresh schedule.
func (m *Model) applySettings(next models.Settings) tea.Cmd {
	prev := m.settings
	m.settings = next
	return m.follow(prev, next)
}

func (m *Model) follow(prev, next models.Settings) tea.Cmd {
	var cmds []tea.Cmd
	if next.DisplayMode != prev.DisplayMode {
		m.now = m.clock.Now()
		m.modeSince = m.now
		if next.DisplayMode == models.DisplayMatrix {
			m.animSeq++
			cmds = append(cmds, scheduleAnim(m.animSeq))
		}
	}
	if interval := render.TickInterval(next); interval != m.interval {
		m.interval = interval
		m.tickSeq++
		cmds = append(cmds, scheduleTick(m.tickSeq, m.interval))
	}
	return tea.Batch(cmds...)
}

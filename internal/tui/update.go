package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/logger"
	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/render"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if msg.seq != m.tickSeq {
			return m, nil
		}
		m.now = m.clock.Now()
		return m, scheduleTick(m.tickSeq, m.interval)

	case animMsg:
		if msg.seq != m.animSeq {
			return m, nil
		}
		m.now = m.clock.Now()
		s := m.Settings()
		if s.DisplayMode != models.DisplayMatrix {
			return m, nil
		}
		state := render.State{Now: m.now, Settings: s, Elapsed: m.elapsed()}
		if render.MatrixSettled(render.MatrixText(state), state.Elapsed) {
			return m, nil
		}
		return m, scheduleAnim(m.animSeq)
	}

	switch m.state {
	case constants.StateSettings:
		return m.updatePanel(msg)
	case constants.StateConfirmReset:
		return m.updateReset(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Settings):
		m.panel = newPanelForm(m.settings)
		m.form = NewSettingsForm(m.panel)
		m.formError = ""
		m.state = constants.StateSettings
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Mode):
		next := nextDisplayMode(m.settings.DisplayMode)
		return m.save(models.Patch{DisplayMode: &next})

	case key.Matches(msg, m.keys.Format):
		next := nextTimeFormat(m.settings.TimeFormat)
		return m.save(models.Patch{TimeFormat: &next})

	case key.Matches(msg, m.keys.Reset):
		m.reset = &resetChoice{}
		m.form = NewResetForm(m.reset)
		m.state = constants.StateConfirmReset
		return m, m.form.Init()
	}
	return m, nil
}

// save persists a patch from a shortcut key and reports the outcome on the status line
func (m Model) save(patch models.Patch) (tea.Model, tea.Cmd) {
	next, err := m.store.Update(patch)
	if err != nil {
		logger.Error("failed to save settings", "error", err)
		m.status = "Save failed: " + err.Error()
		return m, nil
	}
	m.status = ""
	cmd := m.applySettings(next)
	return m, cmd
}

func (m Model) updatePanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		return m.closePanel()
	}

	before := m.Settings()
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	preview := m.follow(before, m.Settings())

	switch m.form.State {
	case huh.StateCompleted:
		next := m.panel.Apply(m.settings)
		saved, err := m.store.Update(m.settings.Diff(next))
		if err != nil {
			logger.Error("failed to save settings", "error", err)
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmd, preview)
		}
		view := m.Settings()
		m.settings = saved
		m.state = constants.StateClock
		m.form = nil
		m.panel = nil
		m.formError = ""
		return m, tea.Batch(preview, m.follow(view, saved))

	case huh.StateAborted:
		return m.closePanel()
	}
	return m, tea.Batch(cmd, preview)
}

// closePanel drops unsaved edits and returns to the stored record
func (m Model) closePanel() (tea.Model, tea.Cmd) {
	view := m.Settings()
	m.state = constants.StateClock
	m.form = nil
	m.panel = nil
	m.formError = ""
	m.settings = m.store.Current()
	return m, m.follow(view, m.settings)
}

func (m Model) updateReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		m.state = constants.StateClock
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.state = constants.StateClock
		m.form = nil
		if !m.reset.Confirmed {
			return m, nil
		}
		next, err := m.store.Reset()
		if err != nil {
			logger.Error("failed to reset settings", "error", err)
			m.status = "Reset failed: " + err.Error()
			return m, nil
		}
		m.status = "Settings reset to defaults"
		return m, m.applySettings(next)

	case huh.StateAborted:
		m.state = constants.StateClock
		m.form = nil
		return m, nil
	}
	return m, cmd
}

func (m Model) elapsed() time.Duration {
	if m.now.Before(m.modeSince) {
		return 0
	}
	return m.now.Sub(m.modeSince)
}

func nextDisplayMode(current models.DisplayMode) models.DisplayMode {
	return cycle(models.DisplayModes(), current)
}

func nextTimeFormat(current models.TimeFormat) models.TimeFormat {
	return cycle(models.TimeFormats(), current)
}

// cycle returns the value after current, wrapping; an unknown value starts at the first
func cycle[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}

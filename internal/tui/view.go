package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/render"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.Settings()
	footer := m.viewFooter(s)
	bodyHeight := m.height - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	var body string
	switch m.state {
	case constants.StateSettings:
		body = m.viewPanel(s, bodyHeight)
	case constants.StateConfirmReset:
		body = panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			dangerStyle.Render("Reset"),
			m.form.View(),
		))
	default:
		body = m.viewClock(s, m.width, bodyHeight)
	}

	if m.width == 0 || m.height == 0 {
		return lipgloss.JoinVertical(lipgloss.Center, body, footer)
	}

	bg := lipgloss.Color(s.ColorScheme.Background)
	return lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body,
			lipgloss.WithWhitespaceBackground(bg)),
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, footer,
			lipgloss.WithWhitespaceBackground(bg)),
	)
}

func (m Model) viewClock(s models.Settings, width, height int) string {
	return render.Frame(render.State{
		Now:      m.now,
		Settings: s,
		Width:    width,
		Height:   height,
		Elapsed:  m.elapsed(),
	})
}

// viewPanel puts the form beside a live preview; narrow terminals show the form alone
func (m Model) viewPanel(s models.Settings, height int) string {
	parts := []string{titleStyle.Render("Settings"), m.form.View()}
	if m.formError != "" {
		parts = append(parts, dangerStyle.Render(m.formError))
	}
	panel := panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	previewWidth := m.width - lipgloss.Width(panel) - 2
	if previewWidth < 20 {
		return panel
	}
	preview := m.viewClock(s, previewWidth, height)
	return lipgloss.JoinHorizontal(lipgloss.Center, panel, "  ", preview)
}

func (m Model) viewFooter(s models.Settings) string {
	lines := []string{
		statusStyle.Render(fmt.Sprintf("%s | Timezone: %s", constants.AppTitle, s.Timezone)),
	}
	if m.state == constants.StateClock {
		lines = append(lines, m.help.View(m.keys))
	}
	if m.notice != "" {
		lines = append(lines, warningStyle.Render(m.notice))
	}
	if m.status != "" {
		lines = append(lines, statusStyle.Render(m.status))
	}
	return strings.Join(lines, "\n")
}

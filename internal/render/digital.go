package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/techclock/internal/timefmt"
)

// Digital draws the formatted time with the long date underneath
func Digital(s State) string {
	cfg := s.Settings
	p := NewPalette(cfg.ColorScheme)

	raw := timefmt.FormatTime(s.Now, cfg.TimeFormat, cfg.ShowSeconds, cfg.ShowMilliseconds, cfg.Timezone)
	text := Track(raw, Scale(cfg.FontSize)-1)
	if s.Width > 0 && lipgloss.Width(text) > s.Width {
		text = raw
	}

	rows := []string{p.fg(p.Text).Bold(true).Render(text)}
	if cfg.ShowDate {
		date := timefmt.FormatDate(s.Now, cfg.Timezone)
		rows = append(rows, "", p.fg(p.Accent).Render(date))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// Track inserts gap spaces between every character of s
func Track(s string, gap int) string {
	if gap <= 0 {
		return s
	}
	sep := strings.Repeat(" ", gap)
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, sep)
}

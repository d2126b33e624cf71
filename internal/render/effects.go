package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/julianstephens/techclock/internal/models"
)

// Emphasis is the single outline treatment a frame receives
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisGlow
	EmphasisShadow
)

func (e Emphasis) String() string {
	switch e {
	case EmphasisGlow:
		return "glow"
	case EmphasisShadow:
		return "shadow"
	default:
		return "none"
	}
}

// EmphasisFor picks glow over shadow when both are enabled
func EmphasisFor(effects models.Effects) Emphasis {
	switch {
	case effects.Glow:
		return EmphasisGlow
	case effects.Shadow:
		return EmphasisShadow
	default:
		return EmphasisNone
	}
}

var shadowBorder = lipgloss.Border{
	Right:       "▌",
	Bottom:      "▀",
	BottomRight: "▘",
}

// Apply wraps a rendered block in the emphasis outline
func (e Emphasis) Apply(block string, p Palette) string {
	switch e {
	case EmphasisGlow:
		return p.base().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Glow).
			BorderBackground(p.Background).
			Padding(0, 1).
			Render(block)
	case EmphasisShadow:
		return p.base().
			Border(shadowBorder, false, true, true, false).
			BorderForeground(p.Shadow).
			BorderBackground(p.Background).
			Render(block)
	default:
		return block
	}
}

// Scanlines redraws every second row in a single dim tint
func Scanlines(frame string, p Palette) string {
	lines := strings.Split(frame, "\n")
	dim := p.fg(p.Scanline).Faint(true)
	for i := 1; i < len(lines); i += 2 {
		lines[i] = dim.Render(ansi.Strip(lines[i]))
	}
	return strings.Join(lines, "\n")
}

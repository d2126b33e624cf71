package render

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/julianstephens/techclock/internal/models"
)

const (
	unlitSegmentAlpha = 0x20 / 255.0
	tileFillAlpha     = 0x15 / 255.0
	glowAlpha         = 0.6
	shadowAlpha       = 0.3
	scanlineAlpha     = 0.55
)

// Palette is a color scheme resolved into terminal colors
type Palette struct {
	Background lipgloss.Color
	Text       lipgloss.Color
	Accent     lipgloss.Color
	// derived tints, each a blend of a scheme color over the background
	Unlit    lipgloss.Color
	TileFill lipgloss.Color
	Glow     lipgloss.Color
	Shadow   lipgloss.Color
	Scanline lipgloss.Color
}

// NewPalette resolves cs. Colors that do not parse are used verbatim and
// their tints fall back to the unblended color.
func NewPalette(cs models.ColorScheme) Palette {
	return Palette{
		Background: lipgloss.Color(cs.Background),
		Text:       lipgloss.Color(cs.Text),
		Accent:     lipgloss.Color(cs.Accent),
		Unlit:      Blend(cs.Background, cs.Text, unlitSegmentAlpha),
		TileFill:   Blend(cs.Background, cs.Accent, tileFillAlpha),
		Glow:       Blend(cs.Background, cs.Accent, glowAlpha),
		Shadow:     Blend(cs.Background, cs.Text, shadowAlpha),
		Scanline:   Blend(cs.Background, cs.Text, scanlineAlpha),
	}
}

// Blend mixes fg over bg with the given opacity in [0,1]
func Blend(bg, fg string, alpha float64) lipgloss.Color {
	to, err := colorful.Hex(fg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	from, err := colorful.Hex(bg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	switch {
	case alpha <= 0:
		return lipgloss.Color(from.Hex())
	case alpha >= 1:
		return lipgloss.Color(to.Hex())
	}
	return lipgloss.Color(from.BlendRgb(to, alpha).Clamped().Hex())
}

func (p Palette) base() lipgloss.Style {
	return lipgloss.NewStyle().Background(p.Background)
}

func (p Palette) fg(c lipgloss.Color) lipgloss.Style {
	return p.base().Foreground(c)
}

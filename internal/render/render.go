// Package render draws one frame of the clock for a given instant and
// settings record. Every renderer is a pure function of its State.
package render

import (
	"time"

	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/models"
)

// State is everything a renderer may look at
type State struct {
	Now      time.Time
	Settings models.Settings
	// Width and Height bound the frame in terminal cells; zero means unbounded
	Width  int
	Height int
	// Elapsed is how long the current display mode has been on screen
	Elapsed time.Duration
}

// Renderer draws the clock face for one display mode
type Renderer interface {
	Render(State) string
}

// RendererFunc adapts a plain function to Renderer
type RendererFunc func(State) string

func (f RendererFunc) Render(s State) string { return f(s) }

var renderers = map[models.DisplayMode]Renderer{
	models.DisplayDigital: RendererFunc(Digital),
	models.DisplayAnalog:  RendererFunc(Analog),
	models.DisplaySegment: RendererFunc(Segment),
	models.DisplayMatrix:  RendererFunc(Matrix),
}

// For returns the renderer for mode. Unknown modes, including the legacy
// "flip" value, draw as digital.
func For(mode models.DisplayMode) Renderer {
	if r, ok := renderers[mode]; ok {
		return r
	}
	return renderers[models.DisplayDigital]
}

// Frame renders the active display mode with its effects applied
func Frame(s State) string {
	p := NewPalette(s.Settings.ColorScheme)
	out := For(s.Settings.DisplayMode).Render(s)
	out = EmphasisFor(s.Settings.Effects).Apply(out, p)
	if s.Settings.Effects.Scanlines {
		out = Scanlines(out, p)
	}
	return out
}

// TickInterval is how often the clock must be resampled for settings
func TickInterval(settings models.Settings) time.Duration {
	if settings.ShowMilliseconds {
		return constants.TickIntervalMillis
	}
	return constants.TickInterval
}

// Scale maps a font size in pixels onto a whole glyph magnification:
// 24px draws at 1x and 200px at 5x.
func Scale(fontSize int) int {
	return 1 + (models.ClampFontSize(fontSize)-constants.MinFontSize)/44
}

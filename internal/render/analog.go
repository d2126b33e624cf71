package render

import (
	"math"

	"github.com/julianstephens/techclock/internal/timefmt"
)

const (
	minDialRadius     = 5
	maxDialRadius     = 14
	defaultDialRadius = 9
)

// Hands holds hand angles in degrees, 0 pointing right and -90 pointing up
type Hands struct {
	Hour, Minute, Second float64
}

// HandAngles positions the three hands for a wall-clock time
func HandAngles(hour, minute, second int) Hands {
	return Hands{
		Second: float64(second)*6 - 90,
		Minute: float64(minute)*6 + float64(second)*0.1 - 90,
		Hour:   float64(hour%12)*30 + float64(minute)*0.5 - 90,
	}
}

// DialRadius sizes the dial in rows to fit the bounds. Columns are twice
// as dense as rows, so the dial is 4r+1 cells wide and 2r+1 tall.
func DialRadius(width, height int) int {
	r := defaultDialRadius
	if height > 0 {
		r = (height - 1) / 2
	}
	if width > 0 && (width-1)/4 < r {
		r = (width - 1) / 4
	}
	return max(minDialRadius, min(maxDialRadius, r))
}

// Analog draws a round dial with twelve markers and the clock hands. The
// second hand appears only with seconds enabled.
func Analog(s State) string {
	cfg := s.Settings
	p := NewPalette(cfg.ColorScheme)

	wall := timefmt.WallClock(s.Now, cfg.Timezone)
	hour, minute, second := wall.Clock()
	hands := HandAngles(hour, minute, second)

	r := DialRadius(s.Width, s.Height)
	c := newCanvas(4*r+1, 2*r+1)
	cx, cy := 2*r, r

	plot := func(deg, length float64, ch rune, k ink) {
		rad := deg * math.Pi / 180
		x := cx + int(math.Round(math.Cos(rad)*length*2))
		y := cy + int(math.Round(math.Sin(rad)*length))
		c.set(x, y, ch, k)
	}
	hand := func(deg, length float64, ch rune, k ink) {
		steps := int(math.Ceil(length * 2))
		for i := 1; i <= steps; i++ {
			plot(deg, length*float64(i)/float64(steps), ch, k)
		}
	}

	rf := float64(r)
	for deg := 0.0; deg < 360; deg += 2 {
		plot(deg, rf, '·', inkAccent)
	}
	for i := 0; i < 12; i++ {
		mark := '•'
		if i%3 == 0 {
			mark = '◆'
		}
		plot(float64(i*30-90), rf-1, mark, inkText)
	}

	hand(hands.Hour, rf*0.5, '█', inkText)
	hand(hands.Minute, rf*0.8, '▓', inkText)
	if cfg.ShowSeconds {
		hand(hands.Second, rf*0.9, '∙', inkAccent)
	}
	c.set(cx, cy, '◉', inkAccent)

	return c.render(p, EmphasisFor(cfg.Effects) == EmphasisGlow)
}

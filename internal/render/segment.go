package render

import (
	"strings"

	"github.com/julianstephens/techclock/internal/models"
	"github.com/julianstephens/techclock/internal/timefmt"
)

// Segment indices in pattern order
const (
	SegTop = iota
	SegTopLeft
	SegTopRight
	SegMiddle
	SegBottomLeft
	SegBottomRight
	SegBottom
)

// Pattern is the on/off state of the seven segments of one digit
type Pattern [7]bool

var patterns = [10]Pattern{
	{true, true, true, false, true, true, true},     // 0
	{false, false, true, false, false, true, false}, // 1
	{true, false, true, true, true, false, true},    // 2
	{true, false, true, true, false, true, true},    // 3
	{false, true, true, true, false, true, false},   // 4
	{true, true, false, true, false, true, true},    // 5
	{true, true, false, true, true, true, true},     // 6
	{true, false, true, false, false, true, false},  // 7
	{true, true, true, true, true, true, true},      // 8
	{true, true, true, true, false, true, true},     // 9
}

// PatternFor returns the segment pattern of a decimal digit character.
// Anything else lights nothing.
func PatternFor(digit rune) Pattern {
	if digit < '0' || digit > '9' {
		return Pattern{}
	}
	return patterns[digit-'0']
}

// SegmentDigits returns the digit groups shown by the segment display.
// The hour is on the 1-12 dial only for the 12h format and loses its
// leading zero below 10; seconds appear only when enabled.
func SegmentDigits(s State) []string {
	cfg := s.Settings
	hour, minute, second := timefmt.WallClock(s.Now, cfg.Timezone).Clock()
	if cfg.TimeFormat == models.TimeFormat12h {
		hour = timefmt.Hour12(hour)
	}

	groups := []string{itoa(hour, hour >= 10), itoa(minute, true)}
	if cfg.ShowSeconds {
		groups = append(groups, itoa(second, true))
	}
	return groups
}

func itoa(n int, pad bool) string {
	if pad || n >= 10 {
		return string([]rune{rune('0' + n/10), rune('0' + n%10)})
	}
	return string(rune('0' + n))
}

// glyph geometry for scale k: width 2k+2, height 2k+3
func glyphSize(k int) (w, h int) {
	return 2*k + 2, 2*k + 3
}

// segmentScale shrinks the font-size scale until the display fits
func segmentScale(want, digits, groups, width, height int) int {
	for k := want; k > 1; k-- {
		w, h := glyphSize(k)
		total := digits*(w+1) + (groups-1)*2
		if (width <= 0 || total <= width) && (height <= 0 || h <= height) {
			return k
		}
	}
	return 1
}

func drawDigit(c *canvas, x0 int, k int, pat Pattern) {
	w, _ := glyphSize(k)
	mid := k + 1
	bottom := 2*k + 2

	pick := func(seg int) ink {
		if pat[seg] {
			return inkText
		}
		return inkUnlit
	}
	horizontal := func(y, seg int) {
		for x := 1; x < w-1; x++ {
			c.set(x0+x, y, '━', pick(seg))
		}
	}
	vertical := func(x, y0, y1, seg int) {
		for y := y0; y <= y1; y++ {
			c.set(x0+x, y, '┃', pick(seg))
		}
	}

	horizontal(0, SegTop)
	vertical(0, 1, k, SegTopLeft)
	vertical(w-1, 1, k, SegTopRight)
	horizontal(mid, SegMiddle)
	vertical(0, mid+1, bottom-1, SegBottomLeft)
	vertical(w-1, mid+1, bottom-1, SegBottomRight)
	horizontal(bottom, SegBottom)
}

// Segment draws a seven-segment display with unlit segments in a faint tint
func Segment(s State) string {
	cfg := s.Settings
	p := NewPalette(cfg.ColorScheme)
	groups := SegmentDigits(s)

	digits := len(strings.Join(groups, ""))
	k := segmentScale(Scale(cfg.FontSize), digits, len(groups), s.Width, s.Height)
	w, h := glyphSize(k)

	c := newCanvas(digits*(w+1)+(len(groups)-1)*2, h)
	x := 0
	for gi, group := range groups {
		if gi > 0 {
			c.set(x, k/2+1, '●', inkAccent)
			c.set(x, k+1+k/2+1, '●', inkAccent)
			x += 2
		}
		for _, d := range group {
			drawDigit(c, x, k, PatternFor(d))
			x += w + 1
		}
	}

	return c.render(p, EmphasisFor(cfg.Effects) == EmphasisGlow)
}

package render

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/techclock/internal/constants"
	"github.com/julianstephens/techclock/internal/timefmt"
)

const (
	tileWidth       = 5
	narrowTileWidth = 3
	tileGap         = 1
)

// Tile is one character cell of the matrix display
type Tile struct {
	Char  rune
	Width int
	// Delay is how long after the mode becomes active the tile starts to appear
	Delay time.Duration
}

// Tiles splits the formatted time into tiles; separators get narrow tiles
// and tile i waits i×50ms before it appears.
func Tiles(text string) []Tile {
	tiles := make([]Tile, 0, len(text))
	for i, r := range []rune(text) {
		w := tileWidth
		if r == ':' || r == '.' {
			w = narrowTileWidth
		}
		tiles = append(tiles, Tile{Char: r, Width: w, Delay: time.Duration(i) * constants.MatrixTileDelay})
	}
	return tiles
}

// Opacity reports how far into its fade-in the tile is, from 0 to 1
func (t Tile) Opacity(elapsed time.Duration) float64 {
	since := elapsed - t.Delay
	switch {
	case since <= 0:
		return 0
	case since >= constants.MatrixFadeDuration:
		return 1
	}
	return float64(since) / float64(constants.MatrixFadeDuration)
}

// MatrixSettled reports whether every tile of text is fully visible
func MatrixSettled(text string, elapsed time.Duration) bool {
	tiles := Tiles(text)
	if len(tiles) == 0 {
		return true
	}
	return tiles[len(tiles)-1].Opacity(elapsed) >= 1
}

// MatrixText is the string the matrix display splits into tiles
func MatrixText(s State) string {
	cfg := s.Settings
	return timefmt.FormatTime(s.Now, cfg.TimeFormat, cfg.ShowSeconds, cfg.ShowMilliseconds, cfg.Timezone)
}

// Matrix draws one bordered tile per character of the formatted time,
// wrapping onto further rows when the frame is too narrow.
func Matrix(s State) string {
	cfg := s.Settings
	p := NewPalette(cfg.ColorScheme)
	glow := EmphasisFor(cfg.Effects) == EmphasisGlow

	var rows [][]string
	var row []string
	rowWidth := 0
	for _, t := range Tiles(MatrixText(s)) {
		block := renderTile(t, s.Elapsed, p, cfg.ColorScheme.Background, glow)
		w := lipgloss.Width(block) + tileGap
		if len(row) > 0 && s.Width > 0 && rowWidth+w > s.Width {
			rows = append(rows, row)
			row, rowWidth = nil, 0
		}
		row = append(row, block)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	gap := p.base().Render(strings.Repeat(" ", tileGap))
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		joined := make([]string, 0, 2*len(r))
		for i, b := range r {
			if i > 0 {
				joined = append(joined, gap)
			}
			joined = append(joined, b)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, joined...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func renderTile(t Tile, elapsed time.Duration, p Palette, background string, glow bool) string {
	alpha := t.Opacity(elapsed)
	border := lipgloss.NormalBorder()
	if glow {
		border = lipgloss.ThickBorder()
	}

	style := lipgloss.NewStyle().
		Width(t.Width).
		Align(lipgloss.Center).
		Border(border).
		BorderBackground(p.Background).
		Bold(true)

	if alpha <= 0 {
		// a blank tile holds its slot so the row stays put while it fills in
		return style.
			Background(p.Background).
			BorderForeground(p.Background).
			Render(" ")
	}

	return style.
		Background(Blend(background, string(p.TileFill), alpha)).
		Foreground(Blend(background, string(p.Text), alpha)).
		BorderForeground(Blend(background, string(p.Accent), alpha)).
		Render(string(t.Char))
}

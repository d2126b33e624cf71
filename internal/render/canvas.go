package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ink selects the palette entry a canvas cell is drawn with
type ink int

const (
	inkNone ink = iota
	inkText
	inkAccent
	inkUnlit
)

type cell struct {
	r   rune
	ink ink
}

// canvas is a fixed grid of cells rendered row by row, one style run per
// stretch of equal ink
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' '}
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune, k ink) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, ink: k}
}

func (c *canvas) at(x, y int) cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return cell{}
	}
	return c.cells[y][x]
}

func (c *canvas) render(p Palette, bold bool) string {
	styles := map[ink]lipgloss.Style{
		inkNone:   p.base(),
		inkText:   p.fg(p.Text).Bold(bold),
		inkAccent: p.fg(p.Accent).Bold(bold),
		inkUnlit:  p.fg(p.Unlit),
	}

	rows := make([]string, c.h)
	for y, row := range c.cells {
		var b strings.Builder
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].ink == row[start].ink {
				continue
			}
			run := make([]rune, 0, x-start)
			for _, cl := range row[start:x] {
				run = append(run, cl.r)
			}
			b.WriteString(styles[row[start].ink].Render(string(run)))
			start = x
		}
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

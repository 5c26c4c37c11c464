// SPDX-License-Identifier: MIT
// Package: ringmaze/render
//
// term.go — braille-dot preview for terminals.
//
// Each terminal cell holds a 2×4 block of dots (Unicode braille, U+2800), so
// a maze of Size s drawn on cols columns gets 2·cols horizontal dots and
// roughly square dots on a typical 1:2 terminal cell.

package render

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/jbeda/geom"
	"github.com/mattn/go-runewidth"
)

const brailleBase = 0x2800

// brailleBits maps a dot at (x, y) inside a cell to its braille bit.
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// TermCanvas plots borders onto a grid of braille runes.
type TermCanvas struct {
	layout     Layout
	scale      float64
	cols, rows int
	dots       [][]bool
	cur        geom.Coord
}

// NewTermCanvas returns a canvas cols terminal columns wide.
func NewTermCanvas(l Layout, cols int) *TermCanvas {
	if cols < 1 {
		cols = 1
	}
	scale := float64(2*cols) / l.Size()
	rows := int(math.Ceil(l.Size() * scale / 4))
	dots := make([][]bool, 4*rows)
	for y := range dots {
		dots[y] = make([]bool, 2*cols)
	}
	return &TermCanvas{layout: l, scale: scale, cols: cols, rows: rows, dots: dots}
}

// Cols returns the width in terminal cells.
func (t *TermCanvas) Cols() int { return t.cols }

// Rows returns the height in terminal cells.
func (t *TermCanvas) Rows() int { return t.rows }

// MoveTo sets the pen position without plotting.
func (t *TermCanvas) MoveTo(p geom.Coord) { t.cur = p }

// LineTo plots a straight segment from the pen position to p.
func (t *TermCanvas) LineTo(p geom.Coord) {
	d := p.Minus(t.cur)
	steps := int(math.Ceil(math.Max(math.Abs(d.X), math.Abs(d.Y))*t.scale)) + 1
	for i := 0; i <= steps; i++ {
		t.plot(d.Times(float64(i) / float64(steps)).Plus(t.cur))
	}
	t.cur = p
}

// ArcTo plots a clockwise arc from the pen position to p.
func (t *TermCanvas) ArcTo(radius float64, _ bool, p geom.Coord) {
	a1, a2 := sweepAngles(t.layout.angleAt(t.cur), t.layout.angleAt(p))
	t.arc(t.layout.Center(), radius, a1, a2)
	t.cur = p
}

// Circle plots a full circle.
func (t *TermCanvas) Circle(center geom.Coord, radius float64) {
	t.arc(center, radius, 0, 2*math.Pi)
}

func (t *TermCanvas) arc(center geom.Coord, radius, a1, a2 float64) {
	steps := int(math.Ceil(radius*t.scale*(a2-a1))) + 1
	for i := 0; i <= steps; i++ {
		a := a1 + (a2-a1)*float64(i)/float64(steps)
		t.plot(geom.Coord{X: math.Cos(a), Y: math.Sin(a)}.Times(radius).Plus(center))
	}
}

// plot sets the dot under p; points outside the grid are dropped.
func (t *TermCanvas) plot(p geom.Coord) {
	x, y := int(p.X*t.scale), int(p.Y*t.scale)
	if y < 0 || y >= len(t.dots) || x < 0 || x >= len(t.dots[y]) {
		return
	}
	t.dots[y][x] = true
}

// Runes returns the grid row by row; cells without dots are spaces.
func (t *TermCanvas) Runes() [][]rune {
	out := make([][]rune, t.rows)
	for row := range out {
		out[row] = make([]rune, t.cols)
		for col := range out[row] {
			var mask rune
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if t.dots[4*row+dy][2*col+dx] {
						mask |= brailleBits[dy][dx]
					}
				}
			}
			if mask == 0 {
				out[row][col] = ' '
			} else {
				out[row][col] = brailleBase + mask
			}
		}
	}
	return out
}

// String renders the grid as text lines with trailing blanks trimmed.
func (t *TermCanvas) String() string {
	var sb strings.Builder
	for _, row := range t.Runes() {
		sb.WriteString(strings.TrimRight(string(row), " "))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Draw copies the non-blank cells to s with their top-left corner at (x0, y0).
func (t *TermCanvas) Draw(s tcell.Screen, x0, y0 int, style tcell.Style) {
	for y, row := range t.Runes() {
		for x, r := range row {
			if r != ' ' {
				s.SetContent(x0+x, y0+y, r, nil, style)
			}
		}
	}
}

// Caption writes text at (x, y), advancing by each rune's display width and
// stopping at the screen's right edge. It returns the columns used.
func Caption(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	sw, _ := s.Size()
	start := x
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > sw {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x - start
}

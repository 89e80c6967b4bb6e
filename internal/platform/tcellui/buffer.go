// Package tcellui runs a Blokus play session on a tcell screen. It is the
// alternative to the Bubble Tea host for terminals where cell-level output
// is preferred over redrawing whole frames as strings.
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-blokus/internal/core"
)

// cell is one tcell screen cell.
type cell struct {
	r     rune
	style tcell.Style
}

// buffer is the cell grid the canvas draws into. It is copied to the tcell
// screen once per frame.
type buffer struct {
	width, height int
	cells         []cell
}

func newBuffer(width, height int) *buffer {
	b := &buffer{}
	b.resize(width, height)
	return b
}

func (b *buffer) resize(width, height int) {
	b.width = max(0, width)
	b.height = max(0, height)
	b.cells = make([]cell, b.width*b.height)
	for i := range b.cells {
		b.cells[i] = cell{r: ' ', style: tcell.StyleDefault}
	}
}

// Width implements core.Grid.
func (b *buffer) Width() int {
	return b.width
}

// Height implements core.Grid.
func (b *buffer) Height() int {
	return b.height
}

// At implements core.Grid.
func (b *buffer) At(x, y int) *cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return nil
	}
	return &b.cells[y*b.width+x]
}

// flush copies the buffer to the screen.
func (b *buffer) flush(s tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			s.SetContent(x, y, c.r, nil, c.style)
		}
	}
	s.Show()
}

// sink writes core cells as tcell cells.
type sink struct{}

// SetGlyph implements core.CellSink.
func (sink) SetGlyph(c *cell, r rune) {
	c.r = r
}

// SetStyle implements core.CellSink.
func (sink) SetStyle(c *cell, st core.Style) {
	c.style = tcell.StyleDefault.
		Foreground(tcellColor(st.Fg)).
		Background(tcellColor(st.Bg))
}

// tcellColor converts a palette color. ColorDefault keeps the terminal's own.
func tcellColor(c core.Color) tcell.Color {
	n := c.ANSI()
	if n < 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(n)
}

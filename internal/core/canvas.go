package core

// CellSink knows how to write a glyph and a style into one native display
// cell of type C. Each display backend implements it once for its own cell
// representation; the Canvas holds no representation-specific knowledge.
type CellSink[C any] interface {
	SetGlyph(cell *C, r rune)
	SetStyle(cell *C, st Style)
}

// Grid is a rectangular buffer of native display cells owned by the display
// subsystem. At returns nil for coordinates outside the buffer.
type Grid[C any] interface {
	Width() int
	Height() int
	At(x, y int) *C
}

// Canvas translates drawing intents into writes on a Grid. Coordinates are
// logical squares; each square spans Scale adjacent columns of the grid.
// All drawing is clipped to the canvas view, so rectangles that run off the
// edge (a piece being scrolled across the board) never fault.
type Canvas[C any] struct {
	grid   Grid[C]
	sink   CellSink[C]
	width  int // view width in grid columns
	height int // view height in grid rows
	scale  int

	// Blank is the cell Clear writes everywhere.
	Blank Cell
	// TextStyle is the style Text writes with.
	TextStyle Style
}

// NewCanvas creates a canvas viewing the top-left width×height region of
// grid. The view is clamped to the grid's own dimensions.
func NewCanvas[C any](grid Grid[C], sink CellSink[C], width, height int) *Canvas[C] {
	return &Canvas[C]{
		grid:   grid,
		sink:   sink,
		width:  Clamp(width, 0, grid.Width()),
		height: Clamp(height, 0, grid.Height()),
		scale:  1,
		Blank:  BlankCell,
	}
}

// SetScale sets how many columns one logical square spans (minimum 1).
func (c *Canvas[C]) SetScale(n int) {
	c.scale = Max(1, n)
}

// Scale returns the number of columns per logical square.
func (c *Canvas[C]) Scale() int {
	return c.scale
}

// Width returns the view width in logical squares.
func (c *Canvas[C]) Width() int {
	return (c.width + c.scale - 1) / c.scale
}

// Height returns the view height in rows.
func (c *Canvas[C]) Height() int {
	return c.height
}

// Columns returns the view width in grid columns.
func (c *Canvas[C]) Columns() int {
	return c.width
}

// view returns the canvas extent in logical squares.
func (c *Canvas[C]) view() Bounds {
	return Bounds{X0: 0, Y0: 0, X1: c.Width() - 1, Y1: c.height - 1}
}

// write stores a cell at grid column col, row y if it is inside the view.
func (c *Canvas[C]) write(col, y int, cell Cell) {
	if col < 0 || col >= c.width || y < 0 || y >= c.height {
		return
	}
	p := c.grid.At(col, y)
	if p == nil {
		return
	}
	c.sink.SetGlyph(p, cell.Rune)
	c.sink.SetStyle(p, cell.Style)
}

// put paints one logical square.
func (c *Canvas[C]) put(x, y int, cell Cell) {
	for k := 0; k < c.scale; k++ {
		c.write(x*c.scale+k, y, cell)
	}
}

// Clear resets every cell of the view to the Blank cell.
func (c *Canvas[C]) Clear() {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.write(x, y, c.Blank)
		}
	}
}

// Text writes text left to right starting at square (x, y), one glyph per
// column, in TextStyle. Glyphs outside the view are dropped.
func (c *Canvas[C]) Text(x, y int, text string) {
	col := x * c.scale
	for _, r := range text {
		c.write(col, y, Cell{Rune: r, Style: c.TextStyle})
		col++
	}
}

// FillRect sets every square inside b to cell.
func (c *Canvas[C]) FillRect(b Bounds, cell Cell) {
	c.DrawImplicit(b, cell, func(int, int) bool { return true })
}

// RectBorder sets only the perimeter squares of b to cell.
func (c *Canvas[C]) RectBorder(b Bounds, cell Cell) {
	if b.Empty() {
		return
	}
	clip := b.Intersect(c.view())
	if clip.Empty() {
		return
	}
	for x := clip.X0; x <= clip.X1; x++ {
		if b.Y0 >= clip.Y0 {
			c.put(x, b.Y0, cell)
		}
		if b.Y1 <= clip.Y1 {
			c.put(x, b.Y1, cell)
		}
	}
	for y := clip.Y0; y <= clip.Y1; y++ {
		if b.X0 >= clip.X0 {
			c.put(b.X0, y, cell)
		}
		if b.X1 <= clip.X1 {
			c.put(b.X1, y, cell)
		}
	}
}

// DrawImplicit evaluates pred for every square of b that lies inside the
// view and writes cell where it returns true; other squares are untouched.
// The same primitive draws patterns (a checkerboard) and sprites (a piece
// shape indexed relative to its position).
func (c *Canvas[C]) DrawImplicit(b Bounds, cell Cell, pred func(x, y int) bool) {
	clip := b.Intersect(c.view())
	if clip.Empty() {
		return
	}
	for y := clip.Y0; y <= clip.Y1; y++ {
		for x := clip.X0; x <= clip.X1; x++ {
			if pred(x, y) {
				c.put(x, y, cell)
			}
		}
	}
}

// Checkerboard is a DrawImplicit predicate that selects squares whose x and
// y parities differ.
func Checkerboard(x, y int) bool {
	return (x&1)^(y&1) == 1
}

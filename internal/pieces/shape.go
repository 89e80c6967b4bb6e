// Package pieces provides the Blokus polyomino catalogue: every piece and
// each of its distinct orientations ("options"), as immutable occupancy grids.
package pieces

import (
	"strings"

	"github.com/vovakirdan/tui-blokus/internal/core"
)

// Option is one orientation of a piece: a fixed occupancy grid and its
// bounding size. Options are immutable once built.
type Option struct {
	rows [][]bool
	size core.Size
}

// newOption copies rows into a new option. All rows must have equal length.
func newOption(rows [][]bool) Option {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	cp := make([][]bool, h)
	for y := range rows {
		cp[y] = append([]bool(nil), rows[y]...)
	}
	return Option{rows: cp, size: core.Size{W: w, H: h}}
}

// Size returns the bounding width and height of the shape.
func (o Option) Size() core.Size {
	return o.size
}

// Occupied reports whether square (x, y) of the bounding box is part of the
// shape. Coordinates outside the box are unoccupied.
func (o Option) Occupied(x, y int) bool {
	if y < 0 || y >= o.size.H || x < 0 || x >= o.size.W {
		return false
	}
	return o.rows[y][x]
}

// Cells returns the number of occupied squares.
func (o Option) Cells() int {
	n := 0
	for _, row := range o.rows {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Rows renders the shape as strings, '#' for occupied and '.' for empty.
func (o Option) Rows() []string {
	out := make([]string, len(o.rows))
	for y, row := range o.rows {
		var sb strings.Builder
		for _, v := range row {
			if v {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		out[y] = sb.String()
	}
	return out
}

// String returns the shape rows joined with newlines.
func (o Option) String() string {
	return strings.Join(o.Rows(), "\n")
}

// Equal reports whether two options have the same occupancy.
func (o Option) Equal(other Option) bool {
	return o.size == other.size && o.String() == other.String()
}

// rotate returns the shape turned 90 degrees clockwise.
func (o Option) rotate() Option {
	w, h := o.size.W, o.size.H
	rows := make([][]bool, w)
	for y := range rows {
		rows[y] = make([]bool, h)
		for x := range rows[y] {
			rows[y][x] = o.rows[h-1-x][y]
		}
	}
	return Option{rows: rows, size: core.Size{W: h, H: w}}
}

// mirror returns the shape reflected left to right.
func (o Option) mirror() Option {
	rows := make([][]bool, o.size.H)
	for y := range rows {
		rows[y] = make([]bool, o.size.W)
		for x := range rows[y] {
			rows[y][x] = o.rows[y][o.size.W-1-x]
		}
	}
	return Option{rows: rows, size: o.size}
}

// orientations returns the distinct rotations and reflections of base,
// starting with base itself.
func orientations(base Option) []Option {
	var out []Option
	seen := make(map[string]bool)
	for _, start := range []Option{base, base.mirror()} {
		o := start
		for i := 0; i < 4; i++ {
			key := o.String()
			if !seen[key] {
				seen[key] = true
				out = append(out, o)
			}
			o = o.rotate()
		}
	}
	return out
}

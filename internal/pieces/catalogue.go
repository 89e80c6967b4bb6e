package pieces

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var defaultCatalogueYAML []byte

// DefaultPiece and DefaultOption select the piece a new game starts with.
const (
	DefaultPiece  = 13
	DefaultOption = 0
)

// Piece is a named polyomino and its distinct orientations.
type Piece struct {
	Name    string
	options []Option
}

// NumOptions returns the number of distinct orientations.
func (p Piece) NumOptions() int {
	return len(p.options)
}

// Option returns orientation i. The index wraps in both directions so
// callers can step through orientations without bounds checks.
func (p Piece) Option(i int) Option {
	n := len(p.options)
	if n == 0 {
		return Option{}
	}
	return p.options[((i%n)+n)%n]
}

// Options returns a copy of the orientation list.
func (p Piece) Options() []Option {
	return append([]Option(nil), p.options...)
}

// Catalogue is an ordered, read-only list of pieces.
type Catalogue struct {
	pieces []Piece
}

// catalogueFile is the YAML layout of a catalogue.
type catalogueFile struct {
	Pieces []pieceFile `yaml:"pieces"`
}

type pieceFile struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// Load parses the embedded default catalogue.
func Load() (*Catalogue, error) {
	return Parse(defaultCatalogueYAML)
}

// MustLoad is like Load but panics on error. The embedded catalogue is
// covered by tests, so a failure here means the binary was built wrong.
func MustLoad() *Catalogue {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse builds a catalogue from YAML.
func Parse(data []byte) (*Catalogue, error) {
	var f catalogueFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("pieces: cannot parse catalogue: %w", err)
	}
	if len(f.Pieces) == 0 {
		return nil, fmt.Errorf("pieces: catalogue is empty")
	}

	c := &Catalogue{pieces: make([]Piece, 0, len(f.Pieces))}
	names := make(map[string]bool)
	for i, pf := range f.Pieces {
		name := pf.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if names[name] {
			return nil, fmt.Errorf("pieces: duplicate piece %q", name)
		}
		names[name] = true

		base, err := parseRows(pf.Rows)
		if err != nil {
			return nil, fmt.Errorf("pieces: piece %q: %w", name, err)
		}
		c.pieces = append(c.pieces, Piece{Name: name, options: orientations(base)})
	}
	return c, nil
}

// parseRows converts '#'/'.' rows into a trimmed, connected shape.
func parseRows(rows []string) (Option, error) {
	if len(rows) == 0 {
		return Option{}, fmt.Errorf("no rows")
	}
	width := len(rows[0])
	grid := make([][]bool, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return Option{}, fmt.Errorf("row %d has length %d, expected %d", y, len(row), width)
		}
		grid[y] = make([]bool, width)
		for x, ch := range row {
			switch ch {
			case '#':
				grid[y][x] = true
			case '.':
			default:
				return Option{}, fmt.Errorf("row %d: unexpected character %q", y, ch)
			}
		}
	}

	o := trim(grid)
	if o.Cells() == 0 {
		return Option{}, fmt.Errorf("shape has no occupied squares")
	}
	if !connected(o) {
		return Option{}, fmt.Errorf("shape is not connected:\n%s", o)
	}
	return o, nil
}

// trim drops empty rows and columns around the shape.
func trim(grid [][]bool) Option {
	minX, minY, maxX, maxY := -1, -1, -1, -1
	for y, row := range grid {
		for x, v := range row {
			if !v {
				continue
			}
			if minX < 0 || x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if minY < 0 {
				minY = y
			}
			maxY = y
		}
	}
	if minX < 0 {
		return Option{}
	}

	rows := make([][]bool, 0, maxY-minY+1)
	for y := minY; y <= maxY; y++ {
		rows = append(rows, grid[y][minX:maxX+1])
	}
	return newOption(rows)
}

// connected reports whether the occupied squares form one 4-connected group.
func connected(o Option) bool {
	size := o.Size()
	type pt struct{ x, y int }

	var start *pt
	for y := 0; y < size.H && start == nil; y++ {
		for x := 0; x < size.W; x++ {
			if o.Occupied(x, y) {
				start = &pt{x, y}
				break
			}
		}
	}
	if start == nil {
		return false
	}

	seen := map[pt]bool{*start: true}
	stack := []pt{*start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range []pt{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := pt{p.x + d.x, p.y + d.y}
			if o.Occupied(n.x, n.y) && !seen[n] {
				seen[n] = true
				stack = append(stack, n)
			}
		}
	}
	return len(seen) == o.Cells()
}

// Len returns the number of pieces.
func (c *Catalogue) Len() int {
	return len(c.pieces)
}

// Piece returns the piece at index i and whether it exists.
func (c *Catalogue) Piece(i int) (Piece, bool) {
	if i < 0 || i >= len(c.pieces) {
		return Piece{}, false
	}
	return c.pieces[i], true
}

// Lookup finds a piece by name, ignoring case.
func (c *Catalogue) Lookup(name string) (Piece, bool) {
	for _, p := range c.pieces {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Piece{}, false
}

// Pieces returns a copy of the piece list in catalogue order.
func (c *Catalogue) Pieces() []Piece {
	return append([]Piece(nil), c.pieces...)
}

// Select returns option opt of piece index i.
func (c *Catalogue) Select(i, opt int) (Option, error) {
	p, ok := c.Piece(i)
	if !ok {
		return Option{}, fmt.Errorf("pieces: no piece at index %d (catalogue has %d)", i, c.Len())
	}
	return p.Option(opt), nil
}

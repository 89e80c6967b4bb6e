package core

// Color represents a palette color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

// ANSI returns the ANSI 256-color index for the color, or -1 for the
// terminal default.
func (c Color) ANSI() int {
	switch c {
	case ColorDefault:
		return -1
	case ColorOrange:
		return 208
	case ColorGray:
		return 245
	case ColorBlack:
		return 0
	}
	if c <= ColorWhite {
		return int(c)
	}
	if c <= ColorBrightWhite {
		// Bright variants sit at 9..15; ColorBrightRed is the 8th constant.
		return int(c) + 1
	}
	return -1
}

// Style is the display attribute of a cell: a foreground and a background color.
type Style struct {
	Fg Color
	Bg Color
}

// NewStyle creates a style with the given foreground on the default background.
func NewStyle(fg Color) Style {
	return Style{Fg: fg}
}

// Cell is one display cell: a glyph and its style.
type Cell struct {
	Rune  rune
	Style Style
}

// BlankCell is a space in the default style.
var BlankCell = Cell{Rune: ' '}

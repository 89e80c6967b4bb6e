package game

import (
	"time"

	"github.com/vovakirdan/tui-blokus/internal/config"
	"github.com/vovakirdan/tui-blokus/internal/core"
	"github.com/vovakirdan/tui-blokus/internal/registry"
)

// Title is the terminal window title.
const Title = "Blokus Experiments"

// Layout places the board on the canvas.
type Layout struct {
	Origin core.Point // Canvas square of the board's top-left square
}

// DefaultLayout returns the layout of the default configuration.
func DefaultLayout() Layout {
	return LayoutFromConfig(config.Default())
}

// LayoutFromConfig extracts the board placement from cfg.
func LayoutFromConfig(cfg config.Config) Layout {
	return Layout{Origin: core.Point{X: cfg.Board.OriginX, Y: cfg.Board.OriginY}}
}

// blinkPhase is how long the placed piece stays on or off while
// PositionAccept or PositionReject is shown.
const blinkPhase = 125 * time.Millisecond

// Cell palette.
var (
	blankCell   = core.Cell{Rune: ' ', Style: core.NewStyle(core.ColorBrightWhite)}
	textStyle   = core.NewStyle(core.ColorBrightWhite)
	borderCell  = core.Cell{Rune: '█', Style: core.NewStyle(core.ColorBrightWhite)}
	checkerCell = core.Cell{Rune: '█', Style: core.NewStyle(core.ColorGray)}
	pieceCell   = core.Cell{Rune: '█', Style: core.NewStyle(core.ColorRed)}
	acceptCell  = core.Cell{Rune: '█', Style: core.NewStyle(core.ColorGreen)}
)

// SetupCanvas prepares a canvas for Render: blank and text styles, square
// scale, and a first clear.
func SetupCanvas[C any](cv *core.Canvas[C], columnsPerSquare int) {
	cv.Blank = blankCell
	cv.TextStyle = textStyle
	cv.SetScale(columnsPerSquare)
	cv.Clear()
}

// BoardBounds returns the squares covered by the board.
func BoardBounds(board registry.Board, layout Layout) core.Bounds {
	return core.BoundsAt(layout.Origin, core.Size{W: board.Width, H: board.Height})
}

// Render draws rs onto cv. Quit is drawn over the previous frame; every
// other state starts from a cleared canvas.
func Render[C any](rs RenderState, cv *core.Canvas[C], layout Layout) {
	footer := cv.Height() - 1

	if rs.State == StateQuit {
		cv.Text(0, 0, "Are you sure you want to quit?")
		cv.Text(0, footer, "[ESC quit]      [B back]")
		return
	}

	cv.Clear()
	if rs.State.showsBoard() {
		drawBoard(cv, BoardBounds(rs.Board, layout))
	}

	switch rs.State {
	case StateMenu:
		cv.Text(0, 0, "<BLOKUS>")
		cv.Text(0, footer, "[S start]      [A about]")

	case StateAbout:
		cv.Text(0, 0, "This game was created by a really awesome dude.")
		cv.Text(0, footer, "[B back]")

	case StateStartOptions:
		cv.Text(0, 0, "There are no options right now, press C to continue ")
		cv.Text(0, footer, "[C continue]      [B back]")

	case StatePieceSelect:
		cv.Text(0, 0, "Arrow keys to select piece type & orientation")
		cv.Text(0, footer, "[ENTER continue]")

	case StatePieceMove:
		cv.Text(0, 0, "Move the piece around & choose permutation with A or D")
		drawPiece(cv, rs, layout, pieceCell)

	case StatePositionAccept:
		cv.Text(0, 0, "Position accepted!")
		if blinkOn(rs.StateTime) {
			drawPiece(cv, rs, layout, acceptCell)
		}

	case StatePositionReject:
		cv.Text(0, 0, "Position REJECTED!")
		if blinkOn(rs.StateTime) {
			drawPiece(cv, rs, layout, pieceCell)
		}

	case StatePlayerFinalMove:
		cv.Text(0, 0, "Player is out!")

	case StateGameOver:
		cv.Text(0, 0, "GAME OVER")
		cv.Text(0, footer, "[ENTER view stats]")

	case StateStats:
		cv.Text(0, 0, "(Stats go here, but nothing yet)")
		cv.Text(0, footer, "[M menu]      [Q quit]")
	}
}

// drawBoard draws the border one square outside b and the checkerboard in it.
func drawBoard[C any](cv *core.Canvas[C], b core.Bounds) {
	cv.RectBorder(b.Inset(-1), borderCell)
	cv.DrawImplicit(b, checkerCell, core.Checkerboard)
}

// drawPiece stamps the selected shape at the cursor.
func drawPiece[C any](cv *core.Canvas[C], rs RenderState, layout Layout, cell core.Cell) {
	at := layout.Origin.Add(rs.Cursor)
	cv.DrawImplicit(core.BoundsAt(at, rs.Size), cell, func(x, y int) bool {
		return rs.Shape.Occupied(x-at.X, y-at.Y)
	})
}

func blinkOn(d time.Duration) bool {
	return (d/blinkPhase)%2 == 0
}

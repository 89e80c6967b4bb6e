package game

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-blokus/internal/core"
	"github.com/vovakirdan/tui-blokus/internal/registry"
)

func newTestCanvas() (*core.Screen, *core.Canvas[core.Cell]) {
	s := core.NewScreen(80, 40)
	cv := core.NewScreenCanvas(s)
	SetupCanvas(cv, 2)
	return s, cv
}

func renderState(t *testing.T, s State) RenderState {
	t.Helper()
	o := startOption(t)
	return RenderState{
		State: s,
		Shape: o,
		Size:  o.Size(),
		Board: registry.Board{Width: 20, Height: 20},
	}
}

// square returns the left column cell of logical square (x, y).
func square(s *core.Screen, x, y int) core.Cell {
	return s.GetCell(x*2, y)
}

func TestRenderTexts(t *testing.T) {
	tests := []struct {
		state  State
		title  string
		footer string
	}{
		{StateMenu, "<BLOKUS>", "[S start]      [A about]"},
		{StateAbout, "This game was created by a really awesome dude.", "[B back]"},
		{StateStartOptions, "There are no options right now, press C to continue", "[C continue]      [B back]"},
		{StatePieceSelect, "Arrow keys to select piece type & orientation", "[ENTER continue]"},
		{StatePieceMove, "Move the piece around & choose permutation with A or D", ""},
		{StatePositionAccept, "Position accepted!", ""},
		{StatePositionReject, "Position REJECTED!", ""},
		{StateGameOver, "GAME OVER", "[ENTER view stats]"},
		{StateStats, "(Stats go here, but nothing yet)", "[M menu]      [Q quit]"},
	}

	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			s, cv := newTestCanvas()
			Render(renderState(t, tc.state), cv, DefaultLayout())

			if !strings.HasPrefix(s.Row(0), tc.title) {
				t.Errorf("row 0 = %q, expected prefix %q", s.Row(0), tc.title)
			}
			footer := strings.TrimRight(s.Row(39), " ")
			if footer != tc.footer {
				t.Errorf("row 39 = %q, expected %q", footer, tc.footer)
			}
		})
	}
}

func TestRenderBoard(t *testing.T) {
	s, cv := newTestCanvas()
	Render(renderState(t, StatePieceSelect), cv, DefaultLayout())

	tests := []struct {
		name string
		x, y int
		cell core.Cell
	}{
		{"border top-left", 9, 9, borderCell},
		{"border bottom-right", 30, 30, borderCell},
		{"border left edge", 9, 20, borderCell},
		{"checker odd", 11, 10, checkerCell},
		{"checker even", 10, 10, blankCell},
		{"checker last", 28, 29, checkerCell},
		{"outside", 31, 31, blankCell},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := square(s, tc.x, tc.y); got != tc.cell {
				t.Errorf("square (%d, %d) = %+v, expected %+v", tc.x, tc.y, got, tc.cell)
			}
			if left, right := s.GetCell(tc.x*2, tc.y), s.GetCell(tc.x*2+1, tc.y); left != right {
				t.Errorf("square (%d, %d) halves differ: %+v vs %+v", tc.x, tc.y, left, right)
			}
		})
	}
}

func TestRenderNoBoardInMenu(t *testing.T) {
	s, cv := newTestCanvas()
	Render(renderState(t, StatePieceSelect), cv, DefaultLayout())
	Render(renderState(t, StateMenu), cv, DefaultLayout())

	if got := square(s, 9, 9); got != blankCell {
		t.Errorf("menu should clear the board, got %+v", got)
	}
}

func TestRenderPiece(t *testing.T) {
	s, cv := newTestCanvas()
	rs := renderState(t, StatePieceMove)
	rs.Cursor = core.Point{X: 3, Y: 4}
	Render(rs, cv, DefaultLayout())

	// Default option is "##", "##", "#." with its top-left at (13, 14).
	for _, p := range []core.Point{{X: 13, Y: 14}, {X: 14, Y: 14}, {X: 13, Y: 15}, {X: 14, Y: 15}, {X: 13, Y: 16}} {
		if got := square(s, p.X, p.Y); got != pieceCell {
			t.Errorf("square %+v = %+v, expected piece", p, got)
		}
	}
	if got := square(s, 14, 16); got == pieceCell {
		t.Error("empty corner of the shape should show the board")
	}
}

func TestRenderPieceClipped(t *testing.T) {
	s, cv := newTestCanvas()
	rs := renderState(t, StatePieceMove)
	rs.Cursor = core.Point{X: -1, Y: -3}
	Render(rs, cv, Layout{Origin: core.Point{X: 1, Y: 1}})

	if got := square(s, 0, 0); got != pieceCell {
		t.Errorf("visible part of the piece should be drawn, got %+v", got)
	}
}

func TestRenderBlink(t *testing.T) {
	rs := renderState(t, StatePositionAccept)

	s, cv := newTestCanvas()
	Render(rs, cv, DefaultLayout())
	if got := square(s, 10, 10); got != acceptCell {
		t.Errorf("accepted piece should be shown at 0s, got %+v", got)
	}

	rs.StateTime = blinkPhase + time.Millisecond
	Render(rs, cv, DefaultLayout())
	if got := square(s, 10, 10); got == acceptCell {
		t.Error("accepted piece should be hidden during the off phase")
	}
}

func TestRenderQuitOverlays(t *testing.T) {
	s, cv := newTestCanvas()
	Render(renderState(t, StatePieceSelect), cv, DefaultLayout())
	Render(renderState(t, StateQuit), cv, DefaultLayout())

	if !strings.HasPrefix(s.Row(0), "Are you sure you want to quit?") {
		t.Errorf("row 0 = %q", s.Row(0))
	}
	if !strings.HasPrefix(s.Row(39), "[ESC quit]      [B back]") {
		t.Errorf("row 39 = %q", s.Row(39))
	}
	if got := square(s, 9, 9); got != borderCell {
		t.Errorf("Quit should keep the previous frame, got %+v", got)
	}
}

func TestRenderSmallCanvas(t *testing.T) {
	s := core.NewScreen(10, 5)
	cv := core.NewScreenCanvas(s)
	SetupCanvas(cv, 2)

	for st := StateMenu; st <= StateQuit; st++ {
		Render(renderState(t, st), cv, DefaultLayout())
	}
	if got := s.Row(4); !strings.HasPrefix(got, "[M menu]") && !strings.HasPrefix(got, "[ESC quit]") {
		t.Errorf("footer row = %q", got)
	}
}

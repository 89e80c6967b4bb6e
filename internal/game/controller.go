package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-blokus/internal/config"
	"github.com/vovakirdan/tui-blokus/internal/core"
	"github.com/vovakirdan/tui-blokus/internal/pieces"
	"github.com/vovakirdan/tui-blokus/internal/registry"
)

// Settings are the tunables of the game flow.
type Settings struct {
	Board      registry.Board
	Blink      time.Duration // PositionAccept and PositionReject
	FinalMove  time.Duration // PlayerFinalMove
	MovePeriod int           // Frames between steps of a held arrow key
}

// DefaultSettings returns the settings of the default configuration.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.Default())
}

// SettingsFromConfig extracts the game flow settings from cfg.
func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		Board:      registry.Board{Width: cfg.Board.Width, Height: cfg.Board.Height},
		Blink:      cfg.Timing.Blink,
		FinalMove:  cfg.Timing.FinalMove,
		MovePeriod: cfg.Timing.MoveEveryFrames,
	}
}

// RenderState is the read-only view of the controller a frame is drawn from.
type RenderState struct {
	State     State
	Cursor    core.Point // Board-relative top-left square of the piece
	Shape     pieces.Option
	Size      core.Size
	StateTime time.Duration // Time spent in State
	Board     registry.Board
}

// Controller owns the game flow. It is created in Menu and changes only
// through Advance.
type Controller struct {
	settings Settings
	rules    registry.Rules

	state     State
	prevState State
	enteredAt time.Duration
	now       time.Duration
	done      bool

	cursor     core.Point
	selected   pieces.Option
	size       core.Size
	moveFrames int
}

// NewController creates a controller in Menu with start as the selected piece.
func NewController(settings Settings, rules registry.Rules, start pieces.Option) *Controller {
	if settings.MovePeriod <= 0 {
		settings.MovePeriod = 1
	}
	c := &Controller{
		settings:  settings,
		rules:     rules,
		state:     StateMenu,
		prevState: StateMenu,
	}
	c.selectOption(start)
	return c
}

// NewFromConfig builds a controller from configuration: the rules engine is
// looked up in the registry and the starting piece in the catalogue.
func NewFromConfig(cfg config.Config, catalogue *pieces.Catalogue) (*Controller, error) {
	rules, err := registry.Create(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	start, err := catalogue.Select(cfg.Start.Piece, cfg.Start.Option)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	return NewController(SettingsFromConfig(cfg), rules, start), nil
}

// State returns the active state.
func (c *Controller) State() State {
	return c.state
}

// Done reports whether the player confirmed quitting.
func (c *Controller) Done() bool {
	return c.done
}

// Rules returns the rules engine in use.
func (c *Controller) Rules() registry.Rules {
	return c.rules
}

// RenderState returns the data the current frame is drawn from.
func (c *Controller) RenderState() RenderState {
	return RenderState{
		State:     c.state,
		Cursor:    c.cursor,
		Shape:     c.selected,
		Size:      c.size,
		StateTime: c.stateTime(),
		Board:     c.settings.Board,
	}
}

func (c *Controller) stateTime() time.Duration {
	return c.now - c.enteredAt
}

// enter switches to s and restarts the state timer.
func (c *Controller) enter(s State) {
	if !s.Valid() {
		invalidState(s)
		return
	}
	c.prevState = c.state
	c.state = s
	c.enteredAt = c.now
	if s == StatePieceMove {
		c.moveFrames = 0
	}
}

// undo returns to the state Quit was entered from.
func (c *Controller) undo() {
	c.state = c.prevState
	c.prevState = StateMenu
	c.enteredAt = c.now
}

func (c *Controller) selectOption(o pieces.Option) {
	c.selected = o
	c.size = o.Size()
}

// Advance consumes one frame of input at time now. At most one transition
// fires per frame.
func (c *Controller) Advance(in core.InputSnapshot, now time.Duration) {
	c.now = now
	if c.done {
		return
	}

	if c.state != StateQuit && in.Pressed(core.KeyEscape) {
		c.enter(StateQuit)
		return
	}

	switch c.state {
	case StateMenu:
		switch {
		case in.Pressed(core.KeyA):
			c.enter(StateAbout)
		case in.Pressed(core.KeyS):
			c.enter(StateStartOptions)
		}

	case StateAbout:
		if in.Pressed(core.KeyB) {
			c.enter(StateMenu)
		}

	case StateStartOptions:
		switch {
		case in.Pressed(core.KeyC):
			c.enter(StatePieceSelect)
		case in.Pressed(core.KeyB):
			c.enter(StateMenu)
		}

	case StateViewBoard:
		// Escape is the only way out.

	case StatePieceSelect:
		if in.Pressed(core.KeyLeft) {
			c.selectOption(c.rules.CycleOrientation(c.selected, -1))
		}
		if in.Pressed(core.KeyRight) {
			c.selectOption(c.rules.CycleOrientation(c.selected, 1))
		}
		if in.Pressed(core.KeyEnter) {
			c.enter(StatePieceMove)
		}

	case StatePieceMove:
		c.moveCursor(in)
		if in.Pressed(core.KeyEnter) {
			if c.rules.ValidatePlacement(c.settings.Board, c.selected, c.cursor) {
				c.enter(StatePositionAccept)
			} else {
				c.enter(StatePositionReject)
			}
		}

	case StatePositionAccept:
		if c.stateTime() >= c.settings.Blink {
			c.enter(StatePieceSelect)
		}

	case StatePositionReject:
		if c.stateTime() >= c.settings.Blink {
			c.enter(StatePieceMove)
		}

	case StatePlayerFinalMove:
		if c.stateTime() >= c.settings.FinalMove {
			c.enter(StatePieceSelect)
		}

	case StateGameOver:
		if in.Pressed(core.KeyEnter) {
			c.enter(StateStats)
		}

	case StateStats:
		switch {
		case in.Pressed(core.KeyM):
			c.enter(StateMenu)
		case in.Pressed(core.KeyQ):
			c.enter(StateQuit)
		}

	case StateQuit:
		switch {
		case in.Pressed(core.KeyEscape):
			c.done = true
		case in.Pressed(core.KeyB):
			c.undo()
		}

	default:
		invalidState(c.state)
	}
}

var moves = [...]struct {
	key core.Key
	d   core.Point
}{
	{core.KeyLeft, core.Point{X: -1}},
	{core.KeyRight, core.Point{X: 1}},
	{core.KeyUp, core.Point{Y: -1}},
	{core.KeyDown, core.Point{Y: 1}},
}

// moveCursor steps the cursor once every MovePeriod frames while arrow keys
// are held, then wraps it around the board.
func (c *Controller) moveCursor(in core.InputSnapshot) {
	held := false
	for _, m := range moves {
		if in.Held(m.key) {
			held = true
			break
		}
	}

	if !held {
		c.moveFrames = 0
	} else {
		c.moveFrames++
		if c.moveFrames%c.settings.MovePeriod == 0 {
			for _, m := range moves {
				if in.Held(m.key) {
					c.cursor = c.cursor.Add(m.d)
				}
			}
		}
	}

	c.cursor = wrapCursor(c.cursor, c.size, c.settings.Board)
}

// wrapCursor keeps the piece's top-left square in [-size, extent-1] on each
// axis, so a piece leaving one edge scrolls in from the other.
func wrapCursor(p core.Point, size core.Size, board registry.Board) core.Point {
	return core.Point{
		X: core.Wrap(p.X, -size.W, board.Width-1),
		Y: core.Wrap(p.Y, -size.H, board.Height-1),
	}
}

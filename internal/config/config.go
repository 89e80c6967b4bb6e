// Package config provides YAML-based configuration loading for the Blokus
// client: board geometry, timings, input handling and display options.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-blokus/internal/core"
)

// Config contains all client configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
	Start   StartConfig   `yaml:"start"`
	Rules   string        `yaml:"rules"`
}

// BoardConfig defines the board extent and where it is drawn.
type BoardConfig struct {
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	OriginX int `yaml:"origin_x"` // Canvas square of the top-left board square
	OriginY int `yaml:"origin_y"`
}

// TimingConfig defines timed transitions and movement cadence.
type TimingConfig struct {
	Blink           time.Duration `yaml:"blink"`
	FinalMove       time.Duration `yaml:"final_move"`
	MoveEveryFrames int           `yaml:"move_every_frames"`
}

// InputConfig defines how key events become key states.
type InputConfig struct {
	ReleaseAfter time.Duration `yaml:"release_after"`
}

// DisplayConfig defines the canvas.
type DisplayConfig struct {
	SquareCells bool `yaml:"square_cells"`
	TickRate    int  `yaml:"tick_rate"`
	Width       int  `yaml:"width"`  // Preferred columns when the terminal size is unknown
	Height      int  `yaml:"height"` // Preferred rows when the terminal size is unknown
}

// StartConfig selects the piece a new game starts with.
type StartConfig struct {
	Piece  int `yaml:"piece"`
	Option int `yaml:"option"`
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	var errs []error
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board size must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.OriginX < 0 || c.Board.OriginY < 0 {
		errs = append(errs, fmt.Errorf("board origin must not be negative, got (%d, %d)", c.Board.OriginX, c.Board.OriginY))
	}
	if c.Timing.Blink < 0 || c.Timing.FinalMove < 0 {
		errs = append(errs, errors.New("timings must not be negative"))
	}
	if c.Timing.MoveEveryFrames <= 0 {
		errs = append(errs, fmt.Errorf("move_every_frames must be positive, got %d", c.Timing.MoveEveryFrames))
	}
	if c.Input.ReleaseAfter <= 0 {
		errs = append(errs, fmt.Errorf("release_after must be positive, got %s", c.Input.ReleaseAfter))
	}
	if c.Display.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Display.TickRate))
	}
	if c.Start.Piece < 0 {
		errs = append(errs, fmt.Errorf("start piece must not be negative, got %d", c.Start.Piece))
	}
	if c.Rules == "" {
		errs = append(errs, errors.New("rules must name a rules engine"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}

// ColumnsPerSquare returns how many terminal columns one board square spans.
func (c Config) ColumnsPerSquare() int {
	if c.Display.SquareCells {
		return 2
	}
	return 1
}

// Runtime returns the host-facing subset of the configuration.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      c.Display.Width,
		ScreenH:      c.Display.Height,
		TickRate:     c.Display.TickRate,
		ReleaseAfter: c.Input.ReleaseAfter,
	}
}

package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blokus.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/blokus.yaml.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:   20,
			Height:  20,
			OriginX: 10,
			OriginY: 10,
		},
		Timing: TimingConfig{
			Blink:           500 * time.Millisecond,
			FinalMove:       2 * time.Second,
			MoveEveryFrames: 10,
		},
		Input: InputConfig{
			ReleaseAfter: 150 * time.Millisecond,
		},
		Display: DisplayConfig{
			SquareCells: true,
			TickRate:    60,
			Width:       80,
			Height:      40,
		},
		Start: StartConfig{
			Piece:  13,
			Option: 0,
		},
		Rules: "placeholder",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

package core

import "time"

// RuntimeConfig contains configuration passed to a play session at start.
// Hosts use it to size the screen and pace frames.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second (default 60)

	// ReleaseAfter is how long a key stays held without new key events.
	ReleaseAfter time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      40,
		TickRate:     60,
		ReleaseAfter: 150 * time.Millisecond,
	}
}

// FrameInterval returns the time between two frames at TickRate.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Package placeholder provides the default rules engine. It enforces nothing:
// every placement is accepted and orientation changes keep the current shape.
// Real rules (corner contact, no edge contact, scoring) plug in through
// registry.Rules.
package placeholder

import (
	"github.com/vovakirdan/tui-blokus/internal/core"
	"github.com/vovakirdan/tui-blokus/internal/pieces"
	"github.com/vovakirdan/tui-blokus/internal/registry"
)

// Name is the registry name of this engine.
const Name = "placeholder"

// Rules accepts everything.
type Rules struct{}

func init() {
	registry.Register(Name, func() registry.Rules {
		return Rules{}
	})
}

// Name returns the engine identifier.
func (Rules) Name() string {
	return Name
}

// Description returns the display summary.
func (Rules) Description() string {
	return "No rule enforcement; every placement is accepted"
}

// ValidatePlacement always accepts.
func (Rules) ValidatePlacement(registry.Board, pieces.Option, core.Point) bool {
	return true
}

// CycleOrientation keeps the current shape.
func (Rules) CycleOrientation(shape pieces.Option, _ int) pieces.Option {
	return shape
}

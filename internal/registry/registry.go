// Package registry provides a global registry for rules engines.
// Engines register themselves in init() functions, allowing the game to
// pick one by name from configuration without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-blokus/internal/core"
	"github.com/vovakirdan/tui-blokus/internal/pieces"
)

// Board describes the playing surface a placement is checked against.
type Board struct {
	Width  int
	Height int
}

// Rules is the extension point for game rules. The flow controller calls it
// where placement is decided and where the player changes orientation.
type Rules interface {
	// Name returns a unique identifier for the engine (e.g., "placeholder").
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// ValidatePlacement reports whether shape may be placed with its
	// top-left square at position (board-relative).
	ValidatePlacement(board Board, shape pieces.Option, position core.Point) bool

	// CycleOrientation returns the orientation that follows shape in the
	// given direction (-1 or +1).
	CycleOrientation(shape pieces.Option, direction int) pieces.Option
}

// Info contains metadata about a registered engine.
type Info struct {
	Name        string
	Description string
}

// Factory is a function that creates a new rules engine.
type Factory func() Rules

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a rules factory to the registry.
// Typically called from an engine's init() function.
// Panics if an engine with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: rules %q already registered", name))
	}

	factories[name] = f

	// Get description by creating a temporary instance
	descriptions[name] = f().Description()
}

// List returns information about all registered engines, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for name := range factories {
		result = append(result, Info{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a rules engine by name.
// Returns an error if the name is not registered.
func Create(name string) (Rules, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown rules %q", name)
	}

	return f(), nil
}

// Exists checks if an engine with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

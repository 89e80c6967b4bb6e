package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blokus/internal/core"
)

// KeyMap defines the key bindings of a play session.
// Letter bindings accept both cases.
type KeyMap struct {
	Escape key.Binding
	Enter  key.Binding
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	About  key.Binding
	Back   key.Binding
	Cont   key.Binding
	Menu   key.Binding
	Quit   key.Binding
	Start  key.Binding

	// ForceQuit leaves the program without the quit confirmation.
	ForceQuit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Escape, k.Left, k.Right}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Escape, k.ForceQuit},
		{k.Start, k.About, k.Cont, k.Back},
		{k.Menu, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit (asks first)"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue / place"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move / prev orientation"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move / next orientation"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		About: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "about"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "B"),
			key.WithHelp("b", "back"),
		),
		Cont: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "continue"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("m", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit from stats"),
		),
		Start: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "start"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit now"),
		),
	}
}

// Translate maps a Bubble Tea key message to the game key it stands for.
// The second result is false for keys the game does not use.
func (k KeyMap) Translate(msg tea.KeyMsg) (core.Key, bool) {
	bindings := []struct {
		binding key.Binding
		key     core.Key
	}{
		{k.Escape, core.KeyEscape},
		{k.Enter, core.KeyEnter},
		{k.Left, core.KeyLeft},
		{k.Right, core.KeyRight},
		{k.Up, core.KeyUp},
		{k.Down, core.KeyDown},
		{k.About, core.KeyA},
		{k.Back, core.KeyB},
		{k.Cont, core.KeyC},
		{k.Menu, core.KeyM},
		{k.Quit, core.KeyQ},
		{k.Start, core.KeyS},
	}

	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.key, true
		}
	}

	// Letters without a binding of their own (the D of "A or D") still reach
	// the game.
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return core.Letter(msg.Runes[0]), true
	}
	return "", false
}

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blokus/internal/config"
	"github.com/vovakirdan/tui-blokus/internal/core"
	"github.com/vovakirdan/tui-blokus/internal/game"
	"github.com/vovakirdan/tui-blokus/internal/pieces"
	_ "github.com/vovakirdan/tui-blokus/internal/rules/placeholder"
)

const frame = time.Second / 60

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	m, err := NewModel(cfg, pieces.MustLoad(), cfg.Runtime(), nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

// feed sends msg and returns the updated model and command.
func feed(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(m Model, at time.Duration) TickMsg {
	return TickMsg(m.start.Add(at))
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelInitialView(t *testing.T) {
	m := newTestModel(t)

	if m.Init() == nil {
		t.Error("Init() should start the frame loop")
	}
	view := m.View()
	if !strings.Contains(view, "<BLOKUS>") {
		t.Errorf("initial view should show the menu title")
	}
	if !strings.Contains(view, "[S start]") {
		t.Errorf("initial view should show the menu keys")
	}
}

func TestModelKeyThenTick(t *testing.T) {
	m := newTestModel(t)

	m, cmd := feed(t, m, runeKey('S'))
	if cmd != nil {
		t.Error("key events should not schedule commands")
	}
	if m.Session().Controller().State() != game.StateMenu {
		t.Fatal("keys should only take effect on the next frame")
	}

	m, cmd = feed(t, m, tick(m, frame))
	if cmd == nil || isQuit(cmd) {
		t.Error("tick should schedule the next tick")
	}
	if got := m.Session().Controller().State(); got != game.StateStartOptions {
		t.Errorf("state = %v, expected StartOptions", got)
	}
	if !strings.Contains(m.View(), "There are no options right now") {
		t.Error("view should show the options screen")
	}
}

func TestModelQuitConfirmation(t *testing.T) {
	m := newTestModel(t)

	m, _ = feed(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := feed(t, m, tick(m, frame))
	if isQuit(cmd) {
		t.Fatal("first Escape should only ask for confirmation")
	}
	if !strings.Contains(m.View(), "Are you sure you want to quit?") {
		t.Error("view should ask for confirmation")
	}

	// Let the first Escape release before pressing it again.
	m, _ = feed(t, m, tick(m, time.Second))
	m, _ = feed(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd = feed(t, m, tick(m, time.Second+frame))
	if !isQuit(cmd) {
		t.Error("confirmed quit should stop the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelForceQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := feed(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit immediately")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResizeKeepsState(t *testing.T) {
	m := newTestModel(t)
	m, _ = feed(t, m, runeKey('a'))
	m, _ = feed(t, m, tick(m, frame))

	m, _ = feed(t, m, tea.WindowSizeMsg{Width: 100, Height: 45})
	if m.screen.Width() != 100 || m.screen.Height() != 45 {
		t.Errorf("screen = %dx%d, expected 100x45", m.screen.Width(), m.screen.Height())
	}
	if got := m.Session().Controller().State(); got != game.StateAbout {
		t.Errorf("state = %v, resize should keep the game", got)
	}
	// Footer follows the new height.
	if !strings.HasPrefix(m.screen.Row(44), "[B back]") {
		t.Errorf("row 44 = %q", m.screen.Row(44))
	}
}

func TestNewModelUnknownRules(t *testing.T) {
	cfg := config.Default()
	cfg.Rules = "missing"
	if _, err := NewModel(cfg, pieces.MustLoad(), cfg.Runtime(), nil); err == nil {
		t.Error("NewModel() with unknown rules should fail")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.Set(0, 0, core.Cell{Rune: 'H', Style: core.NewStyle(core.ColorRed)})
	s.Set(1, 0, core.Cell{Rune: 'i', Style: core.NewStyle(core.ColorRed)})
	s.Set(0, 2, core.Cell{Rune: '█', Style: core.Style{Fg: core.ColorGray, Bg: core.ColorBlack}})

	out := RenderScreen(s)
	if !strings.Contains(out, "Hi") {
		t.Errorf("output should keep same-style runs together: %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("output should have 3 lines, got %q", out)
	}
	if !strings.Contains(out, "█") {
		t.Error("output should contain the block glyph")
	}
}

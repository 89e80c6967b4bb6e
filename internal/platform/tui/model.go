package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blokus/internal/config"
	"github.com/vovakirdan/tui-blokus/internal/core"
	"github.com/vovakirdan/tui-blokus/internal/game"
	"github.com/vovakirdan/tui-blokus/internal/pieces"
)

// Model is the Bubble Tea model for one Blokus play session.
type Model struct {
	session  *game.Session[core.Cell]
	screen   *core.Screen
	cfg      config.Config
	runtime  core.RuntimeConfig
	keys     KeyMap
	logger   *log.Logger
	start    time.Time
	quitting bool
}

// NewModel creates a play session sized by rt.
func NewModel(cfg config.Config, catalogue *pieces.Catalogue, rt core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctrl, err := game.NewFromConfig(cfg, catalogue)
	if err != nil {
		return Model{}, err
	}

	screen := core.NewScreen(rt.ScreenW, rt.ScreenH)
	session := game.NewSession(ctrl, core.NewKeyTracker(rt.ReleaseAfter), newCanvas(screen, cfg), game.LayoutFromConfig(cfg))
	session.OnTransition = func(from, to game.State, at time.Duration) {
		logger.Debug("state change", "from", from, "to", to, "at", at)
	}
	session.Draw()

	return Model{
		session: session,
		screen:  screen,
		cfg:     cfg,
		runtime: rt,
		keys:    DefaultKeyMap(),
		logger:  logger,
		start:   time.Now(),
	}, nil
}

// newCanvas creates a canvas covering the whole screen, ready for game.Render.
func newCanvas(s *core.Screen, cfg config.Config) *core.Canvas[core.Cell] {
	cv := core.NewScreenCanvas(s)
	game.SetupCanvas(cv, cfg.ColumnsPerSquare())
	return cv
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(game.Title),
		tickCmd(m.runtime.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues a key event for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.logger.Info("session aborted")
		m.quitting = true
		return m, tea.Quit
	}

	if k, ok := m.keys.Translate(msg); ok {
		m.session.Press(k)
	}
	return m, nil
}

// handleResize resizes the screen and redraws. The game state is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.session.SetCanvas(newCanvas(m.screen, m.cfg))
	m.session.Draw()
	return m, nil
}

// handleTick runs one frame.
func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	m.session.Step(t.Sub(m.start))

	if m.session.Done() {
		m.logger.Info("session finished", "frames", m.session.Frames())
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current screen buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Session returns the game session driven by the model.
func (m Model) Session() *game.Session[core.Cell] {
	return m.session
}

// Run starts the Bubble Tea program for a local play session.
func Run(cfg config.Config, catalogue *pieces.Catalogue, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, catalogue, rt, logger)
	if err != nil {
		return err
	}

	if logger != nil {
		logger.Info("session started", "rules", cfg.Rules, "width", rt.ScreenW, "height", rt.ScreenH)
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}

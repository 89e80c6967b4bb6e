package tcellui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-blokus/internal/config"
	"github.com/vovakirdan/tui-blokus/internal/core"
	"github.com/vovakirdan/tui-blokus/internal/game"
	"github.com/vovakirdan/tui-blokus/internal/pieces"
)

// Host drives one play session on a tcell screen.
type Host struct {
	screen  tcell.Screen
	buf     *buffer
	session *game.Session[cell]
	cfg     config.Config
	runtime core.RuntimeConfig
	logger  *log.Logger
	events  chan tcell.Event
	quit    chan struct{}
}

// NewHost creates a host on an initialized screen.
func NewHost(screen tcell.Screen, cfg config.Config, catalogue *pieces.Catalogue, rt core.RuntimeConfig, logger *log.Logger) (*Host, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctrl, err := game.NewFromConfig(cfg, catalogue)
	if err != nil {
		return nil, err
	}

	w, h := screen.Size()
	host := &Host{
		screen:  screen,
		buf:     newBuffer(w, h),
		cfg:     cfg,
		runtime: rt,
		logger:  logger,
		events:  make(chan tcell.Event, 32),
		quit:    make(chan struct{}),
	}
	host.session = game.NewSession(ctrl, core.NewKeyTracker(rt.ReleaseAfter), host.newCanvas(), game.LayoutFromConfig(cfg))
	host.session.OnTransition = func(from, to game.State, at time.Duration) {
		logger.Debug("state change", "from", from, "to", to, "at", at)
	}
	return host, nil
}

func (h *Host) newCanvas() *core.Canvas[cell] {
	cv := core.NewCanvas[cell](h.buf, sink{}, h.buf.Width(), h.buf.Height())
	game.SetupCanvas(cv, h.cfg.ColumnsPerSquare())
	return cv
}

// Session returns the game session driven by the host.
func (h *Host) Session() *game.Session[cell] {
	return h.session
}

// Run polls terminal events on a separate goroutine and runs frames at the
// configured tick rate until the player quits or ctx is cancelled.
func (h *Host) Run(ctx context.Context) error {
	h.screen.SetTitle(game.Title)
	h.screen.HideCursor()

	defer close(h.quit)
	go h.poll()

	ticker := time.NewTicker(h.runtime.FrameInterval())
	defer ticker.Stop()

	start := time.Now()
	h.session.Draw()
	h.buf.flush(h.screen)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-h.events:
			if quit := h.handleEvent(ev); quit {
				h.logger.Info("session aborted")
				return nil
			}

		case t := <-ticker.C:
			h.session.Step(t.Sub(start))
			h.buf.flush(h.screen)
			if h.session.Done() {
				h.logger.Info("session finished", "frames", h.session.Frames())
				return nil
			}
		}
	}
}

// poll forwards screen events until the screen is finalized or Run returns.
func (h *Host) poll() {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.quit:
			return
		}
	}
}

// handleEvent applies one terminal event. It reports whether the program
// should exit immediately.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.buf.resize(w, hgt)
		h.session.SetCanvas(h.newCanvas())
		h.session.Draw()
		h.screen.Sync()
		h.buf.flush(h.screen)

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if k, ok := translateKey(ev); ok {
			h.session.Press(k)
		}
	}
	return false
}

// translateKey maps a tcell key event to the game key it stands for.
func translateKey(ev *tcell.EventKey) (core.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return core.KeyEscape, true
	case tcell.KeyEnter:
		return core.KeyEnter, true
	case tcell.KeyLeft:
		return core.KeyLeft, true
	case tcell.KeyRight:
		return core.KeyRight, true
	case tcell.KeyUp:
		return core.KeyUp, true
	case tcell.KeyDown:
		return core.KeyDown, true
	case tcell.KeyRune:
		return core.Letter(ev.Rune()), true
	}
	return "", false
}

// Run opens the terminal, plays one session and restores the terminal.
func Run(ctx context.Context, cfg config.Config, catalogue *pieces.Catalogue, rt core.RuntimeConfig, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcellui: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: cannot initialize screen: %w", err)
	}
	defer screen.Fini()

	host, err := NewHost(screen, cfg, catalogue, rt, logger)
	if err != nil {
		return err
	}
	if logger != nil {
		w, h := screen.Size()
		logger.Info("session started", "rules", cfg.Rules, "width", w, "height", h)
	}
	return host.Run(ctx)
}

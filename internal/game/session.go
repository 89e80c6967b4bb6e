package game

import (
	"time"

	"github.com/vovakirdan/tui-blokus/internal/core"
)

// TransitionFunc observes state changes. at is the session time of the
// frame that caused the change.
type TransitionFunc func(from, to State, at time.Duration)

// Session is one player's frame loop: key events are collected between
// frames, and each Step turns them into a snapshot, advances the controller
// and redraws the canvas. Hosts own the clock and the display.
type Session[C any] struct {
	ctrl   *Controller
	keys   *core.KeyTracker
	canvas *core.Canvas[C]
	layout Layout
	frames uint64

	// OnTransition, if set, is called after every state change.
	OnTransition TransitionFunc
}

// NewSession creates a session drawing onto canvas. The canvas should
// already be prepared with SetupCanvas.
func NewSession[C any](ctrl *Controller, keys *core.KeyTracker, canvas *core.Canvas[C], layout Layout) *Session[C] {
	return &Session[C]{
		ctrl:   ctrl,
		keys:   keys,
		canvas: canvas,
		layout: layout,
	}
}

// Press records a key-down event for the next frame.
func (s *Session[C]) Press(k core.Key) {
	s.keys.Press(k)
}

// Step runs one frame at session time now and redraws the canvas.
func (s *Session[C]) Step(now time.Duration) {
	from := s.ctrl.State()
	s.ctrl.Advance(s.keys.Snapshot(now), now)
	s.frames++

	if to := s.ctrl.State(); to != from && s.OnTransition != nil {
		s.OnTransition(from, to, now)
	}
	s.Draw()
}

// Draw renders the controller's current state.
func (s *Session[C]) Draw() {
	if s.canvas == nil {
		return
	}
	Render(s.ctrl.RenderState(), s.canvas, s.layout)
}

// SetCanvas replaces the canvas, e.g. after the display was resized.
func (s *Session[C]) SetCanvas(cv *core.Canvas[C]) {
	s.canvas = cv
}

// Canvas returns the canvas being drawn on.
func (s *Session[C]) Canvas() *core.Canvas[C] {
	return s.canvas
}

// Controller returns the session's controller.
func (s *Session[C]) Controller() *Controller {
	return s.ctrl
}

// Frames returns the number of frames stepped so far.
func (s *Session[C]) Frames() uint64 {
	return s.frames
}

// Done reports whether the player confirmed quitting.
func (s *Session[C]) Done() bool {
	return s.ctrl.Done()
}

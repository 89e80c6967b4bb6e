package core

import (
	"time"
	"unicode"
)

// Key identifies a physical key, independent of the terminal backend.
// Letter keys are always lowercase.
type Key string

// Keys the game reacts to.
const (
	KeyEscape Key = "esc"
	KeyEnter  Key = "enter"
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyUp     Key = "up"
	KeyDown   Key = "down"

	KeyA Key = "a"
	KeyB Key = "b"
	KeyC Key = "c"
	KeyD Key = "d"
	KeyM Key = "m"
	KeyQ Key = "q"
	KeyS Key = "s"
)

// Letter returns the key for a letter, folding case.
func Letter(r rune) Key {
	return Key(string(unicode.ToLower(r)))
}

// KeyState is the state of a key during one frame.
type KeyState int

const (
	KeyReleased KeyState = iota // Not down
	KeyPressed                  // Went down this frame
	KeyHeld                     // Down on this and at least the previous frame
)

// String returns a human-readable name for the key state.
func (s KeyState) String() string {
	switch s {
	case KeyReleased:
		return "Released"
	case KeyPressed:
		return "Pressed"
	case KeyHeld:
		return "Held"
	default:
		return "Unknown"
	}
}

// InputSnapshot is the state of every key for a single frame.
// Keys absent from the map are released.
type InputSnapshot map[Key]KeyState

// NewInputSnapshot creates an empty snapshot (all keys released).
func NewInputSnapshot() InputSnapshot {
	return make(InputSnapshot)
}

// State returns the state of k.
func (s InputSnapshot) State(k Key) KeyState {
	return s[k]
}

// Pressed returns true if k went down this frame.
func (s InputSnapshot) Pressed(k Key) bool {
	return s[k] == KeyPressed
}

// Held returns true if k has been down since an earlier frame.
func (s InputSnapshot) Held(k Key) bool {
	return s[k] == KeyHeld
}

// KeyTracker builds per-frame snapshots from key-down events.
//
// Terminals report key presses (and auto-repeat) but never releases, so a
// key counts as held while events for it keep arriving within releaseAfter
// of each other and as released once they stop.
type KeyTracker struct {
	releaseAfter time.Duration
	pending      map[Key]bool
	lastSeen     map[Key]time.Duration
}

// NewKeyTracker creates a tracker with the given release window.
func NewKeyTracker(releaseAfter time.Duration) *KeyTracker {
	return &KeyTracker{
		releaseAfter: releaseAfter,
		pending:      make(map[Key]bool),
		lastSeen:     make(map[Key]time.Duration),
	}
}

// Press records a key-down event received since the last snapshot.
func (t *KeyTracker) Press(k Key) {
	t.pending[k] = true
}

// Snapshot returns the key states for the frame at time now and starts
// collecting events for the next frame.
func (t *KeyTracker) Snapshot(now time.Duration) InputSnapshot {
	snap := NewInputSnapshot()

	for k := range t.pending {
		if _, down := t.lastSeen[k]; down {
			snap[k] = KeyHeld
		} else {
			snap[k] = KeyPressed
		}
		t.lastSeen[k] = now
		delete(t.pending, k)
	}

	for k, seen := range t.lastSeen {
		if _, ok := snap[k]; ok {
			continue
		}
		if now-seen < t.releaseAfter {
			snap[k] = KeyHeld
			continue
		}
		delete(t.lastSeen, k)
	}

	return snap
}

// Reset forgets every key, as if all were released.
func (t *KeyTracker) Reset() {
	clear(t.pending)
	clear(t.lastSeen)
}

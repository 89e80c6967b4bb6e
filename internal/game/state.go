// Package game implements the Blokus game flow: a finite state machine that
// consumes one input snapshot per frame, and a pure render step that draws
// the machine's state onto a cell canvas.
package game

import "fmt"

// State is one screen of the game flow.
type State int

const (
	StateMenu State = iota
	StateAbout
	StateStartOptions
	StateViewBoard
	StatePieceSelect
	StatePieceMove
	StatePositionAccept
	StatePositionReject
	StatePlayerFinalMove
	StateGameOver
	StateStats
	StateQuit
)

var stateNames = [...]string{
	StateMenu:            "Menu",
	StateAbout:           "About",
	StateStartOptions:    "StartOptions",
	StateViewBoard:       "ViewBoard",
	StatePieceSelect:     "PieceSelect",
	StatePieceMove:       "PieceMove",
	StatePositionAccept:  "PositionAccept",
	StatePositionReject:  "PositionReject",
	StatePlayerFinalMove: "PlayerFinalMove",
	StateGameOver:        "GameOver",
	StateStats:           "Stats",
	StateQuit:            "Quit",
}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool {
	return s >= StateMenu && s <= StateQuit
}

// String returns the state name.
func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// showsBoard reports whether the board is drawn behind this state's text.
func (s State) showsBoard() bool {
	switch s {
	case StateViewBoard, StatePieceSelect, StatePieceMove,
		StatePositionAccept, StatePositionReject,
		StatePlayerFinalMove, StateGameOver:
		return true
	}
	return false
}

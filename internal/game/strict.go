package game

import "fmt"

// strictStates turns an attempt to enter an undeclared state into a panic.
// Release builds ignore such attempts; the blokus_debug build tag and the
// package tests enable the check.
var strictStates = false

func invalidState(s State) {
	if strictStates {
		panic(fmt.Sprintf("game: invalid state %d", int(s)))
	}
}

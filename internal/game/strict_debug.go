//go:build blokus_debug

package game

func init() {
	strictStates = true
}

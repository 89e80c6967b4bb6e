package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blokus/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings",
	Long:  `Shows the keys the game reacts to.`,
	Run:   runKeys,
}

func runKeys(_ *cobra.Command, _ []string) {
	h := help.New()
	h.ShowAll = true
	fmt.Println(h.View(tui.DefaultKeyMap()))
}

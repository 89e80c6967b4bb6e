package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blokus/internal/registry"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List available rules engines",
	Long:  `Shows every rules engine registered in the client.`,
	Run:   runRules,
}

func runRules(_ *cobra.Command, _ []string) {
	engines := registry.List()

	if len(engines) == 0 {
		fmt.Println("No rules engines available.")
		return
	}

	fmt.Println("Available rules engines:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range engines {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	// Print engines
	for _, e := range engines {
		fmt.Printf("  %-*s  %s\n", maxNameLen, e.Name, e.Description)
	}

	fmt.Println()
	fmt.Println("Run 'blokus play --rules <name>' to play with an engine.")
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blokus/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration file.

Save it as ~/.blokus/config.yaml or ./configs/blokus.yaml and edit it
to change the board, timings or rules engine.

Examples:
  mkdir -p ~/.blokus && blokus config > ~/.blokus/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}

// blokus is a terminal client for the Blokus board game.
//
// Usage:
//
//	blokus play              - Play in this terminal
//	blokus serve             - Start SSH server for remote play
//	blokus pieces            - Show the piece catalogue
//	blokus rules             - List available rules engines
//	blokus keys              - Show key bindings
//	blokus config            - Print the default configuration
//
// Global flags:
//
//	--config <path> - Config file (default: ~/.blokus/config.yaml, ./configs/blokus.yaml)
//	--fps <rate>    - Override the tick rate
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blokus/internal/config"

	// Import rules engines to register them
	_ "github.com/vovakirdan/tui-blokus/internal/rules/placeholder"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blokus",
	Short: "Blokus - place polyominoes on a board in your terminal",
	Long: `Blokus is a terminal client for the Blokus board game.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  pieces   - Show the piece catalogue
  rules    - List available rules engines
  keys     - Show key bindings
  config   - Print the default configuration

Examples:
  blokus play
  blokus play --backend tcell
  blokus serve --ssh :2222
  blokus pieces --all`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Display.TickRate = flagFPS
	}
	return cfg, nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blokus/internal/pieces"
	"github.com/vovakirdan/tui-blokus/internal/platform/tcellui"
	"github.com/vovakirdan/tui-blokus/internal/platform/tui"
	"github.com/vovakirdan/tui-blokus/internal/registry"
)

var (
	flagBackend string
	flagRules   string
	flagLogFile string
	flagDebug   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  S / A / B / C  - Menu choices shown at the bottom of the screen
  Left/Right     - Change orientation while selecting a piece
  Arrow keys     - Hold to move the piece
  Enter          - Continue / place the piece
  Esc            - Quit (asks for confirmation, B goes back)
  Ctrl+C         - Exit immediately

Backends:
  tea    - Bubble Tea (default)
  tcell  - tcell cell buffer

Examples:
  blokus play
  blokus play --backend tcell
  blokus play --rules placeholder --fps 30
  blokus play --log-file blokus.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "tea", "Terminal backend: tea, tcell")
	playCmd.Flags().StringVar(&flagRules, "rules", "", "Rules engine (default: from config)")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write a session log to this file")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log every state change")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagRules != "" {
		cfg.Rules = flagRules
	}

	// Check if rules engine exists
	if !registry.Exists(cfg.Rules) {
		fmt.Fprintf(os.Stderr, "Error: unknown rules %q\n", cfg.Rules)
		fmt.Fprintln(os.Stderr, "Run 'blokus rules' to see available engines.")
		os.Exit(1)
	}

	catalogue, err := pieces.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := cfg.Runtime()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	var runErr error
	switch flagBackend {
	case "tea":
		runErr = tui.Run(cfg, catalogue, rt, logger)
	case "tcell":
		runErr = tcellui.Run(context.Background(), cfg, catalogue, rt, logger)
	default:
		runErr = fmt.Errorf("unknown backend %q (use tea or tcell)", flagBackend)
	}

	logger.Info("session ended")
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newLogger creates the session logger. Without a path everything is
// discarded, since the terminal belongs to the game.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "blokus",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}

	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}

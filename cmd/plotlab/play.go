package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mgirault/plotlab/internal/config"
	"github.com/mgirault/plotlab/internal/core"
	"github.com/mgirault/plotlab/internal/platform/tui"
	"github.com/mgirault/plotlab/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a play session",
	Long: `Start a play session in the terminal.

A hidden function is plotted; type expressions in x until your curve
matches it. The expression is re-plotted and re-scored on every
keystroke.

Controls:
  Enter      - Next level (after a match or skip)
  Tab        - Skip the level (costs points)
  Ctrl+G     - Reveal a hint (limited supply)
  Esc/Ctrl+C - Quit and save the result

Examples:
  plotlab play
  plotlab play --seed 42
  plotlab play --config ./my-tiers.yaml`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Terminal size, with defaults when not a TTY
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(cfg, store, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}

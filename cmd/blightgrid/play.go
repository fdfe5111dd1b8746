package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blightgrid/internal/core"
	"github.com/vovakirdan/blightgrid/internal/platform/tui"
	"github.com/vovakirdan/blightgrid/internal/sim"
	"github.com/vovakirdan/blightgrid/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Explore a world",
	Long: `Open a world in the terminal.

Controls:
  Arrows/hjkl/wasd  - Move the cursor
  Space/Enter       - Reveal and grow the cell under the cursor
  F                 - Flag a hidden cell
  C                 - Jump to the latest reveals
  N                 - Next world (seed advances)
  R                 - Random world (seed from the clock)
  H                 - More keys
  Q/Ctrl+C          - Quit

Examples:
  blightgrid play
  blightgrid play --seed 1947912873
  blightgrid play --preset gentle --config ./world.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	wcfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS

	// The run log is optional; the world works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	}

	w := sim.New(wcfg.Params(), wcfg.Seed)
	runErr := tui.Run(w, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running world: %w", runErr)
	}
	return nil
}

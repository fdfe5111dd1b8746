// blightgrid explores an endless procedurally generated grid where growth
// spreads from the cells you promote and corruption eats it back.
//
// Usage:
//
//	blightgrid play          - Explore a world in the terminal
//	blightgrid sim           - Run a world headless and print its statistics
//	blightgrid serve         - Start SSH server for remote play
//	blightgrid runs          - Show the run log
//	blightgrid presets       - List corruption presets
//
// Global flags:
//
//	--seed <value>    - World seed (default: from config)
//	--config <path>   - World config YAML
//	--preset <name>   - Corruption preset: gentle, standard, harsh
//	--db <path>       - Run log database (default: ~/.blightgrid/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blightgrid/internal/config"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     uint32
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blightgrid",
	Short: "Blightgrid - grow an endless world and hold back the blight",
	Long: `Blightgrid generates an endless grid of tiles from a seed. Promoting a
cell reveals it and starts growth that spreads to clean neighbors, while
corrupted cells release regions that wither what they touch.

Available commands:
  play     - Explore a world in the terminal
  sim      - Run a world headless and print its statistics
  serve    - Start SSH server for remote play
  runs     - Show the run log
  presets  - List corruption presets

Examples:
  blightgrid play
  blightgrid play --seed 42 --preset harsh
  blightgrid sim --steps 5000
  blightgrid serve --ssh :2222
  blightgrid runs --interactive`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frames per second")
	rootCmd.PersistentFlags().Uint32Var(&flagSeed, "seed", 0, "World seed (0 = value from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blightgrid/runs.db", "Path to run log database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom world config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Corruption preset: gentle, standard, harsh")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(presetsCmd)
}

// newLogger creates the command-line logger at the requested level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig reads the world config and applies the command-line overrides.
func loadConfig() (config.WorldConfig, error) {
	cfg, err := config.LoadWorld(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset := cfg.Preset
	if flagPreset != "" {
		preset = config.Preset(flagPreset)
	}
	if !preset.Valid() {
		return cfg, fmt.Errorf("unknown preset %q", preset)
	}
	config.ApplyPreset(&cfg, preset)

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

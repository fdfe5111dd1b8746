package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blightgrid/internal/platform/tui"
	"github.com/vovakirdan/blightgrid/internal/storage"
)

var (
	flagRunsLimit   int
	flagInteractive bool
	flagClear       bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the run log",
	Long: `Display the best recorded runs, ranked by cells revealed.

With --seed, only runs of that world are listed.

Examples:
  blightgrid runs
  blightgrid runs --seed 1947912873
  blightgrid runs --interactive`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runRuns(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return fmt.Errorf("clearing runs: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Run log cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		seed := flagSeed
		if seed == 0 {
			if wcfg, cfgErr := loadConfig(); cfgErr == nil {
				seed = wcfg.Seed
			}
		}
		return tui.RunRunBoard(store, seed, width, height)
	}

	var runs []storage.RunRecord
	if flagSeed != 0 {
		runs, err = store.RunsForSeed(flagSeed)
		if len(runs) > flagRunsLimit && flagRunsLimit > 0 {
			runs = runs[:flagRunsLimit]
		}
	} else {
		runs, err = store.TopRuns(flagRunsLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'blightgrid play' or 'blightgrid sim --record' to log one.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-6s  %-7s  %-10s  %-8s  %s\n",
		"Rank", "Seed", "Revealed", "Grown", "Corrupt", "Player", "Length", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-6s  %-7s  %-10s  %-8s  %s\n",
		"----", "----", "--------", "-----", "-------", "------", "------", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = r.Source
		}
		fmt.Fprintf(out, "  %-4d  %-10d  %-8d  %-6d  %-7d  %-10s  %-8s  %s\n",
			i+1, r.Seed, r.Revealed, r.Grown, r.Corrupted, player,
			tui.FormatDuration(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	writeRunSummary(out, store)
	return nil
}

// writeRunSummary prints the log totals and the best run's world. Lookup
// failures only drop the footer.
func writeRunSummary(out io.Writer, store *storage.Store) {
	sum, err := store.Summary()
	if err != nil || sum.Runs == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Runs: %d  Best: %d revealed  Average: %.1f\n",
		sum.Runs, sum.BestRevealed, sum.AvgRevealed)
	if best, err := store.BestRun(); err == nil && best != nil {
		fmt.Fprintf(out, "Best world: seed %d (%s, %s)\n",
			best.Seed, best.CreatedAt.Format("2006-01-02"), tui.FormatDuration(best.Duration))
	}
}

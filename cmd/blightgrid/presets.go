package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blightgrid/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List corruption presets",
	Long:  `Shows the corruption settings each preset produces from the loaded config.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func presetName(p config.Preset) string {
	if p == "" {
		return "custom"
	}
	return string(p)
}

func runPresets(cmd *cobra.Command, _ []string) error {
	base, err := config.LoadWorld(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-9s  %-11s  %-13s  %s\n", "Preset", "Probability", "Region energy", "Recorrupt")
	fmt.Fprintf(out, "  %-9s  %-11s  %-13s  %s\n", "------", "-----------", "-------------", "---------")
	for _, p := range config.Presets() {
		cfg := base
		config.ApplyPreset(&cfg, p)
		k := cfg.Corruption
		fmt.Fprintf(out, "  %-9s  %-11.3f  %-13s  %.3f\n",
			presetName(p), k.BaseProbability,
			fmt.Sprintf("%d..%d", k.RegionEnergyMin, k.RegionEnergyMax), k.RecorruptProbability)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use --preset <name> with play, sim, or serve.")
	return nil
}

package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/blightgrid/internal/sim"
)

//go:embed defaults/world.yaml
var defaultWorldYAML []byte

// DefaultWorldConfig returns the built-in world configuration.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		Seed:   sim.DefaultSeed,
		Preset: PresetStandard,
		Tiles: TilesConfig{
			Size:       20,
			MinCorrupt: 20,
			MaxCorrupt: 120,
			StartingLocations: []Point{
				{0, 0}, {1, 0}, {0, 1}, {-1, 0}, {0, -1},
			},
		},
		Growth: GrowthConfig{
			MaxLevel:     4,
			MaxAuto:      2,
			MaxAutoDist:  80,
			MaxAutoBatch: 1024,
		},
		Corruption: CorruptionConfig{
			MaxCellEnergy:        3,
			BaseProbability:      0.05,
			RegionEnergyMin:      12,
			RegionEnergyMax:      36,
			RecorruptProbability: 0.1,
		},
		Timing: TimingConfig{
			GenTilesPerStep:    12,
			GenInterval:        2 * time.Millisecond,
			GrowthInterval:     60 * time.Millisecond,
			GrowthJitter:       20 * time.Millisecond,
			CorruptionInterval: 30 * time.Millisecond,
			CorruptionJitter:   20 * time.Millisecond,
		},
	}
}

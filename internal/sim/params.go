package sim

import (
	"time"

	"github.com/vovakirdan/blightgrid/internal/world"
)

// Params holds every mechanic and scheduling knob of a simulation.
type Params struct {
	World world.Params

	// Growth
	MaxAutoDist  int // Growth tasks farther than this from the origin wait
	MaxAutoBatch int // Hard cap on tasks or regions processed per step

	// Corruption
	MaxCorruptionEnergy       int     // Per-cell energy cap inside a region
	BaseCorruptionProbability float64 // Corruption chance per point of energy
	RegionEnergyMin           int
	RegionEnergyMax           int
	RecorruptProbability      float64 // Chance to deepen a visited cell instead of spreading

	// Scheduling
	GenTilesPerStep    int
	GenInterval        time.Duration
	GrowthInterval     time.Duration
	GrowthJitter       time.Duration
	CorruptionInterval time.Duration
	CorruptionJitter   time.Duration
}

// DefaultParams returns the standard mechanics and timings.
func DefaultParams() Params {
	return Params{
		World:                     world.DefaultParams(),
		MaxAutoDist:               80,
		MaxAutoBatch:              1024,
		MaxCorruptionEnergy:       3,
		BaseCorruptionProbability: 0.05,
		RegionEnergyMin:           12,
		RegionEnergyMax:           36,
		RecorruptProbability:      0.1,
		GenTilesPerStep:           12,
		GenInterval:               2 * time.Millisecond,
		GrowthInterval:            60 * time.Millisecond,
		GrowthJitter:              20 * time.Millisecond,
		CorruptionInterval:        30 * time.Millisecond,
		CorruptionJitter:          20 * time.Millisecond,
	}
}

// DefaultSeed is the world seed used when none is configured.
const DefaultSeed uint32 = 1947912873

// Package config loads world configuration from YAML and the environment
// and turns it into simulation parameters.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blightgrid/internal/sim"
	"github.com/vovakirdan/blightgrid/internal/world"
)

// WorldConfig contains every tunable of a world.
type WorldConfig struct {
	Seed       uint32           `yaml:"seed" env:"BLIGHTGRID_SEED"`
	Preset     Preset           `yaml:"preset" env:"BLIGHTGRID_PRESET"`
	Tiles      TilesConfig      `yaml:"tiles"`
	Growth     GrowthConfig     `yaml:"growth"`
	Corruption CorruptionConfig `yaml:"corruption"`
	Timing     TimingConfig     `yaml:"timing"`
}

// TilesConfig defines tile generation.
type TilesConfig struct {
	Size              int     `yaml:"size" env:"BLIGHTGRID_TILE_SIZE"`
	MinCorrupt        int     `yaml:"min_corrupt" env:"BLIGHTGRID_MIN_CORRUPT"`
	MaxCorrupt        int     `yaml:"max_corrupt" env:"BLIGHTGRID_MAX_CORRUPT"`
	StartingLocations []Point `yaml:"starting_locations"`
}

// Point is a grid coordinate in YAML form.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// GrowthConfig defines growth limits and throttling.
type GrowthConfig struct {
	MaxLevel     int `yaml:"max_level" env:"BLIGHTGRID_MAX_GROWTH"`
	MaxAuto      int `yaml:"max_auto" env:"BLIGHTGRID_MAX_AUTO_GROWTH"`
	MaxAutoDist  int `yaml:"max_auto_dist" env:"BLIGHTGRID_MAX_AUTO_DIST"`
	MaxAutoBatch int `yaml:"max_auto_batch" env:"BLIGHTGRID_MAX_AUTO_BATCH"`
}

// CorruptionConfig defines corruption region behavior.
type CorruptionConfig struct {
	MaxCellEnergy        int     `yaml:"max_cell_energy" env:"BLIGHTGRID_MAX_CORRUPTION_ENERGY"`
	BaseProbability      float64 `yaml:"base_probability" env:"BLIGHTGRID_BASE_CORRUPTION_PROBABILITY"`
	RegionEnergyMin      int     `yaml:"region_energy_min" env:"BLIGHTGRID_REGION_ENERGY_MIN"`
	RegionEnergyMax      int     `yaml:"region_energy_max" env:"BLIGHTGRID_REGION_ENERGY_MAX"`
	RecorruptProbability float64 `yaml:"recorrupt_probability" env:"BLIGHTGRID_RECORRUPT_PROBABILITY"`
}

// TimingConfig defines how often each queue is stepped.
type TimingConfig struct {
	GenTilesPerStep    int           `yaml:"gen_tiles_per_step" env:"BLIGHTGRID_GEN_TILES_PER_STEP"`
	GenInterval        time.Duration `yaml:"gen_interval" env:"BLIGHTGRID_GEN_INTERVAL"`
	GrowthInterval     time.Duration `yaml:"growth_interval" env:"BLIGHTGRID_GROWTH_INTERVAL"`
	GrowthJitter       time.Duration `yaml:"growth_jitter" env:"BLIGHTGRID_GROWTH_JITTER"`
	CorruptionInterval time.Duration `yaml:"corruption_interval" env:"BLIGHTGRID_CORRUPTION_INTERVAL"`
	CorruptionJitter   time.Duration `yaml:"corruption_jitter" env:"BLIGHTGRID_CORRUPTION_JITTER"`
}

// Validate reports every inconsistent setting at once.
func (c WorldConfig) Validate() error {
	var errs []error
	check := func(bad bool, format string, args ...any) {
		if bad {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	t := c.Tiles
	check(t.Size < 3, "tiles.size %d is below 3", t.Size)
	check(t.MinCorrupt < 0, "tiles.min_corrupt %d is negative", t.MinCorrupt)
	check(t.MinCorrupt > t.MaxCorrupt, "tiles.min_corrupt %d exceeds max_corrupt %d", t.MinCorrupt, t.MaxCorrupt)
	if t.Size >= 3 {
		interior := (t.Size - 2) * (t.Size - 2)
		check(t.MaxCorrupt > interior, "tiles.max_corrupt %d does not fit the %d interior cells", t.MaxCorrupt, interior)
	}

	g := c.Growth
	check(g.MaxLevel < 1 || g.MaxLevel > 255, "growth.max_level %d outside [1, 255]", g.MaxLevel)
	check(g.MaxAuto < 1 || g.MaxAuto > g.MaxLevel, "growth.max_auto %d outside [1, max_level]", g.MaxAuto)
	check(g.MaxAutoDist < 0, "growth.max_auto_dist %d is negative", g.MaxAutoDist)
	check(g.MaxAutoBatch < 1, "growth.max_auto_batch %d must be positive", g.MaxAutoBatch)

	k := c.Corruption
	check(k.MaxCellEnergy < 1, "corruption.max_cell_energy %d must be positive", k.MaxCellEnergy)
	check(k.RegionEnergyMin < 1, "corruption.region_energy_min %d must be positive", k.RegionEnergyMin)
	check(k.RegionEnergyMin > k.RegionEnergyMax, "corruption.region_energy_min %d exceeds region_energy_max %d",
		k.RegionEnergyMin, k.RegionEnergyMax)
	check(k.BaseProbability < 0 || k.BaseProbability > 1, "corruption.base_probability %g outside [0, 1]", k.BaseProbability)
	check(k.RecorruptProbability < 0 || k.RecorruptProbability > 1,
		"corruption.recorrupt_probability %g outside [0, 1]", k.RecorruptProbability)

	m := c.Timing
	check(m.GenTilesPerStep < 1, "timing.gen_tiles_per_step %d must be positive", m.GenTilesPerStep)
	check(m.GenInterval <= 0 || m.GrowthInterval <= 0 || m.CorruptionInterval <= 0, "timing intervals must be positive")
	check(m.GrowthJitter < 0 || m.CorruptionJitter < 0, "timing jitter must not be negative")

	check(!c.Preset.Valid(), "unknown preset %q", c.Preset)

	return errors.Join(errs...)
}

// Params converts the configuration into simulation parameters.
func (c WorldConfig) Params() sim.Params {
	starts := make([]world.GridCoord, len(c.Tiles.StartingLocations))
	for i, pt := range c.Tiles.StartingLocations {
		starts[i] = world.G(pt.X, pt.Y)
	}

	return sim.Params{
		World: world.Params{
			TileSize:          c.Tiles.Size,
			MinCorruptPerTile: c.Tiles.MinCorrupt,
			MaxCorruptPerTile: c.Tiles.MaxCorrupt,
			MaxGrowth:         c.Growth.MaxLevel,
			MaxAutoGrowth:     c.Growth.MaxAuto,
			StartingLocations: starts,
		},
		MaxAutoDist:               c.Growth.MaxAutoDist,
		MaxAutoBatch:              c.Growth.MaxAutoBatch,
		MaxCorruptionEnergy:       c.Corruption.MaxCellEnergy,
		BaseCorruptionProbability: c.Corruption.BaseProbability,
		RegionEnergyMin:           c.Corruption.RegionEnergyMin,
		RegionEnergyMax:           c.Corruption.RegionEnergyMax,
		RecorruptProbability:      c.Corruption.RecorruptProbability,
		GenTilesPerStep:           c.Timing.GenTilesPerStep,
		GenInterval:               c.Timing.GenInterval,
		GrowthInterval:            c.Timing.GrowthInterval,
		GrowthJitter:              c.Timing.GrowthJitter,
		CorruptionInterval:        c.Timing.CorruptionInterval,
		CorruptionJitter:          c.Timing.CorruptionJitter,
	}
}

package config

// Preset represents a named corruption intensity.
type Preset string

const (
	PresetGentle   Preset = "gentle"
	PresetStandard Preset = "standard"
	PresetHarsh    Preset = "harsh"
)

// Presets lists the known presets in order of intensity.
func Presets() []Preset {
	return []Preset{PresetGentle, PresetStandard, PresetHarsh}
}

// Valid reports whether p is a known preset. The empty preset is valid and
// means the configured values are used as they are.
func (p Preset) Valid() bool {
	switch p {
	case "", PresetGentle, PresetStandard, PresetHarsh:
		return true
	default:
		return false
	}
}

// ApplyPreset scales the corruption settings of cfg for the given preset
// and records it. Standard and empty presets leave the values unchanged.
func ApplyPreset(cfg *WorldConfig, preset Preset) {
	cfg.Preset = preset

	k := &cfg.Corruption
	switch preset {
	case PresetGentle:
		k.BaseProbability /= 2
		k.RegionEnergyMin = max(1, k.RegionEnergyMin*2/3)
		k.RegionEnergyMax = max(k.RegionEnergyMin, k.RegionEnergyMax*2/3)
		k.RecorruptProbability /= 2
	case PresetHarsh:
		k.BaseProbability = min(1, k.BaseProbability*1.6)
		k.RegionEnergyMin = k.RegionEnergyMin * 3 / 2
		k.RegionEnergyMax = k.RegionEnergyMax * 4 / 3
		k.RegionEnergyMax = max(k.RegionEnergyMin, k.RegionEnergyMax)
		k.RecorruptProbability = min(1, k.RecorruptProbability*2)
	}
}

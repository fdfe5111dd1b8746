package core

// Color is a palette slot for a screen cell. The front end maps each slot to
// a terminal color.
type Color uint8

// Palette slots used when drawing the world.
const (
	ColorDefault Color = iota
	ColorHidden        // Unrevealed cells
	ColorFlag
	ColorEmpty
	ColorContaminated
	ColorCorrupt
	ColorGrowth1
	ColorGrowth2
	ColorGrowth3
	ColorGrowth4
	ColorCursor
	ColorStatus
)

// GrowthColor returns the palette slot for a growth level. Levels above the
// palette reuse the brightest slot.
func GrowthColor(level int) Color {
	switch {
	case level <= 0:
		return ColorEmpty
	case level >= 4:
		return ColorGrowth4
	default:
		return ColorGrowth1 + Color(level-1)
	}
}

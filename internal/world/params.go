package world

// Params holds the fixed mechanics used to lay out and generate tiles and to
// cap growth. It is built from configuration and never changes while a
// world is running.
type Params struct {
	TileSize          int
	MinCorruptPerTile int
	MaxCorruptPerTile int
	MaxGrowth         int // Hard cap for any cell
	MaxAutoGrowth     int // Cap used when growth spreads on its own

	// StartingLocations are revealed on reset and never corrupted by generation.
	StartingLocations []GridCoord
}

// DefaultParams returns the standard world mechanics.
func DefaultParams() Params {
	return Params{
		TileSize:          20,
		MinCorruptPerTile: 20,
		MaxCorruptPerTile: 120,
		MaxGrowth:         4,
		MaxAutoGrowth:     2,
		StartingLocations: DefaultStartingLocations(),
	}
}

// DefaultStartingLocations returns the origin and its four orthogonal neighbors.
func DefaultStartingLocations() []GridCoord {
	return []GridCoord{
		{0, 0},
		{1, 0},
		{0, 1},
		{-1, 0},
		{0, -1},
	}
}

// CellsPerTile returns the number of cells in one tile.
func (p Params) CellsPerTile() int {
	return p.TileSize * p.TileSize
}

// InteriorSize returns the edge length of a tile without its one-cell border.
func (p Params) InteriorSize() int {
	if p.TileSize < 2 {
		return 0
	}
	return p.TileSize - 2
}

// IsStartingLocation reports whether g is one of the starting locations.
func (p Params) IsStartingLocation(g GridCoord) bool {
	for _, s := range p.StartingLocations {
		if s == g {
			return true
		}
	}
	return false
}

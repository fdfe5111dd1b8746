package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/blightgrid/internal/prng"
)

// Generator synthesizes the initial contents of a tile.
//
// Generation is a pure function of (world seed, tile coordinate, intents):
//  1. Derive the tile seed from the world seed and coordinate
//  2. Pick a corrupt-cell count in [MinCorruptPerTile, MaxCorruptPerTile]
//  3. Shuffle that many corrupt markers into the tile interior (border excluded)
//  4. Apply reveal and corrupt intents on top
//  5. Force starting locations clear of corruption
type Generator struct {
	params Params
}

// NewGenerator creates a generator for the given mechanics.
func NewGenerator(p Params) *Generator {
	return &Generator{params: p}
}

// Generate builds the tile at tc. The intent sets may be empty but not nil.
func (g *Generator) Generate(tc TileCoord, worldSeed uint32, reveal, corrupt mapset.Set[int]) *Tile {
	size := g.params.TileSize
	inner := g.params.InteriorSize()
	rng := prng.TileSeed(worldSeed, tc.X, tc.Y)

	spread := g.params.MaxCorruptPerTile - g.params.MinCorruptPerTile
	nCorrupt := g.params.MinCorruptPerTile + prng.Int(rng, spread)
	rng = prng.Next(rng)

	placement := make([]bool, inner*inner)
	for i := 0; i < nCorrupt && i < len(placement); i++ {
		placement[i] = true
	}
	prng.Shuffle(placement, rng)

	tile := NewTile(tc, size)
	for ti := 0; ti < size*size; ti++ {
		tile.Revealed[ti] = reveal.Has(ti)

		corrupted := corrupt.Has(ti)
		if !corrupted {
			cx := ti%size - 1
			cy := ti/size - 1
			if cx >= 0 && cx < inner && cy >= 0 && cy < inner {
				corrupted = placement[cx+cy*inner]
			}
		}
		if corrupted && g.params.IsStartingLocation(tc.Cell(ti, size)) {
			corrupted = false
		}
		tile.Corrupted[ti] = corrupted
	}

	return tile
}

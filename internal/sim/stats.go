package sim

import (
	"encoding/binary"
	"hash/fnv"
	"slices"

	"github.com/vovakirdan/blightgrid/internal/world"
)

// Stats summarizes the generated part of a world.
type Stats struct {
	Seed           uint32
	Tiles          int
	PendingTiles   int
	Revealed       int
	Flagged        int
	Grown          int
	TotalGrowth    int
	Corrupted      int
	GrowthTasks    int
	ActiveRegions  int
	RegionsSpawned int
	RegionsClosed  int
}

// Stats summarizes the world. Cell counts come from the store's running
// tallies, so the cost does not grow with the explored area.
func (s *Simulation) Stats() Stats {
	c := s.store.Counts()
	return Stats{
		Seed:           s.seed,
		Tiles:          s.store.Ready(),
		PendingTiles:   s.store.Pending(),
		Revealed:       c.Revealed,
		Flagged:        c.Flagged,
		Grown:          c.Grown,
		TotalGrowth:    c.TotalGrowth,
		Corrupted:      c.Corrupted,
		GrowthTasks:    s.growth.Pending(),
		ActiveRegions:  s.corruption.Pending(),
		RegionsSpawned: s.corruption.Spawned(),
		RegionsClosed:  s.corruption.Finalized(),
	}
}

// Snapshot returns deep copies of every generated tile.
func (s *Simulation) Snapshot() map[world.TileCoord]*world.Tile {
	out := make(map[world.TileCoord]*world.Tile, s.store.Ready())
	s.store.EachTile(func(t *world.Tile) {
		out[t.Coord] = t.Clone()
	})
	return out
}

// Digest hashes every generated tile in coordinate order. Two worlds with
// the same digest hold the same content.
func (s *Simulation) Digest() uint64 {
	var tiles []*world.Tile
	s.store.EachTile(func(t *world.Tile) { tiles = append(tiles, t) })
	slices.SortFunc(tiles, func(a, b *world.Tile) int {
		switch {
		case a.Coord.Less(b.Coord):
			return -1
		case b.Coord.Less(a.Coord):
			return 1
		}
		return 0
	})

	h := fnv.New64a()
	var buf [8]byte
	for _, t := range tiles {
		binary.LittleEndian.PutUint32(buf[:4], uint32(int32(t.Coord.X)))
		binary.LittleEndian.PutUint32(buf[4:], uint32(int32(t.Coord.Y)))
		h.Write(buf[:])
		h.Write(t.Growth)
		for i := range t.Growth {
			var b byte
			if t.Corrupted[i] {
				b |= 1
			}
			if t.Revealed[i] {
				b |= 2
			}
			if t.Flagged[i] {
				b |= 4
			}
			h.Write([]byte{b})
		}
	}
	return h.Sum64()
}

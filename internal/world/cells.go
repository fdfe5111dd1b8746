package world

// Cell returns the cell at g. ok is false while its tile is not generated;
// the tile is queued for generation in that case.
func (s *Store) Cell(g GridCoord) (Cell, bool) {
	size := s.params.TileSize
	tile, ok := s.Lookup(g.Tile(size))
	if !ok {
		return Cell{}, false
	}
	return tile.Cell(g.Index(size)), true
}

// Neighborhood returns the 3x3 block centered on g. ok is false if any of
// the tiles it touches is not generated yet.
func (s *Store) Neighborhood(g GridCoord) (Neighborhood, bool) {
	var n Neighborhood
	size := s.params.TileSize
	i := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			here := g.Add(dx, dy)
			tile, ok := s.Lookup(here.Tile(size))
			if !ok {
				return Neighborhood{}, false
			}
			n[i] = tile.Cell(here.Index(size))
			i++
		}
	}
	return n, true
}

// Reveal marks g revealed and clears its flag. On an ungenerated tile the
// reveal is deferred until generation and false is returned.
func (s *Store) Reveal(g GridCoord) bool {
	size := s.params.TileSize
	tc, ti := g.Tile(size), g.Index(size)
	tile, ok := s.Lookup(tc)
	if !ok {
		s.reveals.Defer(tc, ti)
		return false
	}
	if !tile.Revealed[ti] {
		s.counts.Revealed++
	}
	if tile.Flagged[ti] {
		s.counts.Flagged--
	}
	tile.Revealed[ti] = true
	tile.Flagged[ti] = false
	return true
}

// Obscure hides g again and clears its flag. On an ungenerated tile any
// deferred reveal of g is cancelled instead.
func (s *Store) Obscure(g GridCoord) {
	size := s.params.TileSize
	tc, ti := g.Tile(size), g.Index(size)
	tile, ok := s.Lookup(tc)
	if !ok {
		s.reveals.Cancel(tc, ti)
		return
	}
	if tile.Revealed[ti] {
		s.counts.Revealed--
	}
	if tile.Flagged[ti] {
		s.counts.Flagged--
	}
	tile.Revealed[ti] = false
	tile.Flagged[ti] = false
}

// IsFlagged reports whether g is flagged. ok is false on an ungenerated tile.
func (s *Store) IsFlagged(g GridCoord) (flagged, ok bool) {
	size := s.params.TileSize
	tile, ok := s.Lookup(g.Tile(size))
	if !ok {
		return false, false
	}
	return tile.Flagged[g.Index(size)], true
}

// ToggleFlag flips the flag on an unrevealed cell. Revealed cells are left
// alone. It returns false only when the tile is not generated.
func (s *Store) ToggleFlag(g GridCoord) bool {
	size := s.params.TileSize
	tile, ok := s.Lookup(g.Tile(size))
	if !ok {
		return false
	}
	ti := g.Index(size)
	if !tile.Revealed[ti] {
		if tile.Flagged[ti] {
			s.counts.Flagged--
		} else {
			s.counts.Flagged++
		}
		tile.Flagged[ti] = !tile.Flagged[ti]
	}
	return true
}

// RaiseGrowth advances growth at g by one step without exceeding limit or
// MaxGrowth, and never lowers it. It returns the new level and whether the
// cell is corrupted; ok is false on an ungenerated tile.
func (s *Store) RaiseGrowth(g GridCoord, limit int) (level int, corrupted, ok bool) {
	size := s.params.TileSize
	tile, ok := s.Lookup(g.Tile(size))
	if !ok {
		return 0, false, false
	}
	limit = min(limit, s.params.MaxGrowth)

	ti := g.Index(size)
	old := int(tile.Growth[ti])
	level = max(old, min(limit, old+1))
	if old == 0 && level > 0 {
		s.counts.Grown++
	}
	s.counts.TotalGrowth += level - old
	tile.Growth[ti] = uint8(level)
	return level, tile.Corrupted[ti], true
}

// Kill removes all growth at g. It returns false on an ungenerated tile,
// where there is no growth to remove.
func (s *Store) Kill(g GridCoord) bool {
	size := s.params.TileSize
	tile, ok := s.Lookup(g.Tile(size))
	if !ok {
		return false
	}
	ti := g.Index(size)
	if old := int(tile.Growth[ti]); old > 0 {
		s.counts.Grown--
		s.counts.TotalGrowth -= old
	}
	tile.Growth[ti] = 0
	return true
}

// Corrupt marks g corrupted, deferring the change if its tile is not generated.
func (s *Store) Corrupt(g GridCoord) {
	size := s.params.TileSize
	tc, ti := g.Tile(size), g.Index(size)
	tile, ok := s.Lookup(tc)
	if !ok {
		s.corrupt.Defer(tc, ti)
		return
	}
	if !tile.Corrupted[ti] {
		s.counts.Corrupted++
	}
	tile.Corrupted[ti] = true
}

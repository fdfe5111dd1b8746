package world

// Cell is a read-only view of one grid position.
type Cell struct {
	Growth    int
	Corrupted bool
	Revealed  bool
	Flagged   bool
}

// Tile holds the state of every cell in one tile as parallel arrays indexed
// by tile index.
type Tile struct {
	Coord     TileCoord
	Size      int
	Growth    []uint8
	Corrupted []bool
	Revealed  []bool
	Flagged   []bool
}

// NewTile allocates an empty tile.
func NewTile(tc TileCoord, size int) *Tile {
	n := size * size
	return &Tile{
		Coord:     tc,
		Size:      size,
		Growth:    make([]uint8, n),
		Corrupted: make([]bool, n),
		Revealed:  make([]bool, n),
		Flagged:   make([]bool, n),
	}
}

// Cell returns the view of the cell at the given tile index.
func (t *Tile) Cell(index int) Cell {
	return Cell{
		Growth:    int(t.Growth[index]),
		Corrupted: t.Corrupted[index],
		Revealed:  t.Revealed[index],
		Flagged:   t.Flagged[index],
	}
}

// Clone returns a deep copy of the tile.
func (t *Tile) Clone() *Tile {
	return &Tile{
		Coord:     t.Coord,
		Size:      t.Size,
		Growth:    append([]uint8(nil), t.Growth...),
		Corrupted: append([]bool(nil), t.Corrupted...),
		Revealed:  append([]bool(nil), t.Revealed...),
		Flagged:   append([]bool(nil), t.Flagged...),
	}
}

// Neighborhood is a 3x3 block of cells in row-major order from (x-1, y-1)
// to (x+1, y+1). Index 4 is the center.
type Neighborhood [9]Cell

// Center returns the middle cell.
func (n Neighborhood) Center() Cell {
	return n[4]
}

// CorruptCount returns how many cells of the block are corrupted. The
// center counts too: growth must not fan out from a corrupted cell even
// when its neighbors are clean.
func (n Neighborhood) CorruptCount() int {
	count := 0
	for _, c := range n {
		if c.Corrupted {
			count++
		}
	}
	return count
}

// Contaminated reports whether any cell of the block, center included, is
// corrupted.
func (n Neighborhood) Contaminated() bool {
	return n.CorruptCount() > 0
}

package world

import "fmt"

// GridCoord identifies one cell of the unbounded grid.
type GridCoord struct {
	X int
	Y int
}

// G is a convenience constructor for GridCoord.
func G(x, y int) GridCoord {
	return GridCoord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (g GridCoord) String() string {
	return fmt.Sprintf("(%d,%d)", g.X, g.Y)
}

// Add returns a new GridCoord offset by (dx, dy).
func (g GridCoord) Add(dx, dy int) GridCoord {
	return GridCoord{X: g.X + dx, Y: g.Y + dy}
}

// Offset returns the sum of two coordinates.
func (g GridCoord) Offset(d GridCoord) GridCoord {
	return GridCoord{X: g.X + d.X, Y: g.Y + d.Y}
}

// DistSq returns the squared Euclidean distance to another coordinate.
func (g GridCoord) DistSq(other GridCoord) int {
	dx := g.X - other.X
	dy := g.Y - other.Y
	return dx*dx + dy*dy
}

// Tile returns the coordinate of the tile containing g.
func (g GridCoord) Tile(size int) TileCoord {
	return TileCoord{X: floorDiv(g.X, size), Y: floorDiv(g.Y, size)}
}

// Index returns the position of g within its tile, in [0, size*size).
func (g GridCoord) Index(size int) int {
	return posMod(g.X, size) + posMod(g.Y, size)*size
}

// TileCoord identifies one size x size block of cells.
type TileCoord struct {
	X int
	Y int
}

// T is a convenience constructor for TileCoord.
func T(x, y int) TileCoord {
	return TileCoord{X: x, Y: y}
}

// String returns a string representation of the tile coordinate.
func (t TileCoord) String() string {
	return fmt.Sprintf("[%d,%d]", t.X, t.Y)
}

// Origin returns the grid coordinate of the tile's index 0 cell.
func (t TileCoord) Origin(size int) GridCoord {
	return GridCoord{X: t.X * size, Y: t.Y * size}
}

// Cell returns the grid coordinate of the given tile index.
func (t TileCoord) Cell(index, size int) GridCoord {
	return GridCoord{
		X: t.X*size + index%size,
		Y: t.Y*size + index/size,
	}
}

// Less orders tile coordinates row by row.
func (t TileCoord) Less(other TileCoord) bool {
	if t.Y != other.Y {
		return t.Y < other.Y
	}
	return t.X < other.X
}

// Orthogonal and diagonal neighbor offsets.
var (
	OrthogonalOffsets = [4]GridCoord{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	DiagonalOffsets   = [4]GridCoord{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, n int) int {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}

// posMod is a modulo that never returns a negative result.
func posMod(a, n int) int {
	return ((a % n) + n) % n
}

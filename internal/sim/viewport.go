package sim

import "github.com/vovakirdan/blightgrid/internal/world"

// Orientation is a compass direction. North is +y.
type Orientation int

const (
	North Orientation = 1
	East  Orientation = 2
	South Orientation = 4
	West  Orientation = 8
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Invalid"
	}
}

// Vector returns the unit step for the orientation. ok is false for values
// that are not one of the four directions.
func (o Orientation) Vector() (v world.GridCoord, ok bool) {
	switch o {
	case North:
		return world.G(0, 1), true
	case East:
		return world.G(1, 0), true
	case South:
		return world.G(0, -1), true
	case West:
		return world.G(-1, 0), true
	default:
		return world.GridCoord{}, false
	}
}

// Viewport is the viewer's position in the world. Origin anchors growth
// throttling; Cursor is the cell actions target.
type Viewport struct {
	Origin world.GridCoord
	Cursor world.GridCoord
}

// Bounds is an inclusive axis-aligned box of grid coordinates.
type Bounds struct {
	Min world.GridCoord
	Max world.GridCoord
}

// Contains reports whether g lies inside the box.
func (b Bounds) Contains(g world.GridCoord) bool {
	return g.X >= b.Min.X && g.X <= b.Max.X && g.Y >= b.Min.Y && g.Y <= b.Max.Y
}

// Extend grows the box to include g.
func (b Bounds) Extend(g world.GridCoord) Bounds {
	b.Min.X = min(b.Min.X, g.X)
	b.Min.Y = min(b.Min.Y, g.Y)
	b.Max.X = max(b.Max.X, g.X)
	b.Max.Y = max(b.Max.Y, g.Y)
	return b
}

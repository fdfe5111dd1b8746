// Package core provides the terminal-independent pieces of the front end:
// a colored character buffer, the palette, input actions, and the mapping
// between grid and screen coordinates. It has no Bubble Tea dependency so
// it can be tested on its own.
package core

// Rect is an axis-aligned screen area.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Projection places grid cells on a screen area, one column per cell. The
// anchor cell sits at the center of the area and grid y grows upward.
type Projection struct {
	Area    Rect
	AnchorX int
	AnchorY int
}

// ToScreen returns where grid cell (gx, gy) lands. ok is false when it falls
// outside the area.
func (p Projection) ToScreen(gx, gy int) (sx, sy int, ok bool) {
	cx, cy := p.Area.Center()
	sx = cx + gx - p.AnchorX
	sy = cy - (gy - p.AnchorY)
	return sx, sy, p.Area.Contains(sx, sy)
}

// ToGrid returns the grid cell drawn at screen position (sx, sy).
func (p Projection) ToGrid(sx, sy int) (gx, gy int) {
	cx, cy := p.Area.Center()
	return p.AnchorX + sx - cx, p.AnchorY - (sy - cy)
}

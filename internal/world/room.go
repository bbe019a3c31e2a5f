package world

// Point is an integer map coordinate.
type Point struct {
	X, Y int
}

// Rect represents a rectangular room in the dungeon.
// The border (X1, Y1, X2, Y2) stays wall; only the interior is carved.
type Rect struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewRect creates a rectangle from an origin and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center coordinates of the room.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Contains returns true if the given point is inside the rectangle, border included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X1 && x <= r.X2 && y >= r.Y1 && y <= r.Y2
}

// Intersects returns true if this room overlaps with another room.
// Comparisons are inclusive, so rooms sharing an edge intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 &&
		r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 &&
		r.Y2 >= other.Y1
}

package world

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfBounds is returned by checked accessors for coordinates outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// OutOfBoundsError reports which coordinate fell outside the grid.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("(%d,%d) outside %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// Grid is the game map. Tiles are stored column-major: x is the outer index.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a new grid filled with walls.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Wall()
	}
	return &Grid{
		width:  width,
		height: height,
		tiles:  tiles,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds returns true if (x, y) addresses a tile of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return x*g.height + y
}

func (g *Grid) outOfBounds(x, y int) error {
	return &OutOfBoundsError{X: x, Y: y, Width: g.width, Height: g.height}
}

// At returns a copy of the tile at the given position.
func (g *Grid) At(x, y int) (Tile, error) {
	if !g.InBounds(x, y) {
		return Tile{}, g.outOfBounds(x, y)
	}
	return g.tiles[g.index(x, y)], nil
}

// Set replaces the tile at the given position.
func (g *Grid) Set(x, y int, t Tile) error {
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	g.tiles[g.index(x, y)] = t
	return nil
}

// Tile returns a pointer to the tile at (x, y) without bounds checking.
// Callers iterating over [0, Width) x [0, Height) use this in hot loops.
func (g *Grid) Tile(x, y int) *Tile {
	return &g.tiles[g.index(x, y)]
}

// IsBlocked returns true if the position cannot be walked on.
// Positions outside the grid are blocked.
func (g *Grid) IsBlocked(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.tiles[g.index(x, y)].Blocked
}

// BlocksSight returns true if the position is opaque.
// Positions outside the grid are opaque.
func (g *Grid) BlocksSight(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.tiles[g.index(x, y)].BlockSight
}

// MarkExplored flags the tile as explored. Explored is never cleared.
func (g *Grid) MarkExplored(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[g.index(x, y)].Explored = true
}

// carve turns an in-bounds tile into floor, keeping its explored memory.
func (g *Grid) carve(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	t := &g.tiles[g.index(x, y)]
	explored := t.Explored
	*t = Floor()
	t.Explored = explored
}

// CarveRoom sets the interior of the rectangle to floor. The border stays wall.
func (g *Grid) CarveRoom(r Rect) {
	for x := r.X1 + 1; x < r.X2; x++ {
		for y := r.Y1 + 1; y < r.Y2; y++ {
			g.carve(x, y)
		}
	}
}

// CarveHTunnel carves a horizontal tunnel between x1 and x2 inclusive.
func (g *Grid) CarveHTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.carve(x, y)
	}
}

// CarveVTunnel carves a vertical tunnel between y1 and y2 inclusive.
func (g *Grid) CarveVTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.carve(x, y)
	}
}

// FloorTiles returns every passable position, x-major.
func (g *Grid) FloorTiles() []Point {
	var points []Point
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if !g.tiles[g.index(x, y)].Blocked {
				points = append(points, Point{X: x, Y: y})
			}
		}
	}
	return points
}

// MarshalBinary encodes the grid as one flag byte per tile in storage order.
func (g *Grid) MarshalBinary() ([]byte, error) {
	out := make([]byte, len(g.tiles))
	for i, t := range g.tiles {
		out[i] = t.bits()
	}
	return out, nil
}

// String renders the grid as rows of '#' and '.'.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.tiles[g.index(x, y)].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

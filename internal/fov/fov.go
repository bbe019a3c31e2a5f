// Package fov computes field of view over a tile map and tracks which
// tiles the player has seen.
package fov

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned for an unrecognized algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown fov algorithm")

// Opacity is the read-only view of a map an oracle needs.
type Opacity interface {
	Width() int
	Height() int
	BlocksSight(x, y int) bool
}

// Oracle computes the set of tiles visible from an observer.
// A radius of zero or less means unlimited range. When lightWalls is false,
// opaque tiles are never reported visible, not even the observer's own tile.
type Oracle interface {
	Compute(m Opacity, x, y, radius int, lightWalls bool) *Visibility
}

// Algorithm selects an Oracle implementation.
type Algorithm string

const (
	// AlgorithmBasic casts Bresenham rays to the edge of the view box.
	AlgorithmBasic Algorithm = "basic"
	// AlgorithmShadow uses recursive shadowcasting over eight octants.
	AlgorithmShadow Algorithm = "shadow"
)

// ParseAlgorithm converts a config string to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case AlgorithmBasic, AlgorithmShadow:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// New returns the oracle for the given algorithm.
func New(alg Algorithm) (Oracle, error) {
	switch alg {
	case AlgorithmBasic:
		return basicOracle{}, nil
	case AlgorithmShadow:
		return shadowOracle{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
}

// inRadius reports whether the offset lies within a circular radius.
func inRadius(dx, dy, radius int) bool {
	return radius <= 0 || dx*dx+dy*dy <= radius*radius
}

// Visibility is a snapshot of which tiles are currently visible.
// The zero value sees nothing.
type Visibility struct {
	width  int
	height int
	cells  []bool
}

func newVisibility(width, height int) *Visibility {
	return &Visibility{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

func (v *Visibility) inBounds(x, y int) bool {
	return x >= 0 && x < v.width && y >= 0 && y < v.height
}

func (v *Visibility) set(x, y int) {
	if v.inBounds(x, y) {
		v.cells[x*v.height+y] = true
	}
}

// Visible returns true if (x, y) is in view. Out-of-bounds is never visible.
func (v *Visibility) Visible(x, y int) bool {
	if v == nil || !v.inBounds(x, y) {
		return false
	}
	return v.cells[x*v.height+y]
}

// Size returns the area the snapshot covers. A nil snapshot covers nothing.
func (v *Visibility) Size() (width, height int) {
	if v == nil {
		return 0, 0
	}
	return v.width, v.height
}

// Count returns the number of visible tiles.
func (v *Visibility) Count() int {
	if v == nil {
		return 0
	}
	n := 0
	for _, c := range v.cells {
		if c {
			n++
		}
	}
	return n
}

// Each calls fn for every visible tile, x-major.
func (v *Visibility) Each(fn func(x, y int)) {
	if v == nil {
		return
	}
	for i, c := range v.cells {
		if c {
			fn(i/v.height, i%v.height)
		}
	}
}

// Equal returns true if both snapshots cover the same area and tiles.
func (v *Visibility) Equal(other *Visibility) bool {
	vw, vh := v.Size()
	ow, oh := other.Size()
	if vw != ow || vh != oh {
		return false
	}
	if v.Count() == 0 && other.Count() == 0 {
		return true
	}
	for i := range v.cells {
		if v.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

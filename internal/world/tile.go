// Package world provides dungeon generation and map management.
package world

// Tile represents a single map tile.
type Tile struct {
	Blocked    bool // Impassable to movement
	BlockSight bool // Opaque to field of view
	Explored   bool // Has been visible to the player at least once
}

// Wall returns an impassable, opaque tile.
func Wall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// Floor returns a passable, transparent tile.
func Floor() Tile {
	return Tile{}
}

// Rune returns the tile's display character for map dumps.
func (t Tile) Rune() rune {
	if t.Blocked {
		return '#'
	}
	return '.'
}

const (
	flagBlocked byte = 1 << iota
	flagBlockSight
	flagExplored
)

// bits packs the tile into a single byte.
func (t Tile) bits() byte {
	var b byte
	if t.Blocked {
		b |= flagBlocked
	}
	if t.BlockSight {
		b |= flagBlockSight
	}
	if t.Explored {
		b |= flagExplored
	}
	return b
}

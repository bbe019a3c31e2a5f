// Package entity provides positioned actors like the player and NPCs.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/torchcrawl/internal/gamedata"
)

// Passability reports whether a map position blocks movement.
// Positions outside the map must report blocked.
type Passability interface {
	IsBlocked(x, y int) bool
}

// Object is a drawable actor on the map.
type Object struct {
	ID    uuid.UUID   // Stable identifier
	Kind  string      // Template ID (e.g., "player"); empty for ad-hoc objects
	Name  string      // Display name
	X, Y  int         // Current position on the map
	Glyph rune        // Display character
	Color tcell.Color // Foreground color
}

// NewObject creates an object at the given position.
func NewObject(name string, x, y int, glyph rune, color tcell.Color) *Object {
	return &Object{
		ID:    uuid.New(),
		Name:  name,
		X:     x,
		Y:     y,
		Glyph: glyph,
		Color: color,
	}
}

// NewObjectFromDef creates an object from a data-driven template.
func NewObjectFromDef(def *gamedata.ObjectDef, x, y int) *Object {
	obj := NewObject(def.Name, x, y, def.GlyphRune(), def.TCellColor())
	obj.Kind = def.ID
	return obj
}

// MoveBy moves the object by the given delta if the destination is free.
// It returns false, leaving the object in place, when the move is blocked.
func (o *Object) MoveBy(dx, dy int, m Passability) bool {
	if m.IsBlocked(o.X+dx, o.Y+dy) {
		return false
	}
	o.X += dx
	o.Y += dy
	return true
}

// Position returns the current x, y coordinates.
func (o *Object) Position() (int, int) {
	return o.X, o.Y
}

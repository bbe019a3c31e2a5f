package entity

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/torchcrawl/internal/gamedata"
)

// blockedSet is a 5x5 open map with explicit walls.
type blockedSet map[[2]int]bool

func (b blockedSet) IsBlocked(x, y int) bool {
	if x < 0 || y < 0 || x >= 5 || y >= 5 {
		return true
	}
	return b[[2]int{x, y}]
}

func TestMoveBy(t *testing.T) {
	walls := blockedSet{{3, 2}: true}

	tests := []struct {
		name      string
		startX    int
		startY    int
		dx, dy    int
		wantMoved bool
		wantX     int
		wantY     int
	}{
		{"open floor", 2, 2, 0, -1, true, 2, 1},
		{"into wall", 2, 2, 1, 0, false, 2, 2},
		{"off left edge", 0, 2, -1, 0, false, 0, 2},
		{"off bottom edge", 2, 4, 0, 1, false, 2, 4},
		{"zero delta", 2, 2, 0, 0, true, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := NewObject("test", tt.startX, tt.startY, '@', tcell.ColorWhite)
			moved := obj.MoveBy(tt.dx, tt.dy, walls)
			if moved != tt.wantMoved {
				t.Errorf("MoveBy() = %v, want %v", moved, tt.wantMoved)
			}
			if x, y := obj.Position(); x != tt.wantX || y != tt.wantY {
				t.Errorf("Position() = (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestNewObjectFromDef(t *testing.T) {
	def := &gamedata.ObjectDef{ID: "villager", Name: "Villager", Glyph: "@", Color: "#FFFF00"}
	obj := NewObjectFromDef(def, 4, 7)

	if obj.Kind != "villager" || obj.Name != "Villager" {
		t.Errorf("Kind/Name = %q/%q", obj.Kind, obj.Name)
	}
	if obj.Glyph != '@' {
		t.Errorf("Glyph = %q, want '@'", obj.Glyph)
	}
	if obj.X != 4 || obj.Y != 7 {
		t.Errorf("position = (%d,%d), want (4,7)", obj.X, obj.Y)
	}
	if obj.ID == uuid.Nil {
		t.Error("expected a generated ID")
	}
	r, g, b := obj.Color.RGB()
	if r != 0xFF || g != 0xFF || b != 0 {
		t.Errorf("Color = (%d,%d,%d), want yellow", r, g, b)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if r.Player() != nil {
		t.Error("empty registry should have no player")
	}

	player := NewObject("player", 1, 1, '@', tcell.ColorWhite)
	npc := NewObject("npc", 2, 2, '@', tcell.ColorYellow)
	dog := &Object{Name: "dog", Glyph: 'd'}

	pid := r.Add(player)
	r.Add(npc)
	dogID := r.Add(dog)
	r.Add(npc) // duplicate

	if dogID == uuid.Nil {
		t.Error("Add should assign an ID to objects without one")
	}
	if r.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", r.Count())
	}

	if err := r.SetPlayer(pid); err != nil {
		t.Fatalf("SetPlayer() error = %v", err)
	}
	if r.Player() != player {
		t.Error("Player() did not return the player")
	}
	if err := r.SetPlayer(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetPlayer(unknown) error = %v, want ErrNotFound", err)
	}

	all := r.All()
	want := []*Object{player, npc, dog}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("All()[%d] = %s, want %s", i, all[i].Name, want[i].Name)
		}
	}

	r.Remove(npc.ID)
	if r.Get(npc.ID) != nil || r.Count() != 2 {
		t.Error("npc not removed")
	}
	if got := r.All(); got[0] != player || got[1] != dog {
		t.Error("removal broke insertion order")
	}

	r.Remove(pid)
	if r.Player() != nil {
		t.Error("removing the player should clear it")
	}
	r.Remove(pid) // already gone
}

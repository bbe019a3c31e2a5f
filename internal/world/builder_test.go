package world

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"testing"
)

func TestBuildMapReproducibility(t *testing.T) {
	// Generate two maps with the same seed
	seed := int64(12345)

	rng1 := rand.New(rand.NewSource(seed))
	rng2 := rand.New(rand.NewSource(seed))

	ctx := context.Background()
	g1, start1, err := BuildMap(ctx, DefaultParams(), rng1)
	if err != nil {
		t.Fatalf("BuildMap() error = %v", err)
	}
	g2, start2, err := BuildMap(ctx, DefaultParams(), rng2)
	if err != nil {
		t.Fatalf("BuildMap() error = %v", err)
	}

	if start1 != start2 {
		t.Errorf("Start mismatch: %v != %v", start1, start2)
	}

	b1, _ := g1.MarshalBinary()
	b2, _ := g2.MarshalBinary()
	if !bytes.Equal(b1, b2) {
		t.Error("Grids generated from the same seed are not byte-identical")
	}
}

func TestBuildMapDifferentSeeds(t *testing.T) {
	ctx := context.Background()
	g1, _, _ := BuildMap(ctx, DefaultParams(), rand.New(rand.NewSource(12345)))
	g2, _, _ := BuildMap(ctx, DefaultParams(), rand.New(rand.NewSource(54321)))

	b1, _ := g1.MarshalBinary()
	b2, _ := g2.MarshalBinary()
	if bytes.Equal(b1, b2) {
		t.Error("Maps with different seeds should not be identical")
	}
}

func TestGeneratedRoomsContainedAndDisjoint(t *testing.T) {
	p := DefaultParams()
	bounds := Rect{X1: 0, Y1: 0, X2: p.Width - 1, Y2: p.Height - 1}
	for seed := int64(1); seed <= 20; seed++ {
		grid, _, rooms := generate(p, rand.New(rand.NewSource(seed)))

		if len(rooms) == 0 {
			t.Fatalf("seed %d: no rooms placed", seed)
		}

		for i, r := range rooms {
			if !bounds.Contains(r.X1, r.Y1) || !bounds.Contains(r.X2, r.Y2) {
				t.Errorf("seed %d: room %d %+v leaves the %dx%d grid", seed, i, r, p.Width, p.Height)
			}
			c := r.Center()
			if !r.Contains(c.X, c.Y) || grid.IsBlocked(c.X, c.Y) {
				t.Errorf("seed %d: room %d center %+v is not carved floor", seed, i, c)
			}
			for j := i + 1; j < len(rooms); j++ {
				if r.Intersects(rooms[j]) {
					t.Errorf("seed %d: rooms %d and %d intersect", seed, i, j)
				}
			}
		}

		// The outer border is never carved.
		for x := 0; x < p.Width; x++ {
			if !grid.IsBlocked(x, 0) || !grid.IsBlocked(x, p.Height-1) {
				t.Errorf("seed %d: border column %d carved", seed, x)
			}
		}
		for y := 0; y < p.Height; y++ {
			if !grid.IsBlocked(0, y) || !grid.IsBlocked(p.Width-1, y) {
				t.Errorf("seed %d: border row %d carved", seed, y)
			}
		}
	}
}

func TestGeneratedRoomsConnected(t *testing.T) {
	p := DefaultParams()
	for seed := int64(1); seed <= 20; seed++ {
		grid, start, rooms := generate(p, rand.New(rand.NewSource(seed)))

		if start != rooms[0].Center() {
			t.Errorf("seed %d: start %v, want first room center %v", seed, start, rooms[0].Center())
		}

		reach := Reachable(grid, start)
		for i, r := range rooms {
			if !reach.Has(r.Center()) {
				t.Errorf("seed %d: room %d center %v unreachable from %v", seed, i, r.Center(), start)
			}
		}

		// Every floor tile belongs to the same region.
		floors := grid.FloorTiles()
		if reach.Size() != len(floors) {
			t.Errorf("seed %d: reachable %d of %d floor tiles", seed, reach.Size(), len(floors))
		}
	}
}

func TestBuildMapZeroRooms(t *testing.T) {
	p := DefaultParams()
	p.MaxRooms = 0

	grid, start, err := BuildMap(context.Background(), p, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("BuildMap() error = %v", err)
	}

	if start != (Point{}) {
		t.Errorf("start = %v, want (0,0)", start)
	}
	if n := len(grid.FloorTiles()); n != 0 {
		t.Errorf("floor tiles = %d, want 0", n)
	}
}

func TestBuildMapRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
	}{
		{"zero width", func(p *Params) { p.Width = 0 }},
		{"negative height", func(p *Params) { p.Height = -1 }},
		{"negative rooms", func(p *Params) { p.MaxRooms = -1 }},
		{"zero min size", func(p *Params) { p.RoomMinSize = 0 }},
		{"min above max", func(p *Params) { p.RoomMinSize = 12 }},
		{"room wider than map", func(p *Params) { p.Width = 10 }},
		{"room taller than map", func(p *Params) { p.Height = 8 }},
	}

	for _, tt := range tests {
		p := DefaultParams()
		tt.modify(&p)
		_, _, err := BuildMap(context.Background(), p, rand.New(rand.NewSource(1)))
		if !errors.Is(err, ErrInvalidParams) {
			t.Errorf("%s: error = %v, want ErrInvalidParams", tt.name, err)
		}
	}
}

func TestCarveRoomScenario(t *testing.T) {
	grid := NewGrid(10, 10)
	room := NewRect(2, 2, 4, 4)
	grid.CarveRoom(room)

	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			interior := x >= 3 && x <= 5 && y >= 3 && y <= 5
			if got := !grid.IsBlocked(x, y); got != interior {
				t.Errorf("tile (%d,%d) floor = %v, want %v", x, y, got, interior)
			}
		}
	}

	if c := room.Center(); c != (Point{X: 4, Y: 4}) {
		t.Errorf("Center() = %v, want (4,4)", c)
	}
}

func TestConnectCarvesElbow(t *testing.T) {
	prev := Point{X: 2, Y: 2}
	next := Point{X: 7, Y: 6}

	for seed := int64(0); seed < 8; seed++ {
		grid := NewGrid(10, 10)
		connect(grid, prev, next, rand.New(rand.NewSource(seed)))

		reach := Reachable(grid, prev)
		if !reach.Has(next) {
			t.Errorf("seed %d: %v unreachable from %v", seed, next, prev)
		}
		// Each L corridor is exactly |dx| + |dy| + 1 tiles.
		if reach.Size() != 5+4+1 {
			t.Errorf("seed %d: corridor has %d tiles, want 10", seed, reach.Size())
		}
	}
}

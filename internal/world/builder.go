package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/torchcrawl/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 50

	// Room placement parameters
	DefaultMaxRooms    = 30
	DefaultRoomMinSize = 6
	DefaultRoomMaxSize = 10
)

// ErrInvalidParams is returned when build parameters cannot produce a map.
var ErrInvalidParams = errors.New("invalid map parameters")

// Params controls map generation.
type Params struct {
	Width       int
	Height      int
	MaxRooms    int // Placement attempts, not a guaranteed room count
	RoomMinSize int
	RoomMaxSize int
}

// DefaultParams returns the standard 80x50 layout parameters.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxRooms:    DefaultMaxRooms,
		RoomMinSize: DefaultRoomMinSize,
		RoomMaxSize: DefaultRoomMaxSize,
	}
}

// Validate checks that every sampled room fits inside the map.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: map size %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.MaxRooms < 0:
		return fmt.Errorf("%w: max rooms %d", ErrInvalidParams, p.MaxRooms)
	case p.RoomMinSize <= 0 || p.RoomMinSize > p.RoomMaxSize:
		return fmt.Errorf("%w: room size range [%d,%d]", ErrInvalidParams, p.RoomMinSize, p.RoomMaxSize)
	case p.RoomMaxSize >= p.Width || p.RoomMaxSize >= p.Height:
		return fmt.Errorf("%w: room size %d does not fit %dx%d map",
			ErrInvalidParams, p.RoomMaxSize, p.Width, p.Height)
	}
	return nil
}

// BuildMap carves rooms and corridors into a fresh grid and returns it
// with the player start position (the first room's center, or (0,0) when
// no room could be placed).
func BuildMap(ctx context.Context, p Params, rng *rand.Rand) (*Grid, Point, error) {
	if err := p.Validate(); err != nil {
		return nil, Point{}, err
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.build")
	defer span.End()

	startTime := time.Now()
	grid, start, rooms := generate(p, rng)

	span.SetAttributes(
		attribute.Int("map.width", p.Width),
		attribute.Int("map.height", p.Height),
		attribute.Int("map.max_rooms", p.MaxRooms),
		attribute.Int("map.room_count", len(rooms)),
		attribute.Int("map.start_x", start.X),
		attribute.Int("map.start_y", start.Y),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return grid, start, nil
}

// generate runs the placement loop. Params must already be valid.
func generate(p Params, rng *rand.Rand) (*Grid, Point, []Rect) {
	grid := NewGrid(p.Width, p.Height)
	rooms := make([]Rect, 0, p.MaxRooms)
	var start Point

	for i := 0; i < p.MaxRooms; i++ {
		w := p.RoomMinSize + rng.Intn(p.RoomMaxSize-p.RoomMinSize+1)
		h := p.RoomMinSize + rng.Intn(p.RoomMaxSize-p.RoomMinSize+1)
		x := rng.Intn(p.Width - w)
		y := rng.Intn(p.Height - h)

		room := NewRect(x, y, w, h)
		if overlapsAny(room, rooms) {
			continue
		}

		grid.CarveRoom(room)

		center := room.Center()
		if len(rooms) == 0 {
			start = center
		} else {
			connect(grid, rooms[len(rooms)-1].Center(), center, rng)
		}

		rooms = append(rooms, room)
	}

	return grid, start, rooms
}

func overlapsAny(room Rect, rooms []Rect) bool {
	for _, other := range rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// connect carves an L-shaped corridor between two room centers.
// The coin flip picks the elbow: (next.X, prev.Y) or (prev.X, next.Y).
func connect(grid *Grid, prev, next Point, rng *rand.Rand) {
	if rng.Intn(2) == 0 {
		grid.CarveHTunnel(prev.X, next.X, prev.Y)
		grid.CarveVTunnel(prev.Y, next.Y, next.X)
	} else {
		grid.CarveVTunnel(prev.Y, next.Y, prev.X)
		grid.CarveHTunnel(prev.X, next.X, next.Y)
	}
}

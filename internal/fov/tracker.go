package fov

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/torchcrawl/internal/telemetry"
)

// Map is a map the tracker can read opacity from and record exploration on.
type Map interface {
	Opacity
	MarkExplored(x, y int)
}

// Tracker caches the visible set for the last observer position and keeps
// the map's explored memory up to date.
type Tracker struct {
	oracle     Oracle
	radius     int
	lightWalls bool

	last    [2]int
	hasLast bool
	visible *Visibility
}

// NewTracker creates a tracker. The first update always computes.
func NewTracker(oracle Oracle, radius int, lightWalls bool) *Tracker {
	return &Tracker{
		oracle:     oracle,
		radius:     radius,
		lightWalls: lightWalls,
	}
}

// RecomputeIfMoved recomputes visibility when the observer is somewhere
// other than at the previous call, marking every visible tile explored.
// It reports whether a recomputation happened.
func (t *Tracker) RecomputeIfMoved(ctx context.Context, m Map, x, y int) bool {
	if t.hasLast && t.last == [2]int{x, y} {
		return false
	}

	tracer := telemetry.Tracer("fov")
	_, span := tracer.Start(ctx, "fov.recompute")
	defer span.End()

	t.visible = t.oracle.Compute(m, x, y, t.radius, t.lightWalls)
	t.visible.Each(m.MarkExplored)
	t.last = [2]int{x, y}
	t.hasLast = true

	span.SetAttributes(
		attribute.Int("fov.observer_x", x),
		attribute.Int("fov.observer_y", y),
		attribute.Int("fov.radius", t.radius),
		attribute.Int("fov.visible_count", t.visible.Count()),
	)
	return true
}

// Invalidate forces the next update to recompute, e.g. after a new map.
func (t *Tracker) Invalidate() {
	t.hasLast = false
}

// Visible returns true if (x, y) was visible at the last computation.
func (t *Tracker) Visible(x, y int) bool {
	return t.visible.Visible(x, y)
}

// Visibility returns the last computed snapshot, or nil before the first update.
func (t *Tracker) Visibility() *Visibility {
	return t.visible
}

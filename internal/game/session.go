package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/torchcrawl/internal/entity"
	"github.com/samdwyer/torchcrawl/internal/fov"
	"github.com/samdwyer/torchcrawl/internal/gamedata"
	"github.com/samdwyer/torchcrawl/internal/input"
	"github.com/samdwyer/torchcrawl/internal/telemetry"
	"github.com/samdwyer/torchcrawl/internal/world"
)

// Session is the turn logic of one game: the map, the objects on it and
// what the player can see. It does not touch the terminal.
type Session struct {
	grid     *world.Grid
	entities *entity.Registry
	tracker  *fov.Tracker
	rng      *rand.Rand
	seed     int64
	state    State
	log      logrus.FieldLogger
}

// NewSession generates a map, places the player at its start position,
// spawns NPCs and computes the initial field of view.
func NewSession(ctx context.Context, cfg Config, objects *gamedata.ObjectRegistry, log logrus.FieldLogger) (*Session, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.init")
	defer span.End()

	oracle, err := fov.New(cfg.FOVAlgorithm)
	if err != nil {
		return nil, err
	}
	playerDef := objects.Player()
	if playerDef == nil {
		return nil, errors.New("no player template")
	}

	rng, seed := cfg.NewRNG()
	grid, start, err := world.BuildMap(ctx, cfg.Map, rng)
	if err != nil {
		return nil, fmt.Errorf("building map: %w", err)
	}

	s := &Session{
		grid:     grid,
		entities: entity.NewRegistry(),
		tracker:  fov.NewTracker(oracle, cfg.FOVRadius, cfg.FOVLightWalls),
		rng:      rng,
		seed:     seed,
		state:    StatePlaying,
		log:      log,
	}

	player := entity.NewObjectFromDef(playerDef, start.X, start.Y)
	if err := s.entities.SetPlayer(s.entities.Add(player)); err != nil {
		return nil, err
	}

	floors := len(grid.FloorTiles())
	s.log.WithFields(logrus.Fields{
		"seed":    seed,
		"width":   grid.Width(),
		"height":  grid.Height(),
		"floors":  floors,
		"start_x": start.X,
		"start_y": start.Y,
	}).Info("map built")
	if floors == 0 {
		s.log.Warn("no rooms placed, map is solid wall")
	}

	s.spawnNPCs(objects, cfg.NPCCount)
	s.tracker.RecomputeIfMoved(ctx, s.grid, player.X, player.Y)

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("game.objects", s.entities.Count()),
		attribute.Int("player.start_x", start.X),
		attribute.Int("player.start_y", start.Y),
	)

	return s, nil
}

// spawnNPCs places up to count NPCs on distinct free floor tiles the
// player can walk to.
func (s *Session) spawnNPCs(objects *gamedata.ObjectRegistry, count int) {
	player := s.entities.Player()
	reach := world.Reachable(s.grid, world.Point{X: player.X, Y: player.Y})

	// FloorTiles keeps the candidate order, and so the spawn, seed-stable.
	var free []world.Point
	for _, p := range s.grid.FloorTiles() {
		if reach.Has(p) && (p.X != player.X || p.Y != player.Y) {
			free = append(free, p)
		}
	}

	for i := 0; i < count && len(free) > 0; i++ {
		def := objects.SpawnRandom(s.rng)
		if def == nil {
			s.log.Warn("no spawnable NPC templates")
			return
		}

		idx := s.rng.Intn(len(free))
		p := free[idx]
		free[idx] = free[len(free)-1]
		free = free[:len(free)-1]

		npc := entity.NewObjectFromDef(def, p.X, p.Y)
		s.entities.Add(npc)
		s.log.WithFields(logrus.Fields{
			"kind": def.ID,
			"x":    p.X,
			"y":    p.Y,
		}).Debug("npc spawned")
	}
}

// Apply performs one player action and refreshes the field of view.
// It reports whether the player moved.
func (s *Session) Apply(ctx context.Context, action input.Action) bool {
	if s.state != StatePlaying {
		return false
	}

	if action == input.ActionQuit {
		s.state = StateQuit
		s.log.Info("player quit")
		return false
	}

	dx, dy, ok := action.Delta()
	if !ok {
		return false
	}

	player := s.entities.Player()
	moved := player.MoveBy(dx, dy, s.grid)
	if !moved {
		s.log.WithFields(logrus.Fields{
			"x":      player.X,
			"y":      player.Y,
			"action": action.String(),
		}).Debug("move blocked")
	}
	s.tracker.RecomputeIfMoved(ctx, s.grid, player.X, player.Y)
	return moved
}

// Grid returns the session's map.
func (s *Session) Grid() *world.Grid {
	return s.grid
}

// Entities returns the session's object registry.
func (s *Session) Entities() *entity.Registry {
	return s.entities
}

// Player returns the player object.
func (s *Session) Player() *entity.Object {
	return s.entities.Player()
}

// Tracker returns the field of view tracker.
func (s *Session) Tracker() *fov.Tracker {
	return s.tracker
}

// Seed returns the seed the map was generated from.
func (s *Session) Seed() int64 {
	return s.seed
}

// State returns the current game state.
func (s *Session) State() State {
	return s.state
}

// Running returns true until the player quits.
func (s *Session) Running() bool {
	return s.state == StatePlaying
}

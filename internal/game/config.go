package game

import (
	"math/rand"
	"time"

	"github.com/samdwyer/torchcrawl/internal/config"
	"github.com/samdwyer/torchcrawl/internal/fov"
	"github.com/samdwyer/torchcrawl/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Map world.Params

	FOVAlgorithm  fov.Algorithm
	FOVRadius     int
	FOVLightWalls bool

	NPCCount  int
	TargetFPS int // 0 disables frame pacing
}

// DefaultConfig returns the standard settings.
func DefaultConfig() Config {
	return Config{
		Map:           world.DefaultParams(),
		FOVAlgorithm:  fov.AlgorithmBasic,
		FOVRadius:     10,
		FOVLightWalls: true,
		NPCCount:      1,
		TargetFPS:     30,
	}
}

// ConfigFrom extracts the game settings from a loaded application config.
// The algorithm name must already have been validated.
func ConfigFrom(c *config.Config) Config {
	alg, _ := fov.ParseAlgorithm(c.FOV.Algorithm)
	return Config{
		Seed:          c.Game.Seed,
		Map:           c.MapParams(),
		FOVAlgorithm:  alg,
		FOVRadius:     c.FOV.Radius,
		FOVLightWalls: c.FOV.LightWalls,
		NPCCount:      c.Game.NPCCount,
		TargetFPS:     c.Game.TargetFPS,
	}
}

// NewRNG returns the session's random source, resolving a zero seed from the clock.
func (c Config) NewRNG() (*rand.Rand, int64) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// FrameInterval returns the minimum time between frames.
func (c Config) FrameInterval() time.Duration {
	if c.TargetFPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.TargetFPS)
}

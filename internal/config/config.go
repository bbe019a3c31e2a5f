// Package config loads game settings from defaults, an optional config
// file, TORCHCRAWL_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/samdwyer/torchcrawl/internal/fov"
	"github.com/samdwyer/torchcrawl/internal/world"
)

// EnvPrefix is prepended to environment variable names (map.width -> TORCHCRAWL_MAP_WIDTH).
const EnvPrefix = "TORCHCRAWL"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete application configuration.
type Config struct {
	Map       MapConfig       `mapstructure:"map"`
	FOV       FOVConfig       `mapstructure:"fov"`
	Game      GameConfig      `mapstructure:"game"`
	Log       LogConfig       `mapstructure:"log"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Data      DataConfig      `mapstructure:"data"`
}

// MapConfig controls dungeon generation.
type MapConfig struct {
	Width       int `mapstructure:"width"`
	Height      int `mapstructure:"height"`
	MaxRooms    int `mapstructure:"max_rooms"`
	RoomMinSize int `mapstructure:"room_min_size"`
	RoomMaxSize int `mapstructure:"room_max_size"`
}

// FOVConfig controls field of view.
type FOVConfig struct {
	Radius     int    `mapstructure:"radius"`
	LightWalls bool   `mapstructure:"light_walls"`
	Algorithm  string `mapstructure:"algorithm"`
}

// GameConfig controls the session and frame loop.
type GameConfig struct {
	Seed      int64 `mapstructure:"seed"`       // 0 picks a time-based seed
	NPCCount  int   `mapstructure:"npc_count"`  // NPCs spawned on random floor tiles
	TargetFPS int   `mapstructure:"target_fps"` // 0 disables frame pacing
}

// LogConfig controls the log file.
type LogConfig struct {
	File       string `mapstructure:"file"` // Empty discards logs
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// TelemetryConfig controls trace export.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DataConfig controls where game data is read from.
type DataConfig struct {
	Dir string `mapstructure:"dir"` // Empty uses the embedded data
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("map.width", world.DefaultWidth)
	v.SetDefault("map.height", world.DefaultHeight)
	v.SetDefault("map.max_rooms", world.DefaultMaxRooms)
	v.SetDefault("map.room_min_size", world.DefaultRoomMinSize)
	v.SetDefault("map.room_max_size", world.DefaultRoomMaxSize)

	v.SetDefault("fov.radius", 10)
	v.SetDefault("fov.light_walls", true)
	v.SetDefault("fov.algorithm", string(fov.AlgorithmBasic))

	v.SetDefault("game.seed", 0)
	v.SetDefault("game.npc_count", 1)
	v.SetDefault("game.target_fps", 30)

	v.SetDefault("log.file", "torchcrawl.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("data.dir", "")
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"width":         "map.width",
	"height":        "map.height",
	"max-rooms":     "map.max_rooms",
	"fov-radius":    "fov.radius",
	"fov-algorithm": "fov.algorithm",
	"light-walls":   "fov.light_walls",
	"seed":          "game.seed",
	"npcs":          "game.npc_count",
	"fps":           "game.target_fps",
	"log-file":      "log.file",
	"log-level":     "log.level",
	"telemetry":     "telemetry.enabled",
	"data-dir":      "data.dir",
}

// NewFlagSet returns the command-line flags understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (yaml, toml or json)")
	fs.Int("width", world.DefaultWidth, "map width in tiles")
	fs.Int("height", world.DefaultHeight, "map height in tiles")
	fs.Int("max-rooms", world.DefaultMaxRooms, "room placement attempts")
	fs.Int("fov-radius", 10, "field of view radius (0 = unlimited)")
	fs.String("fov-algorithm", string(fov.AlgorithmBasic), "field of view algorithm (basic, shadow)")
	fs.Bool("light-walls", true, "light the walls bordering the field of view")
	fs.Int64("seed", 0, "random seed (0 = time-based)")
	fs.Int("npcs", 1, "number of NPCs to spawn")
	fs.Int("fps", 30, "frame rate cap (0 = unlimited)")
	fs.String("log-file", "torchcrawl.log", "log file path (empty discards logs)")
	fs.String("log-level", "info", "log level")
	fs.Bool("telemetry", false, "export traces over OTLP/HTTP")
	fs.String("data-dir", "", "directory overriding the embedded game data")
	return fs
}

// Load parses args and merges every configuration source.
// Precedence, highest first: flags, environment, config file, defaults.
func Load(args []string) (*Config, error) {
	fs := NewFlagSet("torchcrawl")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return FromFlags(fs)
}

// FromFlags builds a Config from an already parsed flag set.
func FromFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if flag := fs.Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no source overrides anything.
// It panics if the built-in defaults do not decode or validate.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Errorf("decoding defaults: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Errorf("default configuration: %w", err))
	}
	return &cfg
}

// MapParams converts the map section to generator parameters.
func (c *Config) MapParams() world.Params {
	return world.Params{
		Width:       c.Map.Width,
		Height:      c.Map.Height,
		MaxRooms:    c.Map.MaxRooms,
		RoomMinSize: c.Map.RoomMinSize,
		RoomMaxSize: c.Map.RoomMaxSize,
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.MapParams().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.FOV.Radius < 0 {
		return fmt.Errorf("%w: fov radius %d", ErrInvalid, c.FOV.Radius)
	}
	if _, err := fov.ParseAlgorithm(c.FOV.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Game.NPCCount < 0 {
		return fmt.Errorf("%w: npc count %d", ErrInvalid, c.Game.NPCCount)
	}
	if c.Game.TargetFPS < 0 {
		return fmt.Errorf("%w: target fps %d", ErrInvalid, c.Game.TargetFPS)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

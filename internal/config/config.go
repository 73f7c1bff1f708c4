// Package config loads the hexlife driver configuration from YAML.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hexgrid/internal/noise"
)

// Config holds all driver configuration
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Run     RunConfig     `yaml:"run"`
	Storage StorageConfig `yaml:"storage"`
	Terrain TerrainConfig `yaml:"terrain"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig holds the game-of-life board settings
type BoardConfig struct {
	Size             int     `yaml:"size"`              // Layer range around the origin
	SeedRadius       int     `yaml:"seed_radius"`       // Spiral radius used for random seeding
	AliveProbability float64 `yaml:"alive_probability"` // Chance a seeded cell starts alive
	Seed             int64   `yaml:"seed"`              // 0 = random
}

// RunConfig holds engine settings
type RunConfig struct {
	Generations     uint64 `yaml:"generations"`      // 0 = until interrupted
	IntervalMS      int    `yaml:"interval_ms"`      // Minimum wall time per generation
	CheckpointEvery uint64 `yaml:"checkpoint_every"` // Save cadence in generations
}

// StorageConfig holds SQLite settings; an empty path disables saving
type StorageConfig struct {
	Path  string `yaml:"path"`
	Layer string `yaml:"layer"`
}

// TerrainConfig holds the noise terrain report settings
type TerrainConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Range      int           `yaml:"range"`
	BlockLevel float64       `yaml:"block_level"` // Heights at or above this are blocked
	ViewRange  int           `yaml:"view_range"`  // Negative = unlimited
	MoveRange  int           `yaml:"move_range"`
	Noise      noise.Fractal `yaml:"noise"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json, auto
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Size:             10,
			SeedRadius:       10,
			AliveProbability: 0.5,
		},
		Run: RunConfig{
			Generations:     10,
			CheckpointEvery: 1,
		},
		Storage: StorageConfig{
			Layer: "life",
		},
		Terrain: TerrainConfig{
			Enabled:    true,
			Range:      8,
			BlockLevel: 0.3,
			ViewRange:  -1,
			MoveRange:  3,
			Noise:      noise.DefaultFractal(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
	}
}

// Load reads configuration from a YAML file.
// Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from HEXLIFE_DB and HEXLIFE_SEED.
func (c *Config) ApplyEnv() error {
	if path := os.Getenv("HEXLIFE_DB"); path != "" {
		c.Storage.Path = path
	}
	if s := os.Getenv("HEXLIFE_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid HEXLIFE_SEED: %w", err)
		}
		c.Board.Seed = seed
	}
	return nil
}

// Validate checks the configuration for values the driver cannot run with.
func (c *Config) Validate() error {
	if c.Board.Size < 1 {
		return fmt.Errorf("board.size must be at least 1, got %d", c.Board.Size)
	}
	if c.Board.SeedRadius < 0 {
		return fmt.Errorf("board.seed_radius must not be negative, got %d", c.Board.SeedRadius)
	}
	if p := c.Board.AliveProbability; p < 0 || p > 1 {
		return fmt.Errorf("board.alive_probability must be within [0, 1], got %g", p)
	}
	if c.Run.IntervalMS < 0 {
		return fmt.Errorf("run.interval_ms must not be negative, got %d", c.Run.IntervalMS)
	}
	if c.Storage.Path != "" && c.Storage.Layer == "" {
		return fmt.Errorf("storage.layer is required when storage.path is set")
	}
	if c.Terrain.Enabled && c.Terrain.Range < 1 {
		return fmt.Errorf("terrain.range must be at least 1, got %d", c.Terrain.Range)
	}
	switch c.Log.Format {
	case "text", "json", "auto":
	default:
		return fmt.Errorf("log.format must be text, json or auto, got %q", c.Log.Format)
	}
	return nil
}

// Interval returns the run interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Run.IntervalMS) * time.Millisecond
}

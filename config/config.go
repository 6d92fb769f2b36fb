// Package config holds the game's runtime settings and screen layout.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings read from CRAWL_* environment variables
type Config struct {
	MapWidth    int `env:"CRAWL_MAP_WIDTH" envDefault:"80"`
	MapHeight   int `env:"CRAWL_MAP_HEIGHT" envDefault:"43"`
	MaxRooms    int `env:"CRAWL_MAX_ROOMS" envDefault:"30"`
	RoomMinSize int `env:"CRAWL_ROOM_MIN_SIZE" envDefault:"6"`
	RoomMaxSize int `env:"CRAWL_ROOM_MAX_SIZE" envDefault:"10"`
	MaxSpawns   int `env:"CRAWL_MAX_SPAWNS" envDefault:"4"`

	// Generator is the level layout: "rooms" or "bsp"
	Generator string `env:"CRAWL_GENERATOR" envDefault:"rooms"`

	// Seed 0 picks a time based seed
	Seed int64 `env:"CRAWL_SEED" envDefault:"0"`

	ViewRange     int `env:"CRAWL_VIEW_RANGE" envDefault:"8"`
	PlayerHP      int `env:"CRAWL_PLAYER_HP" envDefault:"30"`
	PlayerPower   int `env:"CRAWL_PLAYER_POWER" envDefault:"5"`
	PlayerDefense int `env:"CRAWL_PLAYER_DEFENSE" envDefault:"2"`

	LogCapacity   int        `env:"CRAWL_LOG_CAPACITY" envDefault:"100"`
	SavePath      string     `env:"CRAWL_SAVE_PATH" envDefault:"savegame.json"`
	TemplatesPath string     `env:"CRAWL_TEMPLATES_PATH"`
	LogLevel      slog.Level `env:"CRAWL_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the configuration from the environment and validates it
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in defaults without looking at the environment
func Default() Config {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}}); err != nil {
		// Defaults are static tags
		panic(err)
	}
	return cfg
}

// Validate rejects settings the generator or spawner cannot work with
func (c Config) Validate() error {
	if c.RoomMinSize < 1 || c.RoomMaxSize <= c.RoomMinSize {
		return fmt.Errorf("invalid room size range [%d, %d)", c.RoomMinSize, c.RoomMaxSize)
	}
	if c.MapWidth <= c.RoomMaxSize+1 || c.MapHeight <= c.RoomMaxSize+1 {
		return fmt.Errorf("map %dx%d is too small for rooms up to %d", c.MapWidth, c.MapHeight, c.RoomMaxSize)
	}
	if c.MaxRooms < 1 {
		return fmt.Errorf("max rooms must be positive, got %d", c.MaxRooms)
	}
	if c.Generator != "rooms" && c.Generator != "bsp" {
		return fmt.Errorf("unknown generator %q", c.Generator)
	}
	if c.PlayerHP < 1 {
		return fmt.Errorf("player hp must be positive, got %d", c.PlayerHP)
	}
	return nil
}

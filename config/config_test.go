package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Setenv("CRAWL_MAP_WIDTH", "120")

	cfg := Default()
	assert.Equal(t, 80, cfg.MapWidth)
	assert.Equal(t, 43, cfg.MapHeight)
	assert.Equal(t, 30, cfg.MaxRooms)
	assert.Equal(t, 6, cfg.RoomMinSize)
	assert.Equal(t, 10, cfg.RoomMaxSize)
	assert.Equal(t, 4, cfg.MaxSpawns)
	assert.Equal(t, "rooms", cfg.Generator)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 30, cfg.PlayerHP)
	assert.Equal(t, "savegame.json", cfg.SavePath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("CRAWL_SEED", "42")
	t.Setenv("CRAWL_MAP_WIDTH", "60")
	t.Setenv("CRAWL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 60, cfg.MapWidth)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("CRAWL_MAX_ROOMS", "lots")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	t.Setenv("CRAWL_ROOM_MIN_SIZE", "10")
	t.Setenv("CRAWL_ROOM_MAX_SIZE", "6")

	_, err := Load()
	assert.ErrorContains(t, err, "room size")
}

func TestLoadRejectsUnknownGenerator(t *testing.T) {
	t.Setenv("CRAWL_GENERATOR", "caves")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown generator")
}

// Package generation builds new dungeon levels.
package generation

import (
	"errors"
	"fmt"

	"ebiten-delve/dungeon"
	"ebiten-delve/random"
)

// ErrNoRooms is returned when no room could be placed on the map
var ErrNoRooms = errors.New("no rooms were placed")

// Config holds the room-and-corridor generation parameters
type Config struct {
	Width       int
	Height      int
	MaxRooms    int // Number of placement attempts
	MinRoomSize int
	MaxRoomSize int // Exclusive upper bound on room width and height
	Algorithm   Algorithm
}

// DefaultConfig returns the standard 80x43 layout with 30 room attempts
func DefaultConfig() Config {
	return Config{
		Width:       80,
		Height:      43,
		MaxRooms:    30,
		MinRoomSize: 6,
		MaxRoomSize: 10,
		Algorithm:   AlgorithmRooms,
	}
}

// DungeonGenerator handles procedural generation of dungeon layouts
type DungeonGenerator struct {
	config Config
	rng    *random.RNG
}

// NewDungeonGenerator creates a new dungeon generator drawing from rng
func NewDungeonGenerator(config Config, rng *random.RNG) *DungeonGenerator {
	return &DungeonGenerator{
		config: config,
		rng:    rng,
	}
}

// Generate builds a level with the configured algorithm
func (g *DungeonGenerator) Generate(depth int) (*dungeon.Map, error) {
	switch g.config.Algorithm {
	case AlgorithmBSP:
		return g.BSP(depth)
	case AlgorithmRooms, "":
		return g.RoomsAndCorridors(depth)
	default:
		return nil, fmt.Errorf("generate depth %d: unknown algorithm %q", depth, g.config.Algorithm)
	}
}

// RoomsAndCorridors creates random non-overlapping rooms, joins each new room
// to the previous one with an L-shaped corridor and puts the down stairs in the
// center of the last room. The map does not reference any entity.
func (g *DungeonGenerator) RoomsAndCorridors(depth int) (*dungeon.Map, error) {
	cfg := g.config
	if cfg.Width-cfg.MaxRoomSize-1 < 1 || cfg.Height-cfg.MaxRoomSize-1 < 1 {
		return nil, fmt.Errorf("generate depth %d: map %dx%d too small for rooms of size %d: %w",
			depth, cfg.Width, cfg.Height, cfg.MaxRoomSize, ErrNoRooms)
	}

	m := dungeon.NewMap(cfg.Width, cfg.Height, depth)

	for i := 0; i < cfg.MaxRooms; i++ {
		// Random room size
		w := g.rng.Range(cfg.MinRoomSize, cfg.MaxRoomSize)
		h := g.rng.Range(cfg.MinRoomSize, cfg.MaxRoomSize)

		// Random room position, leaving the border as wall
		x := max(1, g.rng.RollDice(1, m.Width-w-1)-1)
		y := max(1, g.rng.RollDice(1, m.Height-h-1)-1)
		newRoom := dungeon.NewRect(x, y, w, h)

		overlaps := false
		for _, other := range m.Rooms {
			if newRoom.Intersect(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		applyRoom(m, newRoom)

		// Connect it to the previous room
		if len(m.Rooms) > 0 {
			newX, newY := newRoom.Center()
			prevX, prevY := m.Rooms[len(m.Rooms)-1].Center()
			if g.rng.Range(0, 2) == 1 {
				applyHorizontalTunnel(m, prevX, newX, prevY)
				applyVerticalTunnel(m, prevY, newY, newX)
			} else {
				applyVerticalTunnel(m, prevY, newY, prevX)
				applyHorizontalTunnel(m, prevX, newX, newY)
			}
		}

		m.Rooms = append(m.Rooms, newRoom)
	}

	if len(m.Rooms) == 0 {
		return nil, fmt.Errorf("generate depth %d after %d attempts: %w", depth, cfg.MaxRooms, ErrNoRooms)
	}

	stairsX, stairsY := m.Rooms[len(m.Rooms)-1].Center()
	m.Tiles[m.Idx(stairsX, stairsY)] = dungeon.TileDownStairs

	m.PopulateBlocked()
	return m, nil
}

// applyRoom carves the interior of a room to floor
func applyRoom(m *dungeon.Map, room dungeon.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.Tiles[m.Idx(x, y)] = dungeon.TileFloor
		}
	}
}

// applyHorizontalTunnel carves a one-tile-wide corridor along row y
func applyHorizontalTunnel(m *dungeon.Map, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		carve(m, x, y)
	}
}

// applyVerticalTunnel carves a one-tile-wide corridor along column x
func applyVerticalTunnel(m *dungeon.Map, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		carve(m, x, y)
	}
}

func carve(m *dungeon.Map, x, y int) {
	idx := m.Idx(x, y)
	if idx > 0 && idx < len(m.Tiles) {
		m.Tiles[idx] = dungeon.TileFloor
	}
}

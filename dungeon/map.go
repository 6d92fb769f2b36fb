// Package dungeon holds the tile grid every system reads: geometry, the
// blocking and visibility bitsets, the per-tile occupant index, and the
// path and sight queries built on top of them.
package dungeon

import (
	"math"

	"ebiten-delve/ecs"
)

// TileType is the kind of terrain on one map cell
type TileType int

// Tile types
const (
	TileWall TileType = iota
	TileFloor
	TileDownStairs
)

// String returns the tile type name
func (t TileType) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDownStairs:
		return "downstairs"
	default:
		return "unknown"
	}
}

// DiagonalCost is the path cost of a diagonal step. It is deliberately not
// sqrt(2); path tie-breaks depend on this exact value.
const DiagonalCost = 1.45

// Point is a tile coordinate
type Point struct {
	X, Y int
}

// Exit is a reachable neighbor of a tile and the cost of stepping onto it
type Exit struct {
	Idx  int
	Cost float64
}

// Map stores the game map data. Tiles and the bitsets are row-major,
// indexed by Idx. TileContent is rebuilt every tick and never persisted.
type Map struct {
	Tiles         []TileType
	Width         int
	Height        int
	Rooms         []Rect
	RevealedTiles []bool
	VisibleTiles  []bool
	Blocked       []bool
	Depth         int
	Bloodstains   map[int]bool
	TileContent   [][]ecs.EntityID `json:"-"`
}

// NewMap creates a map of solid walls with the given dimensions
func NewMap(width, height, depth int) *Map {
	count := width * height
	m := &Map{
		Tiles:         make([]TileType, count),
		Width:         width,
		Height:        height,
		RevealedTiles: make([]bool, count),
		VisibleTiles:  make([]bool, count),
		Blocked:       make([]bool, count),
		Depth:         depth,
		Bloodstains:   make(map[int]bool),
		TileContent:   make([][]ecs.EntityID, count),
	}

	// Start with walls everywhere
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
	}

	return m
}

// Idx returns the row-major index of a tile
func (m *Map) Idx(x, y int) int {
	return y*m.Width + x
}

// Coords returns the tile coordinates of an index
func (m *Map) Coords(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// InBounds returns true if the coordinates lie on the map
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// IsOpaque returns true if the tile blocks sight
func (m *Map) IsOpaque(idx int) bool {
	return m.Tiles[idx] == TileWall
}

// IsExitValid returns true if a step onto (x, y) is allowed: inside the
// one-tile border and not blocked
func (m *Map) IsExitValid(x, y int) bool {
	if x < 1 || x >= m.Width-1 || y < 1 || y >= m.Height-1 {
		return false
	}
	return !m.Blocked[m.Idx(x, y)]
}

// Exits lists the walkable neighbors of a tile, orthogonal ones first
func (m *Map) Exits(idx int) []Exit {
	exits := make([]Exit, 0, 8)
	x, y := m.Coords(idx)

	neighbors := []struct {
		dx, dy int
		cost   float64
	}{
		{-1, 0, 1.0}, {1, 0, 1.0}, {0, -1, 1.0}, {0, 1, 1.0},
		{-1, -1, DiagonalCost}, {1, -1, DiagonalCost}, {-1, 1, DiagonalCost}, {1, 1, DiagonalCost},
	}
	for _, n := range neighbors {
		if m.IsExitValid(x+n.dx, y+n.dy) {
			exits = append(exits, Exit{Idx: m.Idx(x+n.dx, y+n.dy), Cost: n.cost})
		}
	}

	return exits
}

// PathDistance returns the Euclidean distance between two tiles
func (m *Map) PathDistance(idx1, idx2 int) float64 {
	x1, y1 := m.Coords(idx1)
	x2, y2 := m.Coords(idx2)
	return Distance(x1, y1, x2, y2)
}

// Distance returns the Euclidean distance between two coordinates
func Distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return math.Sqrt(dx*dx + dy*dy)
}

// PopulateBlocked recomputes Blocked from tile geometry alone
func (m *Map) PopulateBlocked() {
	for i, tile := range m.Tiles {
		m.Blocked[i] = tile == TileWall
	}
}

// ClearContentIndex empties every per-tile occupant list
func (m *Map) ClearContentIndex() {
	if len(m.TileContent) != len(m.Tiles) {
		m.TileContent = make([][]ecs.EntityID, len(m.Tiles))
		return
	}
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// ContentAt returns the entities indexed on a tile
func (m *Map) ContentAt(x, y int) []ecs.EntityID {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.TileContent[m.Idx(x, y)]
}

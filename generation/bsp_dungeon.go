package generation

import (
	"fmt"

	"ebiten-delve/dungeon"
)

const (
	bspMaxDepth    = 6  // Maximum number of splits along any branch
	bspMinNodeSize = 10 // Minimum size of a node after splitting
)

// BSPNode represents a node in the binary space partitioning tree. A node
// covers cells X to X+Width-1 and Y to Y+Height-1.
type BSPNode struct {
	X, Y          int
	Width, Height int
	Left, Right   *BSPNode
	Room          *dungeon.Rect
}

// BSP creates a dungeon using binary space partitioning. Each leaf holds at
// most one room, sibling subtrees are joined by an L-shaped corridor and the
// down stairs go in the center of the last room.
func (g *DungeonGenerator) BSP(depth int) (*dungeon.Map, error) {
	cfg := g.config
	if cfg.Width < bspMinNodeSize || cfg.Height < bspMinNodeSize {
		return nil, fmt.Errorf("generate depth %d: map %dx%d too small to partition: %w",
			depth, cfg.Width, cfg.Height, ErrNoRooms)
	}

	m := dungeon.NewMap(cfg.Width, cfg.Height, depth)

	// The last row and column are kept out of the tree so the border stays wall
	root := &BSPNode{X: 0, Y: 0, Width: cfg.Width - 1, Height: cfg.Height - 1}

	// Recursively split the space
	g.splitNode(root, 0, bspMaxDepth)

	// Generate rooms within the leaf nodes
	g.createRoomsInLeaves(root)
	g.collectRooms(root, m)
	if len(m.Rooms) == 0 {
		return nil, fmt.Errorf("generate depth %d: no leaf could hold a room: %w", depth, ErrNoRooms)
	}
	for _, room := range m.Rooms {
		applyRoom(m, room)
	}

	// Connect rooms together
	g.connectRooms(root, m)

	stairsX, stairsY := m.Rooms[len(m.Rooms)-1].Center()
	m.Tiles[m.Idx(stairsX, stairsY)] = dungeon.TileDownStairs

	m.PopulateBlocked()
	return m, nil
}

// splitNode recursively splits a BSP node into two child nodes
func (g *DungeonGenerator) splitNode(node *BSPNode, depth, maxDepth int) {
	if depth >= maxDepth {
		return
	}

	// Split across the longer side when one is more than 25% larger, otherwise at random
	var horizontal bool
	switch {
	case float64(node.Width) > float64(node.Height)*1.25:
		horizontal = false
	case float64(node.Height) > float64(node.Width)*1.25:
		horizontal = true
	default:
		horizontal = g.rng.Range(0, 2) == 0
	}

	size := node.Width
	if horizontal {
		size = node.Height
	}
	if size < 2*bspMinNodeSize+1 {
		return
	}

	// Leave at least bspMinNodeSize on each side
	splitPos := bspMinNodeSize + g.rng.Range(0, size-2*bspMinNodeSize)

	if horizontal {
		node.Left = &BSPNode{X: node.X, Y: node.Y, Width: node.Width, Height: splitPos}
		node.Right = &BSPNode{X: node.X, Y: node.Y + splitPos, Width: node.Width, Height: node.Height - splitPos}
	} else {
		node.Left = &BSPNode{X: node.X, Y: node.Y, Width: splitPos, Height: node.Height}
		node.Right = &BSPNode{X: node.X + splitPos, Y: node.Y, Width: node.Width - splitPos, Height: node.Height}
	}

	g.splitNode(node.Left, depth+1, maxDepth)
	g.splitNode(node.Right, depth+1, maxDepth)
}

// createRoomsInLeaves places a room in every leaf large enough for one. The
// room's carved interior stays off the leaf's first and last row and column,
// so rooms of different leaves never touch.
func (g *DungeonGenerator) createRoomsInLeaves(node *BSPNode) {
	if node.Left != nil || node.Right != nil {
		if node.Left != nil {
			g.createRoomsInLeaves(node.Left)
		}
		if node.Right != nil {
			g.createRoomsInLeaves(node.Right)
		}
		return
	}

	w, ok := g.roomSpan(node.Width)
	if !ok {
		return
	}
	h, ok := g.roomSpan(node.Height)
	if !ok {
		return
	}

	x := node.X + 1 + g.rng.Range(0, node.Width-w-2)
	y := node.Y + 1 + g.rng.Range(0, node.Height-h-2)
	room := dungeon.NewRect(x, y, w, h)
	node.Room = &room
}

// roomSpan picks a room size for a leaf side, bounded by the configured
// sizes and by the room fitting inside the leaf
func (g *DungeonGenerator) roomSpan(side int) (int, bool) {
	largest := min(side-3, g.config.MaxRoomSize-1)
	if largest < 3 {
		return 0, false
	}
	smallest := min(g.config.MinRoomSize, largest)
	return g.rng.Range(smallest, largest+1), true
}

// collectRooms appends the rooms of the tree to the map, left subtree first
func (g *DungeonGenerator) collectRooms(node *BSPNode, m *dungeon.Map) {
	if node == nil {
		return
	}
	if node.Room != nil {
		m.Rooms = append(m.Rooms, *node.Room)
	}
	g.collectRooms(node.Left, m)
	g.collectRooms(node.Right, m)
}

// connectRooms joins a room of each child subtree for every internal node
func (g *DungeonGenerator) connectRooms(node *BSPNode, m *dungeon.Map) {
	if node.Left == nil || node.Right == nil {
		return
	}

	leftRoom := findRoom(node.Left)
	rightRoom := findRoom(node.Right)
	if leftRoom != nil && rightRoom != nil {
		x1, y1 := leftRoom.Center()
		x2, y2 := rightRoom.Center()
		if g.rng.Range(0, 2) == 1 {
			applyHorizontalTunnel(m, x1, x2, y1)
			applyVerticalTunnel(m, y1, y2, x2)
		} else {
			applyVerticalTunnel(m, y1, y2, x1)
			applyHorizontalTunnel(m, x1, x2, y2)
		}
	}

	g.connectRooms(node.Left, m)
	g.connectRooms(node.Right, m)
}

// findRoom finds a room in the subtree rooted at the given node
func findRoom(node *BSPNode) *dungeon.Rect {
	if node == nil {
		return nil
	}
	if node.Room != nil {
		return node.Room
	}
	if room := findRoom(node.Left); room != nil {
		return room
	}
	return findRoom(node.Right)
}

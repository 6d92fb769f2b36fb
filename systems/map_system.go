package systems

import (
	"ebiten-delve/components"
)

// MapIndexingSystem rebuilds the blocking flags and tile contents from entity positions
type MapIndexingSystem struct{}

// NewMapIndexingSystem creates a new map indexing system
func NewMapIndexingSystem() *MapIndexingSystem {
	return &MapIndexingSystem{}
}

// Run resets blocking to the bare geometry, then layers every positioned entity on top
func (s *MapIndexingSystem) Run(ctx *Context) {
	world, m := ctx.World, ctx.Map

	m.PopulateBlocked()
	m.ClearContentIndex()

	for _, id := range world.Query(components.Position) {
		c, _ := world.GetComponent(id, components.Position)
		pos := c.(*components.PositionComponent)
		if !m.InBounds(pos.X, pos.Y) {
			ctx.Logger.Warn("entity outside the map", "entity", id, "x", pos.X, "y", pos.Y)
			continue
		}

		idx := m.Idx(pos.X, pos.Y)
		if world.HasComponent(id, components.BlocksTile) {
			m.Blocked[idx] = true
		}
		m.TileContent[idx] = append(m.TileContent[idx], id)
	}
}

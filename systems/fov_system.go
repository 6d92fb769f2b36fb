package systems

import (
	"ebiten-delve/components"
	"ebiten-delve/dungeon"
	"ebiten-delve/ecs"
)

// VisibilitySystem recomputes dirty viewsheds
type VisibilitySystem struct{}

// NewVisibilitySystem creates a new visibility system
func NewVisibilitySystem() *VisibilitySystem {
	return &VisibilitySystem{}
}

// Run recalculates the visible tiles of every entity whose viewshed is dirty.
// The player's view is also copied into the map's visible and revealed tiles.
func (s *VisibilitySystem) Run(ctx *Context) {
	world, m := ctx.World, ctx.Map

	for _, id := range world.Query(components.Viewshed, components.Position) {
		vs, _ := ecs.GetAs[*components.ViewshedComponent](world, id, components.Viewshed)
		if !vs.Dirty {
			continue
		}
		pos, _ := ecs.GetAs[*components.PositionComponent](world, id, components.Position)

		vs.Dirty = false
		visible := dungeon.FieldOfView(m, pos.X, pos.Y, vs.Range)
		vs.VisibleTiles = vs.VisibleTiles[:0]
		for _, p := range visible {
			vs.VisibleTiles = append(vs.VisibleTiles, components.PositionComponent{X: p.X, Y: p.Y})
		}

		// Only the player's view feeds the map
		if !isPlayer(world, id) {
			continue
		}
		for i := range m.VisibleTiles {
			m.VisibleTiles[i] = false
		}
		for _, p := range visible {
			idx := m.Idx(p.X, p.Y)
			m.VisibleTiles[idx] = true
			m.RevealedTiles[idx] = true
		}
	}
}

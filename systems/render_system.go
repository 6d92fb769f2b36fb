package systems

import (
	"sort"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
)

// Drawable is one entity the presentation layer should draw
type Drawable struct {
	Entity     ecs.EntityID
	Position   components.PositionComponent
	Renderable *components.RenderableComponent
}

// Drawables returns every positioned, renderable entity on a tile the player
// can currently see, sorted by ascending render order and then entity ID.
// When several share a tile the first one in the list belongs on top.
func Drawables(ctx *Context) []Drawable {
	world, m := ctx.World, ctx.Map

	var out []Drawable
	for _, id := range world.Query(components.Position, components.Renderable) {
		pos, _ := ecs.GetAs[*components.PositionComponent](world, id, components.Position)
		if !m.InBounds(pos.X, pos.Y) || !m.VisibleTiles[m.Idx(pos.X, pos.Y)] {
			continue
		}
		render, _ := ecs.GetAs[*components.RenderableComponent](world, id, components.Renderable)
		out = append(out, Drawable{Entity: id, Position: *pos, Renderable: render})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Renderable.RenderOrder != out[j].Renderable.RenderOrder {
			return out[i].Renderable.RenderOrder < out[j].Renderable.RenderOrder
		}
		return out[i].Entity < out[j].Entity
	})
	return out
}

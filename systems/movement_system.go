package systems

import (
	"ebiten-delve/components"
	"ebiten-delve/ecs"
)

// TryMovePlayer moves the player by (dx, dy), or attacks whatever fighter
// stands on the destination. Returns false when nothing happened, so the
// player's turn is not spent walking into a wall.
func TryMovePlayer(ctx *Context, dx, dy int) bool {
	world, m := ctx.World, ctx.Map

	pos, ok := ecs.GetAs[*components.PositionComponent](world, ctx.Player, components.Position)
	if !ok {
		return false
	}

	destX, destY := pos.X+dx, pos.Y+dy
	if !m.InBounds(destX, destY) {
		return false
	}

	// Bump to attack
	for _, target := range m.ContentAt(destX, destY) {
		if target == ctx.Player || !world.HasComponent(target, components.CombatStats) {
			continue
		}
		world.AddComponent(ctx.Player, components.WantsToMelee, &components.WantsToMeleeComponent{Target: target})
		return true
	}

	if m.Blocked[m.Idx(destX, destY)] {
		return false
	}

	pos.X, pos.Y = destX, destY
	if vs, ok := ecs.GetAs[*components.ViewshedComponent](world, ctx.Player, components.Viewshed); ok {
		vs.Dirty = true
	}
	return true
}

// ItemAt returns the first item lying on the tile, if any
func ItemAt(ctx *Context, x, y int) (ecs.EntityID, bool) {
	for _, id := range ctx.Map.ContentAt(x, y) {
		if ctx.World.HasComponent(id, components.Item) {
			return id, true
		}
	}
	return ecs.NoEntity, false
}

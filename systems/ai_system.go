package systems

import (
	"ebiten-delve/components"
	"ebiten-delve/dungeon"
	"ebiten-delve/ecs"
)

// meleeRange is the largest distance from which a monster can attack
const meleeRange = 1.5

// MonsterAI decides what every monster does on the monsters' turn
type MonsterAI struct{}

// NewMonsterAI creates a new monster AI system
func NewMonsterAI() *MonsterAI {
	return &MonsterAI{}
}

// Run gives each monster one decision, in ascending entity order.
// When two monsters want the same tile the first one to move gets it.
func (s *MonsterAI) Run(ctx *Context) {
	if ctx.Phase != PhaseMonster {
		return
	}

	world := ctx.World
	playerPos, ok := ecs.GetAs[*components.PositionComponent](world, ctx.Player, components.Position)
	if !ok {
		return
	}

	for _, id := range world.Query(components.Monster, components.Viewshed, components.Position) {
		// Confused monsters lose their turn
		if confusion, confused := ecs.GetAs[*components.ConfusionComponent](world, id, components.Confusion); confused {
			confusion.Turns--
			if confusion.Turns <= 0 {
				world.RemoveComponent(id, components.Confusion)
			}
			ctx.Logger.Debug("monster is confused", "entity", id, "turns", confusion.Turns)
			continue
		}

		vs, _ := ecs.GetAs[*components.ViewshedComponent](world, id, components.Viewshed)
		if !vs.CanSee(playerPos.X, playerPos.Y) {
			continue
		}

		pos, _ := ecs.GetAs[*components.PositionComponent](world, id, components.Position)
		distance := dungeon.Distance(pos.X, pos.Y, playerPos.X, playerPos.Y)
		if distance <= meleeRange {
			world.AddComponent(id, components.WantsToMelee, &components.WantsToMeleeComponent{Target: ctx.Player})
			continue
		}

		s.stepTowards(ctx, id, pos, vs, playerPos)
	}
}

// stepTowards moves a monster one tile along the shortest path to the target
func (s *MonsterAI) stepTowards(ctx *Context, id ecs.EntityID, pos *components.PositionComponent, vs *components.ViewshedComponent, target *components.PositionComponent) {
	m := ctx.Map
	from := m.Idx(pos.X, pos.Y)

	path, found := dungeon.FindPath(m, from, m.Idx(target.X, target.Y))
	if !found || len(path) < 2 {
		return
	}

	next := path[1]
	if m.Blocked[next] {
		return
	}

	pos.X, pos.Y = m.Coords(next)
	vs.Dirty = true

	// Keep blocking current for the monsters that decide after this one
	if ctx.World.HasComponent(id, components.BlocksTile) {
		m.Blocked[from] = false
		m.Blocked[next] = true
	}

	ctx.Logger.Debug("monster moves", "name", getEntityName(ctx.World, id), "entity", id, "x", pos.X, "y", pos.Y)
}

package systems

import (
	"fmt"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
)

// DamageSystem applies accumulated damage to health
type DamageSystem struct{}

// NewDamageSystem creates a new damage system
func NewDamageSystem() *DamageSystem {
	return &DamageSystem{}
}

// Run subtracts every accumulator from its owner's health, stains the floor
// under the victim and removes all accumulators
func (s *DamageSystem) Run(ctx *Context) {
	world, m := ctx.World, ctx.Map

	for _, id := range world.Query(components.SufferDamage, components.CombatStats) {
		suffer, _ := ecs.GetAs[*components.SufferDamageComponent](world, id, components.SufferDamage)
		stats, _ := ecs.GetAs[*components.CombatStatsComponent](world, id, components.CombatStats)

		stats.HP -= suffer.Total()

		if pos, ok := ecs.GetAs[*components.PositionComponent](world, id, components.Position); ok && m.InBounds(pos.X, pos.Y) {
			m.Bloodstains[m.Idx(pos.X, pos.Y)] = true
		}
	}

	world.ClearComponent(components.SufferDamage)
}

// DeleteTheDead queues every entity without health left for deletion and
// emits a DeathEvent for each. The player is never deleted; its DeathEvent
// ends the run instead. Returns true if the player died.
func DeleteTheDead(ctx *Context) bool {
	world := ctx.World
	playerDied := false

	for _, id := range world.Query(components.CombatStats) {
		stats, _ := ecs.GetAs[*components.CombatStatsComponent](world, id, components.CombatStats)
		if stats.HP > 0 || world.IsQueuedForDeletion(id) {
			continue
		}

		if isPlayer(world, id) {
			playerDied = true
			ctx.Log.AddAlert("You are dead!")
		} else {
			ctx.Log.AddCombat(fmt.Sprintf("%s is dead", getEntityName(world, id)))
			world.QueueDelete(id)
		}

		world.EmitEvent(DeathEvent{EntityID: id, IsPlayer: isPlayer(world, id)})
	}

	return playerDied
}

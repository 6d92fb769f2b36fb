package systems

import (
	"ebiten-delve/components"
	"ebiten-delve/ecs"
)

// getEntityName returns the display name of an entity, or a fallback
func getEntityName(world *ecs.World, entityID ecs.EntityID) string {
	return components.DisplayName(world, entityID)
}

// isPlayer checks if an entity is the player
func isPlayer(world *ecs.World, entityID ecs.EntityID) bool {
	return world.HasComponent(entityID, components.Player)
}

// InflictDamage appends an amount to the victim's damage accumulator, creating it if needed
func InflictDamage(world *ecs.World, victim ecs.EntityID, amount int) {
	if suffer, ok := ecs.GetAs[*components.SufferDamageComponent](world, victim, components.SufferDamage); ok {
		suffer.Amounts = append(suffer.Amounts, amount)
		return
	}
	world.AddComponent(victim, components.SufferDamage, &components.SufferDamageComponent{Amounts: []int{amount}})
}

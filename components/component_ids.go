package components

import (
	"ebiten-delve/ecs"
)

// Define component IDs for our game
const (
	Position ecs.ComponentID = iota
	Renderable
	Name
	Viewshed
	CombatStats
	SufferDamage
	Marker // Stable identity used by save/load

	// Tags and item properties
	Player
	Monster
	BlocksTile
	Item
	Consumable
	Ranged
	AreaOfEffect
	InflictsDamage
	ProvidesHealing
	Confusion
	Equippable
	MeleePowerBonus
	DefenseBonus

	// Ownership relations
	InBackpack
	Equipped

	// One-shot intents, consumed in the tick they are attached
	WantsToMelee
	WantsToPickupItem
	WantsToUseItem
	WantsToDropItem
	WantsToRemoveItem
)

package systems

import (
	"fmt"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
)

// ItemCollectionSystem moves picked up items from the floor into a backpack
type ItemCollectionSystem struct{}

// NewItemCollectionSystem creates a new item collection system
func NewItemCollectionSystem() *ItemCollectionSystem {
	return &ItemCollectionSystem{}
}

// Run resolves every WantsToPickupItem intent
func (s *ItemCollectionSystem) Run(ctx *Context) {
	world := ctx.World

	for _, id := range world.Query(components.WantsToPickupItem) {
		intent, _ := ecs.GetAs[*components.WantsToPickupItemComponent](world, id, components.WantsToPickupItem)
		world.RemoveComponent(id, components.WantsToPickupItem)

		if !world.HasComponent(intent.Item, components.Item) || !world.HasComponent(intent.Item, components.Position) {
			ctx.Logger.Debug("pickup skipped, item not on the floor", "collector", intent.CollectedBy, "item", intent.Item)
			continue
		}

		world.RemoveComponent(intent.Item, components.Position)
		world.AddComponent(intent.Item, components.InBackpack, &components.InBackpackComponent{Owner: intent.CollectedBy})

		if isPlayer(world, intent.CollectedBy) {
			ctx.Log.AddItem(fmt.Sprintf("You pick up the %s.", getEntityName(world, intent.Item)))
		}
	}
}

// ItemDropSystem puts items from a backpack back on the floor
type ItemDropSystem struct{}

// NewItemDropSystem creates a new item drop system
func NewItemDropSystem() *ItemDropSystem {
	return &ItemDropSystem{}
}

// Run resolves every WantsToDropItem intent, dropping at the owner's feet
func (s *ItemDropSystem) Run(ctx *Context) {
	world := ctx.World

	for _, ownerID := range world.Query(components.WantsToDropItem) {
		intent, _ := ecs.GetAs[*components.WantsToDropItemComponent](world, ownerID, components.WantsToDropItem)
		world.RemoveComponent(ownerID, components.WantsToDropItem)

		backpack, ok := ecs.GetAs[*components.InBackpackComponent](world, intent.Item, components.InBackpack)
		if !ok || backpack.Owner != ownerID {
			ctx.Logger.Debug("drop skipped, item not carried", "owner", ownerID, "item", intent.Item)
			continue
		}
		ownerPos, ok := ecs.GetAs[*components.PositionComponent](world, ownerID, components.Position)
		if !ok {
			continue
		}

		world.RemoveComponent(intent.Item, components.InBackpack)
		world.AddComponent(intent.Item, components.Position, &components.PositionComponent{X: ownerPos.X, Y: ownerPos.Y})

		if isPlayer(world, ownerID) {
			ctx.Log.AddItem(fmt.Sprintf("You drop the %s.", getEntityName(world, intent.Item)))
		}
	}
}

// CarriedItems returns the items in the owner's backpack in ascending entity order
func CarriedItems(world *ecs.World, ownerID ecs.EntityID) []ecs.EntityID {
	var items []ecs.EntityID
	for _, id := range world.Query(components.InBackpack) {
		backpack, _ := ecs.GetAs[*components.InBackpackComponent](world, id, components.InBackpack)
		if backpack.Owner == ownerID {
			items = append(items, id)
		}
	}
	return items
}

// EquippedItems returns the items the owner has equipped in ascending entity order
func EquippedItems(world *ecs.World, ownerID ecs.EntityID) []ecs.EntityID {
	var items []ecs.EntityID
	for _, id := range world.Query(components.Equipped) {
		equipped, _ := ecs.GetAs[*components.EquippedComponent](world, id, components.Equipped)
		if equipped.Owner == ownerID {
			items = append(items, id)
		}
	}
	return items
}

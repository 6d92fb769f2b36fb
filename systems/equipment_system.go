package systems

import (
	"fmt"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
)

// ItemRemoveSystem moves unequipped items back to the owner's backpack
type ItemRemoveSystem struct{}

// NewItemRemoveSystem creates a new item remove system
func NewItemRemoveSystem() *ItemRemoveSystem {
	return &ItemRemoveSystem{}
}

// Run resolves every WantsToRemoveItem intent
func (s *ItemRemoveSystem) Run(ctx *Context) {
	world := ctx.World

	for _, ownerID := range world.Query(components.WantsToRemoveItem) {
		intent, _ := ecs.GetAs[*components.WantsToRemoveItemComponent](world, ownerID, components.WantsToRemoveItem)
		world.RemoveComponent(ownerID, components.WantsToRemoveItem)

		equipped, ok := ecs.GetAs[*components.EquippedComponent](world, intent.Item, components.Equipped)
		if !ok || equipped.Owner != ownerID {
			ctx.Logger.Debug("remove skipped, item not equipped", "owner", ownerID, "item", intent.Item)
			continue
		}

		world.RemoveComponent(intent.Item, components.Equipped)
		world.AddComponent(intent.Item, components.InBackpack, &components.InBackpackComponent{Owner: ownerID})

		if isPlayer(world, ownerID) {
			ctx.Log.AddItem(fmt.Sprintf("You unequip %s.", getEntityName(world, intent.Item)))
		}
	}
}

// equipItem puts an item into its slot, moving the slot's previous occupant back to the backpack
func equipItem(ctx *Context, ownerID, itemID ecs.EntityID, slot components.EquipmentSlot) {
	world := ctx.World

	for _, otherID := range world.Query(components.Equipped) {
		other, _ := ecs.GetAs[*components.EquippedComponent](world, otherID, components.Equipped)
		if otherID == itemID || other.Owner != ownerID || other.Slot != slot {
			continue
		}
		world.RemoveComponent(otherID, components.Equipped)
		world.AddComponent(otherID, components.InBackpack, &components.InBackpackComponent{Owner: ownerID})
		if isPlayer(world, ownerID) {
			ctx.Log.AddItem(fmt.Sprintf("You unequip %s.", getEntityName(world, otherID)))
		}
	}

	world.RemoveComponent(itemID, components.InBackpack)
	world.RemoveComponent(itemID, components.Position)
	world.AddComponent(itemID, components.Equipped, &components.EquippedComponent{Owner: ownerID, Slot: slot})
	if isPlayer(world, ownerID) {
		ctx.Log.AddItem(fmt.Sprintf("You equip %s.", getEntityName(world, itemID)))
	}
}

// MeleePowerBonus sums the power bonuses of everything the owner has equipped
func MeleePowerBonus(world *ecs.World, ownerID ecs.EntityID) int {
	total := 0
	for _, id := range world.Query(components.Equipped, components.MeleePowerBonus) {
		equipped, _ := ecs.GetAs[*components.EquippedComponent](world, id, components.Equipped)
		if equipped.Owner != ownerID {
			continue
		}
		bonus, _ := ecs.GetAs[*components.MeleePowerBonusComponent](world, id, components.MeleePowerBonus)
		total += bonus.Power
	}
	return total
}

// DefenseBonus sums the defense bonuses of everything the owner has equipped
func DefenseBonus(world *ecs.World, ownerID ecs.EntityID) int {
	total := 0
	for _, id := range world.Query(components.Equipped, components.DefenseBonus) {
		equipped, _ := ecs.GetAs[*components.EquippedComponent](world, id, components.Equipped)
		if equipped.Owner != ownerID {
			continue
		}
		bonus, _ := ecs.GetAs[*components.DefenseBonusComponent](world, id, components.DefenseBonus)
		total += bonus.Defense
	}
	return total
}

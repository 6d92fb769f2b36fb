package components

import (
	"ebiten-delve/ecs"
)

// InBackpackComponent places an item in an owner's backpack.
// Owner is a lookup reference only; it never implies lifetime ownership.
type InBackpackComponent struct {
	Owner ecs.EntityID
}

// EquippedComponent places an item in one of the owner's equipment slots
type EquippedComponent struct {
	Owner ecs.EntityID
	Slot  EquipmentSlot
}

// WantsToMeleeComponent requests a melee attack against Target
type WantsToMeleeComponent struct {
	Target ecs.EntityID
}

// WantsToPickupItemComponent requests that CollectedBy picks Item up from the floor
type WantsToPickupItemComponent struct {
	CollectedBy ecs.EntityID
	Item        ecs.EntityID
}

// WantsToUseItemComponent requests the use of Item, optionally aimed at Target
type WantsToUseItemComponent struct {
	Item   ecs.EntityID
	Target *PositionComponent
}

// WantsToDropItemComponent requests that Item is dropped at the owner's feet
type WantsToDropItemComponent struct {
	Item ecs.EntityID
}

// WantsToRemoveItemComponent requests that an equipped Item goes back to the backpack
type WantsToRemoveItemComponent struct {
	Item ecs.EntityID
}

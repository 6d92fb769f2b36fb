package components

// PlayerComponent indicates that an entity is controlled by the player
type PlayerComponent struct{}

// MonsterComponent marks a hostile entity driven by the monster AI
type MonsterComponent struct{}

// BlocksTileComponent marks an entity that occupies its map cell for blocking purposes
type BlocksTileComponent struct{}

// ItemComponent indicates that an entity is an item that can be collected
type ItemComponent struct{}

// ConsumableComponent marks an item that is destroyed when used
type ConsumableComponent struct{}

// RangedComponent marks an item that must be aimed at a tile
type RangedComponent struct {
	Range int
}

// AreaOfEffectComponent spreads an item's effect around the target tile
type AreaOfEffectComponent struct {
	Radius int
}

// InflictsDamageComponent makes an item damage its targets
type InflictsDamageComponent struct {
	Damage int
}

// ProvidesHealingComponent makes an item heal its targets
type ProvidesHealingComponent struct {
	HealAmount int
}

// ConfusionComponent on an item confuses its targets; on a monster it counts down the remaining turns
type ConfusionComponent struct {
	Turns int
}

// EquipmentSlot identifies where an equippable item is worn
type EquipmentSlot int

const (
	SlotMelee EquipmentSlot = iota
	SlotShield
)

// String returns the slot name
func (s EquipmentSlot) String() string {
	switch s {
	case SlotMelee:
		return "melee"
	case SlotShield:
		return "shield"
	default:
		return "unknown"
	}
}

// EquippableComponent marks an item that can be equipped in a slot
type EquippableComponent struct {
	Slot EquipmentSlot
}

// MeleePowerBonusComponent adds power to the owner's melee attacks while equipped
type MeleePowerBonusComponent struct {
	Power int
}

// DefenseBonusComponent adds defense to the owner while equipped
type DefenseBonusComponent struct {
	Defense int
}

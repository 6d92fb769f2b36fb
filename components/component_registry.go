package components

import (
	"strings"

	"ebiten-delve/ecs"
)

// componentNameMap maps string component names to their IDs
var componentNameMap = map[string]ecs.ComponentID{
	"Position":          Position,
	"Renderable":        Renderable,
	"Name":              Name,
	"Viewshed":          Viewshed,
	"CombatStats":       CombatStats,
	"SufferDamage":      SufferDamage,
	"Marker":            Marker,
	"Player":            Player,
	"Monster":           Monster,
	"BlocksTile":        BlocksTile,
	"Item":              Item,
	"Consumable":        Consumable,
	"Ranged":            Ranged,
	"AreaOfEffect":      AreaOfEffect,
	"InflictsDamage":    InflictsDamage,
	"ProvidesHealing":   ProvidesHealing,
	"Confusion":         Confusion,
	"Equippable":        Equippable,
	"MeleePowerBonus":   MeleePowerBonus,
	"DefenseBonus":      DefenseBonus,
	"InBackpack":        InBackpack,
	"Equipped":          Equipped,
	"WantsToMelee":      WantsToMelee,
	"WantsToPickupItem": WantsToPickupItem,
	"WantsToUseItem":    WantsToUseItem,
	"WantsToDropItem":   WantsToDropItem,
	"WantsToRemoveItem": WantsToRemoveItem,
}

// GetComponentIDByName returns the ComponentID for a given component name string
// The lookup is case-insensitive
func GetComponentIDByName(name string) (ecs.ComponentID, bool) {
	// Try exact match first
	if id, exists := componentNameMap[name]; exists {
		return id, true
	}

	// Try case-insensitive match
	for compName, id := range componentNameMap {
		if strings.EqualFold(compName, name) {
			return id, true
		}
	}

	return 0, false
}

// GetComponentName returns the registered name of a component ID
func GetComponentName(id ecs.ComponentID) (string, bool) {
	for name, compID := range componentNameMap {
		if compID == id {
			return name, true
		}
	}
	return "", false
}

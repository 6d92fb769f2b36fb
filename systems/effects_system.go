package systems

import (
	"fmt"

	"ebiten-delve/components"
	"ebiten-delve/dungeon"
	"ebiten-delve/ecs"
)

// ItemUseSystem applies the effects of used items
type ItemUseSystem struct{}

// NewItemUseSystem creates a new item use system
func NewItemUseSystem() *ItemUseSystem {
	return &ItemUseSystem{}
}

// Run resolves every WantsToUseItem intent. Damage is only accumulated here;
// the damage pass of the next tick resolves it.
func (s *ItemUseSystem) Run(ctx *Context) {
	world := ctx.World

	for _, userID := range world.Query(components.WantsToUseItem) {
		intent, _ := ecs.GetAs[*components.WantsToUseItemComponent](world, userID, components.WantsToUseItem)
		world.RemoveComponent(userID, components.WantsToUseItem)

		item := intent.Item
		if !world.IsAlive(item) || world.IsQueuedForDeletion(item) || !world.HasComponent(item, components.Item) {
			ctx.Logger.Debug("use skipped, item is gone", "user", userID, "item", item)
			continue
		}
		if !heldBy(world, item, userID) {
			ctx.Logger.Debug("use skipped, item not held", "user", userID, "item", item)
			continue
		}

		s.useItem(ctx, userID, item, s.targets(ctx, userID, item, intent.Target))
	}
}

// targets resolves who an item affects: the user when not aimed, otherwise the
// occupants of the target tile, or of every tile the blast reaches
func (s *ItemUseSystem) targets(ctx *Context, userID, item ecs.EntityID, target *components.PositionComponent) []ecs.EntityID {
	if target == nil {
		return []ecs.EntityID{userID}
	}

	m := ctx.Map
	if !m.InBounds(target.X, target.Y) {
		return nil
	}

	aoe, isAoE := ecs.GetAs[*components.AreaOfEffectComponent](ctx.World, item, components.AreaOfEffect)
	if !isAoE {
		return append([]ecs.EntityID(nil), m.ContentAt(target.X, target.Y)...)
	}

	// Walls shield the tiles behind them from the blast
	var targets []ecs.EntityID
	for _, p := range dungeon.FieldOfView(m, target.X, target.Y, aoe.Radius) {
		targets = append(targets, m.ContentAt(p.X, p.Y)...)
	}
	return targets
}

// heldBy reports whether the item is in the owner's backpack or equipped by them
func heldBy(world *ecs.World, item, owner ecs.EntityID) bool {
	if backpack, ok := ecs.GetAs[*components.InBackpackComponent](world, item, components.InBackpack); ok && backpack.Owner == owner {
		return true
	}
	equipped, ok := ecs.GetAs[*components.EquippedComponent](world, item, components.Equipped)
	return ok && equipped.Owner == owner
}

func (s *ItemUseSystem) useItem(ctx *Context, userID, item ecs.EntityID, targets []ecs.EntityID) {
	world := ctx.World
	itemName := getEntityName(world, item)
	byPlayer := isPlayer(world, userID)

	if equippable, ok := ecs.GetAs[*components.EquippableComponent](world, item, components.Equippable); ok {
		equipItem(ctx, userID, item, equippable.Slot)
	}

	if healing, ok := ecs.GetAs[*components.ProvidesHealingComponent](world, item, components.ProvidesHealing); ok {
		for _, target := range targets {
			stats, ok := ecs.GetAs[*components.CombatStatsComponent](world, target, components.CombatStats)
			if !ok {
				continue
			}
			stats.Heal(healing.HealAmount)
			if byPlayer {
				ctx.Log.AddItem(fmt.Sprintf("You use the %s, healing %d hp.", itemName, healing.HealAmount))
			}
		}
	}

	if damage, ok := ecs.GetAs[*components.InflictsDamageComponent](world, item, components.InflictsDamage); ok {
		for _, target := range targets {
			if !world.HasComponent(target, components.CombatStats) {
				continue
			}
			InflictDamage(world, target, damage.Damage)
			if byPlayer {
				ctx.Log.AddCombat(fmt.Sprintf("You use %s on %s, inflicting %d hp.", itemName, getEntityName(world, target), damage.Damage))
			}
		}
	}

	if confusion, ok := ecs.GetAs[*components.ConfusionComponent](world, item, components.Confusion); ok {
		for _, target := range targets {
			if !world.HasComponent(target, components.Monster) {
				continue
			}
			world.AddComponent(target, components.Confusion, &components.ConfusionComponent{Turns: confusion.Turns})
			if byPlayer {
				ctx.Log.AddItem(fmt.Sprintf("You use %s on %s, confusing them.", itemName, getEntityName(world, target)))
			}
		}
	}

	if world.HasComponent(item, components.Consumable) {
		world.QueueDelete(item)
	}
}

package spawners

import (
	"fmt"

	"ebiten-delve/components"
	"ebiten-delve/data"
	"ebiten-delve/ecs"
)

// CreateItem creates an item entity lying on the floor at the given position
func (s *EntitySpawner) CreateItem(x, y int, itemTemplateID string) (ecs.EntityID, error) {
	// Try to load the item template
	template, exists := s.templateManager.GetItemTemplate(itemTemplateID)
	if !exists {
		return ecs.NoEntity, fmt.Errorf("no item template found with ID '%s'", itemTemplateID)
	}

	b := s.world.LazyCreate().
		With(components.Position, &components.PositionComponent{X: x, Y: y}).
		With(components.Renderable, components.NewRenderableComponent(
			data.GlyphRune(template.Glyph),
			data.ParseHexColor(template.Color),
			ItemRenderOrder,
		)).
		With(components.Name, components.NewNameComponent(template.Name)).
		With(components.Item, &components.ItemComponent{}).
		With(components.Marker, components.NewMarkerComponent())

	addItemEffects(b, template)

	id := b.Build()
	s.logger.Debug("item created", "entity", id, "template", itemTemplateID, "x", x, "y", y)
	return id, nil
}

// addItemEffects translates the template's effect fields into property components
func addItemEffects(b *ecs.Builder, template *data.ItemTemplate) {
	if template.Consumable {
		b.With(components.Consumable, &components.ConsumableComponent{})
	}
	if template.Range > 0 {
		b.With(components.Ranged, &components.RangedComponent{Range: template.Range})
	}
	if template.Radius > 0 {
		b.With(components.AreaOfEffect, &components.AreaOfEffectComponent{Radius: template.Radius})
	}
	if template.Damage > 0 {
		b.With(components.InflictsDamage, &components.InflictsDamageComponent{Damage: template.Damage})
	}
	if template.Healing > 0 {
		b.With(components.ProvidesHealing, &components.ProvidesHealingComponent{HealAmount: template.Healing})
	}
	if template.ConfusionTurns > 0 {
		b.With(components.Confusion, &components.ConfusionComponent{Turns: template.ConfusionTurns})
	}

	switch template.Slot {
	case "melee":
		b.With(components.Equippable, &components.EquippableComponent{Slot: components.SlotMelee})
	case "shield":
		b.With(components.Equippable, &components.EquippableComponent{Slot: components.SlotShield})
	}
	if template.PowerBonus != 0 {
		b.With(components.MeleePowerBonus, &components.MeleePowerBonusComponent{Power: template.PowerBonus})
	}
	if template.DefenseBonus != 0 {
		b.With(components.DefenseBonus, &components.DefenseBonusComponent{Defense: template.DefenseBonus})
	}
}

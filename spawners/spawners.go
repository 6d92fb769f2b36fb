// Package spawners creates the player, monsters and items from templates.
package spawners

import (
	"fmt"
	"log/slog"

	"ebiten-delve/components"
	"ebiten-delve/data"
	"ebiten-delve/ecs"
	"ebiten-delve/random"
)

// Render orders: lower values are drawn on top
const (
	PlayerRenderOrder  = 0
	MonsterRenderOrder = 1
	ItemRenderOrder    = 2
)

// EntitySpawner manages the creation of game entities.
// Entities are built lazily and only appear in the world at the next Maintain.
type EntitySpawner struct {
	world           *ecs.World
	templateManager *data.EntityTemplateManager
	rng             *random.RNG
	logger          *slog.Logger
}

// NewEntitySpawner creates a new entity spawner
func NewEntitySpawner(world *ecs.World, templateManager *data.EntityTemplateManager, rng *random.RNG, logger *slog.Logger) *EntitySpawner {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntitySpawner{
		world:           world,
		templateManager: templateManager,
		rng:             rng,
		logger:          logger,
	}
}

// Templates returns the template catalogue the spawner builds from
func (s *EntitySpawner) Templates() *data.EntityTemplateManager {
	return s.templateManager
}

// CreatePlayer creates the player entity at the given position.
// The player does not block its tile, so monsters can path onto it.
func (s *EntitySpawner) CreatePlayer(x, y int) ecs.EntityID {
	template := s.templateManager.Player

	id := s.world.LazyCreate().
		With(components.Position, &components.PositionComponent{X: x, Y: y}).
		With(components.Renderable, components.NewRenderableComponent(
			data.GlyphRune(template.Glyph),
			data.ParseHexColor(template.Color),
			PlayerRenderOrder,
		)).
		With(components.Player, &components.PlayerComponent{}).
		With(components.Viewshed, components.NewViewshedComponent(template.VisionRange)).
		With(components.Name, components.NewNameComponent(template.Name)).
		With(components.CombatStats, &components.CombatStatsComponent{
			MaxHP:   template.Health,
			HP:      template.Health,
			Defense: template.Defense,
			Power:   template.Power,
		}).
		With(components.Marker, components.NewMarkerComponent()).
		Build()

	s.logger.Debug("player created", "entity", id, "x", x, "y", y)
	return id
}

// CreateMonster creates a monster entity at the given position
func (s *EntitySpawner) CreateMonster(x, y int, templateID string) (ecs.EntityID, error) {
	template, exists := s.templateManager.GetTemplate(templateID)
	if !exists {
		return ecs.NoEntity, fmt.Errorf("no template found for monster type '%s'", templateID)
	}

	b := s.world.LazyCreate().
		With(components.Position, &components.PositionComponent{X: x, Y: y}).
		With(components.Renderable, components.NewRenderableComponent(
			data.GlyphRune(template.Glyph),
			data.ParseHexColor(template.Color),
			MonsterRenderOrder,
		)).
		With(components.Viewshed, components.NewViewshedComponent(template.VisionRange)).
		With(components.Monster, &components.MonsterComponent{}).
		With(components.Name, components.NewNameComponent(template.Name)).
		With(components.CombatStats, &components.CombatStatsComponent{
			MaxHP:   template.Health,
			HP:      template.Health,
			Defense: template.Defense,
			Power:   template.Power,
		}).
		With(components.Marker, components.NewMarkerComponent())

	// Set collision based on template
	if template.BlocksPath {
		b.With(components.BlocksTile, &components.BlocksTileComponent{})
	}

	id := b.Build()
	s.logger.Debug("monster created", "entity", id, "template", templateID, "x", x, "y", y)
	return id, nil
}

// Spawn creates whichever monster or item the template ID names
func (s *EntitySpawner) Spawn(x, y int, templateID string) (ecs.EntityID, error) {
	if _, ok := s.templateManager.GetTemplate(templateID); ok {
		return s.CreateMonster(x, y, templateID)
	}
	if _, ok := s.templateManager.GetItemTemplate(templateID); ok {
		return s.CreateItem(x, y, templateID)
	}
	return ecs.NoEntity, fmt.Errorf("no template found with ID '%s'", templateID)
}

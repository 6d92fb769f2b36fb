package gamestate

import (
	"fmt"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
	"ebiten-delve/spawners"
	"ebiten-delve/systems"
)

// entitiesToRemoveOnLevelChange returns everything except the player and the items it carries or wears
func (s *State) entitiesToRemoveOnLevelChange() []ecs.EntityID {
	world, player := s.sim.World, s.sim.Player

	var toDelete []ecs.EntityID
	for _, id := range world.GetAllEntities() {
		if id == player || world.HasComponent(id, components.Player) {
			continue
		}
		if backpack, ok := ecs.GetAs[*components.InBackpackComponent](world, id, components.InBackpack); ok && backpack.Owner == player {
			continue
		}
		if equipped, ok := ecs.GetAs[*components.EquippedComponent](world, id, components.Equipped); ok && equipped.Owner == player {
			continue
		}
		toDelete = append(toDelete, id)
	}
	return toDelete
}

// GotoNextLevel moves the player one level deeper. The new map and all of its
// spawns are rolled before anything is touched, so a failure leaves the
// current level as it was.
func (s *State) GotoNextLevel() error {
	if s.generator == nil || s.spawner == nil {
		return fmt.Errorf("goto next level: no generator or spawner configured")
	}

	world := s.sim.World
	depth := s.sim.Map.Depth + 1

	next, err := s.generator.Generate(depth)
	if err != nil {
		return fmt.Errorf("goto next level %d: %w", depth, err)
	}
	if len(next.Rooms) == 0 {
		return fmt.Errorf("goto next level %d: generated map has no rooms", depth)
	}

	// Roll bad guys and loot everywhere but the arrival room
	var plan []spawners.Placement
	for _, room := range next.Rooms[1:] {
		placements, err := s.spawner.PlanRoom(room, depth, s.maxSpawns)
		if err != nil {
			return fmt.Errorf("goto next level %d: %w", depth, err)
		}
		plan = append(plan, placements...)
	}

	// Delete entities that aren't the player or their equipment
	for _, id := range s.entitiesToRemoveOnLevelChange() {
		if err := world.DeleteEntity(id); err != nil {
			return fmt.Errorf("goto next level %d: %w", depth, err)
		}
	}

	s.sim.Map = next
	if err := s.spawner.Place(plan); err != nil {
		return fmt.Errorf("goto next level %d: %w", depth, err)
	}
	if err := world.Maintain(); err != nil {
		return fmt.Errorf("goto next level %d: %w", depth, err)
	}

	// Place the player and update resources
	playerX, playerY := next.Rooms[0].Center()
	if pos, ok := ecs.GetAs[*components.PositionComponent](world, s.sim.Player, components.Position); ok {
		pos.X, pos.Y = playerX, playerY
	}
	if vs, ok := ecs.GetAs[*components.ViewshedComponent](world, s.sim.Player, components.Viewshed); ok {
		vs.Dirty = true
	}

	// Notify the player and give them some health
	s.sim.Log.Add("You descend to the next level, and take a moment to heal.")
	if stats, ok := ecs.GetAs[*components.CombatStatsComponent](world, s.sim.Player, components.CombatStats); ok {
		stats.HP = max(stats.HP, stats.MaxHP/2)
	}

	s.sim.Logger.Info("level changed", "depth", depth, "rooms", len(next.Rooms), "entities", world.EntityCount())
	world.EmitEvent(systems.LevelChangeEvent{Depth: depth})
	return nil
}

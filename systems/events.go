package systems

import (
	"ebiten-delve/ecs"
)

// Event type constants
const (
	EventDeath       ecs.EventType = "death"
	EventLevelChange ecs.EventType = "level_change"
)

// DeathEvent is emitted by the death sweep for every entity found with no health left
type DeathEvent struct {
	EntityID ecs.EntityID
	IsPlayer bool
}

// Type returns the event type
func (e DeathEvent) Type() ecs.EventType {
	return EventDeath
}

// LevelChangeEvent is emitted once the player has descended to a new level
type LevelChangeEvent struct {
	Depth int
}

// Type returns the event type
func (e LevelChangeEvent) Type() ecs.EventType {
	return EventLevelChange
}

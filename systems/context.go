package systems

import (
	"log/slog"

	"ebiten-delve/dungeon"
	"ebiten-delve/ecs"
	"ebiten-delve/random"
)

// Phase tells the systems which kind of pass is running
type Phase int

const (
	// PhasePreRun is the initial pass after a new game, load or level change
	PhasePreRun Phase = iota
	// PhasePlayer resolves the player's action
	PhasePlayer
	// PhaseMonster lets the monsters act
	PhaseMonster
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhasePreRun:
		return "prerun"
	case PhasePlayer:
		return "player"
	case PhaseMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Context carries the world and the run-scoped resources every system reads.
// It is created once per run and mutated in place; only the map is replaced,
// on level transition.
type Context struct {
	World  *ecs.World
	Map    *dungeon.Map
	Player ecs.EntityID
	RNG    *random.RNG
	Log    *GameLog
	Logger *slog.Logger
	Phase  Phase
}

// System is one step of the simulation pipeline
type System interface {
	Run(ctx *Context)
}

// Pipeline returns the systems of one pass in their fixed execution order
func Pipeline() []System {
	return []System{
		NewVisibilitySystem(),
		NewMonsterAI(),
		NewMapIndexingSystem(),
		NewMeleeCombatSystem(),
		NewDamageSystem(),
		NewItemCollectionSystem(),
		NewItemUseSystem(),
		NewItemDropSystem(),
		NewItemRemoveSystem(),
	}
}

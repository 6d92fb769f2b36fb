package gamestate

import (
	"context"
	"errors"
	"fmt"

	"ebiten-delve/components"
	"ebiten-delve/dungeon"
	"ebiten-delve/ecs"
	"ebiten-delve/generation"
	"ebiten-delve/spawners"
	"ebiten-delve/systems"
)

// ErrQuit is returned by Tick when the player picks Quit on the main menu
var ErrQuit = errors.New("quit requested")

// ErrNoPersistence is returned when saving or loading without a Persistence
var ErrNoPersistence = errors.New("no persistence configured")

// Options configures a State
type Options struct {
	Generator   generation.MapGenerator
	Spawner     *spawners.EntitySpawner
	Persistence Persistence
	MaxSpawns   int
	Initial     RunState
}

// State is the turn scheduler. It owns the simulation context and advances
// it one RunState transition per Tick.
type State struct {
	sim         *systems.Context
	runState    RunState
	generator   generation.MapGenerator
	spawner     *spawners.EntitySpawner
	persistence Persistence
	maxSpawns   int
	pipeline    []systems.System
	playerDead  bool
}

// New creates a scheduler over an already populated context
func New(sim *systems.Context, opts Options) *State {
	s := &State{
		sim:         sim,
		runState:    opts.Initial,
		generator:   opts.Generator,
		spawner:     opts.Spawner,
		persistence: opts.Persistence,
		maxSpawns:   opts.MaxSpawns,
		pipeline:    systems.Pipeline(),
	}

	ecs.Listen(sim.World.GetEventManager(), systems.EventDeath, func(death systems.DeathEvent) {
		if death.IsPlayer {
			s.playerDead = true
		}
	})

	return s
}

// RunState returns the current state
func (s *State) RunState() RunState {
	return s.runState
}

// Context returns the simulation context
func (s *State) Context() *systems.Context {
	return s.sim
}

// Tick performs one transition of the state machine. States that wait on the
// player return unchanged until cmd carries something they understand.
func (s *State) Tick(ctx context.Context, cmd Command) (RunState, error) {
	next, err := s.step(ctx, cmd)
	if err != nil {
		return s.runState, err
	}
	if s.playerDead {
		next = state(GameOver)
	}
	if next != s.runState {
		s.sim.Logger.Debug("run state changed", "from", s.runState.String(), "to", next.String())
	}
	s.runState = next
	return s.runState, nil
}

func (s *State) step(ctx context.Context, cmd Command) (RunState, error) {
	current := s.runState

	switch current.Kind {
	case PreRun:
		return state(AwaitingInput), s.RunPipeline(systems.PhasePreRun)

	case AwaitingInput:
		return s.playerInput(cmd), nil

	case PlayerTurn:
		return state(MonsterTurn), s.RunPipeline(systems.PhasePlayer)

	case MonsterTurn:
		return state(AwaitingInput), s.RunPipeline(systems.PhaseMonster)

	case ShowInventory:
		return s.itemMenu(cmd, ShowInventory, func(item ecs.EntityID) RunState {
			if ranged, ok := ecs.GetAs[*components.RangedComponent](s.sim.World, item, components.Ranged); ok {
				return RunState{Kind: ShowTargeting, Range: ranged.Range, Item: item}
			}
			s.sim.World.AddComponent(s.sim.Player, components.WantsToUseItem, &components.WantsToUseItemComponent{Item: item})
			return state(PlayerTurn)
		}), nil

	case ShowDropItem:
		return s.itemMenu(cmd, ShowDropItem, func(item ecs.EntityID) RunState {
			s.sim.World.AddComponent(s.sim.Player, components.WantsToDropItem, &components.WantsToDropItemComponent{Item: item})
			return state(PlayerTurn)
		}), nil

	case ShowRemoveItem:
		return s.itemMenu(cmd, ShowRemoveItem, func(item ecs.EntityID) RunState {
			s.sim.World.AddComponent(s.sim.Player, components.WantsToRemoveItem, &components.WantsToRemoveItemComponent{Item: item})
			return state(PlayerTurn)
		}), nil

	case ShowTargeting:
		return s.targeting(cmd, current), nil

	case MainMenu:
		return s.mainMenu(ctx, cmd, current)

	case SaveGame:
		if err := s.save(ctx); err != nil {
			s.runState = state(AwaitingInput)
			return state(AwaitingInput), err
		}
		return RunState{Kind: MainMenu, Selection: SelectLoadGame}, nil

	case NextLevel:
		if err := s.GotoNextLevel(); err != nil {
			// The previous level is untouched, keep playing it
			s.runState = state(AwaitingInput)
			return state(AwaitingInput), err
		}
		return state(PreRun), nil

	case GameOver:
		return current, nil
	}

	return current, fmt.Errorf("unknown run state %s", current)
}

// RunPipeline runs every system once in order, commits the buffered changes,
// sweeps the dead and commits again
func (s *State) RunPipeline(phase systems.Phase) error {
	s.sim.Phase = phase
	for _, system := range s.pipeline {
		system.Run(s.sim)
	}

	world := s.sim.World
	if err := world.Maintain(); err != nil {
		return fmt.Errorf("%s pass: %w", phase, err)
	}
	systems.DeleteTheDead(s.sim)
	if err := world.Maintain(); err != nil {
		return fmt.Errorf("%s pass death sweep: %w", phase, err)
	}
	return nil
}

// MenuItems lists the player's items a menu state offers, in ascending entity order
func (s *State) MenuItems(kind RunStateKind) []ecs.EntityID {
	switch kind {
	case ShowInventory, ShowDropItem:
		return systems.CarriedItems(s.sim.World, s.sim.Player)
	case ShowRemoveItem:
		return systems.EquippedItems(s.sim.World, s.sim.Player)
	default:
		return nil
	}
}

// itemMenu handles the shared cancel and selection rules of the item menus
func (s *State) itemMenu(cmd Command, kind RunStateKind, selected func(ecs.EntityID) RunState) RunState {
	switch cmd.Kind {
	case CmdCancel:
		return state(AwaitingInput)
	case CmdSelect:
		for _, item := range s.MenuItems(kind) {
			if item == cmd.Item {
				return selected(item)
			}
		}
		s.sim.Logger.Debug("menu selection not offered", "menu", kind.String(), "item", cmd.Item)
	}
	return state(kind)
}

// targeting aims the pending ranged item. Anything but a valid tile cancels.
func (s *State) targeting(cmd Command, current RunState) RunState {
	switch cmd.Kind {
	case CmdNone:
		return current
	case CmdTarget:
		if s.ValidTarget(current.Range, cmd.Target.X, cmd.Target.Y) {
			target := cmd.Target
			s.sim.World.AddComponent(s.sim.Player, components.WantsToUseItem, &components.WantsToUseItemComponent{
				Item:   current.Item,
				Target: &target,
			})
			return state(PlayerTurn)
		}
	}
	return state(AwaitingInput)
}

// ValidTarget reports whether a tile is in the player's view and within rangeLimit of the player
func (s *State) ValidTarget(rangeLimit, x, y int) bool {
	world := s.sim.World
	pos, ok := ecs.GetAs[*components.PositionComponent](world, s.sim.Player, components.Position)
	if !ok {
		return false
	}
	vs, ok := ecs.GetAs[*components.ViewshedComponent](world, s.sim.Player, components.Viewshed)
	if !ok || !vs.CanSee(x, y) {
		return false
	}
	return dungeon.Distance(pos.X, pos.Y, x, y) <= float64(rangeLimit)
}

func (s *State) mainMenu(ctx context.Context, cmd Command, current RunState) (RunState, error) {
	switch cmd.Kind {
	case CmdMenuHighlight:
		return RunState{Kind: MainMenu, Selection: cmd.Selection}, nil
	case CmdMenuSelect:
		switch cmd.Selection {
		case SelectNewGame:
			return state(PreRun), nil
		case SelectLoadGame:
			if err := s.load(ctx); err != nil {
				return RunState{Kind: MainMenu, Selection: SelectLoadGame}, err
			}
			return state(AwaitingInput), nil
		case SelectQuit:
			return current, ErrQuit
		}
	}
	return current, nil
}

func (s *State) save(ctx context.Context) error {
	if s.persistence == nil {
		return ErrNoPersistence
	}
	if err := s.persistence.Save(ctx, s.sim); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	s.sim.Logger.Info("game saved", "depth", s.sim.Map.Depth)
	return nil
}

func (s *State) load(ctx context.Context) error {
	if s.persistence == nil {
		return ErrNoPersistence
	}
	if err := s.persistence.Load(ctx, s.sim); err != nil {
		return fmt.Errorf("load game: %w", err)
	}
	s.playerDead = false
	s.sim.Logger.Info("game loaded", "depth", s.sim.Map.Depth, "player", s.sim.Player)
	return nil
}

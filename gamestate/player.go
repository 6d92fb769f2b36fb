package gamestate

import (
	"ebiten-delve/components"
	"ebiten-delve/dungeon"
	"ebiten-delve/ecs"
	"ebiten-delve/systems"
)

// playerInput turns a command given while awaiting input into the next state
func (s *State) playerInput(cmd Command) RunState {
	switch cmd.Kind {
	case CmdMove:
		if systems.TryMovePlayer(s.sim, cmd.DX, cmd.DY) {
			return state(PlayerTurn)
		}
	case CmdWait:
		return state(PlayerTurn)
	case CmdPickUp:
		if s.pickUp() {
			return state(PlayerTurn)
		}
	case CmdDescend:
		if s.onDownStairs() {
			return state(NextLevel)
		}
		s.sim.Log.Add("There is no way down from here.")
	case CmdOpenInventory:
		return state(ShowInventory)
	case CmdOpenDrop:
		return state(ShowDropItem)
	case CmdOpenRemove:
		return state(ShowRemoveItem)
	case CmdSave:
		return state(SaveGame)
	}
	return state(AwaitingInput)
}

// pickUp asks to collect the item under the player
func (s *State) pickUp() bool {
	pos, ok := ecs.GetAs[*components.PositionComponent](s.sim.World, s.sim.Player, components.Position)
	if !ok {
		return false
	}

	item, found := systems.ItemAt(s.sim, pos.X, pos.Y)
	if !found {
		s.sim.Log.Add("There is nothing here to pick up.")
		return false
	}

	s.sim.World.AddComponent(s.sim.Player, components.WantsToPickupItem, &components.WantsToPickupItemComponent{
		CollectedBy: s.sim.Player,
		Item:        item,
	})
	return true
}

func (s *State) onDownStairs() bool {
	pos, ok := ecs.GetAs[*components.PositionComponent](s.sim.World, s.sim.Player, components.Position)
	if !ok || !s.sim.Map.InBounds(pos.X, pos.Y) {
		return false
	}
	return s.sim.Map.Tiles[s.sim.Map.Idx(pos.X, pos.Y)] == dungeon.TileDownStairs
}

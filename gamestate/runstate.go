// Package gamestate drives the simulation one RunState transition at a time.
package gamestate

import (
	"fmt"

	"ebiten-delve/ecs"
)

// RunStateKind identifies a state of the turn scheduler
type RunStateKind int

const (
	AwaitingInput RunStateKind = iota
	PreRun
	PlayerTurn
	MonsterTurn
	ShowInventory
	ShowDropItem
	ShowTargeting
	ShowRemoveItem
	MainMenu
	SaveGame
	NextLevel
	GameOver
)

var runStateNames = map[RunStateKind]string{
	AwaitingInput:  "AwaitingInput",
	PreRun:         "PreRun",
	PlayerTurn:     "PlayerTurn",
	MonsterTurn:    "MonsterTurn",
	ShowInventory:  "ShowInventory",
	ShowDropItem:   "ShowDropItem",
	ShowTargeting:  "ShowTargeting",
	ShowRemoveItem: "ShowRemoveItem",
	MainMenu:       "MainMenu",
	SaveGame:       "SaveGame",
	NextLevel:      "NextLevel",
	GameOver:       "GameOver",
}

// String returns the state name
func (k RunStateKind) String() string {
	if name, ok := runStateNames[k]; ok {
		return name
	}
	return fmt.Sprintf("RunStateKind(%d)", int(k))
}

// MenuSelection is an entry of the main menu
type MenuSelection int

const (
	SelectNewGame MenuSelection = iota
	SelectLoadGame
	SelectQuit
)

// MenuSelections lists the main menu entries in display order
var MenuSelections = []MenuSelection{SelectNewGame, SelectLoadGame, SelectQuit}

// String returns the menu label
func (m MenuSelection) String() string {
	switch m {
	case SelectNewGame:
		return "Begin New Game"
	case SelectLoadGame:
		return "Load Game"
	case SelectQuit:
		return "Quit"
	default:
		return "unknown"
	}
}

// RunState is the scheduler's current state. Range and Item are only set for
// ShowTargeting, Selection only for MainMenu.
type RunState struct {
	Kind      RunStateKind
	Range     int
	Item      ecs.EntityID
	Selection MenuSelection
}

// String returns a readable form of the state
func (r RunState) String() string {
	switch r.Kind {
	case ShowTargeting:
		return fmt.Sprintf("ShowTargeting{range:%d item:%d}", r.Range, r.Item)
	case MainMenu:
		return fmt.Sprintf("MainMenu{%s}", r.Selection)
	default:
		return r.Kind.String()
	}
}

// AcceptsInput reports whether the state waits on a command from the player
func (r RunState) AcceptsInput() bool {
	switch r.Kind {
	case AwaitingInput, ShowInventory, ShowDropItem, ShowTargeting, ShowRemoveItem, MainMenu:
		return true
	default:
		return false
	}
}

func state(kind RunStateKind) RunState {
	return RunState{Kind: kind}
}

package gamestate

import (
	"ebiten-delve/components"
	"ebiten-delve/ecs"
)

// CommandKind identifies what the player asked for
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdMove
	CmdWait
	CmdPickUp
	CmdOpenInventory
	CmdOpenDrop
	CmdOpenRemove
	CmdDescend
	CmdSave
	CmdSelect
	CmdCancel
	CmdTarget
	CmdMenuHighlight
	CmdMenuSelect
)

// Command is one decoded player input. Only the fields of its kind are set.
type Command struct {
	Kind      CommandKind
	DX, DY    int
	Item      ecs.EntityID
	Target    components.PositionComponent
	Selection MenuSelection
}

// NoCommand means no input arrived this frame
func NoCommand() Command { return Command{Kind: CmdNone} }

// Move steps (or attacks) in a direction
func Move(dx, dy int) Command { return Command{Kind: CmdMove, DX: dx, DY: dy} }

// Wait skips the player's turn
func Wait() Command { return Command{Kind: CmdWait} }

// PickUp grabs the item on the player's tile
func PickUp() Command { return Command{Kind: CmdPickUp} }

// OpenInventory opens the use menu
func OpenInventory() Command { return Command{Kind: CmdOpenInventory} }

// OpenDrop opens the drop menu
func OpenDrop() Command { return Command{Kind: CmdOpenDrop} }

// OpenRemove opens the unequip menu
func OpenRemove() Command { return Command{Kind: CmdOpenRemove} }

// Descend takes the stairs down
func Descend() Command { return Command{Kind: CmdDescend} }

// Save saves the game and returns to the main menu
func Save() Command { return Command{Kind: CmdSave} }

// Select picks an item in an open menu
func Select(item ecs.EntityID) Command { return Command{Kind: CmdSelect, Item: item} }

// Cancel closes a menu or the targeting reticle
func Cancel() Command { return Command{Kind: CmdCancel} }

// Target aims a ranged item at a tile
func Target(x, y int) Command {
	return Command{Kind: CmdTarget, Target: components.PositionComponent{X: x, Y: y}}
}

// MenuHighlight moves the main menu cursor
func MenuHighlight(selection MenuSelection) Command {
	return Command{Kind: CmdMenuHighlight, Selection: selection}
}

// MenuSelect confirms a main menu entry
func MenuSelect(selection MenuSelection) Command {
	return Command{Kind: CmdMenuSelect, Selection: selection}
}

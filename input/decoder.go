package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-delve/ecs"
	"ebiten-delve/gamestate"
)

// Decoder maps the device state to one command for the current run state
type Decoder struct {
	device     Device
	tileWidth  int
	tileHeight int
}

// NewDecoder creates a decoder reading from device. Tile sizes convert click
// positions into map coordinates.
func NewDecoder(device Device, tileWidth, tileHeight int) *Decoder {
	return &Decoder{device: device, tileWidth: tileWidth, tileHeight: tileHeight}
}

// Decode returns the command for this frame. items is the listing of the
// open item menu, if any.
func (d *Decoder) Decode(rs gamestate.RunState, items []ecs.EntityID) gamestate.Command {
	switch rs.Kind {
	case gamestate.AwaitingInput:
		return d.playerTurn()
	case gamestate.ShowInventory, gamestate.ShowDropItem, gamestate.ShowRemoveItem:
		return d.itemMenu(items)
	case gamestate.ShowTargeting:
		return d.targeting()
	case gamestate.MainMenu:
		return d.mainMenu(rs.Selection)
	default:
		return gamestate.NoCommand()
	}
}

func (d *Decoder) playerTurn() gamestate.Command {
	shift := d.device.Held(ebiten.KeyShift)

	switch {
	case shift && d.device.JustPressed(ebiten.KeyPeriod):
		return gamestate.Descend()
	case d.device.JustPressed(ebiten.KeyNumpad5), d.device.JustPressed(ebiten.Key5),
		d.device.JustPressed(ebiten.KeySpace), d.device.JustPressed(ebiten.KeyPeriod):
		return gamestate.Wait()
	case d.device.JustPressed(ebiten.KeyG):
		return gamestate.PickUp()
	case d.device.JustPressed(ebiten.KeyI):
		return gamestate.OpenInventory()
	case d.device.JustPressed(ebiten.KeyD):
		return gamestate.OpenDrop()
	case d.device.JustPressed(ebiten.KeyR):
		return gamestate.OpenRemove()
	case d.device.JustPressed(ebiten.KeyEscape):
		return gamestate.Save()
	}

	for _, key := range movementOrder {
		if d.device.JustPressed(key) {
			dir := movementKeys[key]
			return gamestate.Move(dir.DX, dir.DY)
		}
	}
	return gamestate.NoCommand()
}

func (d *Decoder) itemMenu(items []ecs.EntityID) gamestate.Command {
	if d.device.JustPressed(ebiten.KeyEscape) {
		return gamestate.Cancel()
	}
	for i, key := range letterKeys {
		if !d.device.JustPressed(key) {
			continue
		}
		if i < len(items) {
			return gamestate.Select(items[i])
		}
		return gamestate.NoCommand()
	}
	return gamestate.NoCommand()
}

func (d *Decoder) targeting() gamestate.Command {
	if d.device.JustPressed(ebiten.KeyEscape) {
		return gamestate.Cancel()
	}
	x, y, ok := d.device.Clicked()
	if !ok || d.tileWidth <= 0 || d.tileHeight <= 0 {
		return gamestate.NoCommand()
	}
	return gamestate.Target(x/d.tileWidth, y/d.tileHeight)
}

func (d *Decoder) mainMenu(current gamestate.MenuSelection) gamestate.Command {
	selections := gamestate.MenuSelections
	idx := 0
	for i, sel := range selections {
		if sel == current {
			idx = i
		}
	}

	switch {
	case d.device.JustPressed(ebiten.KeyArrowUp), d.device.JustPressed(ebiten.KeyK):
		return gamestate.MenuHighlight(selections[(idx-1+len(selections))%len(selections)])
	case d.device.JustPressed(ebiten.KeyArrowDown), d.device.JustPressed(ebiten.KeyJ):
		return gamestate.MenuHighlight(selections[(idx+1)%len(selections)])
	case d.device.JustPressed(ebiten.KeyEnter):
		return gamestate.MenuSelect(current)
	case d.device.JustPressed(ebiten.KeyEscape):
		return gamestate.MenuSelect(gamestate.SelectQuit)
	}
	return gamestate.NoCommand()
}

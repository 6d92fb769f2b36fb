// Package input turns keyboard and mouse state into scheduler commands.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Device is the raw input read once per frame
type Device interface {
	// JustPressed reports a key that went down this frame
	JustPressed(key ebiten.Key) bool
	// Held reports a key that is currently down
	Held(key ebiten.Key) bool
	// Clicked reports a left click this frame and the cursor position in pixels
	Clicked() (x, y int, ok bool)
}

// EbitenDevice reads the live ebiten input state
type EbitenDevice struct{}

// JustPressed implements Device
func (EbitenDevice) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// Held implements Device
func (EbitenDevice) Held(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Clicked implements Device
func (EbitenDevice) Clicked() (int, int, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return x, y, true
}

// Direction represents a movement step
type Direction struct {
	DX, DY int
}

// Movement directions
var (
	DirUp        = Direction{0, -1}
	DirDown      = Direction{0, 1}
	DirLeft      = Direction{-1, 0}
	DirRight     = Direction{1, 0}
	DirUpLeft    = Direction{-1, -1}
	DirUpRight   = Direction{1, -1}
	DirDownLeft  = Direction{-1, 1}
	DirDownRight = Direction{1, 1}
)

// movementKeys maps arrows, vi keys, the numpad and the digit row to directions
var movementKeys = map[ebiten.Key]Direction{
	// Arrow keys
	ebiten.KeyArrowUp:    DirUp,
	ebiten.KeyArrowDown:  DirDown,
	ebiten.KeyArrowLeft:  DirLeft,
	ebiten.KeyArrowRight: DirRight,

	// Vi keys
	ebiten.KeyH: DirLeft,
	ebiten.KeyJ: DirDown,
	ebiten.KeyK: DirUp,
	ebiten.KeyL: DirRight,
	ebiten.KeyY: DirUpLeft,
	ebiten.KeyU: DirUpRight,
	ebiten.KeyB: DirDownLeft,
	ebiten.KeyN: DirDownRight,

	// Numpad
	ebiten.KeyNumpad8: DirUp,
	ebiten.KeyNumpad2: DirDown,
	ebiten.KeyNumpad4: DirLeft,
	ebiten.KeyNumpad6: DirRight,
	ebiten.KeyNumpad7: DirUpLeft,
	ebiten.KeyNumpad9: DirUpRight,
	ebiten.KeyNumpad1: DirDownLeft,
	ebiten.KeyNumpad3: DirDownRight,

	// Digit row
	ebiten.Key8: DirUp,
	ebiten.Key2: DirDown,
	ebiten.Key4: DirLeft,
	ebiten.Key6: DirRight,
	ebiten.Key7: DirUpLeft,
	ebiten.Key9: DirUpRight,
	ebiten.Key1: DirDownLeft,
	ebiten.Key3: DirDownRight,
}

// movementOrder fixes the key scan order so two keys pressed on the same
// frame always resolve the same way
var movementOrder = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyH, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL,
	ebiten.KeyY, ebiten.KeyU, ebiten.KeyB, ebiten.KeyN,
	ebiten.KeyNumpad8, ebiten.KeyNumpad2, ebiten.KeyNumpad4, ebiten.KeyNumpad6,
	ebiten.KeyNumpad7, ebiten.KeyNumpad9, ebiten.KeyNumpad1, ebiten.KeyNumpad3,
	ebiten.Key8, ebiten.Key2, ebiten.Key4, ebiten.Key6,
	ebiten.Key7, ebiten.Key9, ebiten.Key1, ebiten.Key3,
}

// letterKeys are the menu selection keys, a to z
var letterKeys = []ebiten.Key{
	ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF,
	ebiten.KeyG, ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL,
	ebiten.KeyM, ebiten.KeyN, ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR,
	ebiten.KeyS, ebiten.KeyT, ebiten.KeyU, ebiten.KeyV, ebiten.KeyW, ebiten.KeyX,
	ebiten.KeyY, ebiten.KeyZ,
}

// MenuLetter returns the selection letter shown next to the i-th menu entry
func MenuLetter(i int) rune {
	if i < 0 || i >= len(letterKeys) {
		return '?'
	}
	return rune('a' + i)
}

// Package screens draws the run for the ebiten window: the map view, the
// message log and the menus layered over it.
package screens

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Screen is one layer of the window
type Screen interface {
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int) (int, int)
}

// ScreenStack holds the layers of the window. The bottom layer fixes the
// logical resolution and every layer above it is drawn over it in order.
type ScreenStack struct {
	layers []Screen
}

// NewScreenStack creates an empty stack
func NewScreenStack() *ScreenStack {
	return &ScreenStack{}
}

// Push adds a layer on top
func (s *ScreenStack) Push(layer Screen) {
	s.layers = append(s.layers, layer)
}

// Reset replaces every layer, bottom first
func (s *ScreenStack) Reset(layers ...Screen) {
	s.layers = append(s.layers[:0], layers...)
}

// Top returns the layer drawn last, or nil when the stack is empty
func (s *ScreenStack) Top() Screen {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[len(s.layers)-1]
}

// Len returns the number of layers
func (s *ScreenStack) Len() int {
	return len(s.layers)
}

// Draw draws the layers bottom to top
func (s *ScreenStack) Draw(screen *ebiten.Image) {
	for _, layer := range s.layers {
		layer.Draw(screen)
	}
}

// Layout asks the bottom layer for the logical screen size
func (s *ScreenStack) Layout(outsideWidth, outsideHeight int) (int, int) {
	if len(s.layers) == 0 {
		return outsideWidth, outsideHeight
	}
	return s.layers[0].Layout(outsideWidth, outsideHeight)
}

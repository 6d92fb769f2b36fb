package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-delve/config"
	"ebiten-delve/systems"
)

// Shared palette
var (
	colorBlack   = color.RGBA{0, 0, 0, 255}
	colorWhite   = color.RGBA{255, 255, 255, 255}
	colorGray    = color.RGBA{200, 200, 200, 255}
	colorGold    = color.RGBA{255, 230, 150, 255}
	colorYellow  = color.RGBA{255, 255, 0, 255}
	colorRed     = color.RGBA{255, 0, 0, 255}
	colorMagenta = color.RGBA{255, 0, 255, 255}
)

// messageColors colors each kind of log message
var messageColors = map[systems.MessageType]color.RGBA{
	systems.MessageTypeNormal: colorGray,
	systems.MessageTypeCombat: {255, 100, 100, 255},
	systems.MessageTypeItem:   {100, 149, 237, 255},
	systems.MessageTypeAlert:  colorYellow,
}

// messageColor returns the color of a log message, gray for unknown kinds
func messageColor(t systems.MessageType) color.RGBA {
	if c, ok := messageColors[t]; ok {
		return c
	}
	return colorGray
}

// BaseScreen provides the tileset and layout every screen shares
type BaseScreen struct {
	tileset *Tileset
}

// NewBaseScreen creates a base screen drawing with tileset
func NewBaseScreen(tileset *Tileset) *BaseScreen {
	return &BaseScreen{tileset: tileset}
}

// Tileset returns the tileset used for drawing
func (s *BaseScreen) Tileset() *Tileset {
	return s.tileset
}

// Layout implements the Screen interface
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}

// drawBox draws a framed box in cell coordinates, cleared to black
func (s *BaseScreen) drawBox(target *ebiten.Image, x, y, w, h int, frame color.Color) {
	s.tileset.FillRect(target, x, y, w, h, colorBlack)
	for i := x; i < x+w; i++ {
		s.tileset.DrawTile(target, '-', i, y, frame)
		s.tileset.DrawTile(target, '-', i, y+h-1, frame)
	}
	for j := y; j < y+h; j++ {
		s.tileset.DrawTile(target, '|', x, j, frame)
		s.tileset.DrawTile(target, '|', x+w-1, j, frame)
	}
	for _, c := range [][2]int{{x, y}, {x + w - 1, y}, {x, y + h - 1}, {x + w - 1, y + h - 1}} {
		s.tileset.DrawTile(target, '+', c[0], c[1], frame)
	}
}

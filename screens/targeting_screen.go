package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-delve/components"
	"ebiten-delve/ecs"
	"ebiten-delve/gamestate"
)

var (
	colorTargetable = color.RGBA{0, 0, 96, 96}
	colorCursorOK   = color.RGBA{0, 96, 96, 96}
	colorCursorBad  = color.RGBA{96, 0, 0, 96}
)

// TargetingScreen highlights the tiles a ranged item can be aimed at and the
// tile under the mouse cursor
type TargetingScreen struct {
	*BaseScreen
	state *gamestate.State
	rng   int
}

// NewTargetingScreen creates the overlay for a ShowTargeting state
func NewTargetingScreen(base *BaseScreen, state *gamestate.State, rangeLimit int) *TargetingScreen {
	return &TargetingScreen{BaseScreen: base, state: state, rng: rangeLimit}
}

// Draw renders the targeting overlay
func (s *TargetingScreen) Draw(screen *ebiten.Image) {
	s.tileset.DrawString(screen, "Select Target:", 5, 0, colorYellow)

	sim := s.state.Context()
	vs, ok := ecs.GetAs[*components.ViewshedComponent](sim.World, sim.Player, components.Viewshed)
	if !ok {
		return
	}
	for _, tile := range vs.VisibleTiles {
		if s.state.ValidTarget(s.rng, tile.X, tile.Y) {
			s.tileset.FillTile(screen, tile.X, tile.Y, colorTargetable)
		}
	}

	cx, cy := ebiten.CursorPosition()
	x, y := cx/s.tileset.TileWidth, cy/s.tileset.TileHeight
	if s.state.ValidTarget(s.rng, x, y) {
		s.tileset.FillTile(screen, x, y, colorCursorOK)
	} else {
		s.tileset.FillTile(screen, x, y, colorCursorBad)
	}
}

package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-delve/config"
	"ebiten-delve/gamestate"
)

const gameTitle = "Delve"

// StartScreen draws the main menu
type StartScreen struct {
	*BaseScreen
	selection gamestate.MenuSelection
	hasSave   bool
}

// NewStartScreen creates a start screen with the highlighted entry. hasSave
// reports whether Load Game can succeed.
func NewStartScreen(base *BaseScreen, selection gamestate.MenuSelection, hasSave bool) *StartScreen {
	return &StartScreen{BaseScreen: base, selection: selection, hasSave: hasSave}
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(colorBlack)

	centerX := config.ScreenWidth / 2
	startY := config.ScreenHeight/2 - 4

	s.tileset.DrawString(screen, gameTitle, centerX-len(gameTitle)/2, startY-4, colorGold)

	for i, entry := range menuOptions(s.selection, s.hasSave) {
		x := centerX - len(entry.label)/2
		s.tileset.DrawString(screen, entry.label, x, startY+i*2, entry.color)
	}
}

// menuOption is one rendered main menu line
type menuOption struct {
	label string
	color color.RGBA
}

// menuOptions lists the main menu lines with the highlighted entry marked
func menuOptions(selected gamestate.MenuSelection, hasSave bool) []menuOption {
	options := make([]menuOption, 0, len(gamestate.MenuSelections))
	for _, sel := range gamestate.MenuSelections {
		opt := menuOption{label: sel.String(), color: colorGray}
		if sel == gamestate.SelectLoadGame && !hasSave {
			opt.color = color.RGBA{100, 100, 100, 255}
		}
		if sel == selected {
			opt.label = "> " + opt.label + " <"
			opt.color = colorMagenta
		}
		options = append(options, opt)
	}
	return options
}

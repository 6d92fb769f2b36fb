package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-delve/config"
)

// GameOverScreen displays the game over message over the last frame
type GameOverScreen struct {
	*BaseScreen
}

// NewGameOverScreen creates a new game over screen
func NewGameOverScreen(base *BaseScreen) *GameOverScreen {
	return &GameOverScreen{BaseScreen: base}
}

// Draw draws the game over screen
func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	lines := []string{
		"Your journey has ended!",
		"",
		"Press Enter to return to the menu.",
	}

	const w, h = 40, 7
	x := (config.ScreenWidth - w) / 2
	y := (config.GameScreenHeight - h) / 2
	s.drawBox(screen, x, y, w, h, colorRed)

	for i, line := range lines {
		s.tileset.DrawString(screen, line, x+(w-len(line))/2, y+2+i, colorWhite)
	}
}

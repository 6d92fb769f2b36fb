package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-delve/components"
	"ebiten-delve/config"
	"ebiten-delve/dungeon"
	"ebiten-delve/ecs"
	"ebiten-delve/gamestate"
	"ebiten-delve/systems"
)

var (
	colorWall       = color.RGBA{0, 255, 0, 255}
	colorFloor      = color.RGBA{0, 128, 128, 255}
	colorStairs     = color.RGBA{0, 255, 255, 255}
	colorBloodstain = color.RGBA{192, 0, 0, 255}
)

// GameScreen draws the map, the visible entities and the status panel
type GameScreen struct {
	*BaseScreen
	state *gamestate.State
}

// NewGameScreen creates a game screen for a run
func NewGameScreen(base *BaseScreen, state *gamestate.State) *GameScreen {
	return &GameScreen{BaseScreen: base, state: state}
}

// Draw draws the game screen
func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(colorBlack)
	sim := s.state.Context()

	s.drawMap(screen, sim.Map)
	s.drawEntities(screen, sim)
	s.drawStatsPanel(screen, sim)
	s.drawMessagesPanel(screen, sim.Log)
}

// drawMap draws every revealed tile, dimmed when out of sight
func (s *GameScreen) drawMap(screen *ebiten.Image, m *dungeon.Map) {
	for y := 0; y < m.Height && y < config.GameScreenHeight; y++ {
		for x := 0; x < m.Width && x < config.GameScreenWidth; x++ {
			idx := m.Idx(x, y)
			glyph, fg, ok := tileAppearance(m, idx)
			if !ok {
				continue
			}
			if m.VisibleTiles[idx] && m.Bloodstains[idx] {
				s.tileset.FillTile(screen, x, y, colorBloodstain)
			}
			s.tileset.DrawTile(screen, glyph, x, y, fg)
		}
	}
}

// drawEntities draws in reverse draw order so the lowest render order ends up on top
func (s *GameScreen) drawEntities(screen *ebiten.Image, sim *systems.Context) {
	drawables := systems.Drawables(sim)
	for i := len(drawables) - 1; i >= 0; i-- {
		d := drawables[i]
		if d.Position.X >= config.GameScreenWidth || d.Position.Y >= config.GameScreenHeight {
			continue
		}
		if d.Renderable.BG != nil {
			if _, _, _, a := d.Renderable.BG.RGBA(); a > 0 {
				s.tileset.FillTile(screen, d.Position.X, d.Position.Y, d.Renderable.BG)
			}
		}
		s.tileset.DrawTile(screen, d.Renderable.Glyph, d.Position.X, d.Position.Y, d.Renderable.FG)
	}
}

// drawStatsPanel draws the frame line, depth and health bar
func (s *GameScreen) drawStatsPanel(screen *ebiten.Image, sim *systems.Context) {
	row := config.GameScreenHeight
	for x := 0; x < config.ScreenWidth; x++ {
		s.tileset.DrawTile(screen, '-', x, row, colorGray)
	}

	s.tileset.DrawString(screen, fmt.Sprintf(" Depth: %d ", sim.Map.Depth), 2, row, colorYellow)

	stats, ok := ecs.GetAs[*components.CombatStatsComponent](sim.World, sim.Player, components.CombatStats)
	if !ok {
		return
	}
	hpText := fmt.Sprintf(" HP: %d / %d ", stats.HP, stats.MaxHP)
	s.tileset.DrawString(screen, hpText, 14, row, colorYellow)

	const barX, barWidth = 30, 48
	filled := hpBar(stats.HP, stats.MaxHP, barWidth)
	for i := 0; i < barWidth; i++ {
		if i < filled {
			s.tileset.FillTile(screen, barX+i, row, colorRed)
		} else {
			s.tileset.FillTile(screen, barX+i, row, color.RGBA{64, 0, 0, 255})
		}
	}
}

// drawMessagesPanel draws the newest log messages, newest first
func (s *GameScreen) drawMessagesPanel(screen *ebiten.Image, log *systems.GameLog) {
	for i, msg := range log.RecentMessages(config.LogPanelHeight - 1) {
		s.tileset.DrawString(screen, msg.Text, 2, config.GameScreenHeight+1+i, messageColor(msg.Type))
	}
}

// tileAppearance returns the glyph and color of a map tile, or false if the
// player has never seen it
func tileAppearance(m *dungeon.Map, idx int) (rune, color.RGBA, bool) {
	if !m.RevealedTiles[idx] {
		return 0, color.RGBA{}, false
	}

	var glyph rune
	var fg color.RGBA
	switch m.Tiles[idx] {
	case dungeon.TileFloor:
		glyph, fg = '.', colorFloor
	case dungeon.TileDownStairs:
		glyph, fg = '>', colorStairs
	default:
		glyph, fg = '#', colorWall
	}

	if !m.VisibleTiles[idx] {
		fg = toGray(fg)
	}
	return glyph, fg, true
}

// toGray converts a color to its luminance, for remembered tiles
func toGray(c color.RGBA) color.RGBA {
	gray := color.GrayModel.Convert(c).(color.Gray)
	return color.RGBA{gray.Y, gray.Y, gray.Y, c.A}
}

// hpBar returns how many of width cells are filled for hp out of maxHP
func hpBar(hp, maxHP, width int) int {
	if maxHP <= 0 || hp <= 0 {
		return 0
	}
	if hp >= maxHP {
		return width
	}
	return hp * width / maxHP
}

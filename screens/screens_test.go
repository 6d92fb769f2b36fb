package screens

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"ebiten-delve/components"
	"ebiten-delve/dungeon"
	"ebiten-delve/ecs"
	"ebiten-delve/gamestate"
	"ebiten-delve/systems"
)

type stubScreen struct{ w, h int }

func (s *stubScreen) Draw(*ebiten.Image) {}
func (s *stubScreen) Layout(int, int) (int, int) {
	return s.w, s.h
}

func TestScreenStack(t *testing.T) {
	stack := NewScreenStack()
	assert.Nil(t, stack.Top())
	w, h := stack.Layout(100, 50)
	assert.Equal(t, []int{100, 50}, []int{w, h})

	game, modal := &stubScreen{640, 800}, &stubScreen{10, 10}
	stack.Push(game)
	stack.Push(modal)
	assert.Equal(t, 2, stack.Len())
	assert.Same(t, modal, stack.Top())

	// The bottom layer decides the logical size
	w, h = stack.Layout(100, 50)
	assert.Equal(t, []int{640, 800}, []int{w, h})

	stack.Reset(modal)
	assert.Equal(t, 1, stack.Len())
	assert.Same(t, modal, stack.Top())
}

func TestMessageColor(t *testing.T) {
	assert.Equal(t, colorYellow, messageColor(systems.MessageTypeAlert))
	assert.Equal(t, colorGray, messageColor(systems.MessageTypeNormal))
	assert.Equal(t, colorGray, messageColor(systems.MessageType(42)))
	assert.NotEqual(t, messageColor(systems.MessageTypeCombat), messageColor(systems.MessageTypeItem))
}

func TestTileAppearance(t *testing.T) {
	m := dungeon.NewMap(3, 1, 1)
	m.Tiles[1] = dungeon.TileFloor
	m.Tiles[2] = dungeon.TileDownStairs
	m.RevealedTiles[1] = true
	m.RevealedTiles[2] = true
	m.VisibleTiles[2] = true

	_, _, ok := tileAppearance(m, 0)
	assert.False(t, ok, "unrevealed tiles are not drawn")

	glyph, fg, ok := tileAppearance(m, 1)
	assert.True(t, ok)
	assert.Equal(t, '.', glyph)
	assert.Equal(t, fg.R, fg.G, "remembered tiles are gray")
	assert.Equal(t, fg.G, fg.B)

	glyph, fg, ok = tileAppearance(m, 2)
	assert.True(t, ok)
	assert.Equal(t, '>', glyph)
	assert.Equal(t, colorStairs, fg)
}

func TestToGray(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, toGray(color.RGBA{255, 255, 255, 255}))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, toGray(color.RGBA{0, 0, 0, 255}))
}

func TestHPBar(t *testing.T) {
	assert.Equal(t, 0, hpBar(0, 30, 48))
	assert.Equal(t, 0, hpBar(-4, 30, 48))
	assert.Equal(t, 24, hpBar(15, 30, 48))
	assert.Equal(t, 48, hpBar(30, 30, 48))
	assert.Equal(t, 48, hpBar(40, 30, 48))
	assert.Equal(t, 0, hpBar(5, 0, 48))
}

func TestMenuOptions(t *testing.T) {
	opts := menuOptions(gamestate.SelectLoadGame, true)
	assert.Len(t, opts, 3)
	assert.Equal(t, "Begin New Game", opts[0].label)
	assert.Equal(t, "> Load Game <", opts[1].label)
	assert.Equal(t, colorMagenta, opts[1].color)
	assert.Equal(t, "Quit", opts[2].label)

	opts = menuOptions(gamestate.SelectNewGame, false)
	assert.NotEqual(t, colorGray, opts[1].color, "load is dimmed without a save")
}

func TestItemMenuText(t *testing.T) {
	world := ecs.NewWorld()
	potion := world.CreateEntity()
	world.AddComponent(potion, components.Name, components.NewNameComponent("Health Potion"))
	unnamed := world.CreateEntity()

	assert.Equal(t, []string{"(a) Health Potion", "(b) something"}, menuEntries(world, []ecs.EntityID{potion, unnamed}))
	assert.Empty(t, menuEntries(world, nil))

	assert.Equal(t, "Inventory", menuTitle(gamestate.ShowInventory))
	assert.Equal(t, "Drop Which Item?", menuTitle(gamestate.ShowDropItem))
	assert.Equal(t, "Remove Which Item?", menuTitle(gamestate.ShowRemoveItem))
}

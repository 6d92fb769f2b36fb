package screens

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-delve/components"
	"ebiten-delve/config"
	"ebiten-delve/ecs"
	"ebiten-delve/gamestate"
	"ebiten-delve/input"
)

// ModalScreen is the item menu popup drawn over the map
type ModalScreen struct {
	*BaseScreen
	title   string
	entries []string
}

// NewItemMenuScreen creates the popup for an item menu state
func NewItemMenuScreen(base *BaseScreen, kind gamestate.RunStateKind, world *ecs.World, items []ecs.EntityID) *ModalScreen {
	return &ModalScreen{
		BaseScreen: base,
		title:      menuTitle(kind),
		entries:    menuEntries(world, items),
	}
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	w := 31
	h := len(s.entries) + 4
	if len(s.entries) == 0 {
		h = 5
	}
	x := 15
	y := (config.GameScreenHeight - h) / 2

	s.drawBox(screen, x, y, w, h, colorWhite)
	s.tileset.DrawString(screen, s.title, x+3, y, colorYellow)
	s.tileset.DrawString(screen, "ESCAPE to cancel", x+3, y+h-1, colorYellow)

	if len(s.entries) == 0 {
		s.tileset.DrawString(screen, "(nothing)", x+2, y+2, colorGray)
		return
	}
	for i, entry := range s.entries {
		s.tileset.DrawString(screen, entry, x+2, y+2+i, colorWhite)
	}
}

// menuTitle returns the popup title for an item menu state
func menuTitle(kind gamestate.RunStateKind) string {
	switch kind {
	case gamestate.ShowDropItem:
		return "Drop Which Item?"
	case gamestate.ShowRemoveItem:
		return "Remove Which Item?"
	default:
		return "Inventory"
	}
}

// menuEntries labels each item with its selection letter
func menuEntries(world *ecs.World, items []ecs.EntityID) []string {
	entries := make([]string, 0, len(items))
	for i, item := range items {
		entries = append(entries, fmt.Sprintf("(%c) %s", input.MenuLetter(i), components.DisplayName(world, item)))
	}
	return entries
}

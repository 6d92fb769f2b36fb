package components

import (
	"image/color"
)

// PositionComponent stores entity position in tile coordinates
type PositionComponent struct {
	X, Y int
}

// RenderableComponent stores rendering information
type RenderableComponent struct {
	Glyph       rune        // The character drawn for this entity
	FG          color.Color // Foreground color
	BG          color.Color // Background color
	RenderOrder int         // Lower values are drawn on top of higher ones sharing a tile
}

// NewRenderableComponent creates a renderable component on a black background
func NewRenderableComponent(glyph rune, fg color.Color, renderOrder int) *RenderableComponent {
	return &RenderableComponent{
		Glyph:       glyph,
		FG:          fg,
		BG:          color.RGBA{0, 0, 0, 255}, // Default black background
		RenderOrder: renderOrder,
	}
}

// ViewshedComponent caches the tiles an entity can currently see
type ViewshedComponent struct {
	VisibleTiles []PositionComponent
	Range        int
	Dirty        bool // Forces recomputation on the next visibility pass
}

// NewViewshedComponent creates a dirty viewshed with the given range
func NewViewshedComponent(visionRange int) *ViewshedComponent {
	return &ViewshedComponent{
		Range: visionRange,
		Dirty: true,
	}
}

// CanSee returns true if the tile is in the cached visible set
func (v *ViewshedComponent) CanSee(x, y int) bool {
	for _, p := range v.VisibleTiles {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// CombatStatsComponent stores health and the base combat numbers
type CombatStatsComponent struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

// Heal restores health without exceeding MaxHP
func (c *CombatStatsComponent) Heal(amount int) {
	c.HP = min(c.MaxHP, c.HP+amount)
}

// SufferDamageComponent accumulates damage dealt to an entity until the damage pass applies it
type SufferDamageComponent struct {
	Amounts []int
}

// Total returns the sum of all accumulated damage
func (s *SufferDamageComponent) Total() int {
	total := 0
	for _, amount := range s.Amounts {
		total += amount
	}
	return total
}

package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Tileset draws single-cell glyphs. Each glyph is rasterised once from the
// ebiten debug font, in white, and tinted when drawn.
type Tileset struct {
	glyphs     map[rune]*ebiten.Image
	TileWidth  int
	TileHeight int
}

// NewTileset creates a tileset with the given cell size in pixels
func NewTileset(tileWidth, tileHeight int) *Tileset {
	return &Tileset{
		glyphs:     make(map[rune]*ebiten.Image),
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
	}
}

// glyph returns the cached image of a character. The debug font only covers
// U+0000 to U+00FF; anything else is drawn as '?'.
func (t *Tileset) glyph(char rune) *ebiten.Image {
	if char > 0xff {
		char = '?'
	}
	if img, ok := t.glyphs[char]; ok {
		return img
	}
	img := ebiten.NewImage(t.TileWidth, t.TileHeight)
	ebitenutil.DebugPrintAt(img, string(char), (t.TileWidth-6)/2, 0)
	t.glyphs[char] = img
	return img
}

// DrawTile draws a single glyph at cell (x, y)
func (t *Tileset) DrawTile(target *ebiten.Image, char rune, x, y int, clr color.Color) {
	if char == ' ' {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}
	op.GeoM.Translate(float64(x*t.TileWidth), float64(y*t.TileHeight))
	target.DrawImage(t.glyph(char), op)
}

// DrawString draws a string of characters starting at cell (x, y)
func (t *Tileset) DrawString(target *ebiten.Image, text string, x, y int, clr color.Color) {
	i := 0
	for _, char := range text {
		t.DrawTile(target, char, x+i, y, clr)
		i++
	}
}

// FillTile paints the background of cell (x, y)
func (t *Tileset) FillTile(target *ebiten.Image, x, y int, clr color.Color) {
	t.FillRect(target, x, y, 1, 1, clr)
}

// FillRect paints a block of cells
func (t *Tileset) FillRect(target *ebiten.Image, x, y, w, h int, clr color.Color) {
	vector.DrawFilledRect(target,
		float32(x*t.TileWidth), float32(y*t.TileHeight),
		float32(w*t.TileWidth), float32(h*t.TileHeight),
		clr, false)
}

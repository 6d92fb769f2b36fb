package dungeon

// Rect is an axis-aligned room outline. The carved interior runs from
// X1+1 to X2 and Y1+1 to Y2 inclusive, leaving X1/Y1 as the wall line.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect creates a rect from its top-left corner and size
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Intersect returns true if the two rects overlap or touch
func (r Rect) Intersect(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 && r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Center returns the integer midpoint of the rect
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

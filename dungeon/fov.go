package dungeon

import (
	"sort"
)

// FieldOfView returns every tile visible from (x, y) within radius.
// Rays are cast from the origin to each tile on the square perimeter of the
// radius; a ray stops after the first opaque tile, which is itself visible.
// The result is sorted row-major and contains no duplicates.
func FieldOfView(m *Map, x, y, radius int) []Point {
	seen := make(map[Point]bool)
	if m.InBounds(x, y) {
		seen[Point{X: x, Y: y}] = true
	}

	for px := x - radius; px <= x+radius; px++ {
		castRay(m, x, y, px, y-radius, radius, seen)
		castRay(m, x, y, px, y+radius, radius, seen)
	}
	for py := y - radius + 1; py < y+radius; py++ {
		castRay(m, x, y, x-radius, py, radius, seen)
		castRay(m, x, y, x+radius, py, radius, seen)
	}

	visible := make([]Point, 0, len(seen))
	for p := range seen {
		visible = append(visible, p)
	}
	sort.Slice(visible, func(i, j int) bool {
		if visible[i].Y != visible[j].Y {
			return visible[i].Y < visible[j].Y
		}
		return visible[i].X < visible[j].X
	})
	return visible
}

// castRay marks the tiles on the line from the origin toward (tx, ty)
func castRay(m *Map, x, y, tx, ty, radius int, seen map[Point]bool) {
	r := float64(radius)
	for _, p := range LinePoints(x, y, tx, ty)[1:] {
		if !m.InBounds(p.X, p.Y) || Distance(x, y, p.X, p.Y) > r {
			return
		}
		seen[p] = true
		if m.IsOpaque(m.Idx(p.X, p.Y)) {
			return
		}
	}
}

// LinePoints returns all points on a line between (x1,y1) and (x2,y2), both ends included
func LinePoints(x1, y1, x2, y2 int) []Point {
	points := []Point{}

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		points = append(points, Point{X: x1, Y: y1})
		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}

	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

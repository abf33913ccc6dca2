package obstacle

import (
	"github.com/scanbot-robotics/scanplan/spatialmath"
)

// Grid owns the obstacle set and answers cell-validity queries against the
// playable interior and each obstacle's inflated safety square
// (spec.md §4.1). A Grid is built once per request and is immutable
// afterwards; A* runs take a read-only handle to it.
type Grid struct {
	obstacles []*Obstacle
}

// NewGrid builds a Grid over the given obstacle set.
func NewGrid(obstacles []*Obstacle) *Grid {
	return &Grid{obstacles: append([]*Obstacle(nil), obstacles...)}
}

// Obstacles returns the grid's obstacle set in construction order.
func (g *Grid) Obstacles() []*Obstacle {
	return g.obstacles
}

// IsValid reports whether pos lies within the playable interior and clear
// of every obstacle's inflated safety square. When ignoreObstacles is true
// only the interior bound is checked.
func (g *Grid) IsValid(pos spatialmath.Position, ignoreObstacles bool) bool {
	if !g.withinInterior(pos) {
		return false
	}
	if ignoreObstacles {
		return true
	}
	for _, o := range g.obstacles {
		if g.insideInflation(o, pos) {
			return false
		}
	}
	return true
}

func (g *Grid) withinInterior(pos spatialmath.Position) bool {
	min := Cell
	max := GridLength - Cell
	return pos.X() >= min && pos.X() < max && pos.Y() >= min && pos.Y() < max
}

func (g *Grid) insideInflation(o *Obstacle, pos spatialmath.Position) bool {
	dx := pos.X() - o.Position.X()
	if dx < 0 {
		dx = -dx
	}
	dy := pos.Y() - o.Position.Y()
	if dy < 0 {
		dy = -dy
	}
	return dx <= SafetyWidth && dy <= SafetyWidth
}

// CellAt returns the (col, row) grid cell containing world point (x, y), or
// ok=false when the point lies outside the grid's extent entirely.
func (g *Grid) CellAt(x, y int) (col, row int, ok bool) {
	if x < 0 || y < 0 || x >= GridLength || y >= GridLength {
		return 0, 0, false
	}
	return x / Cell, y / Cell, true
}

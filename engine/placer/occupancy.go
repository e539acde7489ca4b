package placer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// occupancy answers whether a candidate is too close to an already accepted position.
type occupancy interface {
	conflicts(c mgl32.Vec2, minDistance float32) bool
	insert(p mgl32.Vec2)
}

// linearIndex scans every accepted position.
type linearIndex struct {
	points []mgl32.Vec2
}

func (l *linearIndex) conflicts(c mgl32.Vec2, minDistance float32) bool {
	for _, p := range l.points {
		if c.Sub(p).Len() < minDistance {
			return true
		}
	}
	return false
}

func (l *linearIndex) insert(p mgl32.Vec2) {
	l.points = append(l.points, p)
}

// gridIndex buckets accepted positions into square cells one minDistance wide, so a conflict
// can only come from the candidate's cell or its eight neighbours.
type gridIndex struct {
	cell  float32
	cells map[[2]int][]mgl32.Vec2
}

func newGridIndex(cell float32) *gridIndex {
	return &gridIndex{
		cell:  cell,
		cells: make(map[[2]int][]mgl32.Vec2),
	}
}

func (g *gridIndex) key(p mgl32.Vec2) [2]int {
	return [2]int{
		int(math.Floor(float64(p[0] / g.cell))),
		int(math.Floor(float64(p[1] / g.cell))),
	}
}

func (g *gridIndex) conflicts(c mgl32.Vec2, minDistance float32) bool {
	k := g.key(c)
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			for _, p := range g.cells[[2]int{k[0] + dx, k[1] + dz}] {
				if c.Sub(p).Len() < minDistance {
					return true
				}
			}
		}
	}
	return false
}

func (g *gridIndex) insert(p mgl32.Vec2) {
	k := g.key(p)
	g.cells[k] = append(g.cells[k], p)
}

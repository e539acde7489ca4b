package renderer

import (
	"github.com/Carmen-Shannon/oxy-reef/engine/surface"
	"github.com/go-gl/mathgl/mgl32"
)

// NewCubeMesh builds a unit cube centred on the origin with one flat-shaded quad per face.
//
// Returns:
//   - *surface.Mesh: 24 vertices and 36 indices
func NewCubeMesh() *surface.Mesh {
	faces := []struct {
		normal, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	corners := [4]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	m := &surface.Mesh{
		Positions: make([]mgl32.Vec3, 0, 24),
		Normals:   make([]mgl32.Vec3, 0, 24),
		UVs:       make([]mgl32.Vec2, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}
	for _, f := range faces {
		base := uint32(len(m.Positions))
		centre := f.normal.Mul(0.5)
		for _, c := range corners {
			p := centre.Add(f.u.Mul(c[0] * 0.5)).Add(f.v.Mul(c[1] * 0.5))
			m.Positions = append(m.Positions, p)
			m.Normals = append(m.Normals, f.normal)
			m.UVs = append(m.UVs, mgl32.Vec2{(c[0] + 1) / 2, (c[1] + 1) / 2})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

package surface

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-reef/common"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidGeometry is returned when plane geometry parameters cannot produce a mesh.
var ErrInvalidGeometry = errors.New("surface: invalid plane geometry")

// VertexStride is the byte size of one interleaved vertex: position, normal, uv.
const VertexStride = 8 * 4

// Mesh is an indexed triangle mesh in the surface's local space.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// NewPlaneGeometry builds a flat square grid in the local XY plane (z = 0) centred on the origin.
// Rows run from +y to -y and columns from -x to +x, each cell split into two counter-clockwise
// triangles, with every normal facing +z.
//
// Parameters:
//   - size: edge length of the square
//   - segments: number of cells along each edge
//
// Returns:
//   - *Mesh: a mesh with (segments+1)^2 vertices and 6*segments^2 indices
//   - error: ErrInvalidGeometry for a non-positive size or segment count
func NewPlaneGeometry(size float32, segments int) (*Mesh, error) {
	if segments < 1 || !(size > 0) || !common.Finite(float64(size)) {
		return nil, fmt.Errorf("%w: size %v, segments %d", ErrInvalidGeometry, size, segments)
	}

	half := size / 2
	step := size / float32(segments)
	row := segments + 1

	m := &Mesh{
		Positions: make([]mgl32.Vec3, 0, row*row),
		Normals:   make([]mgl32.Vec3, 0, row*row),
		UVs:       make([]mgl32.Vec2, 0, row*row),
		Indices:   make([]uint32, 0, segments*segments*6),
	}

	for iy := 0; iy < row; iy++ {
		y := float32(iy)*step - half
		for ix := 0; ix < row; ix++ {
			x := float32(ix)*step - half
			m.Positions = append(m.Positions, mgl32.Vec3{x, -y, 0})
			m.Normals = append(m.Normals, mgl32.Vec3{0, 0, 1})
			m.UVs = append(m.UVs, mgl32.Vec2{float32(ix) / float32(segments), 1 - float32(iy)/float32(segments)})
		}
	}

	for iy := 0; iy < segments; iy++ {
		for ix := 0; ix < segments; ix++ {
			a := uint32(ix + row*iy)
			b := uint32(ix + row*(iy+1))
			c := uint32(ix + 1 + row*(iy+1))
			d := uint32(ix + 1 + row*iy)
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	return m, nil
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// ComputeNormals recomputes smooth vertex normals by summing the unnormalized face normals of
// every triangle touching a vertex, so larger faces weigh more.
func (m *Mesh) ComputeNormals() {
	normals := make([]mgl32.Vec3, len(m.Positions))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		pa, pb, pc := m.Positions[a], m.Positions[b], m.Positions[c]
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		normals[a] = normals[a].Add(n)
		normals[b] = normals[b].Add(n)
		normals[c] = normals[c].Add(n)
	}
	for i, n := range normals {
		if l := n.Len(); l > 0 {
			normals[i] = n.Mul(1 / l)
		}
	}
	m.Normals = normals
}

// Interleaved packs the mesh into position/normal/uv float32 triples for a vertex buffer.
//
// Returns:
//   - []float32: 8 floats per vertex
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*8)
	for i, p := range m.Positions {
		n := m.Normals[i]
		uv := m.UVs[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}
	return out
}

// clone returns a deep copy of the mesh.
func (m *Mesh) clone() *Mesh {
	return &Mesh{
		Positions: append([]mgl32.Vec3(nil), m.Positions...),
		Normals:   append([]mgl32.Vec3(nil), m.Normals...),
		UVs:       append([]mgl32.Vec2(nil), m.UVs...),
		Indices:   append([]uint32(nil), m.Indices...),
	}
}

// OrientationMatrix lays a local XY surface flat in world space at height baseY. Local x stays
// world x, local y becomes world z and the local elevation axis becomes world up, so a height
// sampled at local (x, y) is found at world (x, z) = (x, y). The swap mirrors triangle winding,
// so surface pipelines draw both faces.
//
// Parameters:
//   - baseY: world height of the surface's z = 0 plane
//
// Returns:
//   - mgl32.Mat4: the model matrix
func OrientationMatrix(baseY float32) mgl32.Mat4 {
	return mgl32.Mat4{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, baseY, 0, 1,
	}
}

package surface

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-reef/engine/noise"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrAlreadyBaked is returned by a second Bake call. Elevation is applied exactly once.
var ErrAlreadyBaked = errors.New("surface: height field already baked")

// ErrNilField is returned when Bake is called without a noise field.
var ErrNilField = errors.New("surface: nil noise field")

// FloorUniforms is the per-frame shading state of the seabed.
type FloorUniforms struct {
	Time           float32
	SunPosition    mgl32.Vec3
	FloorElevation float32
}

// HeightFieldSurface owns the seabed mesh. Its elevation is baked once from a noise field; after
// that the geometry is read-only and only the shading uniforms change per frame.
type HeightFieldSurface interface {
	// Mesh returns the surface mesh in local space. Callers must treat it as read-only.
	//
	// Returns:
	//   - *Mesh: the seabed mesh
	Mesh() *Mesh

	// Bake displaces every vertex (x, y) to z = field.Sample(x*f, y*f) * elevation, where f is the
	// sample frequency, then recomputes normals. It runs once; later calls return ErrAlreadyBaked
	// and leave the mesh untouched.
	//
	// Parameters:
	//   - field: the noise field to sample
	//
	// Returns:
	//   - error: ErrAlreadyBaked, ErrNilField or nil
	Bake(field noise.NoiseField) error

	// Baked reports whether elevation has been applied.
	//
	// Returns:
	//   - bool: true once Bake has succeeded
	Baked() bool

	// Elevations returns a copy of the per-vertex elevation in vertex order.
	//
	// Returns:
	//   - []float32: one value per vertex
	Elevations() []float32

	// HeightAt returns the world height of the seabed at world (x, z), matching the baked vertices
	// so objects placed there rest on the surface. Before baking the seabed is flat at BaseY.
	//
	// Parameters:
	//   - x: world x
	//   - z: world z
	//
	// Returns:
	//   - float32: world y of the surface
	HeightAt(x, z float32) float32

	// BaseY returns the world height of the undisplaced surface.
	BaseY() float32

	// Elevation returns the displacement scale.
	Elevation() float32

	// Size returns the edge length of the square surface.
	Size() float32

	// ModelMatrix returns the local-to-world transform of the mesh.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4

	// Update refreshes the shading uniforms for the given elapsed time. Geometry is not touched.
	//
	// Parameters:
	//   - elapsed: seconds since the scene started
	Update(elapsed float32)

	// Uniforms returns the current shading uniforms.
	//
	// Returns:
	//   - FloorUniforms: the uniforms
	Uniforms() FloorUniforms

	// GPUUniforms returns the uniforms in their GPU buffer layout.
	//
	// Returns:
	//   - GPUFloorUniforms: the GPU-aligned uniforms
	GPUUniforms() GPUFloorUniforms
}

type heightFieldSurface struct {
	mu *sync.Mutex

	size            float32
	segments        int
	baseY           float32
	elevation       float32
	sampleFrequency float32

	mesh  *Mesh
	field noise.NoiseField
	baked bool

	uniforms FloorUniforms
}

var _ HeightFieldSurface = &heightFieldSurface{}

// NewHeightFieldSurface creates a flat seabed. Defaults: size 500, 128 segments, base height -25,
// elevation 3, sample frequency 0.05, sun at (70, 50, 70).
//
// Parameters:
//   - options: functional options to configure the surface
//
// Returns:
//   - HeightFieldSurface: the unbaked surface
//   - error: ErrInvalidGeometry if the size or segment count is unusable
func NewHeightFieldSurface(options ...HeightFieldSurfaceBuilderOption) (HeightFieldSurface, error) {
	s := &heightFieldSurface{
		mu:              &sync.Mutex{},
		size:            500,
		segments:        128,
		baseY:           -25,
		elevation:       3,
		sampleFrequency: 0.05,
		uniforms: FloorUniforms{
			SunPosition: DefaultSunPosition,
		},
	}
	for _, opt := range options {
		opt(s)
	}
	s.uniforms.FloorElevation = s.elevation

	mesh, err := NewPlaneGeometry(s.size, s.segments)
	if err != nil {
		return nil, err
	}
	s.mesh = mesh
	return s, nil
}

func (s *heightFieldSurface) Mesh() *Mesh {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mesh
}

func (s *heightFieldSurface) Bake(field noise.NoiseField) error {
	if field == nil {
		return ErrNilField
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.baked {
		return fmt.Errorf("%w (seed %d)", ErrAlreadyBaked, s.field.Seed())
	}

	baked := s.mesh.clone()
	for i, p := range baked.Positions {
		baked.Positions[i][2] = field.Sample(p[0]*s.sampleFrequency, p[1]*s.sampleFrequency) * s.elevation
	}
	baked.ComputeNormals()

	s.mesh = baked
	s.field = field
	s.baked = true
	return nil
}

func (s *heightFieldSurface) Baked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.baked
}

func (s *heightFieldSurface) Elevations() []float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]float32, len(s.mesh.Positions))
	for i, p := range s.mesh.Positions {
		out[i] = p[2]
	}
	return out
}

func (s *heightFieldSurface) HeightAt(x, z float32) float32 {
	s.mu.Lock()
	field := s.field
	s.mu.Unlock()
	if field == nil {
		return s.baseY
	}
	return s.baseY + field.Sample(x*s.sampleFrequency, z*s.sampleFrequency)*s.elevation
}

func (s *heightFieldSurface) BaseY() float32 {
	return s.baseY
}

func (s *heightFieldSurface) Elevation() float32 {
	return s.elevation
}

func (s *heightFieldSurface) Size() float32 {
	return s.size
}

func (s *heightFieldSurface) ModelMatrix() mgl32.Mat4 {
	return OrientationMatrix(s.baseY)
}

func (s *heightFieldSurface) Update(elapsed float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uniforms.Time = elapsed
}

func (s *heightFieldSurface) Uniforms() FloorUniforms {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uniforms
}

func (s *heightFieldSurface) GPUUniforms() GPUFloorUniforms {
	s.mu.Lock()
	defer s.mu.Unlock()
	return GPUFloorUniforms{
		Model:          OrientationMatrix(s.baseY),
		Time:           s.uniforms.Time,
		FloorElevation: s.uniforms.FloorElevation,
		SunPosition:    s.uniforms.SunPosition,
	}
}

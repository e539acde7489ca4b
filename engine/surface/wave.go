package surface

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultSunPosition is the world position both surfaces take their highlights from.
var DefaultSunPosition = mgl32.Vec3{70, 50, 70}

// WaveUniforms drives the water shader. Only Time changes after construction.
type WaveUniforms struct {
	Time        float32
	Amplitude   float32
	Speed       float32
	NoiseScale  float32
	SunPosition mgl32.Vec3
}

// WaveSurface owns the water mesh. The mesh is never modified after construction: all motion
// comes from the vertex shader displacing it by time-varying noise.
type WaveSurface interface {
	// Mesh returns the flat water mesh in local space. Callers must treat it as read-only.
	//
	// Returns:
	//   - *Mesh: the water mesh
	Mesh() *Mesh

	// ModelMatrix returns the local-to-world transform of the mesh.
	//
	// Returns:
	//   - mgl32.Mat4: the model matrix
	ModelMatrix() mgl32.Mat4

	// Update sets the shader time to elapsed * speed.
	//
	// Parameters:
	//   - elapsed: seconds since the scene started
	Update(elapsed float32)

	// Uniforms returns the current shading uniforms.
	//
	// Returns:
	//   - WaveUniforms: the uniforms
	Uniforms() WaveUniforms

	// GPUUniforms returns the uniforms in their GPU buffer layout.
	//
	// Returns:
	//   - GPUWaveUniforms: the GPU-aligned uniforms
	GPUUniforms() GPUWaveUniforms
}

type waveSurface struct {
	mu *sync.Mutex

	size     float32
	segments int
	baseY    float32

	mesh     *Mesh
	uniforms WaveUniforms
}

var _ WaveSurface = &waveSurface{}

// NewWaveSurface creates the water surface. Defaults: size 500, 128 segments, at y = 0,
// amplitude 0.75, speed 1.2, noise scale 0.15, sun at (70, 50, 70).
//
// Parameters:
//   - options: functional options to configure the surface
//
// Returns:
//   - WaveSurface: the water surface
//   - error: ErrInvalidGeometry if the size or segment count is unusable
func NewWaveSurface(options ...WaveSurfaceBuilderOption) (WaveSurface, error) {
	w := &waveSurface{
		mu:       &sync.Mutex{},
		size:     500,
		segments: 128,
		uniforms: WaveUniforms{
			Amplitude:   0.75,
			Speed:       1.2,
			NoiseScale:  0.15,
			SunPosition: DefaultSunPosition,
		},
	}
	for _, opt := range options {
		opt(w)
	}

	mesh, err := NewPlaneGeometry(w.size, w.segments)
	if err != nil {
		return nil, err
	}
	w.mesh = mesh
	return w, nil
}

func (w *waveSurface) Mesh() *Mesh {
	return w.mesh
}

func (w *waveSurface) ModelMatrix() mgl32.Mat4 {
	return OrientationMatrix(w.baseY)
}

func (w *waveSurface) Update(elapsed float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.uniforms.Time = elapsed * w.uniforms.Speed
}

func (w *waveSurface) Uniforms() WaveUniforms {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.uniforms
}

func (w *waveSurface) GPUUniforms() GPUWaveUniforms {
	w.mu.Lock()
	defer w.mu.Unlock()
	return GPUWaveUniforms{
		Model:       OrientationMatrix(w.baseY),
		Time:        w.uniforms.Time,
		Amplitude:   w.uniforms.Amplitude,
		NoiseScale:  w.uniforms.NoiseScale,
		SunPosition: w.uniforms.SunPosition,
	}
}

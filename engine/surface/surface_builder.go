package surface

import (
	"github.com/go-gl/mathgl/mgl32"
)

// HeightFieldSurfaceBuilderOption is a functional option for configuring a HeightFieldSurface.
type HeightFieldSurfaceBuilderOption func(*heightFieldSurface)

// WithFloorSize sets the edge length of the seabed.
//
// Parameters:
//   - size: edge length in world units
//
// Returns:
//   - HeightFieldSurfaceBuilderOption: a function that applies the size
func WithFloorSize(size float32) HeightFieldSurfaceBuilderOption {
	return func(s *heightFieldSurface) {
		s.size = size
	}
}

// WithFloorSegments sets the number of grid cells along each edge of the seabed.
//
// Parameters:
//   - segments: cells per edge
//
// Returns:
//   - HeightFieldSurfaceBuilderOption: a function that applies the segment count
func WithFloorSegments(segments int) HeightFieldSurfaceBuilderOption {
	return func(s *heightFieldSurface) {
		s.segments = segments
	}
}

// WithDepth sets the world height of the undisplaced seabed.
//
// Parameters:
//   - baseY: world y of the seabed plane
//
// Returns:
//   - HeightFieldSurfaceBuilderOption: a function that applies the depth
func WithDepth(baseY float32) HeightFieldSurfaceBuilderOption {
	return func(s *heightFieldSurface) {
		s.baseY = baseY
	}
}

// WithElevation sets the displacement scale applied to noise samples.
//
// Parameters:
//   - elevation: world units per unit of noise
//
// Returns:
//   - HeightFieldSurfaceBuilderOption: a function that applies the elevation
func WithElevation(elevation float32) HeightFieldSurfaceBuilderOption {
	return func(s *heightFieldSurface) {
		s.elevation = elevation
	}
}

// WithSampleFrequency sets the factor world coordinates are multiplied by before sampling noise.
//
// Parameters:
//   - f: sample frequency
//
// Returns:
//   - HeightFieldSurfaceBuilderOption: a function that applies the frequency
func WithSampleFrequency(f float32) HeightFieldSurfaceBuilderOption {
	return func(s *heightFieldSurface) {
		s.sampleFrequency = f
	}
}

// WithFloorSunPosition sets the sun position used for caustics.
//
// Parameters:
//   - sun: world position of the sun
//
// Returns:
//   - HeightFieldSurfaceBuilderOption: a function that applies the sun position
func WithFloorSunPosition(sun mgl32.Vec3) HeightFieldSurfaceBuilderOption {
	return func(s *heightFieldSurface) {
		s.uniforms.SunPosition = sun
	}
}

// WaveSurfaceBuilderOption is a functional option for configuring a WaveSurface.
type WaveSurfaceBuilderOption func(*waveSurface)

// WithWaterSize sets the edge length of the water plane.
//
// Parameters:
//   - size: edge length in world units
//
// Returns:
//   - WaveSurfaceBuilderOption: a function that applies the size
func WithWaterSize(size float32) WaveSurfaceBuilderOption {
	return func(w *waveSurface) {
		w.size = size
	}
}

// WithWaterSegments sets the number of grid cells along each edge of the water plane.
//
// Parameters:
//   - segments: cells per edge
//
// Returns:
//   - WaveSurfaceBuilderOption: a function that applies the segment count
func WithWaterSegments(segments int) WaveSurfaceBuilderOption {
	return func(w *waveSurface) {
		w.segments = segments
	}
}

// WithWaterLevel sets the world height of the water plane.
//
// Parameters:
//   - y: world y of the water surface
//
// Returns:
//   - WaveSurfaceBuilderOption: a function that applies the level
func WithWaterLevel(y float32) WaveSurfaceBuilderOption {
	return func(w *waveSurface) {
		w.baseY = y
	}
}

// WithAmplitude sets the wave height.
//
// Parameters:
//   - amplitude: peak displacement in world units
//
// Returns:
//   - WaveSurfaceBuilderOption: a function that applies the amplitude
func WithAmplitude(amplitude float32) WaveSurfaceBuilderOption {
	return func(w *waveSurface) {
		w.uniforms.Amplitude = amplitude
	}
}

// WithSpeed sets how fast the wave pattern evolves relative to elapsed time.
//
// Parameters:
//   - speed: time multiplier
//
// Returns:
//   - WaveSurfaceBuilderOption: a function that applies the speed
func WithSpeed(speed float32) WaveSurfaceBuilderOption {
	return func(w *waveSurface) {
		w.uniforms.Speed = speed
	}
}

// WithNoiseScale sets the spatial frequency of the wave noise.
//
// Parameters:
//   - scale: noise frequency
//
// Returns:
//   - WaveSurfaceBuilderOption: a function that applies the scale
func WithNoiseScale(scale float32) WaveSurfaceBuilderOption {
	return func(w *waveSurface) {
		w.uniforms.NoiseScale = scale
	}
}

// WithWaterSunPosition sets the sun position used for highlights.
//
// Parameters:
//   - sun: world position of the sun
//
// Returns:
//   - WaveSurfaceBuilderOption: a function that applies the sun position
func WithWaterSunPosition(sun mgl32.Vec3) WaveSurfaceBuilderOption {
	return func(w *waveSurface) {
		w.uniforms.SunPosition = sun
	}
}

package surface

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUWaveUniformsSource is the WGSL definition of the WaveUniforms struct.
// Matches GPUWaveUniforms layout exactly (96 bytes).
//
//go:embed assets/wave_uniforms.wgsl
var GPUWaveUniformsSource string

// GPUFloorUniformsSource is the WGSL definition of the FloorUniforms struct.
// Matches GPUFloorUniforms layout exactly (96 bytes).
//
//go:embed assets/floor_uniforms.wgsl
var GPUFloorUniformsSource string

// GPUCardUniformsSource is the WGSL definition of the CardUniforms struct.
// Matches GPUCardUniforms layout exactly (80 bytes).
//
//go:embed assets/card_uniforms.wgsl
var GPUCardUniformsSource string

// SimplexNoiseSource is a WGSL 3D simplex noise function, snoise(v: vec3<f32>) -> f32, shared by
// the water and seabed shaders.
//
//go:embed assets/snoise.wgsl
var SimplexNoiseSource string

// WaterShaderSource is the water vertex and fragment shader.
//
//go:embed assets/water.wgsl
var WaterShaderSource string

// FloorShaderSource is the seabed vertex and fragment shader.
//
//go:embed assets/floor.wgsl
var FloorShaderSource string

// CardShaderSource is the iridescent card vertex and fragment shader.
//
//go:embed assets/card.wgsl
var CardShaderSource string

// GPUWaveUniforms is the GPU-aligned water uniform buffer.
// Size: 96 bytes.
type GPUWaveUniforms struct {
	Model       [16]float32 // offset  0: model matrix (mat4x4<f32>)
	Time        float32     // offset 64: elapsed * speed
	Amplitude   float32     // offset 68
	NoiseScale  float32     // offset 72
	_pad0       float32     // offset 76
	SunPosition [3]float32  // offset 80: vec3<f32>
	_pad1       float32     // offset 92
}

// Size returns the size of the GPUWaveUniforms struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUWaveUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUWaveUniforms struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUWaveUniforms) Marshal() []byte {
	buf := make([]byte, g.Size())
	putMat4(buf, g.Model)
	putF32(buf[64:], g.Time)
	putF32(buf[68:], g.Amplitude)
	putF32(buf[72:], g.NoiseScale)
	putVec3(buf[80:], g.SunPosition)
	return buf
}

// GPUFloorUniforms is the GPU-aligned seabed uniform buffer.
// Size: 96 bytes.
type GPUFloorUniforms struct {
	Model          [16]float32 // offset  0: model matrix (mat4x4<f32>)
	Time           float32     // offset 64: elapsed seconds
	FloorElevation float32     // offset 68: displacement scale, used for colour mixing
	_pad0          [2]float32  // offset 72
	SunPosition    [3]float32  // offset 80: vec3<f32>
	_pad1          float32     // offset 92
}

// Size returns the size of the GPUFloorUniforms struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUFloorUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUFloorUniforms struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUFloorUniforms) Marshal() []byte {
	buf := make([]byte, g.Size())
	putMat4(buf, g.Model)
	putF32(buf[64:], g.Time)
	putF32(buf[68:], g.FloorElevation)
	putVec3(buf[80:], g.SunPosition)
	return buf
}

// GPUCardUniforms is the GPU-aligned card uniform buffer.
// Size: 80 bytes.
type GPUCardUniforms struct {
	Model [16]float32 // offset  0: model matrix (mat4x4<f32>)
	Time  float32     // offset 64: elapsed seconds
	_pad  [3]float32  // offset 68
}

// Size returns the size of the GPUCardUniforms struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUCardUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCardUniforms struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCardUniforms) Marshal() []byte {
	buf := make([]byte, g.Size())
	putMat4(buf, g.Model)
	putF32(buf[64:], g.Time)
	return buf
}

func putF32(buf []byte, v float32) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
}

func putVec3(buf []byte, v [3]float32) {
	for i := range 3 {
		putF32(buf[i*4:], v[i])
	}
}

func putMat4(buf []byte, m [16]float32) {
	for i := range 16 {
		putF32(buf[i*4:], m[i])
	}
}

package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUInstanceDataSource is the WGSL definition of the InstanceData struct.
// Matches GPUInstanceData layout exactly (96 bytes).
//
//go:embed assets/instance_data.wgsl
var GPUInstanceDataSource string

// ProxyShaderSource draws one lit, flat-colored mesh per InstanceData entry.
//
//go:embed assets/proxy.wgsl
var ProxyShaderSource string

// IncludeInstanceData is the pre-processor include name for GPUInstanceDataSource.
const IncludeInstanceData = "instance_data"

// GPUInstanceData is one element of the proxy instance storage buffer.
// Size: 96 bytes.
type GPUInstanceData struct {
	Model [16]float32 // offset  0: model matrix (mat4x4<f32>)
	Color [4]float32  // offset 64: rgba (vec4<f32>)
	Anim  [4]float32  // offset 80: clip phase, sway amplitude, unused x2 (vec4<f32>)
}

// Size returns the size of the GPUInstanceData struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUInstanceData) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUInstanceData struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUInstanceData) Marshal() []byte {
	buf := make([]byte, g.Size())
	g.put(buf)
	return buf
}

func (g *GPUInstanceData) put(buf []byte) {
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Model[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Color[i]))
		binary.LittleEndian.PutUint32(buf[80+i*4:], math.Float32bits(g.Anim[i]))
	}
}

package renderer

import (
	"github.com/Carmen-Shannon/oxy-reef/engine/camera"
	"github.com/Carmen-Shannon/oxy-reef/engine/surface"
	"github.com/go-gl/mathgl/mgl32"
)

// Instance is one proxy draw: a unit cube placed by Model and tinted by Color.
type Instance struct {
	Model mgl32.Mat4
	Color mgl32.Vec4
	// Anim carries the clip phase in x and the tail sway amplitude in y. Zero disables the sway.
	Anim mgl32.Vec4
}

// Frame is everything the SceneRenderer needs to draw one frame. It is plain data, assembled by the
// scene each tick.
type Frame struct {
	Camera camera.GPUCameraUniform
	Water  surface.GPUWaveUniforms
	Floor  surface.GPUFloorUniforms
	Card   surface.GPUCardUniforms

	// ShowCard is false while the card is hidden behind the camera.
	ShowCard bool

	Instances []Instance
}

// InstanceBytes packs at most limit instances into the storage buffer layout.
//
// Parameters:
//   - limit: the buffer capacity in instances
//
// Returns:
//   - []byte: the packed data, 96 bytes per instance
//   - int: the number of instances packed
func (f *Frame) InstanceBytes(limit int) ([]byte, int) {
	n := min(len(f.Instances), max(limit, 0))
	if n == 0 {
		return nil, 0
	}
	var g GPUInstanceData
	stride := g.Size()
	buf := make([]byte, n*stride)
	for i := range n {
		g.Model = f.Instances[i].Model
		g.Color = f.Instances[i].Color
		g.Anim = f.Instances[i].Anim
		g.put(buf[i*stride:])
	}
	return buf, n
}

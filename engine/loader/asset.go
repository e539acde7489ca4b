package loader

import (
	"github.com/Carmen-Shannon/oxy-reef/engine/animator"

	"github.com/go-gl/mathgl/mgl32"
)

// Asset is the scene-facing summary of a loaded model: enough to instance it, size a proxy for
// it and drive its animation clips.
type Asset struct {
	// Path is the file the asset was loaded from, and its cache key.
	Path string

	// Name is the default scene's name, or Path when the document has none.
	Name string

	MeshCount      int
	NodeCount      int
	PrimitiveCount int
	VertexCount    int
	SkinCount      int

	// Clips lists the animation clips with durations taken from their keyframe inputs.
	Clips []animator.Clip

	// BoundsMin and BoundsMax enclose every POSITION accessor in model space. Both are zero
	// when the document carries no position bounds.
	BoundsMin mgl32.Vec3
	BoundsMax mgl32.Vec3
}

// Animated reports whether the asset has at least one animation clip.
func (a *Asset) Animated() bool {
	return len(a.Clips) > 0
}

// Extent returns the size of the asset's bounding box.
func (a *Asset) Extent() mgl32.Vec3 {
	return a.BoundsMax.Sub(a.BoundsMin)
}

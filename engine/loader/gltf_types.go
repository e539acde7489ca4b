// gltf_types.go contains the subset of the glTF 2.0 JSON schema the loader reads.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html
package loader

// gltfDocument represents the root of a glTF JSON document.
type gltfDocument struct {
	Asset      gltfAsset       `json:"asset"`
	Scene      *int            `json:"scene,omitempty"`
	Scenes     []gltfScene     `json:"scenes,omitempty"`
	Nodes      []gltfNode      `json:"nodes,omitempty"`
	Meshes     []gltfMesh      `json:"meshes,omitempty"`
	Accessors  []gltfAccessor  `json:"accessors,omitempty"`
	Skins      []gltfSkin      `json:"skins,omitempty"`
	Animations []gltfAnimation `json:"animations,omitempty"`
}

// gltfAsset contains metadata about the glTF asset.
type gltfAsset struct {
	// Version is the glTF version (required, must be "2.x").
	Version   string `json:"version"`
	Generator string `json:"generator,omitempty"`
}

type gltfScene struct {
	Name  string `json:"name,omitempty"`
	Nodes []int  `json:"nodes,omitempty"`
}

type gltfNode struct {
	Name     string `json:"name,omitempty"`
	Children []int  `json:"children,omitempty"`
	Mesh     *int   `json:"mesh,omitempty"`
	Skin     *int   `json:"skin,omitempty"`
}

type gltfMesh struct {
	Name       string          `json:"name,omitempty"`
	Primitives []gltfPrimitive `json:"primitives"`
}

// gltfPrimitive defines geometry for rendering.
// Attributes maps semantics (POSITION, NORMAL, TEXCOORD_0, ...) to accessor indices.
type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    *int           `json:"indices,omitempty"`
}

// gltfAccessor carries the element count and the optional per-component bounds. The loader
// never touches buffer data; durations and extents come from Min/Max, which glTF requires for
// POSITION attributes and animation sampler inputs.
type gltfAccessor struct {
	Count int       `json:"count"`
	Type  string    `json:"type"`
	Max   []float32 `json:"max,omitempty"`
	Min   []float32 `json:"min,omitempty"`
}

type gltfSkin struct {
	Joints []int `json:"joints"`
}

type gltfAnimation struct {
	Name     string            `json:"name,omitempty"`
	Samplers []gltfAnimSampler `json:"samplers"`
}

type gltfAnimSampler struct {
	// Input is the accessor index for keyframe times.
	Input  int `json:"input"`
	Output int `json:"output"`
}

const gltfAttributePosition = "POSITION"

// gltfGLBHeader is the header of a GLB file (12 bytes).
type gltfGLBHeader struct {
	Magic   uint32 // Must be 0x46546C67 ("glTF" in ASCII)
	Version uint32 // Must be 2
	Length  uint32 // Total file length
}

// gltfGLBChunkHeader is the header of a GLB chunk (8 bytes).
type gltfGLBChunkHeader struct {
	ChunkLength uint32
	ChunkType   uint32 // 0x4E4F534A for JSON, 0x004E4942 for BIN
}

// GLB magic number and chunk type constants
const (
	gltfGLBMagic     = 0x46546C67 // "glTF" in little-endian ASCII
	gltfGLBVersion   = 2
	gltfGLBChunkJSON = 0x4E4F534A // "JSON" in little-endian ASCII
	gltfGLBChunkBIN  = 0x004E4942 // "BIN\0" in little-endian ASCII
)

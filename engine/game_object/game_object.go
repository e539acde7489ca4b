package game_object

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-reef/common"
	"github.com/Carmen-Shannon/oxy-reef/engine/animator"
	"github.com/Carmen-Shannon/oxy-reef/engine/loader"
	"github.com/Carmen-Shannon/oxy-reef/engine/locomotion"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind classifies a scene entity by the role it plays in the reef.
type Kind int

const (
	// KindCoral is a decorative coral placed on the seabed.
	KindCoral Kind = iota
	// KindFish is a roaming, animated fish.
	KindFish
	// KindSculpture is a single hand-placed model (treasure chest, crown).
	KindSculpture
	// KindMarker is a project or skill coral colony that bobs in place.
	KindMarker
)

// String returns a human-readable label for the Kind.
func (k Kind) String() string {
	switch k {
	case KindCoral:
		return "coral"
	case KindFish:
		return "fish"
	case KindSculpture:
		return "sculpture"
	case KindMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// BobAmplitude is the vertical travel of a bobbing marker in world units.
const BobAmplitude = 0.2

// SwayAmplitude is the sideways tail swing of an animated proxy, in proxy-local units.
const SwayAmplitude = 0.15

type gameObject struct {
	mu         *sync.Mutex
	id         uint64
	enabled    atomic.Bool
	kind       Kind
	modelIndex int
	asset      *loader.Asset
	mixer      animator.Mixer
	roaming    *locomotion.RoamingEntity
	color      mgl32.Vec4

	position mgl32.Vec3
	rotation mgl32.Vec3
	scale    mgl32.Vec3

	bobbing bool
	baseY   float32
}

// GameObject is a scene entity: a transform, a flat color for its proxy, and optionally a loaded
// asset, an animation mixer and a roaming body. When a roaming body is attached, position, yaw and
// scale are derived from it so locomotion never has to copy state back into the object.
type GameObject interface {
	// ID returns the object's registry identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Kind returns the object's role in the scene.
	Kind() Kind

	// Enabled returns whether this object is drawn.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// ModelIndex returns the index of the model within its kind's path list.
	ModelIndex() int

	// Asset returns the loaded model summary, or nil for procedural objects such as markers.
	//
	// Returns:
	//   - *loader.Asset: the asset or nil
	Asset() *loader.Asset

	// Mixer returns the object's animation mixer, or nil when it is not animated.
	//
	// Returns:
	//   - animator.Mixer: the mixer or nil
	Mixer() animator.Mixer

	// Anim returns the per-instance animation parameters for the proxy shader: the mixer's clip
	// phase in x and SwayAmplitude in y. Objects without a playing clip return the zero vector.
	//
	// Returns:
	//   - mgl32.Vec4: phase, amplitude, 0, 0
	Anim() mgl32.Vec4

	// Roaming returns the roaming body driving this object, or nil for static objects.
	//
	// Returns:
	//   - *locomotion.RoamingEntity: the roaming body or nil
	Roaming() *locomotion.RoamingEntity

	// Color returns the RGBA color of the object's proxy.
	Color() mgl32.Vec4

	// Position returns the world-space position.
	Position() mgl32.Vec3

	// Rotation returns the Euler rotation in radians (X, Y, Z).
	Rotation() mgl32.Vec3

	// Scale returns the per-axis scale.
	Scale() mgl32.Vec3

	// Bobbing reports whether the object bobs around a base height.
	Bobbing() bool

	// BaseY returns the height a bobbing object oscillates around.
	BaseY() float32

	// SetID sets the object's registry identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is drawn.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition moves the object. For roaming objects the roaming body is moved instead.
	//
	// Parameters:
	//   - p: the new world-space position
	SetPosition(p mgl32.Vec3)

	// SetRotation sets the Euler rotation in radians.
	//
	// Parameters:
	//   - r: rotation around X, Y and Z
	SetRotation(r mgl32.Vec3)

	// SetScale sets the per-axis scale.
	//
	// Parameters:
	//   - s: scale along X, Y and Z
	SetScale(s mgl32.Vec3)

	// Bob places a bobbing object at BaseY + sin(elapsed + x) * BobAmplitude. Objects that do not
	// bob are left alone.
	//
	// Parameters:
	//   - elapsed: scene time in seconds
	Bob(elapsed float32)

	// ModelMatrix returns the object's world transform.
	//
	// Returns:
	//   - mgl32.Mat4: translation * rotation * scale
	ModelMatrix() mgl32.Mat4

	// ProxyMatrix returns the transform that maps the unit cube onto the object's bounds. Assets
	// with bounds are fitted to their box; everything else uses the object transform as is.
	//
	// Returns:
	//   - mgl32.Mat4: the proxy transform
	ProxyMatrix() mgl32.Mat4
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject with the provided options. Defaults to an enabled
// coral at the origin with unit scale and an opaque white proxy.
//
// Parameters:
//   - kind: the object's role
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(kind Kind, options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		mu:    &sync.Mutex{},
		kind:  kind,
		scale: mgl32.Vec3{1, 1, 1},
		color: mgl32.Vec4{1, 1, 1, 1},
	}
	obj.enabled.Store(true)

	for _, opt := range options {
		opt(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) Kind() Kind {
	return g.kind
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) ModelIndex() int {
	return g.modelIndex
}

func (g *gameObject) Asset() *loader.Asset {
	return g.asset
}

func (g *gameObject) Mixer() animator.Mixer {
	return g.mixer
}

func (g *gameObject) Anim() mgl32.Vec4 {
	if g.mixer == nil || g.mixer.ClipIndex() < 0 {
		return mgl32.Vec4{}
	}
	return mgl32.Vec4{g.mixer.Phase(), SwayAmplitude, 0, 0}
}

func (g *gameObject) Roaming() *locomotion.RoamingEntity {
	return g.roaming
}

func (g *gameObject) Color() mgl32.Vec4 {
	return g.color
}

func (g *gameObject) Position() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.roaming != nil {
		return g.roaming.Position
	}
	return g.position
}

func (g *gameObject) Rotation() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.roaming != nil {
		return mgl32.Vec3{g.rotation[0], g.roaming.Yaw, g.rotation[2]}
	}
	return g.rotation
}

func (g *gameObject) Scale() mgl32.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.roaming != nil {
		s := g.roaming.Scale
		return mgl32.Vec3{s, s, s}
	}
	return g.scale
}

func (g *gameObject) Bobbing() bool {
	return g.bobbing
}

func (g *gameObject) BaseY() float32 {
	return g.baseY
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(p mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.roaming != nil {
		g.roaming.Position = p
		return
	}
	g.position = p
}

func (g *gameObject) SetRotation(r mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rotation = r
}

func (g *gameObject) SetScale(s mgl32.Vec3) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scale = s
}

func (g *gameObject) Bob(elapsed float32) {
	if !g.bobbing {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	offset := float32(math.Sin(float64(elapsed+g.position[0]))) * BobAmplitude
	g.position[1] = g.baseY + offset
}

func (g *gameObject) ModelMatrix() mgl32.Mat4 {
	return common.BuildModelMatrix(g.Position(), g.Rotation(), g.Scale())
}

func (g *gameObject) ProxyMatrix() mgl32.Mat4 {
	model := g.ModelMatrix()
	if g.asset == nil {
		return model
	}
	extent := g.asset.Extent()
	if extent[0] <= 0 || extent[1] <= 0 || extent[2] <= 0 {
		return model
	}
	centre := g.asset.BoundsMin.Add(g.asset.BoundsMax).Mul(0.5)
	fit := mgl32.Translate3D(centre[0], centre[1], centre[2]).Mul4(mgl32.Scale3D(extent[0], extent[1], extent[2]))
	return model.Mul4(fit)
}

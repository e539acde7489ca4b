package game_object

import (
	"github.com/Carmen-Shannon/oxy-reef/engine/animator"
	"github.com/Carmen-Shannon/oxy-reef/engine/loader"
	"github.com/Carmen-Shannon/oxy-reef/engine/locomotion"

	"github.com/go-gl/mathgl/mgl32"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithEnabled sets the initial Enabled state of the GameObject.
//
// Parameters:
//   - enabled: true to draw the object
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithModelIndex records which model of its kind the object instances.
//
// Parameters:
//   - index: position of the model in its path list
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the model index
func WithModelIndex(index int) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.modelIndex = index
	}
}

// WithAsset attaches the loaded model summary the object instances.
//
// Parameters:
//   - a: the loaded asset
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the asset
func WithAsset(a *loader.Asset) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.asset = a
	}
}

// WithMixer attaches an animation mixer.
//
// Parameters:
//   - m: the mixer advanced every tick
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the mixer
func WithMixer(m animator.Mixer) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.mixer = m
	}
}

// WithRoaming attaches a roaming body. Position, yaw and scale are read from it afterwards.
//
// Parameters:
//   - e: the roaming body
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the roaming body
func WithRoaming(e *locomotion.RoamingEntity) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.roaming = e
	}
}

// WithTransform sets position and scale from a rotation-free model matrix, such as the instance
// transforms built by placer.Transforms.
//
// Parameters:
//   - m: translation times scale
//
// Returns:
//   - GameObjectBuilderOption: functional option to set position and scale
func WithTransform(m mgl32.Mat4) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = m.Col(3).Vec3()
		obj.scale = mgl32.Vec3{m.Col(0).Vec3().Len(), m.Col(1).Vec3().Len(), m.Col(2).Vec3().Len()}
	}
}

// WithColor sets the RGBA color of the object's proxy.
//
// Parameters:
//   - c: the color
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the color
func WithColor(c mgl32.Vec4) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.color = c
	}
}

// WithPosition sets the initial position of the GameObject.
//
// Parameters:
//   - p: world-space position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(p mgl32.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = p
	}
}

// WithRotation sets the initial Euler rotation of the GameObject.
//
// Parameters:
//   - r: rotation around X, Y and Z in radians
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial rotation
func WithRotation(r mgl32.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.rotation = r
	}
}

// WithScale sets the initial scale of the GameObject.
//
// Parameters:
//   - s: scale along X, Y and Z
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial scale
func WithScale(s mgl32.Vec3) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.scale = s
	}
}

// WithBob makes the object bob around baseY. The initial height is set to baseY.
//
// Parameters:
//   - baseY: the height to oscillate around
//
// Returns:
//   - GameObjectBuilderOption: functional option to enable bobbing
func WithBob(baseY float32) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.bobbing = true
		obj.baseY = baseY
		obj.position[1] = baseY
	}
}

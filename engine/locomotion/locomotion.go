package locomotion

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultDeltaScale is the per-tick distance multiplier applied to an entity's speed.
const DefaultDeltaScale = 0.1

// CruiseSpeed is the middle of the rolled speed range. An entity at this speed plays its clip at
// normal rate.
const CruiseSpeed = 0.45

// AnimationState is the playback handle a roaming entity carries. It is advanced once per tick.
type AnimationState interface {
	Update(delta float32)
}

// RoamingEntity is a freely swimming scene entity that patrols inside a square domain.
type RoamingEntity struct {
	ModelIndex int
	Position   mgl32.Vec3
	Heading    mgl32.Vec3 // unit length, Y always 0
	Speed      float32
	Yaw        float32 // radians around +Y, facing Heading
	Scale      float32
	Animation  AnimationState
}

// Step moves the entity along its heading by Speed * deltaScale. When the new position lies
// beyond ±halfExtent on X or Z while still moving outward on that axis, only that axis of the
// heading is negated. Yaw is then re-derived from the heading.
//
// Parameters:
//   - e: the entity to advance (nil is ignored)
//   - deltaScale: distance multiplier for this tick
//   - halfExtent: half the edge length of the patrol square
func Step(e *RoamingEntity, deltaScale, halfExtent float32) {
	if e == nil {
		return
	}
	e.Position = e.Position.Add(e.Heading.Mul(e.Speed * deltaScale))

	if outward(e.Position[0], e.Heading[0], halfExtent) {
		e.Heading[0] = -e.Heading[0]
	}
	if outward(e.Position[2], e.Heading[2], halfExtent) {
		e.Heading[2] = -e.Heading[2]
	}
	e.Yaw = float32(math.Atan2(float64(e.Heading[0]), float64(e.Heading[2])))
}

func outward(pos, dir, halfExtent float32) bool {
	return (pos > halfExtent && dir > 0) || (pos < -halfExtent && dir < 0)
}

// NewRoamingEntity spawns an entity at a random position inside ±domainSize*0.4 on X and Z, at a
// depth in [-20, -5), with a speed in [0.2, 0.7) and a random horizontal heading. A nil rng uses
// the global source.
//
// Parameters:
//   - rng: random source (nil for the global source)
//   - domainSize: edge length of the ground the entity roams over
//   - options: functional options to configure the entity
//
// Returns:
//   - *RoamingEntity: the spawned entity
func NewRoamingEntity(rng *rand.Rand, domainSize float32, options ...RoamingEntityBuilderOption) *RoamingEntity {
	r := func() float32 {
		if rng != nil {
			return rng.Float32()
		}
		return rand.Float32()
	}

	e := &RoamingEntity{
		Position: mgl32.Vec3{
			(r() - 0.5) * domainSize * 0.8,
			r()*15 - 20,
			(r() - 0.5) * domainSize * 0.8,
		},
		Speed: r()*0.5 + 0.2,
		Scale: 1,
	}

	h := mgl32.Vec3{r() - 0.5, 0, r() - 0.5}
	if h.Len() < 1e-6 {
		h = mgl32.Vec3{0, 0, 1}
	}
	e.Heading = h.Normalize()
	e.Yaw = float32(math.Atan2(float64(e.Heading[0]), float64(e.Heading[2])))

	for _, opt := range options {
		opt(e)
	}
	return e
}

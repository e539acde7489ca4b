package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-reef/engine/navigator"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultStartPosition is where the camera sits before the first scroll event.
var DefaultStartPosition = mgl32.Vec3{85, -16, 70}

// CameraController owns the camera's positional state. Camera reads from the controller and
// computes view/projection matrices.
type CameraController interface {
	// Position returns the camera's world-space position.
	Position() mgl32.Vec3

	// Target returns the look-at point.
	Target() mgl32.Vec3

	// SetPosition sets the camera's world-space position directly.
	//
	// Parameters:
	//   - p: world-space coordinates
	SetPosition(p mgl32.Vec3)

	// SetTarget sets the look-at point.
	//
	// Parameters:
	//   - t: world-space coordinates
	SetTarget(t mgl32.Vec3)
}

// RailController is a CameraController pinned to a navigator curve: every pose it receives
// replaces both the eye and the look-at point.
type RailController interface {
	CameraController

	// SetPose places the camera at the pose's position looking along its tangent.
	//
	// Parameters:
	//   - pose: the pose evaluated from the camera path
	SetPose(pose navigator.Pose)

	// Pose returns the last pose set, or a pose built from the current position and target.
	Pose() navigator.Pose
}

type railControllerImpl struct {
	mu       *sync.Mutex
	position mgl32.Vec3
	target   mgl32.Vec3
}

var _ RailController = &railControllerImpl{}

// NewRailController creates a RailController at start, looking one unit down the negative z axis.
//
// Parameters:
//   - start: the initial eye position
//
// Returns:
//   - RailController: the controller
func NewRailController(start mgl32.Vec3) RailController {
	return &railControllerImpl{
		mu:       &sync.Mutex{},
		position: start,
		target:   start.Sub(mgl32.Vec3{0, 0, 1}),
	}
}

func (r *railControllerImpl) Position() mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position
}

func (r *railControllerImpl) Target() mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.target
}

func (r *railControllerImpl) SetPosition(p mgl32.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = p
}

func (r *railControllerImpl) SetTarget(t mgl32.Vec3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = t
}

func (r *railControllerImpl) SetPose(pose navigator.Pose) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = pose.Position
	r.target = pose.LookAt
}

func (r *railControllerImpl) Pose() navigator.Pose {
	r.mu.Lock()
	defer r.mu.Unlock()
	tan := r.target.Sub(r.position)
	if l := tan.Len(); l > 0 {
		tan = tan.Mul(1 / l)
	}
	return navigator.Pose{Position: r.position, Tangent: tan, LookAt: r.target}
}

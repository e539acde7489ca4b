package navigator

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultControlPoints is the camera flight from the reef floor up to the surface and the summit.
var DefaultControlPoints = []mgl32.Vec3{
	{85, -16, 70},
	{58, -20, 46},
	{70, 50, 70},
	{70, 120, 71},
}

// Pose is the camera placement for a given scroll progress.
type Pose struct {
	Position mgl32.Vec3
	Tangent  mgl32.Vec3
	LookAt   mgl32.Vec3
}

// PathNavigator maps normalized scroll progress onto a fixed camera curve.
type PathNavigator interface {
	// Evaluate returns the camera pose at the given progress. Progress is interpreted as a
	// fraction of arclength so equal scroll steps move the camera equal distances. Values outside
	// [0, 1] are clamped and NaN is treated as 0.
	//
	// Parameters:
	//   - progress: normalized scroll progress
	//
	// Returns:
	//   - Pose: position, unit tangent and look-at target (position + tangent)
	Evaluate(progress float32) Pose

	// Curve returns the immutable curve the navigator follows.
	//
	// Returns:
	//   - *Curve: the camera curve
	Curve() *Curve
}

type pathNavigatorImpl struct {
	curve *Curve
}

var _ PathNavigator = &pathNavigatorImpl{}

// NewPathNavigator builds a navigator over a curve through the given control points.
//
// Parameters:
//   - points: ordered world-space control points (at least two)
//   - options: curve options such as WithCurveType and WithArcLengthDivisions
//
// Returns:
//   - PathNavigator: the navigator
//   - error: ErrTooFewPoints when the curve cannot be built
func NewPathNavigator(points []mgl32.Vec3, options ...CurveBuilderOption) (PathNavigator, error) {
	c, err := NewCurve(points, options...)
	if err != nil {
		return nil, err
	}
	return &pathNavigatorImpl{curve: c}, nil
}

func (n *pathNavigatorImpl) Evaluate(progress float32) Pose {
	pos := n.curve.PointAt(progress)
	tan := n.curve.TangentAt(progress)
	return Pose{
		Position: pos,
		Tangent:  tan,
		LookAt:   pos.Add(tan),
	}
}

func (n *pathNavigatorImpl) Curve() *Curve {
	return n.curve
}

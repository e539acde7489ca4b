package navigator

import (
	"errors"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrTooFewPoints is returned when a curve is built from fewer than two control points.
var ErrTooFewPoints = errors.New("navigator: a curve needs at least two control points")

// CurveType selects how the control points are turned into a smooth curve.
type CurveType int

const (
	// CurveTypeBSpline is a clamped uniform B-spline (cubic when there are at least four control
	// points). It starts and ends exactly on the first and last control point and never leaves the
	// convex hull of the control polygon, but only passes near the interior waypoints.
	CurveTypeBSpline CurveType = iota
	// CurveTypeCentripetal is a centripetal Catmull-Rom spline (alpha 0.5) with reflected phantom
	// endpoints. It passes through every control point and may bulge outside the control hull
	// around sharp turns.
	CurveTypeCentripetal
)

const (
	defaultArcLengthDivisions = 200
	tangentDelta              = 1e-4
)

// Curve is an immutable 3D path with an arclength lookup table. All evaluation is pure and
// allocation free, so a Curve can be shared freely between goroutines.
type Curve struct {
	curveType CurveType
	points    []mgl32.Vec3

	// float64 copies of the control points used for evaluation.
	cps [][3]float64
	// knots is only populated for CurveTypeBSpline.
	knots  []float64
	degree int

	divisions int
	lengths   []float64 // cumulative chord length at t = i/divisions
}

// NewCurve builds a curve through (or guided by) the given control points. The slice is copied.
//
// Parameters:
//   - points: ordered world-space control points (at least two)
//   - options: functional options to configure the curve
//
// Returns:
//   - *Curve: the immutable curve
//   - error: ErrTooFewPoints when fewer than two points are given
func NewCurve(points []mgl32.Vec3, options ...CurveBuilderOption) (*Curve, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}

	c := &Curve{
		curveType: CurveTypeBSpline,
		divisions: defaultArcLengthDivisions,
	}
	for _, opt := range options {
		opt(c)
	}
	if c.divisions < 1 {
		c.divisions = defaultArcLengthDivisions
	}

	c.points = make([]mgl32.Vec3, len(points))
	copy(c.points, points)
	c.cps = make([][3]float64, len(points))
	for i, p := range points {
		c.cps[i] = [3]float64{float64(p[0]), float64(p[1]), float64(p[2])}
	}

	if c.curveType == CurveTypeBSpline {
		c.degree = min(3, len(points)-1)
		c.knots = clampedUniformKnots(len(points), c.degree)
	}

	c.buildArcLengths()
	return c, nil
}

// Type returns the spline family of the curve.
func (c *Curve) Type() CurveType {
	return c.curveType
}

// ControlPoints returns a copy of the control points.
func (c *Curve) ControlPoints() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(c.points))
	copy(out, c.points)
	return out
}

// Length returns the approximate total arclength of the curve.
func (c *Curve) Length() float32 {
	return float32(c.lengths[len(c.lengths)-1])
}

// Point evaluates the curve at the raw curve parameter t in [0, 1]. Equal steps in t do not
// correspond to equal distances; use PointAt for that.
//
// Parameters:
//   - t: raw curve parameter, clamped to [0, 1]
//
// Returns:
//   - mgl32.Vec3: the point on the curve
func (c *Curve) Point(t float32) mgl32.Vec3 {
	return toVec3(c.eval(clampParam(float64(t))))
}

// PointAt evaluates the curve at arclength fraction u in [0, 1].
//
// Parameters:
//   - u: fraction of the total length travelled, clamped to [0, 1]
//
// Returns:
//   - mgl32.Vec3: the point on the curve
func (c *Curve) PointAt(u float32) mgl32.Vec3 {
	return toVec3(c.eval(c.uToT(clampParam(float64(u)))))
}

// TangentAt returns the unit tangent at arclength fraction u in [0, 1]. The tangent is
// estimated with a symmetric finite difference in the raw parameter, one-sided at the ends.
//
// Parameters:
//   - u: fraction of the total length travelled, clamped to [0, 1]
//
// Returns:
//   - mgl32.Vec3: the unit tangent (zero only for a fully degenerate curve)
func (c *Curve) TangentAt(u float32) mgl32.Vec3 {
	return toVec3(c.tangent(c.uToT(clampParam(float64(u)))))
}

func (c *Curve) tangent(t float64) [3]float64 {
	t1 := max(t-tangentDelta, 0)
	t2 := min(t+tangentDelta, 1)
	a, b := c.eval(t1), c.eval(t2)
	d := [3]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	l := math.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	if l == 0 {
		return d
	}
	return [3]float64{d[0] / l, d[1] / l, d[2] / l}
}

// buildArcLengths samples the curve at divisions+1 evenly spaced raw parameters and stores the
// cumulative chord length.
func (c *Curve) buildArcLengths() {
	c.lengths = make([]float64, c.divisions+1)
	prev := c.eval(0)
	for i := 1; i <= c.divisions; i++ {
		cur := c.eval(float64(i) / float64(c.divisions))
		dx, dy, dz := cur[0]-prev[0], cur[1]-prev[1], cur[2]-prev[2]
		c.lengths[i] = c.lengths[i-1] + math.Sqrt(dx*dx+dy*dy+dz*dz)
		prev = cur
	}
}

// uToT maps an arclength fraction to the raw curve parameter by binary searching the lookup
// table and interpolating linearly within the chord.
func (c *Curve) uToT(u float64) float64 {
	total := c.lengths[len(c.lengths)-1]
	if total == 0 {
		return u
	}
	target := u * total

	// First index whose cumulative length is >= target.
	i := sort.SearchFloat64s(c.lengths, target)
	if i == 0 {
		return 0
	}
	if i >= len(c.lengths) {
		return 1
	}
	before := c.lengths[i-1]
	seg := c.lengths[i] - before
	if seg == 0 {
		return float64(i) / float64(c.divisions)
	}
	frac := (target - before) / seg
	return (float64(i-1) + frac) / float64(c.divisions)
}

func (c *Curve) eval(t float64) [3]float64 {
	if c.curveType == CurveTypeCentripetal {
		return c.evalCentripetal(t)
	}
	return c.evalBSpline(t)
}

// evalCentripetal evaluates the non-uniform Catmull-Rom segment containing t. Segment knot
// spacing is |Pi+1 - Pi|^0.5; the first and last segments use reflected phantom points.
func (c *Curve) evalCentripetal(t float64) [3]float64 {
	n := len(c.cps)
	p := float64(n-1) * t
	seg := int(math.Floor(p))
	w := p - float64(seg)
	if seg >= n-1 {
		seg = n - 2
		w = 1
	}

	p1, p2 := c.cps[seg], c.cps[seg+1]
	var p0, p3 [3]float64
	if seg > 0 {
		p0 = c.cps[seg-1]
	} else {
		p0 = reflect(p1, p2)
	}
	if seg+2 < n {
		p3 = c.cps[seg+2]
	} else {
		p3 = reflect(p2, p1)
	}

	dt0 := math.Pow(distSq(p0, p1), 0.25)
	dt1 := math.Pow(distSq(p1, p2), 0.25)
	dt2 := math.Pow(distSq(p2, p3), 0.25)
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	var out [3]float64
	for k := 0; k < 3; k++ {
		x0, x1, x2, x3 := p0[k], p1[k], p2[k], p3[k]
		t1 := ((x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1) * dt1
		t2 := ((x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2) * dt1

		c0 := x1
		c1 := t1
		c2 := -3*x1 + 3*x2 - 2*t1 - t2
		c3 := 2*x1 - 2*x2 + t1 + t2
		out[k] = c0 + w*(c1+w*(c2+w*c3))
	}
	return out
}

// evalBSpline evaluates the clamped B-spline with de Boor's algorithm. Every basis weight is
// non-negative and the weights sum to one, so the result is a convex combination of control points.
func (c *Curve) evalBSpline(t float64) [3]float64 {
	n := len(c.cps)
	p := c.degree

	// Knot span k with knots[k] <= t < knots[k+1], restricted to [p, n-1].
	k := sort.SearchFloat64s(c.knots, t)
	for k < len(c.knots) && c.knots[k] <= t {
		k++
	}
	k--
	k = max(p, min(k, n-1))

	var d [4][3]float64
	for j := 0; j <= p; j++ {
		d[j] = c.cps[j+k-p]
	}
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			lo := c.knots[j+k-p]
			hi := c.knots[j+1+k-r]
			alpha := 0.0
			if hi != lo {
				alpha = (t - lo) / (hi - lo)
			}
			for a := 0; a < 3; a++ {
				d[j][a] = (1-alpha)*d[j-1][a] + alpha*d[j][a]
			}
		}
	}
	return d[p]
}

// clampedUniformKnots returns the open uniform knot vector for count control points of the given
// degree: degree+1 zeros, evenly spaced interior knots, degree+1 ones.
func clampedUniformKnots(count, degree int) []float64 {
	knots := make([]float64, count+degree+1)
	interior := count - degree
	for i := range knots {
		switch {
		case i <= degree:
			knots[i] = 0
		case i >= count:
			knots[i] = 1
		default:
			knots[i] = float64(i-degree) / float64(interior)
		}
	}
	return knots
}

func clampParam(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 1)
}

func reflect(p, about [3]float64) [3]float64 {
	return [3]float64{2*p[0] - about[0], 2*p[1] - about[1], 2*p[2] - about[2]}
}

func distSq(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dx*dx + dy*dy + dz*dz
}

func toVec3(v [3]float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

package navigator

// CurveBuilderOption is a functional option for configuring a Curve during construction.
type CurveBuilderOption func(*Curve)

// WithCurveType selects the spline family. Defaults to CurveTypeBSpline.
//
// Parameters:
//   - t: the curve type
//
// Returns:
//   - CurveBuilderOption: a function that applies the curve type
func WithCurveType(t CurveType) CurveBuilderOption {
	return func(c *Curve) {
		c.curveType = t
	}
}

// WithArcLengthDivisions sets how many chords approximate the curve for arclength
// parameterization. Values < 1 fall back to the default of 200.
//
// Parameters:
//   - divisions: number of chords in the lookup table
//
// Returns:
//   - CurveBuilderOption: a function that applies the division count
func WithArcLengthDivisions(divisions int) CurveBuilderOption {
	return func(c *Curve) {
		c.divisions = divisions
	}
}

package common

import (
	"cmp"
	"math"
)

// Clamp restricts v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Clamp01 restricts a float32 to [0, 1]. NaN maps to 0.
func Clamp01(v float32) float32 {
	if v != v {
		return 0
	}
	return Clamp(v, 0, 1)
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

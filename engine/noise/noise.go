package noise

import (
	"math"

	"github.com/Carmen-Shannon/oxy-reef/common"
)

// NoiseBackendType identifies the gradient noise implementation backing a NoiseField.
type NoiseBackendType int

const (
	// BackendTypeSimplex selects OpenSimplex noise (github.com/ojrac/opensimplex-go).
	BackendTypeSimplex NoiseBackendType = iota
	// BackendTypePerlin selects classic Perlin noise (github.com/aquilax/go-perlin).
	BackendTypePerlin
)

// String returns a human readable backend name.
func (t NoiseBackendType) String() string {
	switch t {
	case BackendTypeSimplex:
		return "simplex"
	case BackendTypePerlin:
		return "perlin"
	default:
		return "unknown"
	}
}

// noiseField is the implementation of the NoiseField interface.
type noiseField struct {
	backendType NoiseBackendType
	backend     noiseBackend

	seed        int64
	octaves     int
	persistence float64
	amplitudes  []float64
	ampSum      float64
}

// NoiseField is a deterministic 2D scalar field used to perturb the seabed at bake time and to
// resolve the resting height of decorative instances.
//
// Samples are continuous, smooth enough for the seabed's vertex spacing, and always inside
// [-1, 1]. A NoiseField is immutable after construction and safe for concurrent use.
type NoiseField interface {
	// Sample evaluates the field at (x, z).
	// Non-finite inputs return 0; the result is clamped to [-1, 1].
	//
	// Parameters:
	//   - x, z: sample coordinates (callers pre-multiply by their frequency)
	//
	// Returns:
	//   - float32: the field value in [-1, 1]
	Sample(x, z float32) float32

	// Seed returns the seed the backend was initialized with.
	//
	// Returns:
	//   - int64: the seed
	Seed() int64

	// BackendType returns the backend implementation in use.
	//
	// Returns:
	//   - NoiseBackendType: the backend type
	BackendType() NoiseBackendType
}

var _ NoiseField = &noiseField{}

// NewNoiseField creates a NoiseField with the given backend. Defaults to a single octave,
// persistence 0.5 and seed 0, so two fields built with the same options produce identical samples.
//
// Parameters:
//   - backendType: the noise backend to use
//   - options: functional options to configure the field
//
// Returns:
//   - NoiseField: the configured field
func NewNoiseField(backendType NoiseBackendType, options ...NoiseFieldBuilderOption) NoiseField {
	n := &noiseField{
		backendType: backendType,
		octaves:     1,
		persistence: 0.5,
	}
	for _, opt := range options {
		opt(n)
	}
	if n.octaves < 1 {
		n.octaves = 1
	}

	n.amplitudes = make([]float64, n.octaves)
	for i := range n.amplitudes {
		n.amplitudes[i] = math.Pow(n.persistence, float64(i))
		n.ampSum += n.amplitudes[i]
	}

	switch backendType {
	case BackendTypePerlin:
		n.backend = newPerlinNoiseBackend(n.seed)
	default:
		n.backendType = BackendTypeSimplex
		n.backend = newSimplexNoiseBackend(n.seed)
	}
	return n
}

func (n *noiseField) Sample(x, z float32) float32 {
	fx, fz := float64(x), float64(z)
	if !common.Finite(fx) || !common.Finite(fz) {
		return 0
	}

	var sum float64
	for octave, amp := range n.amplitudes {
		freq := float64(int64(1) << octave)
		sum += amp * n.backend.Eval2(fx*freq, fz*freq)
	}
	v := sum / n.ampSum
	if !common.Finite(v) {
		return 0
	}
	return float32(common.Clamp(v, -1, 1))
}

func (n *noiseField) Seed() int64 {
	return n.seed
}

func (n *noiseField) BackendType() NoiseBackendType {
	return n.backendType
}

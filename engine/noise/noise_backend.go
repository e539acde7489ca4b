package noise

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// noiseBackend evaluates a single octave of raw 2D gradient noise.
type noiseBackend interface {
	// Eval2 returns the raw noise value at (x, y), nominally in [-1, 1].
	Eval2(x, y float64) float64
}

// newSimplexNoiseBackend returns an OpenSimplex generator. opensimplex.Noise already
// satisfies noiseBackend.
func newSimplexNoiseBackend(seed int64) noiseBackend {
	return opensimplex.New(seed)
}

// perlinNoiseBackend adapts go-perlin to the noiseBackend interface.
type perlinNoiseBackend struct {
	p *perlin.Perlin
}

// Perlin parameters: alpha is the weight when the sum is formed, beta the harmonic scaling,
// n the number of iterations. A single iteration keeps the output a plain gradient noise;
// octaves are layered by the NoiseField itself.
const (
	perlinAlpha      = 2.0
	perlinBeta       = 2.0
	perlinIterations = 1
)

func newPerlinNoiseBackend(seed int64) noiseBackend {
	return &perlinNoiseBackend{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinIterations, seed)}
}

func (b *perlinNoiseBackend) Eval2(x, y float64) float64 {
	// 2D Perlin with unit gradients peaks at sqrt(2)/2.
	return b.p.Noise2D(x, y) * math.Sqrt2
}

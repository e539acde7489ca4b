package placer

import (
	"log"
	"math/rand/v2"
)

// InstancePlacerBuilderOption is a functional option for configuring an InstancePlacer.
type InstancePlacerBuilderOption func(*instancePlacer)

// WithRand makes placement reproducible by drawing candidates from rng instead of the global
// source.
//
// Parameters:
//   - rng: the random source
//
// Returns:
//   - InstancePlacerBuilderOption: a function that applies the random source
func WithRand(rng *rand.Rand) InstancePlacerBuilderOption {
	return func(p *instancePlacer) {
		p.rng = rng
	}
}

// WithSpatialIndex switches the neighbour check from a scan of every accepted position to a
// uniform grid. Results obey the same distance guarantee.
//
// Parameters:
//   - enabled: true to use the grid
//
// Returns:
//   - InstancePlacerBuilderOption: a function that applies the index choice
func WithSpatialIndex(enabled bool) InstancePlacerBuilderOption {
	return func(p *instancePlacer) {
		p.spatialIndex = enabled
	}
}

// WithLogger sets the logger exhausted slots are reported to.
//
// Parameters:
//   - logger: the logger (nil keeps the default)
//
// Returns:
//   - InstancePlacerBuilderOption: a function that applies the logger
func WithLogger(logger *log.Logger) InstancePlacerBuilderOption {
	return func(p *instancePlacer) {
		if logger != nil {
			p.logger = logger
		}
	}
}

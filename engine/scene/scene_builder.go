package scene

import (
	"log"
	"math/rand/v2"

	"github.com/Carmen-Shannon/oxy-reef/engine/clock"
	"github.com/Carmen-Shannon/oxy-reef/engine/loader"
)

// SceneAnimatorBuilderOption is a functional option for configuring a SceneAnimator.
// Use the With* functions to create options.
type SceneAnimatorBuilderOption func(s *sceneAnimator)

// WithConfig replaces DefaultConfig.
//
// Parameters:
//   - cfg: the scene configuration
//
// Returns:
//   - SceneAnimatorBuilderOption: option function to apply
func WithConfig(cfg Config) SceneAnimatorBuilderOption {
	return func(s *sceneAnimator) {
		s.cfg = cfg
	}
}

// WithLogger sets the logger used by the scene and, unless WithLoader is given, its loader.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - SceneAnimatorBuilderOption: option function to apply
func WithLogger(logger *log.Logger) SceneAnimatorBuilderOption {
	return func(s *sceneAnimator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithUISurface sets the overlay the zone tracker drives. Defaults to a LogUISurface.
//
// Parameters:
//   - ui: the UI surface
//
// Returns:
//   - SceneAnimatorBuilderOption: option function to apply
func WithUISurface(ui UISurface) SceneAnimatorBuilderOption {
	return func(s *sceneAnimator) {
		s.ui = ui
	}
}

// WithLoader sets the asset loader. Defaults to a glTF loader.
//
// Parameters:
//   - l: the loader
//
// Returns:
//   - SceneAnimatorBuilderOption: option function to apply
func WithLoader(l loader.Loader) SceneAnimatorBuilderOption {
	return func(s *sceneAnimator) {
		s.loader = l
	}
}

// WithWorkers sets the number of concurrent loads of the default loader.
//
// Parameters:
//   - n: worker count
//
// Returns:
//   - SceneAnimatorBuilderOption: option function to apply
func WithWorkers(n int) SceneAnimatorBuilderOption {
	return func(s *sceneAnimator) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithClock sets the frame clock. Defaults to a wall-clock FrameClock.
//
// Parameters:
//   - c: the clock
//
// Returns:
//   - SceneAnimatorBuilderOption: option function to apply
func WithClock(c clock.FrameClock) SceneAnimatorBuilderOption {
	return func(s *sceneAnimator) {
		s.clock = c
	}
}

// WithNominalDelta sets the fixed animation step applied to mixers every tick.
//
// Parameters:
//   - delta: seconds per tick (ignored unless positive)
//
// Returns:
//   - SceneAnimatorBuilderOption: option function to apply
func WithNominalDelta(delta float32) SceneAnimatorBuilderOption {
	return func(s *sceneAnimator) {
		if delta > 0 {
			s.nominalDelta = delta
		}
	}
}

// WithMeasuredDelta advances mixers by the clock's measured delta instead of the nominal one and
// scales roaming distance by measured/nominal, so a frame of nominal length moves entities exactly
// as far as in fixed-delta mode.
//
// Parameters:
//   - enabled: true to use wall-clock deltas
//
// Returns:
//   - SceneAnimatorBuilderOption: option function to apply
func WithMeasuredDelta(enabled bool) SceneAnimatorBuilderOption {
	return func(s *sceneAnimator) {
		s.measuredDelta = enabled
	}
}

// WithDeltaScale sets the distance multiplier roaming entities move per nominal tick.
//
// Parameters:
//   - scale: distance multiplier (ignored unless positive)
//
// Returns:
//   - SceneAnimatorBuilderOption: option function to apply
func WithDeltaScale(scale float32) SceneAnimatorBuilderOption {
	return func(s *sceneAnimator) {
		if scale > 0 {
			s.deltaScale = scale
		}
	}
}

// WithAspect sets the camera's initial aspect ratio.
//
// Parameters:
//   - aspect: width / height
//
// Returns:
//   - SceneAnimatorBuilderOption: option function to apply
func WithAspect(aspect float32) SceneAnimatorBuilderOption {
	return func(s *sceneAnimator) {
		if aspect > 0 {
			s.aspect = aspect
		}
	}
}

// WithRand seeds coral placement from rng, making the scatter reproducible.
//
// Parameters:
//   - rng: the random source
//
// Returns:
//   - SceneAnimatorBuilderOption: option function to apply
func WithRand(rng *rand.Rand) SceneAnimatorBuilderOption {
	return func(s *sceneAnimator) {
		s.rng = rng
	}
}

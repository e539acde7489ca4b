package engine

import (
	"log"

	"github.com/Carmen-Shannon/oxy-reef/engine/scene"
	"github.com/Carmen-Shannon/oxy-reef/engine/window"
)

// EngineBuilderOption is a functional option for configuring the engine.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables profiling output at construction.
//
// Parameters:
//   - enabled: true to log frame statistics
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the scene tick rate in frames per second. 0 or less ticks on every window
// iteration, leaving the pace to the present mode.
//
// Parameters:
//   - fps: target ticks per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.engineTickRate = tickPeriod(fps)
	}
}

// WithWindow sets the window whose input and update loop drive the engine.
//
// Parameters:
//   - w: the window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithScene sets the scene the engine ticks.
//
// Parameters:
//   - s: the scene
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScene(s scene.SceneAnimator) EngineBuilderOption {
	return func(e *engine) {
		e.scene = s
	}
}

// WithRenderer sets the renderer resized along with the window.
//
// Parameters:
//   - r: the renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r Resizer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithWheelStep sets the scroll offset of one arrow-key step. Page keys move five steps.
//
// Parameters:
//   - step: offset units per key step (ignored unless positive)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWheelStep(step float32) EngineBuilderOption {
	return func(e *engine) {
		if step > 0 {
			e.wheelStep = step
		}
	}
}

// WithLogger sets the engine and profiler logger.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *log.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

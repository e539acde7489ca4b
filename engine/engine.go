package engine

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-reef/engine/profiler"
	"github.com/Carmen-Shannon/oxy-reef/engine/scene"
	"github.com/Carmen-Shannon/oxy-reef/engine/window"
)

// Resizer is the part of the renderer the engine drives on window resize.
type Resizer interface {
	Resize(width, height int)
}

// engine implements the Engine interface.
// Ticks the scene from the window thread and shuts everything down on quit.
type engine struct {
	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once
	closeOnce   sync.Once

	window   window.Window
	scene    scene.SceneAnimator
	renderer Resizer
	logger   *log.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration // minimum time between ticks; 0 = every window iteration
	lastTick       time.Time
	tickCallback   func(deltaTime float32)

	wheelStep float32
	shiftDown bool
}

// Engine is the main entry point for the engine.
// It wires window input into the scene, ticks the scene and manages shutdown.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the scene the engine ticks.
	//
	// Returns:
	//   - scene.SceneAnimator: the scene
	Scene() scene.SceneAnimator

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in frames per second.
	//
	// Parameters:
	//   - fps: target frames per second (0 or less ticks on every window iteration)
	SetTickRate(fps float64)

	// SetTickCallback registers a function called after each scene tick.
	//
	// Parameters:
	//   - callback: function receiving the wall-clock seconds since the previous tick
	SetTickCallback(callback func(deltaTime float32))

	// Tick runs one scene tick immediately, recovering from panics.
	//
	// Returns:
	//   - error: the scene's error, or the recovered panic
	Tick() error

	// Run starts the scene and the window loop (blocks until the window closes).
	Run()

	// Quit signals the engine to stop; the window closes on its next iteration.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options and hooks its window's
// update, scroll, key and resize callbacks to the scene.
//
// Parameters:
//   - options: functional options for engine configuration (window, scene, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		quitChannel:    make(chan struct{}),
		logger:         log.New(os.Stderr, "[ENGINE] ", log.LstdFlags),
		engineTickRate: time.Second / 60,
		wheelStep:      100,
	}

	for _, opt := range options {
		opt(e)
	}

	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger), profiler.WithReport(e.report))

	if e.window != nil {
		e.window.SetUpdateCallback(e.update)
		e.window.SetScrollCallback(e.onWheel)
		e.window.SetKeyDownCallback(e.onKeyDown)
		e.window.SetKeyUpCallback(e.onKeyUp)
		e.window.SetResizeCallback(e.onResize)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.SceneAnimator {
	return e.scene
}

func (e *engine) Run() {
	if e.scene != nil {
		e.scene.Start()
	}
	if e.window != nil {
		e.window.ProcessMessages()
	}
	e.signalQuit()
	e.closeWindow()
}

// Quit signals the engine to stop.
// Safe to call multiple times; subsequent calls are no-ops due to sync.Once.
func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel so the next window iteration closes the window.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// closeWindow destroys the window. It must run on the window thread.
func (e *engine) closeWindow() {
	if e.window == nil {
		return
	}
	e.closeOnce.Do(func() {
		if err := e.window.Close(); err != nil {
			e.logger.Printf("close window: %v", err)
		}
	})
}

// update is the window thread's per-iteration hook. It ticks the scene at most once per tick
// period and stops the engine when a tick panics.
func (e *engine) update() {
	select {
	case <-e.quitChannel:
		e.closeWindow()
		return
	default:
	}

	now := time.Now()
	if !e.lastTick.IsZero() && now.Sub(e.lastTick) < e.engineTickRate {
		return
	}
	dt := float32(0)
	if !e.lastTick.IsZero() {
		dt = float32(now.Sub(e.lastTick).Seconds())
	}
	e.lastTick = now

	if err := e.Tick(); err != nil {
		e.logger.Printf("tick: %v", err)
	}
	if e.tickCallback != nil {
		e.tickCallback(dt)
	}
	if e.profilingEnabled {
		e.profiler.Tick()
	}
}

func (e *engine) Tick() (err error) {
	// Recover from panics inside the tick to avoid crashing the whole process.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tick recovered from panic: %v", r)
			e.signalQuit()
		}
	}()
	if e.scene == nil {
		return nil
	}
	return e.scene.Tick()
}

func (e *engine) onResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
	if e.scene != nil {
		e.scene.Camera().SetAspect(float32(width) / float32(height))
	}
}

func (e *engine) report() string {
	if e.scene == nil {
		return ""
	}
	s := e.scene.Stats()
	return fmt.Sprintf("Entities: %d (fish %d, corals %d) | Placement skipped: %d | Assets: %d/%d (%d failed) | Progress: %.3f",
		s.Entities, s.Fish, s.Corals, s.PlacementSkipped, s.AssetsLoaded, s.AssetsRequested, s.AssetsFailed, s.Progress)
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickRate sets the engine tick rate in frames per second.
func (e *engine) SetTickRate(fps float64) {
	e.engineTickRate = tickPeriod(fps)
}

// SetTickCallback registers the function called after each scene tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func tickPeriod(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}

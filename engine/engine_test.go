package engine

import (
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-reef/common"
	"github.com/Carmen-Shannon/oxy-reef/engine/camera"
	"github.com/Carmen-Shannon/oxy-reef/engine/scene"
	"github.com/Carmen-Shannon/oxy-reef/engine/scroll"
)

type fakeScene struct {
	scene.SceneAnimator
	scroller scroll.Scroller
	camera   *fakeCamera
	ticks    int
	tickErr  error
	panicMsg string
}

func newFakeScene() *fakeScene {
	return &fakeScene{scroller: scroll.NewScroller(1000), camera: &fakeCamera{Camera: camera.NewCamera()}}
}

func (f *fakeScene) Tick() error {
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	f.ticks++
	return f.tickErr
}

func (f *fakeScene) Scroller() scroll.Scroller { return f.scroller }
func (f *fakeScene) Camera() camera.Camera     { return f.camera }
func (f *fakeScene) Stats() scene.Stats        { return scene.Stats{Entities: 3, Fish: 2} }

type fakeCamera struct {
	camera.Camera
	aspect float32
}

func (c *fakeCamera) SetAspect(aspect float32) {
	c.aspect = aspect
	c.Camera.SetAspect(aspect)
}

type fakeResizer struct {
	w, h int
}

func (r *fakeResizer) Resize(w, h int) {
	r.w, r.h = w, h
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name  string
		key   uint32
		shift bool
		start float32
		want  float32
	}{
		{"down arrow", common.KeyDown, false, 100, 110},
		{"j", common.KeyJ, false, 100, 110},
		{"up arrow", common.KeyUp, false, 100, 90},
		{"k", common.KeyK, false, 100, 90},
		{"page down", common.KeyPageDown, false, 100, 150},
		{"page up", common.KeyPageUp, false, 100, 50},
		{"space", common.KeySpace, false, 100, 150},
		{"shift space", common.KeySpace, true, 100, 50},
		{"home", common.KeyHome, false, 100, 0},
		{"end", common.KeyEnd, false, 100, 1000},
		{"up clamps", common.KeyUp, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scroll.NewScroller(1000)
			s.ScrollTo(tt.start, true)
			if !navigate(s, tt.key, tt.shift, 10) {
				t.Fatal("key not handled")
			}
			if got := s.Target(); got != tt.want {
				t.Errorf("target = %v, want %v", got, tt.want)
			}
		})
	}

	if navigate(scroll.NewScroller(1000), 'Z', false, 10) {
		t.Error("unrelated key handled")
	}
}

func TestWheelMovesTarget(t *testing.T) {
	fs := newFakeScene()
	e := NewEngine(WithScene(fs), WithLogger(quietLogger())).(*engine)

	e.onWheel(100)
	if got := fs.scroller.Target(); got != 100 {
		t.Errorf("target = %v after scrolling 100 down, want 100", got)
	}
	e.onWheel(-50)
	if got := fs.scroller.Target(); got != 50 {
		t.Errorf("target = %v after scrolling 50 up, want 50", got)
	}
	e.onWheel(-500)
	if got := fs.scroller.Target(); got != 0 {
		t.Errorf("target = %v past the top, want 0", got)
	}
}

func TestShiftTracking(t *testing.T) {
	fs := newFakeScene()
	e := NewEngine(WithScene(fs), WithWheelStep(10), WithLogger(quietLogger())).(*engine)
	fs.scroller.ScrollTo(500, true)

	e.onKeyDown(common.KeyLeftShift)
	e.onKeyDown(common.KeySpace)
	if got := fs.scroller.Target(); got != 450 {
		t.Errorf("shift+space target = %v, want 450", got)
	}
	e.onKeyUp(common.KeyLeftShift)
	e.onKeyDown(common.KeySpace)
	if got := fs.scroller.Target(); got != 500 {
		t.Errorf("space target = %v, want 500", got)
	}
}

func TestProfilerToggle(t *testing.T) {
	e := NewEngine(WithLogger(quietLogger())).(*engine)
	e.onKeyDown(common.KeyP)
	if !e.profilingEnabled {
		t.Error("P should enable profiling")
	}
	e.onKeyDown(common.KeyP)
	if e.profilingEnabled {
		t.Error("P should disable profiling")
	}
}

func TestResize(t *testing.T) {
	fs := newFakeScene()
	r := &fakeResizer{}
	e := NewEngine(WithScene(fs), WithRenderer(r), WithLogger(quietLogger())).(*engine)

	e.onResize(1600, 900)
	if r.w != 1600 || r.h != 900 {
		t.Errorf("renderer resized to %dx%d", r.w, r.h)
	}
	if got := fs.camera.aspect; got != float32(1600)/900 {
		t.Errorf("aspect = %v", got)
	}

	e.onResize(0, 900)
	if r.w != 1600 {
		t.Error("zero-sized resize should be ignored")
	}
}

func TestTickRecoversPanic(t *testing.T) {
	fs := newFakeScene()
	fs.panicMsg = "boom"
	e := NewEngine(WithScene(fs), WithLogger(quietLogger())).(*engine)

	if err := e.Tick(); err == nil {
		t.Fatal("panic not reported")
	}
	select {
	case <-e.quitChannel:
	default:
		t.Error("panic should signal quit")
	}
}

func TestUpdateRespectsTickRate(t *testing.T) {
	fs := newFakeScene()
	fs.tickErr = errors.New("render failed")
	var callbacks int
	e := NewEngine(WithScene(fs), WithTickRate(1), WithLogger(quietLogger())).(*engine)
	e.SetTickCallback(func(float32) { callbacks++ })

	e.update()
	e.update()
	if fs.ticks != 1 || callbacks != 1 {
		t.Errorf("ticks = %d callbacks = %d within one period, want 1", fs.ticks, callbacks)
	}

	e.lastTick = e.lastTick.Add(-2 * time.Second)
	e.update()
	if fs.ticks != 2 {
		t.Errorf("ticks = %d after the period elapsed, want 2", fs.ticks)
	}

	e.Quit()
	e.Quit()
	e.update()
	if fs.ticks != 2 {
		t.Error("ticked after quit")
	}
}

func TestReport(t *testing.T) {
	e := NewEngine(WithScene(newFakeScene()), WithLogger(quietLogger())).(*engine)
	if got := e.report(); got == "" {
		t.Error("empty report with a scene")
	}
	if got := NewEngine(WithLogger(quietLogger())).(*engine).report(); got != "" {
		t.Errorf("report without scene = %q", got)
	}
}

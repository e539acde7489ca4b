package window

import (
	"errors"
	"math"
	"testing"
)

func TestWheelOffset(t *testing.T) {
	tests := []struct {
		name       string
		notches    float64
		step       float32
		multiplier float32
		want       float32
	}{
		{"one notch down", -1, 100, 1, 100},
		{"two notches up", 2, 100, 1, -200},
		{"trackpad fraction", -0.25, 100, 1, 25},
		{"multiplier", -1, 100, 1.5, 150},
		{"nan", math.NaN(), 100, 1, 0},
		{"inf", math.Inf(-1), 100, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wheelOffset(tt.notches, tt.step, tt.multiplier); got != tt.want {
				t.Errorf("wheelOffset(%v) = %v, want %v", tt.notches, got, tt.want)
			}
		})
	}
}

func TestScrollDeliversOffsets(t *testing.T) {
	w := newEngineWindow(WithWheelStep(40), WithWheelMultiplier(0.5))
	w.scroll(-1) // no callback yet

	var got []float32
	w.SetScrollCallback(func(offset float32) { got = append(got, offset) })
	w.scroll(-1)
	w.scroll(3)
	w.scroll(0)
	w.scroll(math.NaN())

	want := []float32{20, -60}
	if len(got) != len(want) {
		t.Fatalf("offsets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("offset[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuilderOptions(t *testing.T) {
	tests := []struct {
		name          string
		options       []WindowBuilderOption
		width, height int
		step, mult    float32
	}{
		{"defaults", nil, 1280, 720, DefaultWheelStep, 1},
		{"size", []WindowBuilderOption{WithSize(1920, 1080)}, 1920, 1080, DefaultWheelStep, 1},
		{"size ignores zero", []WindowBuilderOption{WithSize(0, -5)}, 1280, 720, DefaultWheelStep, 1},
		{"clamped to limits", []WindowBuilderOption{WithSize(1920, 100), WithSizeLimits(640, 480, 1600, 1200)}, 1600, 480, DefaultWheelStep, 1},
		{"wheel", []WindowBuilderOption{WithWheelStep(60), WithWheelMultiplier(2)}, 1280, 720, 60, 2},
		{"wheel ignores non-positive", []WindowBuilderOption{WithWheelStep(0), WithWheelMultiplier(-1)}, 1280, 720, DefaultWheelStep, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newEngineWindow(tt.options...)
			if w.Width() != tt.width || w.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", w.Width(), w.Height(), tt.width, tt.height)
			}
			if w.wheelStep != tt.step || w.wheelMultiplier != tt.mult {
				t.Errorf("wheel = %v x %v, want %v x %v", w.wheelStep, w.wheelMultiplier, tt.step, tt.mult)
			}
		})
	}
}

func TestUnopenedWindow(t *testing.T) {
	w := newEngineWindow(WithTitle("reef"))
	if w.title != "reef" {
		t.Errorf("title = %q", w.title)
	}
	if w.IsRunning() {
		t.Error("window reports running before it was opened")
	}
	if w.SurfaceDescriptor() != nil {
		t.Error("surface descriptor before the window was opened")
	}
	if err := w.Close(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Close() = %v, want ErrNotInitialized", err)
	}
	calls := 0
	w.SetUpdateCallback(func() { calls++ })
	w.ProcessMessages()
	if calls != 0 {
		t.Errorf("update called %d times on a closed window", calls)
	}
}

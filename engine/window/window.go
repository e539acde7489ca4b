package window

import (
	"fmt"
	"math"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// DefaultWheelStep is the scroll offset of one wheel notch.
const DefaultWheelStep = 100

// Window provides platform windowing and input event handling.
// Wheel input is delivered already converted to scroll offset units.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetScrollCallback sets the callback for mouse wheel and trackpad scrolling.
	//
	// Parameters:
	//   - callback: function receiving the scroll offset change (positive = further down the page)
	SetScrollCallback(callback func(offset float32))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SurfaceDescriptor returns the descriptor the renderer creates its WebGPU surface from.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform surface descriptor, or nil before the window exists
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning reports whether the window is still open.
	IsRunning() bool

	// Close destroys the window.
	//
	// Returns:
	//   - error: error if the window was never created
	Close() error

	// ProcessMessages polls events until the window closes, calling the update callback once per
	// iteration.
	ProcessMessages()

	// Width returns the framebuffer width in pixels.
	Width() int

	// Height returns the framebuffer height in pixels.
	Height() int
}

type engineWindow struct {
	title string

	width, height       int
	minWidth, minHeight int
	maxWidth, maxHeight int

	// wheelStep converts notches to offset units; wheelMultiplier scales every wheel event.
	wheelStep       float32
	wheelMultiplier float32

	internalWindow any

	onUpdate  func()
	onResize  func(width, height int)
	onScroll  func(offset float32)
	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a window. Options are applied over a 1280x720 window that may be
// resized between 600x200 and 1600x1200.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

// newEngineWindow applies options over the defaults without touching the platform layer.
func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:           "Oxy Reef",
		width:           1280,
		height:          720,
		minWidth:        600,
		minHeight:       200,
		maxWidth:        1600,
		maxHeight:       1200,
		wheelStep:       DefaultWheelStep,
		wheelMultiplier: 1,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

// wheelOffset turns a platform wheel delta (notches, positive = wheel up) into a scroll offset
// change. Wheel down scrolls further down the page. Non-finite deltas scroll nothing.
//
// Parameters:
//   - notches: the vertical wheel delta; trackpads report fractions of a notch
//   - step: offset units per notch
//   - multiplier: sensitivity applied on top of step
//
// Returns:
//   - float32: the offset change
func wheelOffset(notches float64, step, multiplier float32) float32 {
	if math.IsNaN(notches) || math.IsInf(notches, 0) {
		return 0
	}
	return -float32(notches) * step * multiplier
}

// scroll forwards one wheel event to the scroll callback.
func (w *engineWindow) scroll(notches float64) {
	if w.onScroll == nil {
		return
	}
	if offset := wheelOffset(notches, w.wheelStep, w.wheelMultiplier); offset != 0 {
		w.onScroll(offset)
	}
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetScrollCallback(callback func(offset float32)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if !platformProcessMessages(w) {
			break
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

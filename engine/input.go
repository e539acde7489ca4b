package engine

import (
	"github.com/Carmen-Shannon/oxy-reef/common"
	"github.com/Carmen-Shannon/oxy-reef/engine/scroll"
)

// pageNotches is how many wheel notches a page key scrolls.
const pageNotches = 5

// onWheel applies a window scroll event, already in offset units.
func (e *engine) onWheel(offset float32) {
	if e.scene == nil {
		return
	}
	e.scene.Scroller().Wheel(offset)
}

func (e *engine) onKeyDown(keyCode uint32) {
	switch keyCode {
	case common.KeyLeftShift, common.KeyRightShift:
		e.shiftDown = true
		return
	case common.KeyP:
		if e.profilingEnabled {
			e.DisableProfiler()
		} else {
			e.EnableProfiler()
		}
		return
	}
	if e.scene == nil {
		return
	}
	navigate(e.scene.Scroller(), keyCode, e.shiftDown, e.wheelStep)
}

func (e *engine) onKeyUp(keyCode uint32) {
	switch keyCode {
	case common.KeyLeftShift, common.KeyRightShift:
		e.shiftDown = false
	}
}

// navigate maps a navigation key onto the scroller: arrows and J/K move one notch, page keys
// and space move a page (shift+space moves back), Home and End jump to either end.
//
// Parameters:
//   - s: the scroller
//   - keyCode: the pressed key
//   - shift: whether shift is held
//   - step: offset units per notch
//
// Returns:
//   - bool: true if the key was handled
func navigate(s scroll.Scroller, keyCode uint32, shift bool, step float32) bool {
	page := step * pageNotches
	switch keyCode {
	case common.KeyDown, common.KeyJ:
		s.Wheel(step)
	case common.KeyUp, common.KeyK:
		s.Wheel(-step)
	case common.KeyPageDown:
		s.Wheel(page)
	case common.KeyPageUp:
		s.Wheel(-page)
	case common.KeySpace:
		if shift {
			s.Wheel(-page)
		} else {
			s.Wheel(page)
		}
	case common.KeyHome:
		s.ScrollTo(0, false)
	case common.KeyEnd:
		s.ScrollTo(s.Limit(), false)
	default:
		return false
	}
	return true
}

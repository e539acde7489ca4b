package window

// WindowBuilderOption is a functional option for configuring a window before it is shown.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the title bar text.
//
// Parameters:
//   - title: the window title
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial client size. Non-positive dimensions keep the default.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

// WithSizeLimits bounds interactive resizing. The initial size is grown to fit the limits.
//
// Parameters:
//   - minWidth, minHeight: the smallest allowed size in pixels
//   - maxWidth, maxHeight: the largest allowed size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth, w.minHeight = minWidth, minHeight
		w.maxWidth, w.maxHeight = max(maxWidth, minWidth), max(maxHeight, minHeight)
		w.width = min(max(w.width, w.minWidth), w.maxWidth)
		w.height = min(max(w.height, w.minHeight), w.maxHeight)
	}
}

// WithWheelStep sets the scroll offset of one wheel notch.
//
// Parameters:
//   - step: offset units per notch (ignored unless positive)
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWheelStep(step float32) WindowBuilderOption {
	return func(w *engineWindow) {
		if step > 0 {
			w.wheelStep = step
		}
	}
}

// WithWheelMultiplier scales every wheel event, for sensitive trackpads or coarse mice.
//
// Parameters:
//   - multiplier: the sensitivity (ignored unless positive)
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWheelMultiplier(multiplier float32) WindowBuilderOption {
	return func(w *engineWindow) {
		if multiplier > 0 {
			w.wheelMultiplier = multiplier
		}
	}
}

package scroll

// ScrollerBuilderOption is a functional option for configuring a Scroller during construction.
type ScrollerBuilderOption func(*scrollerImpl)

// WithLerp sets the fraction of the remaining distance covered per Advance call.
// Values outside (0, 1] fall back to 0.1.
//
// Parameters:
//   - lerp: easing fraction per frame
//
// Returns:
//   - ScrollerBuilderOption: a function that applies the easing fraction
func WithLerp(lerp float32) ScrollerBuilderOption {
	return func(s *scrollerImpl) {
		s.lerp = lerp
	}
}

// WithOnScroll registers the callback that receives every emitted event.
//
// Parameters:
//   - fn: the scroll listener
//
// Returns:
//   - ScrollerBuilderOption: a function that applies the listener
func WithOnScroll(fn func(Event)) ScrollerBuilderOption {
	return func(s *scrollerImpl) {
		s.onScroll = fn
	}
}

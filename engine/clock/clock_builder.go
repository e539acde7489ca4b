package clock

// FrameClockBuilderOption is a functional option for configuring a FrameClock.
type FrameClockBuilderOption func(*frameClock)

// WithTimeSource replaces time.Now as the clock's source.
//
// Parameters:
//   - src: the time source (nil keeps time.Now)
//
// Returns:
//   - FrameClockBuilderOption: a function that applies the time source
func WithTimeSource(src TimeSource) FrameClockBuilderOption {
	return func(c *frameClock) {
		if src != nil {
			c.now = src
		}
	}
}

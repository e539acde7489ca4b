package clock

import (
	"sync"
	"time"
)

// TimeSource returns the current time. Production code uses time.Now, which carries a monotonic
// reading; tests inject a fake.
type TimeSource func() time.Time

// FrameClock measures seconds since construction. It never pauses and never runs backward.
type FrameClock interface {
	// Advance samples the time source and returns the elapsed seconds since construction.
	//
	// Returns:
	//   - float32: elapsed seconds
	Advance() float32

	// Elapsed returns the value of the most recent Advance call without sampling the source.
	//
	// Returns:
	//   - float32: elapsed seconds
	Elapsed() float32

	// Delta returns the seconds between the two most recent Advance calls.
	//
	// Returns:
	//   - float32: seconds since the previous Advance
	Delta() float32
}

type frameClock struct {
	mu *sync.Mutex

	now     TimeSource
	start   time.Time
	elapsed time.Duration
	delta   time.Duration
}

var _ FrameClock = &frameClock{}

// NewFrameClock creates a clock starting at the current time of its source.
//
// Parameters:
//   - options: functional options to configure the clock
//
// Returns:
//   - FrameClock: the clock
func NewFrameClock(options ...FrameClockBuilderOption) FrameClock {
	c := &frameClock{
		mu:  &sync.Mutex{},
		now: time.Now,
	}
	for _, opt := range options {
		opt(c)
	}
	c.start = c.now()
	return c
}

func (c *frameClock) Advance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := c.now().Sub(c.start)
	if e < c.elapsed {
		e = c.elapsed
	}
	c.delta = e - c.elapsed
	c.elapsed = e
	return float32(c.elapsed.Seconds())
}

func (c *frameClock) Elapsed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float32(c.elapsed.Seconds())
}

func (c *frameClock) Delta() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float32(c.delta.Seconds())
}

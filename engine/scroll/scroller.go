package scroll

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-reef/common"
)

// Scroller turns raw wheel and key deltas into smoothed scroll events. The animated offset eases
// toward the target offset by a fixed fraction every Advance call, and an Event is emitted
// through the OnScroll callback whenever the animated offset moves.
type Scroller interface {
	// Wheel adds a raw delta to the target offset. Positive deltas scroll toward the limit.
	//
	// Parameters:
	//   - delta: raw scroll delta in offset units
	Wheel(delta float32)

	// ScrollTo sets the target offset. With immediate set, the animated offset jumps there and an
	// event is emitted right away.
	//
	// Parameters:
	//   - offset: the new target offset (clamped to [0, limit])
	//   - immediate: skip easing
	ScrollTo(offset float32, immediate bool)

	// Advance eases the animated offset one step toward the target. Call once per frame.
	//
	// Returns:
	//   - bool: true if the offset moved and an event was emitted
	Advance() bool

	// Offset returns the current animated offset.
	Offset() float32

	// Target returns the offset being eased toward.
	Target() float32

	// Limit returns the maximum offset.
	Limit() float32

	// SetLimit changes the maximum offset, clamping the target and animated offsets.
	//
	// Parameters:
	//   - limit: the new maximum offset (values below 0 are treated as 0)
	SetLimit(limit float32)

	// Progress returns the animated offset normalized by the limit.
	Progress() float32
}

type scrollerImpl struct {
	mu *sync.Mutex

	limit    float32
	target   float32
	animated float32

	lerp          float32
	snapThreshold float32

	onScroll func(Event)
}

var _ Scroller = &scrollerImpl{}

// NewScroller creates a smoothed scroller over [0, limit].
//
// Parameters:
//   - limit: maximum scroll offset
//   - options: functional options to configure the scroller
//
// Returns:
//   - Scroller: the newly created scroller
func NewScroller(limit float32, options ...ScrollerBuilderOption) Scroller {
	s := &scrollerImpl{
		mu:            &sync.Mutex{},
		lerp:          0.1,
		snapThreshold: 0.01,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.lerp <= 0 || s.lerp > 1 {
		s.lerp = 0.1
	}
	s.limit = max(limit, 0)
	return s
}

func (s *scrollerImpl) Wheel(delta float32) {
	if !common.Finite(float64(delta)) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = common.Clamp(s.target+delta, 0, s.limit)
}

func (s *scrollerImpl) ScrollTo(offset float32, immediate bool) {
	if !common.Finite(float64(offset)) {
		return
	}
	s.mu.Lock()
	s.target = common.Clamp(offset, 0, s.limit)
	if !immediate {
		s.mu.Unlock()
		return
	}
	velocity := s.target - s.animated
	s.animated = s.target
	ev := s.eventLocked(velocity)
	fn := s.onScroll
	s.mu.Unlock()

	if fn != nil {
		fn(ev)
	}
}

func (s *scrollerImpl) Advance() bool {
	s.mu.Lock()
	if s.animated == s.target {
		s.mu.Unlock()
		return false
	}
	prev := s.animated
	next := prev + (s.target-prev)*s.lerp
	if float32(math.Abs(float64(s.target-next))) < s.snapThreshold {
		next = s.target
	}
	s.animated = next
	ev := s.eventLocked(next - prev)
	fn := s.onScroll
	s.mu.Unlock()

	if fn != nil {
		fn(ev)
	}
	return true
}

// eventLocked builds an event for the current animated offset. Caller must hold the mutex.
func (s *scrollerImpl) eventLocked(velocity float32) Event {
	return Event{
		Offset:   s.animated,
		Limit:    s.limit,
		Velocity: velocity,
		Progress: ProgressOf(s.animated, s.limit),
	}
}

func (s *scrollerImpl) Offset() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.animated
}

func (s *scrollerImpl) Target() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

func (s *scrollerImpl) Limit() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.limit
}

func (s *scrollerImpl) SetLimit(limit float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit != limit || limit < 0 {
		limit = 0
	}
	s.limit = limit
	s.target = common.Clamp(s.target, 0, limit)
	s.animated = common.Clamp(s.animated, 0, limit)
}

func (s *scrollerImpl) Progress() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ProgressOf(s.animated, s.limit)
}

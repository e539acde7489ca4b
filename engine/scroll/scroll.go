package scroll

import (
	"github.com/Carmen-Shannon/oxy-reef/common"
)

// Event is one scroll tick as emitted by a scroll source.
type Event struct {
	Offset   float32
	Limit    float32
	Velocity float32
	Progress float32
}

// State is the normalized scroll position the camera rail and zone tracker read from.
// It is only mutated by Apply.
type State struct {
	Progress         float32
	Velocity         float32
	PreviousProgress float32
}

// Apply folds a scroll event into the state. Progress is recomputed from the event's offset
// and limit as offset / max(limit, 1) clamped to [0, 1]; the event's own Progress field is ignored.
//
// Parameters:
//   - e: the scroll event
func (s *State) Apply(e Event) {
	s.PreviousProgress = s.Progress
	s.Progress = ProgressOf(e.Offset, e.Limit)
	s.Velocity = e.Velocity
	if !common.Finite(float64(s.Velocity)) {
		s.Velocity = 0
	}
}

// Forward reports whether the last Apply moved progress forward.
func (s *State) Forward() bool {
	return s.Progress > s.PreviousProgress
}

// ProgressOf returns offset / max(limit, 1) clamped to [0, 1]. NaN maps to 0.
//
// Parameters:
//   - offset: current scroll offset
//   - limit: maximum scroll offset
//
// Returns:
//   - float32: normalized progress
func ProgressOf(offset, limit float32) float32 {
	if limit != limit || limit < 1 {
		limit = 1
	}
	return common.Clamp01(offset / limit)
}

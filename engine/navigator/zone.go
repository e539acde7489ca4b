package navigator

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-reef/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Zone is a named scroll-progress interval that gates an overlay or a decorative re-pose.
type Zone int

const (
	// ZoneIntroVisible holds while progress is exactly 0.
	ZoneIntroVisible Zone = iota
	// ZoneProjectUI holds for 0.15 < progress < 0.30.
	ZoneProjectUI
	// ZoneContactUI holds for 0.40 < progress < 0.60.
	ZoneContactUI
	// ZoneSummitReached holds for progress >= 0.99.
	ZoneSummitReached
)

// Zones lists every zone in evaluation order. Transitions within a single update are reported in
// this order.
var Zones = []Zone{ZoneIntroVisible, ZoneProjectUI, ZoneContactUI, ZoneSummitReached}

// String returns the panel identifier for the zone.
func (z Zone) String() string {
	switch z {
	case ZoneIntroVisible:
		return "intro-gesture"
	case ZoneProjectUI:
		return "project-ui"
	case ZoneContactUI:
		return "contact-ui"
	case ZoneSummitReached:
		return "summit"
	default:
		return "unknown"
	}
}

// Contains reports whether progress lies inside the zone.
//
// Parameters:
//   - progress: normalized scroll progress
//
// Returns:
//   - bool: true if the zone is active at this progress
func (z Zone) Contains(progress float32) bool {
	switch z {
	case ZoneIntroVisible:
		return progress == 0
	case ZoneProjectUI:
		return progress > 0.15 && progress < 0.30
	case ZoneContactUI:
		return progress > 0.40 && progress < 0.60
	case ZoneSummitReached:
		return progress >= 0.99
	default:
		return false
	}
}

// Direction is the scroll direction that caused a transition.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// Transition is a single membership change of one zone.
type Transition struct {
	Zone      Zone
	Entered   bool
	Direction Direction
	Progress  float32
}

// CardPose is the transform applied to the decorative card when the summit zone changes.
type CardPose struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
}

var (
	// SummitPose places the card above the summit, facing down the path.
	SummitPose = CardPose{
		Position: mgl32.Vec3{70, 150, 70},
		Rotation: mgl32.Vec3{math.Pi / 2, math.Pi / 10, math.Pi},
	}
	// ReturnPose parks the card beside the path once the camera descends from the summit.
	ReturnPose = CardPose{
		Position: mgl32.Vec3{70, 110, 71},
		Rotation: mgl32.Vec3{math.Pi / 2, math.Pi / 2, math.Pi},
	}
)

// CardPoseFor returns the card transform a transition calls for. Entering the summit yields
// SummitPose; leaving it while scrolling backward yields ReturnPose. Every other transition
// leaves the card alone.
//
// Parameters:
//   - t: the transition to inspect
//
// Returns:
//   - CardPose: the pose to apply
//   - bool: false when the card should not move
func CardPoseFor(t Transition) (CardPose, bool) {
	if t.Zone != ZoneSummitReached {
		return CardPose{}, false
	}
	if t.Entered {
		return SummitPose, true
	}
	if t.Direction == DirectionBackward {
		return ReturnPose, true
	}
	return CardPose{}, false
}

// ZoneTracker is an edge-triggered state machine over scroll progress. It reports a Transition
// only when a zone's membership changes, never while progress stays inside or outside a zone.
type ZoneTracker interface {
	// Update moves the tracker to a new progress value and returns the transitions it caused.
	// Listeners registered with OnTransition are invoked synchronously, in order, after the
	// tracker's state has been fully updated.
	//
	// Parameters:
	//   - progress: normalized scroll progress (clamped to [0, 1], NaN treated as 0)
	//
	// Returns:
	//   - []Transition: the membership changes, in Zones order (nil if none)
	Update(progress float32) []Transition

	// Active reports whether the zone currently holds.
	//
	// Parameters:
	//   - zone: the zone to query
	//
	// Returns:
	//   - bool: current membership
	Active(zone Zone) bool

	// Progress returns the last progress value the tracker saw.
	//
	// Returns:
	//   - float32: the last clamped progress
	Progress() float32

	// OnTransition registers a listener for every future transition.
	//
	// Parameters:
	//   - fn: the listener
	OnTransition(fn func(Transition))
}

type zoneTrackerImpl struct {
	mu *sync.Mutex

	progress  float32
	active    map[Zone]bool
	listeners []func(Transition)
}

var _ ZoneTracker = &zoneTrackerImpl{}

// NewZoneTracker creates a tracker whose initial membership is derived from initialProgress.
// No transitions are reported for the initial state.
//
// Parameters:
//   - initialProgress: the progress the scene starts at (usually 0)
//
// Returns:
//   - ZoneTracker: the tracker
func NewZoneTracker(initialProgress float32) ZoneTracker {
	p := common.Clamp01(initialProgress)
	t := &zoneTrackerImpl{
		mu:       &sync.Mutex{},
		progress: p,
		active:   make(map[Zone]bool, len(Zones)),
	}
	for _, z := range Zones {
		t.active[z] = z.Contains(p)
	}
	return t
}

func (t *zoneTrackerImpl) Update(progress float32) []Transition {
	p := common.Clamp01(progress)

	t.mu.Lock()
	dir := DirectionNone
	switch {
	case p > t.progress:
		dir = DirectionForward
	case p < t.progress:
		dir = DirectionBackward
	}
	t.progress = p

	var out []Transition
	for _, z := range Zones {
		now := z.Contains(p)
		if now == t.active[z] {
			continue
		}
		t.active[z] = now
		out = append(out, Transition{Zone: z, Entered: now, Direction: dir, Progress: p})
	}
	listeners := make([]func(Transition), len(t.listeners))
	copy(listeners, t.listeners)
	t.mu.Unlock()

	for _, tr := range out {
		for _, fn := range listeners {
			fn(tr)
		}
	}
	return out
}

func (t *zoneTrackerImpl) Active(zone Zone) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active[zone]
}

func (t *zoneTrackerImpl) Progress() float32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.progress
}

func (t *zoneTrackerImpl) OnTransition(fn func(Transition)) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

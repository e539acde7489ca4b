package animator

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
)

// ErrUnknownClip is returned when a clip index is out of range.
var ErrUnknownClip = errors.New("animator: unknown clip")

// SwimKeyword is the clip name fragment roaming fish prefer.
const SwimKeyword = "swim"

// Clip describes one animation clip of a loaded model.
type Clip struct {
	Name     string
	Duration float32 // seconds
}

// SelectClip returns the index of the first clip whose name contains keyword, ignoring case,
// falling back to the first clip. It returns -1 when there are no clips.
//
// Parameters:
//   - clips: the available clips
//   - keyword: the name fragment to look for
//
// Returns:
//   - int: the selected clip index or -1
func SelectClip(clips []Clip, keyword string) int {
	if len(clips) == 0 {
		return -1
	}
	k := strings.ToLower(keyword)
	for i, c := range clips {
		if strings.Contains(strings.ToLower(c.Name), k) {
			return i
		}
	}
	return 0
}

// Mixer tracks playback of one entity's animation clips: the active clip and its local time.
type Mixer interface {
	// Play restarts playback on the given clip.
	//
	// Parameters:
	//   - clip: the clip index
	//   - loop: whether playback wraps at the clip's end
	//
	// Returns:
	//   - error: ErrUnknownClip if the index is out of range
	Play(clip int, loop bool) error

	// Update advances playback by delta seconds scaled by the playback speed.
	//
	// Parameters:
	//   - delta: seconds to advance
	Update(delta float32)

	// ClipIndex returns the active clip, or -1 when nothing plays.
	ClipIndex() int

	// Time returns the local time within the active clip.
	Time() float32

	// Phase returns the local time as a fraction of the active clip's duration, in [0, 1]. It is 0
	// when nothing plays or the clip has no duration.
	//
	// Returns:
	//   - float32: the normalized playback position
	Phase() float32

	// Clips returns a copy of the clips the mixer was created with.
	Clips() []Clip
}

type mixer struct {
	mu *sync.Mutex

	clips []Clip

	clip  int
	time  float32
	speed float32
	loop  bool
}

var _ Mixer = &mixer{}

// NewMixer creates a mixer over clips. When autoplay keywords are configured the first matching
// clip starts looping immediately.
//
// Parameters:
//   - clips: the model's animation clips
//   - options: functional options to configure the mixer
//
// Returns:
//   - Mixer: the mixer
func NewMixer(clips []Clip, options ...MixerBuilderOption) Mixer {
	m := &mixer{
		mu:    &sync.Mutex{},
		clips: append([]Clip(nil), clips...),
		clip:  -1,
		speed: 1,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *mixer) Play(clip int, loop bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if clip < 0 || clip >= len(m.clips) {
		return fmt.Errorf("%w: %d of %d", ErrUnknownClip, clip, len(m.clips))
	}
	m.clip = clip
	m.time = 0
	m.loop = loop
	return nil
}

func (m *mixer) Update(delta float32) {
	if !(delta > 0) || math.IsInf(float64(delta), 1) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clip < 0 {
		return
	}

	m.time = m.wrap(m.clip, m.time+delta*m.speed)
}

// wrap folds t into the clip's duration when looping, or holds it at the end otherwise.
// Caller must hold the mutex.
func (m *mixer) wrap(clip int, t float32) float32 {
	d := m.clips[clip].Duration
	if d <= 0 {
		return 0
	}
	if t <= d {
		return t
	}
	if !m.loop {
		return d
	}
	return float32(math.Mod(float64(t), float64(d)))
}

func (m *mixer) ClipIndex() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clip
}

func (m *mixer) Time() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.time
}

func (m *mixer) Phase() float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clip < 0 {
		return 0
	}
	d := m.clips[m.clip].Duration
	if d <= 0 {
		return 0
	}
	return min(m.time/d, 1)
}

func (m *mixer) Clips() []Clip {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Clip(nil), m.clips...)
}

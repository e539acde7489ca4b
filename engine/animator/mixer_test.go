package animator

import (
	"errors"
	"math"
	"testing"
)

func TestSelectClip(t *testing.T) {
	tests := []struct {
		name  string
		clips []Clip
		want  int
	}{
		{"none", nil, -1},
		{"fallback to first", []Clip{{Name: "Idle"}, {Name: "Turn"}}, 0},
		{"case insensitive", []Clip{{Name: "Idle"}, {Name: "Fish_SWIM_loop"}}, 1},
		{"first match wins", []Clip{{Name: "swim_fast"}, {Name: "swim"}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectClip(tt.clips, SwimKeyword); got != tt.want {
				t.Errorf("SelectClip() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMixerAutoplayLoops(t *testing.T) {
	m := NewMixer([]Clip{{Name: "idle", Duration: 2}, {Name: "Swim", Duration: 1}}, WithAutoplay(SwimKeyword))
	if m.ClipIndex() != 1 {
		t.Fatalf("ClipIndex() = %d, want 1", m.ClipIndex())
	}
	for range 100 {
		m.Update(0.016)
	}
	want := float32(math.Mod(1.6, 1))
	if math.Abs(float64(m.Time()-want)) > 1e-3 {
		t.Fatalf("Time() = %v, want about %v", m.Time(), want)
	}
}

func TestMixerWithoutClips(t *testing.T) {
	m := NewMixer(nil, WithAutoplay(SwimKeyword))
	m.Update(1)
	if m.ClipIndex() != -1 || m.Time() != 0 {
		t.Fatalf("empty mixer advanced: clip %d time %v", m.ClipIndex(), m.Time())
	}
	if err := m.Play(0, true); !errors.Is(err, ErrUnknownClip) {
		t.Fatalf("Play(0) = %v, want ErrUnknownClip", err)
	}
}

func TestMixerHoldsAtEndWithoutLoop(t *testing.T) {
	m := NewMixer([]Clip{{Name: "once", Duration: 0.5}})
	if err := m.Play(0, false); err != nil {
		t.Fatalf("Play: %v", err)
	}
	m.Update(2)
	if m.Time() != 0.5 {
		t.Fatalf("Time() = %v, want 0.5", m.Time())
	}
}

func TestMixerPhase(t *testing.T) {
	tests := []struct {
		name  string
		clips []Clip
		speed float32
		steps int
		want  float32
	}{
		{"idle", nil, 1, 10, 0},
		{"quarter", []Clip{{Name: "swim", Duration: 2}}, 1, 5, 0.25},
		{"double speed", []Clip{{Name: "swim", Duration: 2}}, 2, 5, 0.5},
		{"wraps", []Clip{{Name: "swim", Duration: 2}}, 1, 25, 0.25},
		{"zero duration", []Clip{{Name: "swim"}}, 1, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMixer(tt.clips, WithAutoplay(SwimKeyword), WithSpeed(tt.speed))
			for range tt.steps {
				m.Update(0.1)
			}
			if got := m.Phase(); math.Abs(float64(got-tt.want)) > 1e-4 {
				t.Errorf("Phase() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMixerIgnoresBadDelta(t *testing.T) {
	m := NewMixer([]Clip{{Name: "swim", Duration: 1}}, WithAutoplay(SwimKeyword))
	m.Update(float32(math.NaN()))
	m.Update(-1)
	m.Update(float32(math.Inf(1)))
	if m.Time() != 0 {
		t.Fatalf("Time() = %v, want 0", m.Time())
	}
}

package clock

import (
	"testing"
	"time"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time {
	return f.t
}

func (f *fakeTime) add(d time.Duration) {
	f.t = f.t.Add(d)
}

func TestFrameClockAdvance(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewFrameClock(WithTimeSource(ft.now))

	if got := c.Advance(); got != 0 {
		t.Fatalf("Advance() at start = %v, want 0", got)
	}
	ft.add(1500 * time.Millisecond)
	if got := c.Advance(); got != 1.5 {
		t.Fatalf("Advance() = %v, want 1.5", got)
	}
	if got := c.Delta(); got != 1.5 {
		t.Fatalf("Delta() = %v, want 1.5", got)
	}
	ft.add(250 * time.Millisecond)
	c.Advance()
	if got := c.Elapsed(); got != 1.75 {
		t.Fatalf("Elapsed() = %v, want 1.75", got)
	}
	if got := c.Delta(); got != 0.25 {
		t.Fatalf("Delta() = %v, want 0.25", got)
	}
}

func TestFrameClockIsMonotonic(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewFrameClock(WithTimeSource(ft.now))
	ft.add(2 * time.Second)
	c.Advance()

	ft.add(-time.Second)
	if got := c.Advance(); got != 2 {
		t.Fatalf("Advance() after the source stepped back = %v, want 2", got)
	}
	if got := c.Delta(); got != 0 {
		t.Fatalf("Delta() = %v, want 0", got)
	}
}

func TestFrameClockRealTime(t *testing.T) {
	c := NewFrameClock()
	time.Sleep(5 * time.Millisecond)
	if got := c.Advance(); got <= 0 {
		t.Fatalf("Advance() = %v, want > 0", got)
	}
}

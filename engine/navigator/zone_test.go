package navigator

import (
	"testing"
)

func countTransitions(trs []Transition, zone Zone, entered bool) int {
	n := 0
	for _, tr := range trs {
		if tr.Zone == zone && tr.Entered == entered {
			n++
		}
	}
	return n
}

func TestZoneTrackerProjectBandEdges(t *testing.T) {
	tracker := NewZoneTracker(0)
	var seen []Transition
	tracker.OnTransition(func(tr Transition) { seen = append(seen, tr) })

	// Steps 0.0 -> 0.10 -> 0.20 -> 0.35 cross into the band once and out of it once.
	for _, p := range []float32{0.0, 0.10, 0.20, 0.35} {
		tracker.Update(p)
	}
	if n := countTransitions(seen, ZoneProjectUI, true); n != 1 {
		t.Fatalf("project-ui shown %d times, want 1 (%v)", n, seen)
	}
	if n := countTransitions(seen, ZoneProjectUI, false); n != 1 {
		t.Fatalf("project-ui hidden %d times, want 1 (%v)", n, seen)
	}

	// Returning to 0.20 is a new crossing from above.
	got := tracker.Update(0.20)
	if len(got) != 1 || got[0].Zone != ZoneProjectUI || !got[0].Entered || got[0].Direction != DirectionBackward {
		t.Fatalf("Update(0.20) after leaving the band = %v, want one backward project-ui entry", got)
	}
}

func TestZoneTrackerSteadyInsideBand(t *testing.T) {
	tracker := NewZoneTracker(0.1)
	shows := 0
	tracker.OnTransition(func(tr Transition) {
		if tr.Zone == ZoneProjectUI && tr.Entered {
			shows++
		}
	})
	for _, p := range []float32{0.16, 0.18, 0.20, 0.25, 0.29, 0.2} {
		tracker.Update(p)
	}
	if shows != 1 {
		t.Errorf("project-ui shown %d times while steady inside the band, want 1", shows)
	}
	if !tracker.Active(ZoneProjectUI) {
		t.Error("project-ui should be active")
	}
}

func TestZoneTrackerInitialMembershipIsSilent(t *testing.T) {
	tracker := NewZoneTracker(0)
	if !tracker.Active(ZoneIntroVisible) {
		t.Fatal("intro should be visible at progress 0")
	}
	if got := tracker.Update(0); got != nil {
		t.Fatalf("Update(0) at start = %v, want no transitions", got)
	}
	got := tracker.Update(0.01)
	if len(got) != 1 || got[0].Zone != ZoneIntroVisible || got[0].Entered {
		t.Fatalf("Update(0.01) = %v, want intro exit", got)
	}
}

func TestZoneTrackerClampsProgress(t *testing.T) {
	tracker := NewZoneTracker(0)
	got := tracker.Update(7)
	if tracker.Progress() != 1 {
		t.Fatalf("Progress() = %v, want 1", tracker.Progress())
	}
	if countTransitions(got, ZoneSummitReached, true) != 1 {
		t.Fatalf("Update(7) = %v, want summit entry", got)
	}
}

func TestCardPoseForSummit(t *testing.T) {
	tracker := NewZoneTracker(0.5)

	enter := tracker.Update(0.995)
	if len(enter) == 0 {
		t.Fatal("no transition entering the summit")
	}
	pose, ok := CardPoseFor(enter[len(enter)-1])
	if !ok || pose != SummitPose {
		t.Fatalf("CardPoseFor(enter) = %v, %v, want SummitPose", pose, ok)
	}

	if got := tracker.Update(1); got != nil {
		t.Fatalf("moving within the summit emitted %v", got)
	}

	leave := tracker.Update(0.9)
	if len(leave) != 1 || leave[0].Direction != DirectionBackward {
		t.Fatalf("Update(0.9) = %v, want one backward summit exit", leave)
	}
	pose, ok = CardPoseFor(leave[0])
	if !ok || pose != ReturnPose {
		t.Fatalf("CardPoseFor(exit) = %v, %v, want ReturnPose", pose, ok)
	}
	if SummitPose == ReturnPose {
		t.Fatal("summit and return poses must differ")
	}
}

func TestCardPoseForIgnoresOtherZones(t *testing.T) {
	for _, tr := range []Transition{
		{Zone: ZoneProjectUI, Entered: true, Direction: DirectionForward},
		{Zone: ZoneContactUI, Entered: false, Direction: DirectionBackward},
		{Zone: ZoneSummitReached, Entered: false, Direction: DirectionNone},
	} {
		if _, ok := CardPoseFor(tr); ok {
			t.Errorf("CardPoseFor(%v) reported a pose", tr)
		}
	}
}

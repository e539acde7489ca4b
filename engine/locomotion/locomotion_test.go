package locomotion

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStepMovesAlongHeading(t *testing.T) {
	e := &RoamingEntity{
		Position: mgl32.Vec3{1, -10, 2},
		Heading:  mgl32.Vec3{0.6, 0, 0.8},
		Speed:    0.5,
	}
	Step(e, DefaultDeltaScale, 250)
	want := mgl32.Vec3{1.03, -10, 2.04}
	if !e.Position.ApproxEqualThreshold(want, 1e-6) {
		t.Fatalf("Position = %v, want %v", e.Position, want)
	}
	if e.Heading != (mgl32.Vec3{0.6, 0, 0.8}) {
		t.Fatalf("Heading changed inside the domain: %v", e.Heading)
	}
	wantYaw := float32(math.Atan2(0.6, 0.8))
	if math.Abs(float64(e.Yaw-wantYaw)) > 1e-6 {
		t.Fatalf("Yaw = %v, want %v", e.Yaw, wantYaw)
	}
}

func TestStepReflectsOnlyOffendingAxis(t *testing.T) {
	tests := []struct {
		name        string
		pos         mgl32.Vec3
		heading     mgl32.Vec3
		wantHeading mgl32.Vec3
	}{
		{"positive x", mgl32.Vec3{250, 0, 0}, mgl32.Vec3{0.6, 0, 0.8}, mgl32.Vec3{-0.6, 0, 0.8}},
		{"negative x", mgl32.Vec3{-250, 0, 10}, mgl32.Vec3{-0.6, 0, -0.8}, mgl32.Vec3{0.6, 0, -0.8}},
		{"positive z", mgl32.Vec3{0, 0, 250}, mgl32.Vec3{0.6, 0, 0.8}, mgl32.Vec3{0.6, 0, -0.8}},
		{"negative z", mgl32.Vec3{5, 0, -250}, mgl32.Vec3{-0.6, 0, -0.8}, mgl32.Vec3{-0.6, 0, 0.8}},
		{"corner", mgl32.Vec3{250, 0, 250}, mgl32.Vec3{0.6, 0, 0.8}, mgl32.Vec3{-0.6, 0, -0.8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &RoamingEntity{Position: tt.pos, Heading: tt.heading, Speed: 1}
			Step(e, 1, 250)
			if e.Heading != tt.wantHeading {
				t.Fatalf("Heading = %v, want %v", e.Heading, tt.wantHeading)
			}
			wantYaw := float32(math.Atan2(float64(tt.wantHeading[0]), float64(tt.wantHeading[2])))
			if e.Yaw != wantYaw {
				t.Fatalf("Yaw = %v, want %v", e.Yaw, wantYaw)
			}
		})
	}
}

func TestStepDoesNotFlipWhenReturning(t *testing.T) {
	e := &RoamingEntity{Position: mgl32.Vec3{260, 0, 0}, Heading: mgl32.Vec3{-1, 0, 0}, Speed: 1}
	Step(e, 1, 250)
	if e.Heading != (mgl32.Vec3{-1, 0, 0}) {
		t.Fatalf("Heading = %v, an entity already heading back must keep its direction", e.Heading)
	}
}

func TestEntityStaysNearDomain(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for i := 0; i < 20; i++ {
		e := NewRoamingEntity(rng, 500)
		for range 20000 {
			Step(e, DefaultDeltaScale, 250)
		}
		limit := 250 + e.Speed*DefaultDeltaScale
		if math.Abs(float64(e.Position[0])) > float64(limit) || math.Abs(float64(e.Position[2])) > float64(limit) {
			t.Fatalf("entity %d escaped to %v", i, e.Position)
		}
	}
}

func TestNewRoamingEntityDistribution(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 500; i++ {
		e := NewRoamingEntity(rng, 500, WithScale(10), WithModelIndex(1))
		if math.Abs(float64(e.Position[0])) > 200 || math.Abs(float64(e.Position[2])) > 200 {
			t.Fatalf("spawn %v outside ±200", e.Position)
		}
		if e.Position[1] < -20 || e.Position[1] >= -5 {
			t.Fatalf("spawn depth %v outside [-20, -5)", e.Position[1])
		}
		if e.Speed < 0.2 || e.Speed >= 0.7 {
			t.Fatalf("speed %v outside [0.2, 0.7)", e.Speed)
		}
		if e.Heading[1] != 0 || math.Abs(float64(e.Heading.Len()-1)) > 1e-5 {
			t.Fatalf("heading %v is not a horizontal unit vector", e.Heading)
		}
		if e.Scale != 10 || e.ModelIndex != 1 {
			t.Fatalf("options not applied: %+v", e)
		}
	}
}

func TestStepNil(t *testing.T) {
	Step(nil, 1, 1)
}

type recordedAnimation struct {
	rate float32
}

func (a *recordedAnimation) Update(float32) {}

func TestWithAnimationUsesRolledSpeed(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	var built *recordedAnimation
	e := NewRoamingEntity(rng, 500, WithAnimation(func(rate float32) AnimationState {
		built = &recordedAnimation{rate: rate}
		return built
	}))
	if e.Animation != built || built == nil {
		t.Fatal("animation not attached")
	}
	if want := e.Speed / CruiseSpeed; built.rate != want {
		t.Fatalf("rate = %v, want %v", built.rate, want)
	}
}

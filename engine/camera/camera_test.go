package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-reef/engine/navigator"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRailControllerFollowsPose(t *testing.T) {
	nav, err := navigator.NewPathNavigator(navigator.DefaultControlPoints)
	if err != nil {
		t.Fatalf("NewPathNavigator: %v", err)
	}
	rail := NewRailController(DefaultStartPosition)
	cam := NewCamera(WithController(rail), WithAspect(16.0/9.0))

	pose := nav.Evaluate(0.5)
	rail.SetPose(pose)
	cam.Update()

	if cam.Position() != pose.Position {
		t.Fatalf("Position() = %v, want %v", cam.Position(), pose.Position)
	}
	// The look-at point lands on the view axis in front of the eye.
	v := cam.(*cameraImpl).viewMatrix.Mul4x1(pose.LookAt.Vec4(1))
	if math.Abs(float64(v.X())) > 1e-3 || math.Abs(float64(v.Y())) > 1e-3 || v.Z() >= 0 {
		t.Fatalf("look-at in view space = %v, want on -z axis", v)
	}
	got := rail.Pose()
	if got.Tangent.Sub(pose.Tangent).Len() > 1e-3 {
		t.Fatalf("Pose().Tangent = %v, want %v", got.Tangent, pose.Tangent)
	}
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera().(*cameraImpl)
	if cam.near != 0.1 || cam.far != 1000 {
		t.Fatalf("near/far = %v/%v", cam.near, cam.far)
	}
	if math.Abs(float64(cam.fov)-math.Pi/4) > 1e-6 {
		t.Fatalf("fov = %v", cam.fov)
	}
	cam.Update()
	if cam.viewMatrix != mgl32.Ident4() {
		t.Fatal("view matrix changed without a controller")
	}
}

func TestSetAspectIgnoresInvalid(t *testing.T) {
	cam := NewCamera(WithAspect(2), WithController(NewRailController(mgl32.Vec3{0, 0, 5})))
	cam.SetAspect(0)
	cam.SetAspect(float32(math.NaN()))
	cam.SetAspect(-1)
	if got := cam.(*cameraImpl).aspect; got != 2 {
		t.Fatalf("aspect = %v, want 2", got)
	}
	before := cam.Uniform().ViewProj
	cam.SetAspect(1)
	if cam.Uniform().ViewProj == before {
		t.Fatal("view-projection unchanged after SetAspect")
	}
}

func TestProjectionDepthRange(t *testing.T) {
	cam := NewCamera(WithController(NewRailController(mgl32.Vec3{}))).(*cameraImpl)
	p := cam.projectionMatrix
	near := p.Mul4x1(mgl32.Vec4{0, 0, -cam.near, 1})
	far := p.Mul4x1(mgl32.Vec4{0, 0, -cam.far, 1})
	if d := near.Z() / near.W(); math.Abs(float64(d)) > 1e-4 {
		t.Errorf("near depth = %v, want 0", d)
	}
	if d := far.Z() / far.W(); math.Abs(float64(d-1)) > 1e-4 {
		t.Errorf("far depth = %v, want 1", d)
	}
}

func TestUniformMarshal(t *testing.T) {
	rail := NewRailController(mgl32.Vec3{1, 2, 3})
	cam := NewCamera(WithController(rail))
	u := cam.Uniform()
	if u.Size() != 80 {
		t.Fatalf("Size() = %d, want 80", u.Size())
	}
	buf := u.Marshal()
	for i, want := range []float32{1, 2, 3} {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[64+i*4:]))
		if got != want {
			t.Errorf("position[%d] = %v, want %v", i, got, want)
		}
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])); got != u.ViewProj[0] {
		t.Errorf("view_proj[0] = %v, want %v", got, u.ViewProj[0])
	}
}

package surface

import (
	"encoding/binary"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/Carmen-Shannon/oxy-reef/engine/noise"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNewPlaneGeometry(t *testing.T) {
	m, err := NewPlaneGeometry(10, 4)
	if err != nil {
		t.Fatalf("NewPlaneGeometry: %v", err)
	}
	if got := m.VertexCount(); got != 25 {
		t.Errorf("VertexCount() = %d, want 25", got)
	}
	if got := len(m.Indices); got != 4*4*6 {
		t.Errorf("len(Indices) = %d, want %d", got, 4*4*6)
	}
	if m.Positions[0] != (mgl32.Vec3{-5, 5, 0}) || m.Positions[24] != (mgl32.Vec3{5, -5, 0}) {
		t.Errorf("corners = %v, %v", m.Positions[0], m.Positions[24])
	}
	for i, uv := range m.UVs {
		if uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
			t.Fatalf("uv %d = %v outside [0,1]", i, uv)
		}
	}
	for _, idx := range m.Indices {
		if int(idx) >= m.VertexCount() {
			t.Fatalf("index %d out of range", idx)
		}
	}
	if got := len(m.Interleaved()); got != 25*8 {
		t.Errorf("len(Interleaved()) = %d, want %d", got, 25*8)
	}
}

func TestNewPlaneGeometryInvalid(t *testing.T) {
	tests := []struct {
		name     string
		size     float32
		segments int
	}{
		{"zero segments", 10, 0},
		{"negative size", -1, 4},
		{"nan size", float32(math.NaN()), 4},
		{"infinite size", float32(math.Inf(1)), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPlaneGeometry(tt.size, tt.segments); !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("error = %v, want ErrInvalidGeometry", err)
			}
		})
	}
}

func TestComputeNormalsFlat(t *testing.T) {
	m, err := NewPlaneGeometry(8, 3)
	if err != nil {
		t.Fatalf("NewPlaneGeometry: %v", err)
	}
	m.ComputeNormals()
	for i, n := range m.Normals {
		if !n.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5) {
			t.Fatalf("normal %d = %v, want +z", i, n)
		}
	}
}

func newTestFloor(t *testing.T) HeightFieldSurface {
	t.Helper()
	s, err := NewHeightFieldSurface(WithFloorSegments(16))
	if err != nil {
		t.Fatalf("NewHeightFieldSurface: %v", err)
	}
	return s
}

func TestBakeIsReproducible(t *testing.T) {
	a, b := newTestFloor(t), newTestFloor(t)
	if err := a.Bake(noise.NewNoiseField(noise.BackendTypeSimplex, noise.WithSeed(42))); err != nil {
		t.Fatalf("Bake a: %v", err)
	}
	if err := b.Bake(noise.NewNoiseField(noise.BackendTypeSimplex, noise.WithSeed(42))); err != nil {
		t.Fatalf("Bake b: %v", err)
	}
	ea, eb := a.Elevations(), b.Elevations()
	if !slices.Equal(ea, eb) {
		t.Fatal("surfaces baked from the same seed differ")
	}
	var nonZero bool
	for _, e := range ea {
		if e > 3 || e < -3 {
			t.Fatalf("elevation %v exceeds the elevation scale", e)
		}
		if e != 0 {
			nonZero = true
		}
	}
	if !nonZero {
		t.Fatal("bake left the surface flat")
	}
}

func TestBakeRunsOnce(t *testing.T) {
	s := newTestFloor(t)
	if s.Baked() {
		t.Fatal("new surface reports baked")
	}
	if err := s.Bake(nil); !errors.Is(err, ErrNilField) {
		t.Fatalf("Bake(nil) = %v, want ErrNilField", err)
	}
	if err := s.Bake(noise.NewNoiseField(noise.BackendTypeSimplex, noise.WithSeed(1))); err != nil {
		t.Fatalf("Bake: %v", err)
	}
	before := s.Elevations()

	err := s.Bake(noise.NewNoiseField(noise.BackendTypePerlin, noise.WithSeed(2)))
	if !errors.Is(err, ErrAlreadyBaked) {
		t.Fatalf("second Bake = %v, want ErrAlreadyBaked", err)
	}
	if !slices.Equal(before, s.Elevations()) {
		t.Fatal("second Bake modified the mesh")
	}
	if !s.Baked() {
		t.Fatal("Baked() = false after Bake")
	}
}

func TestHeightAtMatchesBakedVertices(t *testing.T) {
	s := newTestFloor(t)
	if got := s.HeightAt(12, -40); got != s.BaseY() {
		t.Fatalf("HeightAt before bake = %v, want base %v", got, s.BaseY())
	}
	if err := s.Bake(noise.NewNoiseField(noise.BackendTypeSimplex, noise.WithSeed(7))); err != nil {
		t.Fatalf("Bake: %v", err)
	}
	model := s.ModelMatrix()
	for i, p := range s.Mesh().Positions {
		world := model.Mul4x1(p.Vec4(1))
		want := world.Y()
		if got := s.HeightAt(world.X(), world.Z()); math.Abs(float64(got-want)) > 1e-4 {
			t.Fatalf("vertex %d at world (%v, %v): HeightAt = %v, vertex y = %v", i, world.X(), world.Z(), got, want)
		}
	}
}

func TestBakedNormalsFaceUp(t *testing.T) {
	s := newTestFloor(t)
	if err := s.Bake(noise.NewNoiseField(noise.BackendTypeSimplex, noise.WithSeed(3))); err != nil {
		t.Fatalf("Bake: %v", err)
	}
	model := s.ModelMatrix()
	for i, n := range s.Mesh().Normals {
		world := model.Mul4x1(n.Vec4(0)).Vec3()
		if world.Y() <= 0 {
			t.Fatalf("normal %d points down in world space: %v", i, world)
		}
	}
}

func TestFloorUpdate(t *testing.T) {
	s := newTestFloor(t)
	s.Update(3.5)
	u := s.Uniforms()
	if u.Time != 3.5 || u.FloorElevation != 3 || u.SunPosition != DefaultSunPosition {
		t.Fatalf("Uniforms() = %+v", u)
	}
	gpu := s.GPUUniforms()
	buf := gpu.Marshal()
	if len(buf) != 96 {
		t.Fatalf("len(Marshal()) = %d, want 96", len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[64:])); got != 3.5 {
		t.Errorf("time at offset 64 = %v, want 3.5", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[52:])); got != -25 {
		t.Errorf("model translation y = %v, want -25", got)
	}
}

func TestWaveUpdateScalesTime(t *testing.T) {
	w, err := NewWaveSurface(WithWaterSegments(8))
	if err != nil {
		t.Fatalf("NewWaveSurface: %v", err)
	}
	w.Update(2)
	u := w.Uniforms()
	if math.Abs(float64(u.Time-2.4)) > 1e-6 {
		t.Errorf("Time = %v, want 2.4", u.Time)
	}
	if u.Amplitude != 0.75 || u.Speed != 1.2 || u.NoiseScale != 0.15 {
		t.Errorf("Uniforms() = %+v, want defaults", u)
	}
	gpu := w.GPUUniforms()
	buf := gpu.Marshal()
	if len(buf) != 96 {
		t.Fatalf("len(Marshal()) = %d, want 96", len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[68:])); got != 0.75 {
		t.Errorf("amplitude at offset 68 = %v, want 0.75", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[80:])); got != 70 {
		t.Errorf("sun x at offset 80 = %v, want 70", got)
	}
}

func TestWaveGeometryNeverChanges(t *testing.T) {
	w, err := NewWaveSurface(WithWaterSegments(8))
	if err != nil {
		t.Fatalf("NewWaveSurface: %v", err)
	}
	before := slices.Clone(w.Mesh().Positions)
	for i := 0; i < 100; i++ {
		w.Update(float32(i) * 0.016)
	}
	if !slices.Equal(before, w.Mesh().Positions) {
		t.Fatal("Update modified the water mesh")
	}
}

func TestCardUniformsSize(t *testing.T) {
	var c GPUCardUniforms
	if c.Size() != 80 || len(c.Marshal()) != 80 {
		t.Fatalf("GPUCardUniforms size = %d", c.Size())
	}
}

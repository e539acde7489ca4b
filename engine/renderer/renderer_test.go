package renderer

import (
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-reef/engine/surface"
	"github.com/go-gl/mathgl/mgl32"
)

func TestColorFromHex(t *testing.T) {
	c := ColorFromHex(0x87CEEB)
	want := [3]float64{135.0 / 255, 206.0 / 255, 235.0 / 255}
	got := [3]float64{c.R, c.G, c.B}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("channel %d = %v, want %v", i, got[i], want[i])
		}
	}
	if c.A != 1 {
		t.Fatalf("alpha = %v, want 1", c.A)
	}
	if DefaultClearColor != c {
		t.Fatalf("DefaultClearColor = %+v, want sky blue", DefaultClearColor)
	}
}

func TestGPUInstanceDataLayout(t *testing.T) {
	g := GPUInstanceData{Model: mgl32.Ident4(), Color: [4]float32{0.1, 0.2, 0.3, 1}, Anim: [4]float32{0.25, 0.15}}
	if g.Size() != 96 {
		t.Fatalf("Size() = %d, want 96", g.Size())
	}
	buf := g.Marshal()
	if len(buf) != 96 {
		t.Fatalf("len(Marshal()) = %d, want 96", len(buf))
	}
	if v := math.Float32frombits(binary.LittleEndian.Uint32(buf[60:])); v != 1 {
		t.Fatalf("model[15] = %v, want 1", v)
	}
	if v := math.Float32frombits(binary.LittleEndian.Uint32(buf[68:])); v != 0.2 {
		t.Fatalf("color.g = %v, want 0.2", v)
	}
	if v := math.Float32frombits(binary.LittleEndian.Uint32(buf[84:])); v != 0.15 {
		t.Fatalf("anim.y = %v, want 0.15", v)
	}
}

func TestFrameInstanceBytes(t *testing.T) {
	f := &Frame{}
	for i := range 5 {
		f.Instances = append(f.Instances, Instance{
			Model: mgl32.Translate3D(float32(i), 0, 0),
			Color: mgl32.Vec4{1, 0, 0, 1},
			Anim:  mgl32.Vec4{float32(i) / 10, 0.15, 0, 0},
		})
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"all", 10, 5},
		{"capped", 3, 3},
		{"zero", 0, 0},
		{"negative", -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, n := f.InstanceBytes(tt.limit)
			if n != tt.want {
				t.Fatalf("count = %d, want %d", n, tt.want)
			}
			if len(buf) != n*96 {
				t.Fatalf("len = %d, want %d", len(buf), n*96)
			}
			if n > 1 {
				// translation x of the second instance lives at model[12]
				x := math.Float32frombits(binary.LittleEndian.Uint32(buf[96+48:]))
				if x != 1 {
					t.Fatalf("second instance x = %v, want 1", x)
				}
				phase := math.Float32frombits(binary.LittleEndian.Uint32(buf[96+80:]))
				if phase != 0.1 {
					t.Fatalf("second instance phase = %v, want 0.1", phase)
				}
			}
		})
	}
}

func TestNewCubeMesh(t *testing.T) {
	m := NewCubeMesh()
	if m.VertexCount() != 24 || len(m.Indices) != 36 {
		t.Fatalf("cube has %d vertices and %d indices", m.VertexCount(), len(m.Indices))
	}
	for i, p := range m.Positions {
		for axis := range 3 {
			if a := float32(math.Abs(float64(p[axis]))); a > 0.5+1e-6 {
				t.Fatalf("vertex %d outside unit cube: %v", i, p)
			}
		}
	}
	// every triangle winds counter-clockwise seen from outside
	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Positions[m.Indices[i]], m.Positions[m.Indices[i+1]], m.Positions[m.Indices[i+2]]
		n := b.Sub(a).Cross(c.Sub(a))
		if n.Dot(m.Normals[m.Indices[i]]) <= 0 {
			t.Fatalf("triangle %d winds inward", i/3)
		}
	}
	if got := len(m.Interleaved()); got != 24*8 {
		t.Fatalf("interleaved floats = %d, want %d", got, 24*8)
	}
}

func TestScenePipelines(t *testing.T) {
	pipelines, err := scenePipelines()
	if err != nil {
		t.Fatalf("scenePipelines() error = %v", err)
	}
	byKey := map[string]bool{}
	for _, p := range pipelines {
		byKey[p.PipelineKey()] = true
		if strings.Contains(p.Shader().Source(), "@oxy:") {
			t.Fatalf("%s: unexpanded annotation in shader source", p.PipelineKey())
		}
		if len(p.BindGroupLayouts()) != 2 {
			t.Fatalf("%s: %d bind group layouts, want 2", p.PipelineKey(), len(p.BindGroupLayouts()))
		}
		if len(p.VertexLayouts()) != 1 || p.VertexLayouts()[0].ArrayStride != surface.VertexStride {
			t.Fatalf("%s: unexpected vertex layout", p.PipelineKey())
		}
		switch p.PipelineKey() {
		case PipelineWater:
			if !p.BlendEnabled() || p.DepthWriteEnabled() {
				t.Fatal("water must blend without writing depth")
			}
		case PipelineFloor, PipelineProxy:
			if p.BlendEnabled() {
				t.Fatalf("%s should be opaque", p.PipelineKey())
			}
		}
	}
	for _, key := range []string{PipelineFloor, PipelineWater, PipelineCard, PipelineProxy} {
		if !byKey[key] {
			t.Fatalf("pipeline %q missing", key)
		}
	}
}

func TestMeshKindString(t *testing.T) {
	if MeshWater.String() != "water" || MeshKind(9).String() != "mesh(9)" {
		t.Fatalf("unexpected names %q %q", MeshWater, MeshKind(9))
	}
	s := &sceneRenderer{}
	if err := s.SetMesh(MeshKind(9), nil); !errors.Is(err, ErrUnknownMesh) {
		t.Fatalf("SetMesh(unknown) error = %v, want ErrUnknownMesh", err)
	}
}

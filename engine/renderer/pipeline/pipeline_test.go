package pipeline

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("floor", nil)
	if p.PipelineKey() != "floor" {
		t.Fatalf("PipelineKey() = %q", p.PipelineKey())
	}
	if !p.DepthTestEnabled() || !p.DepthWriteEnabled() {
		t.Fatal("depth test and write should default on")
	}
	if p.BlendEnabled() {
		t.Fatal("blending should default off")
	}
	if p.CullMode() != wgpu.CullModeNone {
		t.Fatalf("CullMode() = %v, want none", p.CullMode())
	}
	if p.Topology() != wgpu.PrimitiveTopologyTriangleList || p.FrontFace() != wgpu.FrontFaceCCW {
		t.Fatal("unexpected primitive defaults")
	}
	if p.BlendState() == nil || p.BlendState().Color.SrcFactor != wgpu.BlendFactorSrcAlpha {
		t.Fatal("default blend state should be source-alpha over")
	}
	if p.RenderPipeline() != nil {
		t.Fatal("render pipeline should be nil before registration")
	}
}

func TestPipelineOptions(t *testing.T) {
	layout := wgpu.VertexBufferLayout{ArrayStride: 32, StepMode: wgpu.VertexStepModeVertex}
	p := NewPipeline("water", nil,
		WithBlendEnabled(true),
		WithDepthWriteEnabled(false),
		WithDepthTestEnabled(false),
		WithCullMode(wgpu.CullModeBack),
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithVertexLayouts(layout),
		WithBindGroupLayouts(wgpu.BindGroupLayoutDescriptor{Label: "a"}, wgpu.BindGroupLayoutDescriptor{Label: "b"}),
		WithBlendState(nil),
	)
	if !p.BlendEnabled() || p.DepthWriteEnabled() || p.DepthTestEnabled() {
		t.Fatal("blend/depth options not applied")
	}
	if p.CullMode() != wgpu.CullModeBack || p.Topology() != wgpu.PrimitiveTopologyLineList {
		t.Fatal("primitive options not applied")
	}
	if len(p.VertexLayouts()) != 1 || p.VertexLayouts()[0].ArrayStride != 32 {
		t.Fatal("vertex layouts not applied")
	}
	if got := p.BindGroupLayouts(); len(got) != 2 || got[1].Label != "b" {
		t.Fatal("bind group layouts not applied in group order")
	}
	if p.BlendState() != nil {
		t.Fatal("blend state override not applied")
	}
}

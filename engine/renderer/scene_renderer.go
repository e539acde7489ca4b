package renderer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-reef/common"
	"github.com/Carmen-Shannon/oxy-reef/engine/camera"
	"github.com/Carmen-Shannon/oxy-reef/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-reef/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-reef/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-reef/engine/surface"
	"github.com/cogentcore/webgpu/wgpu"
)

// MeshKind names the scene surfaces a SceneRenderer draws.
type MeshKind int

const (
	MeshFloor MeshKind = iota
	MeshWater
	MeshCard
)

func (k MeshKind) String() string {
	switch k {
	case MeshFloor:
		return "floor"
	case MeshWater:
		return "water"
	case MeshCard:
		return "card"
	}
	return fmt.Sprintf("mesh(%d)", int(k))
}

// Pipeline keys registered by NewSceneRenderer.
const (
	PipelineFloor = "floor"
	PipelineWater = "water"
	PipelineCard  = "card"
	PipelineProxy = "proxy"
)

// DefaultMaxInstances is the proxy instance buffer capacity.
const DefaultMaxInstances = 4096

// ErrUnknownMesh is returned by SetMesh for a MeshKind the renderer does not draw.
var ErrUnknownMesh = errors.New("renderer: unknown mesh kind")

// sceneRenderer is the implementation of the SceneRenderer interface.
type sceneRenderer struct {
	mu *sync.Mutex
	r  Renderer

	maxInstances int

	cameraProvider   bind_group_provider.BindGroupProvider
	floorProvider    bind_group_provider.BindGroupProvider
	waterProvider    bind_group_provider.BindGroupProvider
	cardProvider     bind_group_provider.BindGroupProvider
	instanceProvider bind_group_provider.BindGroupProvider

	meshes map[MeshKind]bind_group_provider.BindGroupProvider
	cube   bind_group_provider.BindGroupProvider
}

// SceneRenderer draws the reef: the seabed, the proxy instances for every placed or roaming entity,
// the card and finally the translucent water surface.
type SceneRenderer interface {
	// SetMesh uploads (or replaces) the geometry for one of the scene surfaces.
	//
	// Parameters:
	//   - kind: which surface the mesh belongs to
	//   - m: the mesh
	//
	// Returns:
	//   - error: ErrUnknownMesh, or a GPU upload error
	SetMesh(kind MeshKind, m *surface.Mesh) error

	// Render uploads the frame's uniforms and instances and renders it. Surfaces without a mesh are
	// skipped.
	//
	// Parameters:
	//   - f: the frame
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	Render(f *Frame) error

	// Resize reconfigures the surface.
	Resize(width, height int)

	// Release frees the GPU resources owned by the scene renderer.
	Release()
}

var _ SceneRenderer = &sceneRenderer{}

// NewSceneRenderer registers the scene pipelines on r and allocates their uniform and instance
// buffers.
//
// Parameters:
//   - r: the low-level renderer
//   - options: functional options such as WithMaxInstances
//
// Returns:
//   - SceneRenderer: the scene renderer
//   - error: an error if a shader fails to pre-process or a GPU object cannot be created
func NewSceneRenderer(r Renderer, options ...SceneRendererBuilderOption) (SceneRenderer, error) {
	s := &sceneRenderer{
		mu:               &sync.Mutex{},
		r:                r,
		maxInstances:     DefaultMaxInstances,
		cameraProvider:   bind_group_provider.NewBindGroupProvider("Camera"),
		floorProvider:    bind_group_provider.NewBindGroupProvider("Floor Uniforms"),
		waterProvider:    bind_group_provider.NewBindGroupProvider("Water Uniforms"),
		cardProvider:     bind_group_provider.NewBindGroupProvider("Card Uniforms"),
		instanceProvider: bind_group_provider.NewBindGroupProvider("Proxy Instances"),
		meshes:           make(map[MeshKind]bind_group_provider.BindGroupProvider),
	}
	for _, opt := range options {
		opt(s)
	}

	pipelines, err := scenePipelines()
	if err != nil {
		return nil, err
	}
	if err := r.RegisterPipelines(pipelines...); err != nil {
		return nil, err
	}

	var (
		cam   camera.GPUCameraUniform
		floor surface.GPUFloorUniforms
		water surface.GPUWaveUniforms
		card  surface.GPUCardUniforms
		inst  GPUInstanceData
	)
	binds := []struct {
		provider bind_group_provider.BindGroupProvider
		layout   wgpu.BindGroupLayoutDescriptor
		sizes    map[int]uint64
	}{
		{s.cameraProvider, uniformLayout("Camera", uint64(cam.Size())), nil},
		{s.floorProvider, uniformLayout("Floor", uint64(floor.Size())), nil},
		{s.waterProvider, uniformLayout("Water", uint64(water.Size())), nil},
		{s.cardProvider, uniformLayout("Card", uint64(card.Size())), nil},
		{s.instanceProvider, storageLayout("Instances", uint64(inst.Size())), map[int]uint64{0: uint64(s.maxInstances * inst.Size())}},
	}
	for _, b := range binds {
		if err := r.InitBindGroup(b.provider, b.layout, b.sizes); err != nil {
			return nil, fmt.Errorf("init %s: %w", b.provider.Label(), err)
		}
	}

	s.cube = bind_group_provider.NewBindGroupProvider("Proxy Cube")
	if err := s.upload(s.cube, NewCubeMesh()); err != nil {
		return nil, err
	}
	return s, nil
}

// scenePipelines pre-processes the scene shaders and describes their pipelines.
func scenePipelines() ([]pipeline.Pipeline, error) {
	pp := shader.NewPreProcessor(shader.WithInclude(IncludeInstanceData, GPUInstanceDataSource))

	var (
		cam   camera.GPUCameraUniform
		floor surface.GPUFloorUniforms
		water surface.GPUWaveUniforms
		card  surface.GPUCardUniforms
		inst  GPUInstanceData
	)
	camLayout := uniformLayout("Camera", uint64(cam.Size()))

	specs := []struct {
		key    string
		source string
		group1 wgpu.BindGroupLayoutDescriptor
		opts   []pipeline.PipelineBuilderOption
	}{
		{PipelineFloor, surface.FloorShaderSource, uniformLayout("Floor", uint64(floor.Size())), nil},
		{PipelineProxy, ProxyShaderSource, storageLayout("Instances", uint64(inst.Size())), nil},
		{PipelineCard, surface.CardShaderSource, uniformLayout("Card", uint64(card.Size())), []pipeline.PipelineBuilderOption{
			pipeline.WithBlendEnabled(true),
		}},
		{PipelineWater, surface.WaterShaderSource, uniformLayout("Water", uint64(water.Size())), []pipeline.PipelineBuilderOption{
			pipeline.WithBlendEnabled(true),
			pipeline.WithDepthWriteEnabled(false),
		}},
	}

	out := make([]pipeline.Pipeline, 0, len(specs))
	for _, spec := range specs {
		sh, err := shader.NewShader(spec.key, spec.source, pp)
		if err != nil {
			return nil, err
		}
		opts := append([]pipeline.PipelineBuilderOption{
			pipeline.WithVertexLayouts(surfaceVertexLayout()),
			pipeline.WithBindGroupLayouts(camLayout, spec.group1),
		}, spec.opts...)
		out = append(out, pipeline.NewPipeline(spec.key, sh, opts...))
	}
	return out, nil
}

// surfaceVertexLayout matches surface.Mesh.Interleaved: position, normal, uv.
func surfaceVertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: surface.VertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
		},
	}
}

func uniformLayout(label string, size uint64) wgpu.BindGroupLayoutDescriptor {
	entry := wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
	}
	entry.Buffer.Type = wgpu.BufferBindingTypeUniform
	entry.Buffer.MinBindingSize = size
	return wgpu.BindGroupLayoutDescriptor{
		Label:   label + " Layout",
		Entries: []wgpu.BindGroupLayoutEntry{entry},
	}
}

func storageLayout(label string, elemSize uint64) wgpu.BindGroupLayoutDescriptor {
	entry := wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: wgpu.ShaderStageVertex,
	}
	entry.Buffer.Type = wgpu.BufferBindingTypeReadOnlyStorage
	entry.Buffer.MinBindingSize = elemSize
	return wgpu.BindGroupLayoutDescriptor{
		Label:   label + " Layout",
		Entries: []wgpu.BindGroupLayoutEntry{entry},
	}
}

func (s *sceneRenderer) upload(provider bind_group_provider.BindGroupProvider, m *surface.Mesh) error {
	if m == nil || len(m.Indices) == 0 {
		return fmt.Errorf("%s: empty mesh", provider.Label())
	}
	return s.r.InitMeshBuffers(provider, common.SliceToBytes(m.Interleaved()), common.SliceToBytes(m.Indices), len(m.Indices))
}

func (s *sceneRenderer) SetMesh(kind MeshKind, m *surface.Mesh) error {
	switch kind {
	case MeshFloor, MeshWater, MeshCard:
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMesh, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	provider, ok := s.meshes[kind]
	if !ok {
		provider = bind_group_provider.NewBindGroupProvider(kind.String() + " Mesh")
	}
	if err := s.upload(provider, m); err != nil {
		return err
	}
	s.meshes[kind] = provider
	return nil
}

func (s *sceneRenderer) Render(f *Frame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	instanceData, instanceCount := f.InstanceBytes(s.maxInstances)
	writes := []bind_group_provider.BufferWrite{
		{Provider: s.cameraProvider, Binding: 0, Data: f.Camera.Marshal()},
		{Provider: s.floorProvider, Binding: 0, Data: f.Floor.Marshal()},
		{Provider: s.waterProvider, Binding: 0, Data: f.Water.Marshal()},
		{Provider: s.cardProvider, Binding: 0, Data: f.Card.Marshal()},
		{Provider: s.instanceProvider, Binding: 0, Data: instanceData},
	}
	s.r.WriteBuffers(writes)

	if err := s.r.BeginFrame(); err != nil {
		return err
	}

	var drawErr error
	draw := func(key string, mesh bind_group_provider.BindGroupProvider, count int, group1 bind_group_provider.BindGroupProvider) {
		if mesh == nil || count == 0 || drawErr != nil {
			return
		}
		drawErr = s.r.DrawCall(key, mesh, uint32(count), []bind_group_provider.BindGroupProvider{s.cameraProvider, group1})
	}

	// Opaque first, the translucent water last.
	draw(PipelineFloor, s.meshes[MeshFloor], 1, s.floorProvider)
	draw(PipelineProxy, s.cube, instanceCount, s.instanceProvider)
	if f.ShowCard {
		draw(PipelineCard, s.meshes[MeshCard], 1, s.cardProvider)
	}
	draw(PipelineWater, s.meshes[MeshWater], 1, s.waterProvider)

	s.r.EndFrame()
	s.r.Present()
	return drawErr
}

func (s *sceneRenderer) Resize(width, height int) {
	s.r.Resize(width, height)
}

func (s *sceneRenderer) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range []bind_group_provider.BindGroupProvider{s.cameraProvider, s.floorProvider, s.waterProvider, s.cardProvider, s.instanceProvider, s.cube} {
		if p != nil {
			p.Release()
		}
	}
	for k, p := range s.meshes {
		p.Release()
		delete(s.meshes, k)
	}
}

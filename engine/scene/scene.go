package scene

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"sync"

	"github.com/Carmen-Shannon/oxy-reef/common"
	"github.com/Carmen-Shannon/oxy-reef/engine/camera"
	"github.com/Carmen-Shannon/oxy-reef/engine/clock"
	"github.com/Carmen-Shannon/oxy-reef/engine/game_object"
	"github.com/Carmen-Shannon/oxy-reef/engine/loader"
	"github.com/Carmen-Shannon/oxy-reef/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-reef/engine/navigator"
	"github.com/Carmen-Shannon/oxy-reef/engine/noise"
	"github.com/Carmen-Shannon/oxy-reef/engine/placer"
	"github.com/Carmen-Shannon/oxy-reef/engine/registry"
	"github.com/Carmen-Shannon/oxy-reef/engine/renderer"
	"github.com/Carmen-Shannon/oxy-reef/engine/scroll"
	"github.com/Carmen-Shannon/oxy-reef/engine/surface"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultNominalDelta is the fixed per-tick animation step, in seconds.
const DefaultNominalDelta = 0.016

// ErrNilRenderer is returned when a SceneAnimator is built without a FrameRenderer.
var ErrNilRenderer = errors.New("scene: nil renderer")

// FrameRenderer draws assembled frames. renderer.SceneRenderer satisfies it.
type FrameRenderer interface {
	// SetMesh uploads the geometry of one of the fixed scene meshes.
	//
	// Parameters:
	//   - kind: which mesh slot to fill
	//   - m: the mesh
	//
	// Returns:
	//   - error: error if the upload fails
	SetMesh(kind renderer.MeshKind, m *surface.Mesh) error

	// Render draws one frame.
	//
	// Parameters:
	//   - f: the frame to draw
	//
	// Returns:
	//   - error: error if drawing fails
	Render(f *renderer.Frame) error
}

// Stats is a snapshot of scene counters, reported by the profiler.
type Stats struct {
	Entities         int
	Fish             int
	Corals           int
	PlacementSkipped int
	AssetsLoaded     int
	AssetsRequested  int
	AssetsFailed     int
	Progress         float32
	Elapsed          float32
}

// SceneAnimator owns the reef: its surfaces, its entities, the camera rail and the scroll state.
// Tick advances the simulation and renders one frame; OnScroll moves the camera along its path.
// Both are expected to run on the window thread.
type SceneAnimator interface {
	// Start requests every model and spawns entities as loads complete. Only the first call has
	// an effect.
	Start()

	// Wait blocks until every load started by Start has finished spawning (or failed).
	Wait()

	// Tick runs one simulation step: newly loaded entities are enabled, the clock advances, shader
	// uniforms follow the clock, roaming entities move and animate, markers bob, the smooth
	// scroller advances and the assembled frame is rendered once.
	//
	// Returns:
	//   - error: the renderer's error, wrapped
	Tick() error

	// OnScroll folds a scroll event into the scroll state, moves the camera onto the path pose for
	// the new progress, and reacts to zone transitions by toggling UI panels and re-posing the card.
	//
	// Parameters:
	//   - e: the scroll event
	OnScroll(e scroll.Event)

	// Scroller returns the smooth scroller that input should be fed into.
	Scroller() scroll.Scroller

	// Camera returns the scene camera.
	Camera() camera.Camera

	// Entities returns the entity registry.
	Entities() registry.Registry[game_object.GameObject]

	// Floor returns the baked seabed.
	Floor() surface.HeightFieldSurface

	// State returns the current scroll state.
	State() scroll.State

	// CardPose returns the card's current placement.
	CardPose() navigator.CardPose

	// Stats returns the scene counters.
	Stats() Stats
}

type sceneAnimator struct {
	mu *sync.Mutex

	cfg      Config
	logger   *log.Logger
	renderer FrameRenderer
	ui       UISurface
	loader   loader.Loader
	clock    clock.FrameClock
	rng      *rand.Rand
	workers  int
	aspect   float32

	nominalDelta  float32
	measuredDelta bool
	deltaScale    float32

	floor     surface.HeightFieldSurface
	water     surface.WaveSurface
	navigator navigator.PathNavigator
	zones     navigator.ZoneTracker
	rail      camera.RailController
	camera    camera.Camera
	scroller  scroll.Scroller
	placer    placer.InstancePlacer
	entities  registry.Registry[game_object.GameObject]

	state    scroll.State
	cardPose navigator.CardPose
	frame    renderer.Frame

	fish    int
	corals  int
	skipped int
	failed  int

	startOnce sync.Once
	wg        sync.WaitGroup
}

var _ SceneAnimator = &sceneAnimator{}

// NewSceneAnimator builds the reef from DefaultConfig (or WithConfig): it bakes the seabed, builds
// the water surface and camera path, uploads the fixed meshes to r, plants the marker colonies and
// syncs the UI panels with the starting zone. Models are not requested until Start.
//
// Parameters:
//   - r: the frame renderer
//   - options: functional options to configure the scene
//
// Returns:
//   - SceneAnimator: the scene
//   - error: ErrNilRenderer, or a wrapped construction or upload error
func NewSceneAnimator(r FrameRenderer, options ...SceneAnimatorBuilderOption) (SceneAnimator, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	s := &sceneAnimator{
		mu:           &sync.Mutex{},
		cfg:          DefaultConfig(),
		logger:       log.New(os.Stderr, "[SCENE] ", log.LstdFlags),
		renderer:     r,
		workers:      loader.DefaultWorkers,
		aspect:       1,
		nominalDelta: DefaultNominalDelta,
		deltaScale:   locomotion.DefaultDeltaScale,
		entities:     registry.New[game_object.GameObject](),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.clock == nil {
		s.clock = clock.NewFrameClock()
	}
	if s.ui == nil {
		s.ui = NewLogUISurface(s.logger)
	}
	if s.loader == nil {
		logger := s.logger
		s.loader = loader.NewLoader(loader.BackendTypeGLTF,
			loader.WithLogger(logger),
			loader.WithWorkers(s.workers),
			loader.WithItemProgress(func(path string, loaded, total int) {
				logger.Printf("loaded %s (%d of %d)", path, loaded, total)
			}),
			loader.WithOnLoad(func() {
				logger.Printf("all requested assets finished")
			}),
			loader.WithOnError(func(string, error) {
				s.mu.Lock()
				s.failed++
				s.mu.Unlock()
			}),
		)
	}

	if err := s.buildSurfaces(); err != nil {
		return nil, err
	}
	if err := s.buildCamera(); err != nil {
		return nil, err
	}

	placerOpts := []placer.InstancePlacerBuilderOption{
		placer.WithLogger(s.logger),
		placer.WithSpatialIndex(s.cfg.CoralGridIndex),
	}
	if s.rng != nil {
		placerOpts = append(placerOpts, placer.WithRand(s.rng))
	}
	s.placer = placer.NewInstancePlacer(s.floor, placerOpts...)
	s.cardPose = navigator.CardPose{Position: s.cfg.CardPosition, Rotation: s.cfg.CardRotation}
	s.scroller = scroll.NewScroller(s.cfg.ScrollLimit,
		scroll.WithLerp(s.cfg.ScrollLerp),
		scroll.WithOnScroll(s.OnScroll),
	)

	if err := s.uploadMeshes(); err != nil {
		return nil, err
	}
	s.plantMarkers()
	s.syncPanels()
	return s, nil
}

func (s *sceneAnimator) buildSurfaces() error {
	field := noise.NewNoiseField(s.cfg.NoiseBackend, noise.WithSeed(s.cfg.Seed))

	floor, err := surface.NewHeightFieldSurface(
		surface.WithFloorSize(s.cfg.FloorSize),
		surface.WithFloorSegments(s.cfg.FloorSegments),
		surface.WithDepth(s.cfg.FloorDepth),
		surface.WithElevation(s.cfg.FloorElevation),
		surface.WithSampleFrequency(s.cfg.FloorFrequency),
		surface.WithFloorSunPosition(s.cfg.SunPosition),
	)
	if err != nil {
		return fmt.Errorf("scene: floor: %w", err)
	}
	if err := floor.Bake(field); err != nil {
		return fmt.Errorf("scene: bake floor: %w", err)
	}

	water, err := surface.NewWaveSurface(
		surface.WithWaterSize(s.cfg.WaterSize),
		surface.WithWaterSegments(s.cfg.WaterSegments),
		surface.WithWaterLevel(s.cfg.WaterLevel),
		surface.WithAmplitude(s.cfg.WaveAmplitude),
		surface.WithSpeed(s.cfg.WaveSpeed),
		surface.WithNoiseScale(s.cfg.WaveNoiseScale),
		surface.WithWaterSunPosition(s.cfg.SunPosition),
	)
	if err != nil {
		return fmt.Errorf("scene: water: %w", err)
	}

	s.floor = floor
	s.water = water
	return nil
}

func (s *sceneAnimator) buildCamera() error {
	nav, err := navigator.NewPathNavigator(s.cfg.ControlPoints, navigator.WithCurveType(s.cfg.CurveType))
	if err != nil {
		return fmt.Errorf("scene: camera path: %w", err)
	}
	start := nav.Evaluate(0)

	s.navigator = nav
	s.zones = navigator.NewZoneTracker(0)
	s.rail = camera.NewRailController(start.Position)
	s.rail.SetPose(start)
	s.camera = camera.NewCamera(camera.WithAspect(s.aspect), camera.WithController(s.rail))
	s.camera.Update()
	return nil
}

func (s *sceneAnimator) uploadMeshes() error {
	card, err := surface.NewPlaneGeometry(1, 1)
	if err != nil {
		return fmt.Errorf("scene: card: %w", err)
	}
	meshes := []struct {
		kind renderer.MeshKind
		mesh *surface.Mesh
	}{
		{renderer.MeshFloor, s.floor.Mesh()},
		{renderer.MeshWater, s.water.Mesh()},
		{renderer.MeshCard, card},
	}
	for _, m := range meshes {
		if err := s.renderer.SetMesh(m.kind, m.mesh); err != nil {
			return fmt.Errorf("scene: upload %s mesh: %w", m.kind, err)
		}
	}
	return nil
}

// plantMarkers stands every marker colony on the seabed, bobbing around the middle of its column.
func (s *sceneAnimator) plantMarkers() {
	for _, m := range s.cfg.Markers {
		x, z := m.Position.X(), m.Position.Z()
		baseY := s.floor.HeightAt(x, z) + m.Height/2
		s.add(game_object.NewGameObject(game_object.KindMarker,
			game_object.WithPosition(mgl32.Vec3{x, baseY, z}),
			game_object.WithBob(baseY),
			game_object.WithScale(mgl32.Vec3{3, m.Height, 3}),
			game_object.WithColor(m.Color),
			game_object.WithEnabled(false),
		))
	}
}

// syncPanels shows the panels of every zone the scene starts in and hides the rest.
func (s *sceneAnimator) syncPanels() {
	for _, z := range navigator.Zones {
		if s.zones.Active(z) {
			s.ui.Show(z.String())
		} else {
			s.ui.Hide(z.String())
		}
	}
}

func (s *sceneAnimator) add(obj game_object.GameObject) {
	id := s.entities.Add(obj)
	obj.SetID(uint64(id))
}

func (s *sceneAnimator) Start() {
	s.startOnce.Do(func() {
		corals := s.loader.LoadAll(s.cfg.resolveAll(s.cfg.CoralPaths))
		fish := s.loader.LoadAll(s.cfg.resolveAll(s.cfg.FishPaths))

		s.wg.Add(1)
		go s.spawnCorals(corals)
		for i, f := range fish {
			s.wg.Add(1)
			go s.spawnFish(i, f)
		}
		for _, spec := range s.cfg.Sculptures {
			s.wg.Add(1)
			go s.spawnSculpture(spec, s.loader.Load(s.cfg.resolve(spec.Path)))
		}
	})
}

func (s *sceneAnimator) Wait() {
	s.wg.Wait()
}

func (s *sceneAnimator) Tick() error {
	for _, entry := range s.entities.DrainReady() {
		entry.Value.SetEnabled(true)
		s.countSpawn(entry.Value.Kind())
	}

	elapsed := s.clock.Advance()
	delta, stepScale := s.nominalDelta, s.deltaScale
	if s.measuredDelta {
		delta = s.clock.Delta()
		stepScale = s.deltaScale * delta / s.nominalDelta
	}

	s.water.Update(elapsed)
	s.floor.Update(elapsed)

	snapshot := s.entities.Snapshot()
	half := s.cfg.FloorSize / 2
	for _, entry := range snapshot {
		body := entry.Value.Roaming()
		if body == nil || !entry.Value.Enabled() {
			continue
		}
		locomotion.Step(body, stepScale, half)
		if body.Animation != nil {
			body.Animation.Update(delta)
		}
	}
	for _, entry := range snapshot {
		if entry.Value.Enabled() {
			entry.Value.Bob(elapsed)
		}
	}

	s.scroller.Advance()

	if err := s.renderer.Render(s.buildFrame(elapsed, snapshot)); err != nil {
		return fmt.Errorf("scene: render: %w", err)
	}
	return nil
}

func (s *sceneAnimator) countSpawn(kind game_object.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case game_object.KindFish:
		s.fish++
	case game_object.KindCoral:
		s.corals++
	}
}

func (s *sceneAnimator) buildFrame(elapsed float32, snapshot []registry.Entry[game_object.GameObject]) *renderer.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := &s.frame
	f.Camera = s.camera.Uniform()
	f.Water = s.water.GPUUniforms()
	f.Floor = s.floor.GPUUniforms()
	f.Card = surface.GPUCardUniforms{Model: s.cardMatrix(), Time: elapsed}
	f.ShowCard = s.cfg.ShowCard

	f.Instances = f.Instances[:0]
	for _, entry := range snapshot {
		obj := entry.Value
		if !obj.Enabled() {
			continue
		}
		f.Instances = append(f.Instances, renderer.Instance{
			Model: obj.ProxyMatrix(),
			Color: obj.Color(),
			Anim:  obj.Anim(),
		})
	}
	return f
}

// cardMatrix places the unit card plane. Caller must hold the mutex.
func (s *sceneAnimator) cardMatrix() mgl32.Mat4 {
	scale := mgl32.Vec3{
		s.cfg.CardWidth * s.cfg.CardScale,
		s.cfg.CardHeight * s.cfg.CardScale,
		s.cfg.CardScale,
	}
	return common.BuildModelMatrix(s.cardPose.Position, s.cardPose.Rotation, scale)
}

func (s *sceneAnimator) OnScroll(e scroll.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Apply(e)
	s.rail.SetPose(s.navigator.Evaluate(s.state.Progress))
	s.camera.Update()

	for _, t := range s.zones.Update(s.state.Progress) {
		if t.Entered {
			s.ui.Show(t.Zone.String())
		} else {
			s.ui.Hide(t.Zone.String())
		}
		if pose, ok := navigator.CardPoseFor(t); ok {
			s.cardPose = pose
		}
	}
}

func (s *sceneAnimator) Scroller() scroll.Scroller {
	return s.scroller
}

func (s *sceneAnimator) Camera() camera.Camera {
	return s.camera
}

func (s *sceneAnimator) Entities() registry.Registry[game_object.GameObject] {
	return s.entities
}

func (s *sceneAnimator) Floor() surface.HeightFieldSurface {
	return s.floor
}

func (s *sceneAnimator) State() scroll.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *sceneAnimator) CardPose() navigator.CardPose {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cardPose
}

func (s *sceneAnimator) Stats() Stats {
	loaded, requested := s.loader.Progress()
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Entities:         s.entities.Len(),
		Fish:             s.fish,
		Corals:           s.corals,
		PlacementSkipped: s.skipped,
		AssetsLoaded:     loaded,
		AssetsRequested:  requested,
		AssetsFailed:     s.failed,
		Progress:         s.state.Progress,
		Elapsed:          s.clock.Elapsed(),
	}
}

package scene

import (
	"errors"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-reef/engine/clock"
	"github.com/Carmen-Shannon/oxy-reef/engine/game_object"
	"github.com/Carmen-Shannon/oxy-reef/engine/locomotion"
	"github.com/Carmen-Shannon/oxy-reef/engine/navigator"
	"github.com/Carmen-Shannon/oxy-reef/engine/renderer"
	"github.com/Carmen-Shannon/oxy-reef/engine/scroll"
	"github.com/Carmen-Shannon/oxy-reef/engine/surface"

	"github.com/go-gl/mathgl/mgl32"
)

const swimmerDocument = `{
  "asset": {"version": "2.0"},
  "scenes": [{"name": "Swimmer", "nodes": [0]}],
  "nodes": [{"name": "body", "mesh": 0}],
  "meshes": [{"primitives": [{"attributes": {"POSITION": 0}}]}],
  "accessors": [
    {"count": 8, "type": "VEC3", "min": [-1, -1, -1], "max": [1, 1, 1]},
    {"count": 30, "type": "SCALAR", "min": [0], "max": [2]},
    {"count": 30, "type": "VEC4"}
  ],
  "animations": [{"name": "Swim", "samplers": [{"input": 1, "output": 2}]}]
}`

const staticDocument = `{"asset": {"version": "2.0"}}`

type fakeRenderer struct {
	mu     sync.Mutex
	meshes map[renderer.MeshKind]*surface.Mesh
	frames []renderer.Frame
	err    error
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{meshes: make(map[renderer.MeshKind]*surface.Mesh)}
}

func (r *fakeRenderer) SetMesh(kind renderer.MeshKind, m *surface.Mesh) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.meshes[kind] = m
	return nil
}

func (r *fakeRenderer) Render(f *renderer.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	copied := *f
	copied.Instances = append([]renderer.Instance(nil), f.Instances...)
	r.frames = append(r.frames, copied)
	return nil
}

func (r *fakeRenderer) last(t *testing.T) renderer.Frame {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		t.Fatal("nothing rendered")
	}
	return r.frames[len(r.frames)-1]
}

type fakeUI struct {
	calls   []string
	visible map[string]bool
}

func newFakeUI() *fakeUI {
	return &fakeUI{visible: make(map[string]bool)}
}

func (u *fakeUI) Show(panelID string) {
	u.calls = append(u.calls, "show "+panelID)
	u.visible[panelID] = true
}

func (u *fakeUI) Hide(panelID string) {
	u.calls = append(u.calls, "hide "+panelID)
	u.visible[panelID] = false
}

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time {
	return f.t
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// testConfig is a small reef with no models and two markers.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.AssetDir = ""
	cfg.FloorSize = 100
	cfg.FloorSegments = 8
	cfg.WaterSize = 100
	cfg.WaterSegments = 4
	cfg.CoralPaths = nil
	cfg.FishPaths = nil
	cfg.Sculptures = nil
	cfg.Markers = []MarkerSpec{
		{Position: mgl32.Vec3{-10, 0, 5}, Height: 5, Color: Hex(0xFF6347)},
		{Position: mgl32.Vec3{20, 0, -15}, Height: 3, Color: Hex(0x4682B4)},
	}
	return cfg
}

type harness struct {
	scene SceneAnimator
	r     *fakeRenderer
	ui    *fakeUI
	clock *fakeTime
}

func newHarness(t *testing.T, cfg Config, options ...SceneAnimatorBuilderOption) *harness {
	t.Helper()
	h := &harness{r: newFakeRenderer(), ui: newFakeUI(), clock: &fakeTime{t: time.Unix(1000, 0)}}
	opts := append([]SceneAnimatorBuilderOption{
		WithConfig(cfg),
		WithLogger(quietLogger()),
		WithUISurface(h.ui),
		WithClock(clock.NewFrameClock(clock.WithTimeSource(h.clock.now))),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	}, options...)
	s, err := NewSceneAnimator(h.r, opts...)
	if err != nil {
		t.Fatalf("NewSceneAnimator: %v", err)
	}
	h.scene = s
	return h
}

func (h *harness) tick(t *testing.T, at time.Duration) {
	t.Helper()
	h.clock.t = time.Unix(1000, 0).Add(at)
	if err := h.scene.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestNewSceneAnimatorNilRenderer(t *testing.T) {
	if _, err := NewSceneAnimator(nil); !errors.Is(err, ErrNilRenderer) {
		t.Fatalf("err = %v, want ErrNilRenderer", err)
	}
}

func TestNewSceneAnimatorUploadsMeshesAndSyncsPanels(t *testing.T) {
	h := newHarness(t, testConfig())

	for _, kind := range []renderer.MeshKind{renderer.MeshFloor, renderer.MeshWater, renderer.MeshCard} {
		if h.r.meshes[kind] == nil {
			t.Errorf("%s mesh not uploaded", kind)
		}
	}
	if !h.scene.Floor().Baked() {
		t.Error("floor not baked")
	}
	if !h.ui.visible[navigator.ZoneIntroVisible.String()] {
		t.Error("intro panel should start visible")
	}
	for _, z := range []navigator.Zone{navigator.ZoneProjectUI, navigator.ZoneContactUI, navigator.ZoneSummitReached} {
		if h.ui.visible[z.String()] {
			t.Errorf("%s should start hidden", z)
		}
	}
}

func TestNewSceneAnimatorInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.ControlPoints = cfg.ControlPoints[:1]
	if _, err := NewSceneAnimator(newFakeRenderer(), WithConfig(cfg), WithLogger(quietLogger())); !errors.Is(err, navigator.ErrTooFewPoints) {
		t.Errorf("err = %v, want ErrTooFewPoints", err)
	}

	cfg = testConfig()
	cfg.FloorSegments = 0
	if _, err := NewSceneAnimator(newFakeRenderer(), WithConfig(cfg), WithLogger(quietLogger())); !errors.Is(err, surface.ErrInvalidGeometry) {
		t.Errorf("err = %v, want ErrInvalidGeometry", err)
	}
}

func TestTickEnablesDrainedEntitiesAndRendersOnce(t *testing.T) {
	h := newHarness(t, testConfig())

	for _, e := range h.scene.Entities().Snapshot() {
		if e.Value.Enabled() {
			t.Fatalf("entity %d enabled before the first tick", e.ID)
		}
	}

	h.tick(t, 0)
	if len(h.r.frames) != 1 {
		t.Fatalf("rendered %d frames, want 1", len(h.r.frames))
	}
	frame := h.r.last(t)
	if len(frame.Instances) != 2 {
		t.Errorf("instances = %d, want 2 markers", len(frame.Instances))
	}
	if !frame.ShowCard {
		t.Error("card should be shown")
	}
	for _, e := range h.scene.Entities().Snapshot() {
		if !e.Value.Enabled() {
			t.Errorf("entity %d not enabled after tick", e.ID)
		}
	}

	h.tick(t, 16*time.Millisecond)
	if len(h.r.frames) != 2 {
		t.Errorf("rendered %d frames after two ticks", len(h.r.frames))
	}
}

func TestTickDrivesUniformsFromClock(t *testing.T) {
	cfg := testConfig()
	h := newHarness(t, cfg)

	h.tick(t, 2*time.Second)
	frame := h.r.last(t)
	if !near(frame.Water.Time, 2*cfg.WaveSpeed) {
		t.Errorf("water time = %v, want %v", frame.Water.Time, 2*cfg.WaveSpeed)
	}
	if !near(frame.Floor.Time, 2) {
		t.Errorf("floor time = %v, want 2", frame.Floor.Time)
	}
	if !near(frame.Card.Time, 2) {
		t.Errorf("card time = %v, want 2", frame.Card.Time)
	}
	if frame.Camera.CameraPosition != h.scene.Camera().Position() {
		t.Errorf("camera uniform position %v != camera %v", frame.Camera.CameraPosition, h.scene.Camera().Position())
	}
	if got := h.scene.Stats().Elapsed; !near(got, 2) {
		t.Errorf("stats elapsed = %v", got)
	}
}

func TestMarkersBobOnTheSeabed(t *testing.T) {
	cfg := testConfig()
	h := newHarness(t, cfg)
	floor := h.scene.Floor()

	for _, at := range []time.Duration{0, 700 * time.Millisecond, 3 * time.Second} {
		h.tick(t, at)
		elapsed := float32(at.Seconds())
		for i, e := range h.scene.Entities().Snapshot() {
			m := cfg.Markers[i]
			base := floor.HeightAt(m.Position.X(), m.Position.Z()) + m.Height/2
			want := base + float32(math.Sin(float64(elapsed+m.Position.X())))*game_object.BobAmplitude
			if got := e.Value.Position().Y(); !near(got, want) {
				t.Errorf("t=%v marker %d y = %v, want %v", at, i, got, want)
			}
		}
	}
}

func TestOnScrollMovesCameraAndDrivesZones(t *testing.T) {
	cfg := testConfig()
	h := newHarness(t, cfg)
	nav, err := navigator.NewPathNavigator(cfg.ControlPoints, navigator.WithCurveType(cfg.CurveType))
	if err != nil {
		t.Fatal(err)
	}

	h.ui.calls = nil
	h.scene.OnScroll(scroll.Event{Offset: 2000, Limit: 10000})
	if got := h.scene.State().Progress; !near(got, 0.2) {
		t.Fatalf("progress = %v, want 0.2", got)
	}
	if !h.scene.Camera().Position().ApproxEqualThreshold(nav.Evaluate(0.2).Position, 1e-3) {
		t.Errorf("camera at %v, want %v", h.scene.Camera().Position(), nav.Evaluate(0.2).Position)
	}
	wantCalls := []string{"hide intro-gesture", "show project-ui"}
	if len(h.ui.calls) != len(wantCalls) {
		t.Fatalf("ui calls = %v, want %v", h.ui.calls, wantCalls)
	}
	for i := range wantCalls {
		if h.ui.calls[i] != wantCalls[i] {
			t.Errorf("ui call %d = %q, want %q", i, h.ui.calls[i], wantCalls[i])
		}
	}

	initial := navigator.CardPose{Position: cfg.CardPosition, Rotation: cfg.CardRotation}
	if h.scene.CardPose() != initial {
		t.Errorf("card moved before the summit: %+v", h.scene.CardPose())
	}

	h.scene.OnScroll(scroll.Event{Offset: 10000, Limit: 10000})
	if !h.ui.visible["summit"] || h.ui.visible["project-ui"] {
		t.Errorf("visible = %v after reaching the summit", h.ui.visible)
	}
	if h.scene.CardPose() != navigator.SummitPose {
		t.Errorf("card pose = %+v, want summit pose", h.scene.CardPose())
	}

	h.scene.OnScroll(scroll.Event{Offset: 5000, Limit: 10000})
	if h.ui.visible["summit"] || !h.ui.visible["contact-ui"] {
		t.Errorf("visible = %v after descending", h.ui.visible)
	}
	if h.scene.CardPose() != navigator.ReturnPose {
		t.Errorf("card pose = %+v, want return pose", h.scene.CardPose())
	}
}

func TestOnScrollRepeatedEventIsSilent(t *testing.T) {
	h := newHarness(t, testConfig())
	h.scene.OnScroll(scroll.Event{Offset: 2000, Limit: 10000})
	h.ui.calls = nil
	h.scene.OnScroll(scroll.Event{Offset: 2000, Limit: 10000})
	if len(h.ui.calls) != 0 {
		t.Errorf("ui calls = %v, want none", h.ui.calls)
	}
}

func TestScrollerFeedsTheCameraDuringTick(t *testing.T) {
	h := newHarness(t, testConfig())

	h.scene.Scroller().Wheel(5000)
	h.tick(t, 0)
	if got := h.scene.State().Progress; !near(got, 0.05) {
		t.Fatalf("progress after one tick = %v, want 0.05", got)
	}
	for i := 1; i < 300; i++ {
		h.tick(t, time.Duration(i)*16*time.Millisecond)
	}
	if got := h.scene.State().Progress; !near(got, 0.5) {
		t.Errorf("progress after settling = %v, want 0.5", got)
	}
}

func TestTickWrapsRenderError(t *testing.T) {
	h := newHarness(t, testConfig())
	boom := errors.New("device lost")
	h.r.err = boom
	if err := h.scene.Tick(); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func writeModel(t *testing.T, dir, name, doc string) {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStartSpawnsLoadedModels(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, "corals/a.gltf", staticDocument)
	writeModel(t, dir, "fish/swimmer.gltf", swimmerDocument)
	writeModel(t, dir, "sculptures/chest.gltf", staticDocument)

	cfg := testConfig()
	cfg.AssetDir = dir
	cfg.CoralPaths = []string{"corals/a.gltf", "corals/missing.gltf"}
	cfg.CoralsPerModel = 3
	cfg.CoralMinDist = 1
	cfg.FishPaths = []string{"fish/swimmer.gltf"}
	cfg.FishPerModel = 2
	cfg.Sculptures = []SculptureSpec{
		{Path: "sculptures/chest.gltf", Position: mgl32.Vec3{5, -20, 5}, Scale: 0.5},
		{Path: "sculptures/missing.gltf"},
	}

	h := newHarness(t, cfg)
	h.scene.Start()
	h.scene.Start()

	done := make(chan struct{})
	go func() {
		h.scene.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("spawning did not finish")
	}

	h.tick(t, time.Second)
	stats := h.scene.Stats()
	if stats.Corals != 3 {
		t.Errorf("corals = %d, want 3 (missing model dropped)", stats.Corals)
	}
	if stats.Fish != 2 {
		t.Errorf("fish = %d, want 2", stats.Fish)
	}
	if stats.PlacementSkipped != 0 {
		t.Errorf("skipped = %d, want 0", stats.PlacementSkipped)
	}
	if stats.AssetsFailed != 2 || stats.AssetsRequested != 5 {
		t.Errorf("assets failed %d of %d requested, want 2 of 5", stats.AssetsFailed, stats.AssetsRequested)
	}
	// 2 markers + 3 corals + 2 fish + 1 chest
	if got := len(h.r.last(t).Instances); got != 8 {
		t.Errorf("instances = %d, want 8", got)
	}

	var fish, corals int
	phases := map[float32]bool{}
	for _, e := range h.scene.Entities().Snapshot() {
		obj := e.Value
		switch obj.Kind() {
		case game_object.KindFish:
			fish++
			if obj.Mixer() == nil {
				t.Fatal("fish without mixer")
			}
			if obj.Roaming() == nil || obj.Roaming().Scale != 10 {
				t.Fatalf("fish roaming body = %+v", obj.Roaming())
			}
			rate := obj.Roaming().Speed / locomotion.CruiseSpeed
			if !near(obj.Mixer().Time(), DefaultNominalDelta*rate) {
				t.Errorf("mixer time = %v, want one nominal step at rate %v", obj.Mixer().Time(), rate)
			}
			phases[obj.Mixer().Phase()] = true
		case game_object.KindCoral:
			corals++
			if obj.ModelIndex() != 0 {
				t.Errorf("coral of model %d spawned", obj.ModelIndex())
			}
			p := obj.Position()
			if want := h.scene.Floor().HeightAt(p.X(), p.Z()); !near(p.Y(), want) {
				t.Errorf("coral y = %v, want ground %v", p.Y(), want)
			}
			if obj.Scale().X() != cfg.CoralScales[0] {
				t.Errorf("coral scale = %v", obj.Scale())
			}
		case game_object.KindSculpture:
			if obj.Position() != (mgl32.Vec3{5, -20, 5}) {
				t.Errorf("sculpture at %v", obj.Position())
			}
		}
	}
	if fish != 2 || corals != 3 {
		t.Errorf("registry holds %d fish and %d corals", fish, corals)
	}

	// Only the fish sway, each with its own mixer's phase.
	var swaying int
	for _, inst := range h.r.last(t).Instances {
		if inst.Anim.Y() == 0 {
			continue
		}
		swaying++
		if inst.Anim.Y() != game_object.SwayAmplitude || !phases[inst.Anim.X()] {
			t.Errorf("instance anim = %v, want a fish phase with amplitude %v", inst.Anim, game_object.SwayAmplitude)
		}
	}
	if swaying != 2 {
		t.Errorf("swaying instances = %d, want 2", swaying)
	}
}

func TestMeasuredDelta(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, "fish.gltf", swimmerDocument)
	cfg := testConfig()
	cfg.AssetDir = dir
	cfg.FishPaths = []string{"fish.gltf"}
	cfg.FishPerModel = 1

	h := newHarness(t, cfg, WithMeasuredDelta(true))
	h.scene.Start()
	h.scene.Wait()

	h.tick(t, 0)
	h.tick(t, 250*time.Millisecond)
	for _, e := range h.scene.Entities().Snapshot() {
		m := e.Value.Mixer()
		if m == nil {
			continue
		}
		want := 0.25 * e.Value.Roaming().Speed / locomotion.CruiseSpeed
		if !near(m.Time(), want) {
			t.Errorf("mixer time = %v, want %v", m.Time(), want)
		}
	}
}

func TestRoamingDistanceFollowsDelta(t *testing.T) {
	tests := []struct {
		name      string
		measured  bool
		wantRatio float64
	}{
		{"nominal delta", false, 1},
		{"measured delta", true, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeModel(t, dir, "fish.gltf", swimmerDocument)
			cfg := testConfig()
			cfg.AssetDir = dir
			cfg.FishPaths = []string{"fish.gltf"}
			cfg.FishPerModel = 1

			h := newHarness(t, cfg, WithMeasuredDelta(tt.measured))
			h.scene.Start()
			h.scene.Wait()
			h.tick(t, 0)

			snap := h.scene.Entities().Snapshot()
			var body *locomotion.RoamingEntity
			for _, e := range snap {
				if r := e.Value.Roaming(); r != nil {
					body = r
				}
			}
			if body == nil {
				t.Fatal("no roaming fish spawned")
			}

			step := func(at time.Duration) float64 {
				before := body.Position
				h.tick(t, at)
				return float64(body.Position.Sub(before).Len())
			}
			short := step(16 * time.Millisecond)
			long := step(176 * time.Millisecond)

			want := float64(body.Speed * locomotion.DefaultDeltaScale)
			if math.Abs(short-want) > want*0.01 {
				t.Errorf("distance over a nominal frame = %v, want %v", short, want)
			}
			if ratio := long / short; math.Abs(ratio-tt.wantRatio) > 0.05 {
				t.Errorf("distance ratio for a 10x frame = %v, want %v", ratio, tt.wantRatio)
			}
		})
	}
}

func TestHex(t *testing.T) {
	c := Hex(0xFF8000)
	if !near(c[0], 1) || !near(c[1], 128.0/255) || c[2] != 0 || c[3] != 1 {
		t.Errorf("Hex(0xFF8000) = %v", c)
	}
}

func TestLogUISurface(t *testing.T) {
	ui := NewLogUISurface(quietLogger())
	ui.Show("summit")
	if !ui.Visible("summit") {
		t.Error("summit not visible after Show")
	}
	ui.Hide("summit")
	ui.Hide("summit")
	if ui.Visible("summit") {
		t.Error("summit visible after Hide")
	}
}

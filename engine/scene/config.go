package scene

import (
	"math"
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-reef/engine/navigator"
	"github.com/Carmen-Shannon/oxy-reef/engine/noise"
	"github.com/Carmen-Shannon/oxy-reef/engine/placer"
	"github.com/Carmen-Shannon/oxy-reef/engine/surface"

	"github.com/go-gl/mathgl/mgl32"
)

// SculptureSpec places one hand-positioned model.
type SculptureSpec struct {
	Path     string
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    float32
	Color    mgl32.Vec4
}

// MarkerSpec is a project or skill coral colony. It stands on the seabed at (X, Z) and bobs
// around the middle of its column.
type MarkerSpec struct {
	Position mgl32.Vec3 // Y is ignored; the seabed height is used
	Height   float32
	Color    mgl32.Vec4
}

// Config holds every tunable of the reef scene.
type Config struct {
	// AssetDir is joined onto every relative model path.
	AssetDir string

	Seed         int64
	NoiseBackend noise.NoiseBackendType

	FloorSize      float32
	FloorSegments  int
	FloorDepth     float32
	FloorElevation float32
	FloorFrequency float32

	WaterSize      float32
	WaterSegments  int
	WaterLevel     float32
	WaveAmplitude  float32
	WaveSpeed      float32
	WaveNoiseScale float32

	SunPosition mgl32.Vec3

	ControlPoints []mgl32.Vec3
	CurveType     navigator.CurveType

	// ScrollLimit is the scroll range in offset units; WheelStep is the offset of one wheel notch
	// or arrow-key step.
	ScrollLimit float32
	ScrollLerp  float32
	WheelStep   float32

	CoralPaths     []string
	CoralScales    []float32
	CoralColors    []mgl32.Vec4
	CoralsPerModel int
	CoralMinDist   float32
	CoralAttempts  int
	CoralGridIndex bool

	FishPaths    []string
	FishScales   []float32
	FishColors   []mgl32.Vec4
	FishPerModel int

	Sculptures []SculptureSpec
	Markers    []MarkerSpec

	CardPosition mgl32.Vec3
	CardRotation mgl32.Vec3
	CardScale    float32
	CardWidth    float32
	CardHeight   float32
	ShowCard     bool
}

// Hex converts a 0xRRGGBB value into an opaque RGBA color.
//
// Parameters:
//   - hex: the packed color
//
// Returns:
//   - mgl32.Vec4: the color with components in [0, 1]
func Hex(hex uint32) mgl32.Vec4 {
	return mgl32.Vec4{
		float32((hex>>16)&0xFF) / 255,
		float32((hex>>8)&0xFF) / 255,
		float32(hex&0xFF) / 255,
		1,
	}
}

// DefaultConfig returns the reef as it ships: nine coral models, two fish models, the treasure
// chest and crown, four marker colonies and the intro card.
//
// Returns:
//   - Config: the default configuration
func DefaultConfig() Config {
	project := Hex(0xFF6347)
	skill := Hex(0x4682B4)

	return Config{
		AssetDir:       "assets",
		NoiseBackend:   noise.BackendTypeSimplex,
		FloorSize:      500,
		FloorSegments:  128,
		FloorDepth:     -25,
		FloorElevation: 3,
		FloorFrequency: 0.05,
		WaterSize:      500,
		WaterSegments:  128,
		WaterLevel:     0,
		WaveAmplitude:  0.75,
		WaveSpeed:      1.2,
		WaveNoiseScale: 0.15,
		SunPosition:    surface.DefaultSunPosition,
		ControlPoints:  navigator.DefaultControlPoints,
		CurveType:      navigator.CurveTypeBSpline,
		ScrollLimit:    10000,
		ScrollLerp:     0.1,
		WheelStep:      100,
		CoralPaths: []string{
			"corals/crescent_moon_coral.glb",
			"corals/coral_piece.glb",
			"corals/coral_reef_3_l.glb",
			"corals/coral_tree.glb",
			"corals/coral_azul.glb",
			"corals/coral_flower.glb",
			"corals/coral_l.glb",
			"corals/coral-coral_roof.glb",
			"corals/corals.glb",
		},
		CoralScales: placer.DefaultCoralScales,
		CoralColors: []mgl32.Vec4{
			Hex(0xF4A3B4), Hex(0xE86A5C), Hex(0xC94F7C),
			Hex(0x9C6ADE), Hex(0x3A8DDE), Hex(0xF2C14E),
			Hex(0xE07A3F), Hex(0x7FB77E), Hex(0xD96C9A),
		},
		CoralsPerModel: 20,
		CoralMinDist:   10,
		CoralAttempts:  100,
		FishPaths: []string{
			"fish/fish_1.glb",
			"fish/fish_2.glb",
		},
		FishScales:   []float32{10, 5},
		FishColors:   []mgl32.Vec4{Hex(0xFFA500), Hex(0xFFE066)},
		FishPerModel: 20,
		Sculptures: []SculptureSpec{
			{
				Path:     "sculptures/treasure.glb",
				Position: mgl32.Vec3{52, -20, 46},
				Rotation: mgl32.Vec3{0, math.Pi / 4, 0},
				Scale:    0.04,
				Color:    Hex(0x8B5A2B),
			},
			{
				Path:     "sculptures/crown.glb",
				Position: surface.DefaultSunPosition,
				Rotation: mgl32.Vec3{0, -math.Pi / 2, 0},
				Scale:    2,
				Color:    Hex(0xFFD700),
			},
		},
		Markers: []MarkerSpec{
			{Position: mgl32.Vec3{-50, 0, -20}, Height: 5, Color: project},
			{Position: mgl32.Vec3{0, 0, -60}, Height: 5, Color: project},
			{Position: mgl32.Vec3{50, 0, -100}, Height: 3, Color: skill},
			{Position: mgl32.Vec3{-30, 0, -140}, Height: 3, Color: skill},
		},
		CardPosition: mgl32.Vec3{70, 110, 71},
		CardRotation: mgl32.Vec3{0, math.Pi / 4, 0},
		CardScale:    5,
		CardWidth:    4,
		CardHeight:   2.52,
		ShowCard:     true,
	}
}

// resolve joins AssetDir onto a relative model path.
func (c *Config) resolve(path string) string {
	if c.AssetDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.AssetDir, path)
}

func (c *Config) resolveAll(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = c.resolve(p)
	}
	return out
}

// scaleAt returns scales[i], falling back to 1 when the list is short.
func scaleAt(scales []float32, i int) float32 {
	if i < len(scales) && scales[i] > 0 {
		return scales[i]
	}
	return 1
}

// colorAt returns colors[i], falling back to white when the list is short.
func colorAt(colors []mgl32.Vec4, i int) mgl32.Vec4 {
	if i < len(colors) {
		return colors[i]
	}
	return mgl32.Vec4{1, 1, 1, 1}
}

package placer

import (
	"log"
	"math"
	"math/rand/v2"
	"os"
	"sync"

	"github.com/Carmen-Shannon/oxy-reef/common"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultCoralScales are the per-model uniform scales of the nine decorative coral models.
var DefaultCoralScales = []float32{20, 1.6, 6.8, 0.7, 1.6, 1.8, 5.7, 0.1, 2.7}

// PlacementRecord is one accepted decorative instance.
type PlacementRecord struct {
	ModelIndex int
	Position   mgl32.Vec2 // world (x, z)
	WorldY     float32
}

// HeightSampler returns the world height of the ground at world (x, z).
type HeightSampler interface {
	HeightAt(x, z float32) float32
}

// HeightSamplerFunc adapts a plain function to HeightSampler.
type HeightSamplerFunc func(x, z float32) float32

// HeightAt calls f(x, z).
func (f HeightSamplerFunc) HeightAt(x, z float32) float32 {
	return f(x, z)
}

// InstancePlacer scatters decorative instances by rejection sampling so that no two accepted
// positions, across all models, are closer than a minimum distance.
type InstancePlacer interface {
	// Place runs one scatter pass. For every model and slot it draws uniform candidates in
	// [-domainSize*0.4, domainSize*0.4]^2 until one keeps minDistance to every accepted position
	// or maxAttemptsPerInstance candidates were rejected; an exhausted slot is logged and skipped.
	// Once the domain cannot hold another instance at minDistance the remaining slots are skipped
	// together.
	// Invalid arguments produce an empty result.
	//
	// Parameters:
	//   - modelCount: number of distinct models
	//   - instancesPerModel: slots per model
	//   - domainSize: edge length of the ground the instances are spread over
	//   - minDistance: minimum horizontal distance between any two instances
	//   - maxAttemptsPerInstance: candidate budget per slot
	//
	// Returns:
	//   - []PlacementRecord: accepted instances in model then slot order
	Place(modelCount, instancesPerModel int, domainSize, minDistance float32, maxAttemptsPerInstance int) []PlacementRecord

	// Skipped returns how many slots the most recent Place call could not fill.
	//
	// Returns:
	//   - int: exhausted slot count
	Skipped() int
}

type instancePlacer struct {
	mu *sync.Mutex

	sampler      HeightSampler
	rng          *rand.Rand
	spatialIndex bool
	logger       *log.Logger

	skipped int
}

var _ InstancePlacer = &instancePlacer{}

// NewInstancePlacer creates a placer that rests instances on the given ground. A nil sampler
// places everything at height 0.
//
// Parameters:
//   - sampler: ground height lookup (typically a seabed surface)
//   - options: functional options to configure the placer
//
// Returns:
//   - InstancePlacer: the placer
func NewInstancePlacer(sampler HeightSampler, options ...InstancePlacerBuilderOption) InstancePlacer {
	p := &instancePlacer{
		mu:      &sync.Mutex{},
		sampler: sampler,
		logger:  log.New(os.Stderr, "[PLACER] ", log.LstdFlags),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *instancePlacer) Place(modelCount, instancesPerModel int, domainSize, minDistance float32, maxAttemptsPerInstance int) []PlacementRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.skipped = 0

	if modelCount <= 0 || instancesPerModel <= 0 || maxAttemptsPerInstance <= 0 {
		return nil
	}
	if !(domainSize > 0) || !common.Finite(float64(domainSize)) || !(minDistance >= 0) || !common.Finite(float64(minDistance)) {
		return nil
	}

	half := domainSize * 0.4
	var index occupancy
	if p.spatialIndex && minDistance > 0 {
		index = newGridIndex(minDistance)
	} else {
		index = &linearIndex{}
	}

	total := slotCount(modelCount, instancesPerModel)
	capacity := packingCapacity(2*half, minDistance)
	records := make([]PlacementRecord, 0, min(total, capacity, maxPrealloc))
	visited := 0
fill:
	for model := 0; model < modelCount; model++ {
		for slot := 0; slot < instancesPerModel; slot++ {
			if len(records) >= capacity {
				remaining := total - visited
				p.skipped += remaining
				p.logger.Printf("could not place the remaining %d instances: at most %d fit %v apart", remaining, capacity, minDistance)
				break fill
			}
			visited++
			pos, ok := p.sample(index, half, minDistance, maxAttemptsPerInstance)
			if !ok {
				p.skipped++
				p.logger.Printf("could not place instance %d of model %d without overlap after %d attempts", slot, model, maxAttemptsPerInstance)
				continue
			}
			index.insert(pos)
			records = append(records, PlacementRecord{
				ModelIndex: model,
				Position:   pos,
				WorldY:     p.heightAt(pos),
			})
		}
	}

	if p.skipped > 0 {
		p.logger.Printf("placed %d of %d instances (%d slots skipped)", len(records), total, p.skipped)
	}
	return records
}

// maxPrealloc bounds the record slice allocated up front.
const maxPrealloc = 1024

// slotCount returns models*perModel, saturating at math.MaxInt.
func slotCount(models, perModel int) int {
	if perModel > math.MaxInt/models {
		return math.MaxInt
	}
	return models * perModel
}

// packingCapacity bounds how many points can keep minDistance from each other inside a square of
// the given side: discs of radius minDistance/2 around them are disjoint and lie within a square of
// side+minDistance.
func packingCapacity(side, minDistance float32) int {
	if minDistance <= 0 {
		return math.MaxInt
	}
	s, d := float64(side), float64(minDistance)
	n := math.Floor((s+d)*(s+d)*4/(math.Pi*d*d) + 1e-9)
	if n >= math.MaxInt32 {
		return math.MaxInt
	}
	return max(int(n), 1)
}

func (p *instancePlacer) Skipped() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.skipped
}

// sample draws candidates until one is far enough from every occupied position.
// Caller must hold the mutex.
func (p *instancePlacer) sample(index occupancy, half, minDistance float32, attempts int) (mgl32.Vec2, bool) {
	for range attempts {
		c := mgl32.Vec2{
			(p.uniform() - 0.5) * 2 * half,
			(p.uniform() - 0.5) * 2 * half,
		}
		if !index.conflicts(c, minDistance) {
			return c, true
		}
	}
	return mgl32.Vec2{}, false
}

func (p *instancePlacer) uniform() float32 {
	if p.rng != nil {
		return p.rng.Float32()
	}
	return rand.Float32()
}

func (p *instancePlacer) heightAt(pos mgl32.Vec2) float32 {
	if p.sampler == nil {
		return 0
	}
	return p.sampler.HeightAt(pos[0], pos[1])
}

// Transforms turns placement records into instance model matrices. Each instance is scaled
// uniformly by scales[ModelIndex], or 1 when the model has no positive entry.
//
// Parameters:
//   - records: accepted placements
//   - scales: per-model uniform scale
//
// Returns:
//   - []mgl32.Mat4: one model matrix per record, in record order
func Transforms(records []PlacementRecord, scales []float32) []mgl32.Mat4 {
	out := make([]mgl32.Mat4, len(records))
	for i, r := range records {
		s := float32(1)
		if r.ModelIndex >= 0 && r.ModelIndex < len(scales) && scales[r.ModelIndex] > 0 {
			s = scales[r.ModelIndex]
		}
		out[i] = common.BuildModelMatrix(
			mgl32.Vec3{r.Position[0], r.WorldY, r.Position[1]},
			mgl32.Vec3{},
			mgl32.Vec3{s, s, s},
		)
	}
	return out
}

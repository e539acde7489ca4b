package loader

import (
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-reef/engine/animator"

	"github.com/go-gl/mathgl/mgl32"
)

// gltfImporterImpl is the implementation of the gltfImporter interface.
type gltfImporterImpl struct{}

// gltfImporter summarizes a glTF document into an Asset.
type gltfImporter interface {
	// Import parses the file at path and summarizes it.
	//
	// Parameters:
	//   - path: the glTF/GLB file
	//
	// Returns:
	//   - *Asset: the summary
	//   - error: error if parsing fails
	Import(path string) (*Asset, error)
}

var _ gltfImporter = &gltfImporterImpl{}

// newGLTFImporter creates a new glTF importer.
//
// Returns:
//   - gltfImporter: the importer
func newGLTFImporter() gltfImporter {
	return &gltfImporterImpl{}
}

func (imp *gltfImporterImpl) Import(path string) (*Asset, error) {
	parser := newGLTFParser()
	if err := parser.Parse(path); err != nil {
		return nil, err
	}
	return imp.importFromParser(parser, path)
}

func (imp *gltfImporterImpl) importFromParser(parser gltfParser, path string) (*Asset, error) {
	doc := parser.Document()
	asset := &Asset{
		Path:      path,
		Name:      gltfExtractModelName(doc, path),
		MeshCount: len(doc.Meshes),
		NodeCount: len(doc.Nodes),
		SkinCount: len(doc.Skins),
	}

	boundsSet := false
	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			asset.PrimitiveCount++
			idx, ok := prim.Attributes[gltfAttributePosition]
			if !ok {
				continue
			}
			acc, err := parser.Accessor(idx)
			if err != nil {
				return nil, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
			asset.VertexCount += acc.Count
			if len(acc.Min) < 3 || len(acc.Max) < 3 {
				continue
			}
			lo := mgl32.Vec3{acc.Min[0], acc.Min[1], acc.Min[2]}
			hi := mgl32.Vec3{acc.Max[0], acc.Max[1], acc.Max[2]}
			if !boundsSet {
				asset.BoundsMin, asset.BoundsMax = lo, hi
				boundsSet = true
				continue
			}
			for i := range 3 {
				asset.BoundsMin[i] = min(asset.BoundsMin[i], lo[i])
				asset.BoundsMax[i] = max(asset.BoundsMax[i], hi[i])
			}
		}
	}

	for ai, anim := range doc.Animations {
		clip, err := gltfSummarizeAnimation(parser, ai, anim)
		if err != nil {
			return nil, err
		}
		asset.Clips = append(asset.Clips, clip)
	}

	return asset, nil
}

// gltfSummarizeAnimation names a clip and takes its duration as the latest keyframe time over
// all of its samplers.
func gltfSummarizeAnimation(parser gltfParser, index int, anim gltfAnimation) (animator.Clip, error) {
	clip := animator.Clip{Name: anim.Name}
	if clip.Name == "" {
		clip.Name = fmt.Sprintf("animation_%d", index)
	}
	for si, s := range anim.Samplers {
		acc, err := parser.Accessor(s.Input)
		if err != nil {
			return clip, fmt.Errorf("animation %d sampler %d: %w", index, si, err)
		}
		if len(acc.Max) > 0 && !math.IsNaN(float64(acc.Max[0])) {
			clip.Duration = max(clip.Duration, acc.Max[0])
		}
	}
	return clip, nil
}

// gltfExtractModelName derives a model name from the default scene or a file path fallback.
func gltfExtractModelName(doc *gltfDocument, fallbackPath string) string {
	if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
		if name := doc.Scenes[*doc.Scene].Name; name != "" {
			return name
		}
	}

	if fallbackPath != "" {
		return fallbackPath
	}

	return "unnamed_model"
}

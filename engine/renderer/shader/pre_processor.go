// pre_processor.go implements the Oxy WGSL shader pre-processor. It scans shader source for
// @oxy:include annotations and replaces each with the registered WGSL fragment, so uniform
// struct layouts live next to the Go types that marshal them.
package shader

import (
	"fmt"
	"maps"
	"strings"

	"github.com/Carmen-Shannon/oxy-reef/engine/camera"
	"github.com/Carmen-Shannon/oxy-reef/engine/surface"
)

// Include names registered by default.
const (
	IncludeCamera        = "camera"
	IncludeWaveUniforms  = "wave_uniforms"
	IncludeFloorUniforms = "floor_uniforms"
	IncludeCardUniforms  = "card_uniforms"
	IncludeSimplexNoise  = "snoise"
)

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// registry maps include names to the WGSL source injected in their place.
	registry map[string]string
}

// PreProcessor expands @oxy:include annotations in WGSL source.
type PreProcessor interface {
	// Process replaces every @oxy:include line with the registered fragment. Each fragment is
	// injected at most once per shader; repeated includes are dropped.
	//
	// Parameters:
	//   - source: the raw WGSL shader source code
	//
	// Returns:
	//   - string: the processed WGSL source
	//   - error: an error if an annotation is malformed or names an unknown include
	Process(source string) (string, error)

	// Includes returns the registered include names and sources.
	Includes() map[string]string
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the engine's uniform structs and noise helpers
// registered, plus any extra includes supplied as options.
//
// Parameters:
//   - options: functional options such as WithInclude
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor instance
func NewPreProcessor(options ...PreProcessorBuilderOption) PreProcessor {
	p := &preProcessor{
		registry: map[string]string{
			IncludeCamera:        camera.GPUCameraUniformSource,
			IncludeWaveUniforms:  surface.GPUWaveUniformsSource,
			IncludeFloorUniforms: surface.GPUFloorUniformsSource,
			IncludeCardUniforms:  surface.GPUCardUniformsSource,
			IncludeSimplexNoise:  surface.SimplexNoiseSource,
		},
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *preProcessor) Process(source string) (string, error) {
	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))
	seen := make(map[string]bool)

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case AnnotationTypeInclude:
			name := a.Args[0]
			src, ok := p.registry[name]
			if !ok {
				return "", fmt.Errorf("line %d: unknown @oxy:include argument %q", i+1, name)
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, src)
		default:
			return "", fmt.Errorf("line %d: unknown annotation type %q", i+1, a.Type)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Includes() map[string]string {
	return maps.Clone(p.registry)
}

// PreProcessorBuilderOption is a functional option for configuring a PreProcessor.
type PreProcessorBuilderOption func(*preProcessor)

// WithInclude registers or replaces an include.
//
// Parameters:
//   - name: the name used after @oxy:include
//   - source: the WGSL text injected in its place
//
// Returns:
//   - PreProcessorBuilderOption: a function that registers the include
func WithInclude(name, source string) PreProcessorBuilderOption {
	return func(p *preProcessor) {
		p.registry[name] = source
	}
}

package shader

import (
	"fmt"
)

// Default entry point names used by every engine shader.
const (
	DefaultVertexEntryPoint   = "vs_main"
	DefaultFragmentEntryPoint = "fs_main"
)

// shader is the implementation of the Shader interface.
type shader struct {
	key                string
	source             string
	vertexEntryPoint   string
	fragmentEntryPoint string
}

// Shader is a pre-processed WGSL module holding both the vertex and fragment stages.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for caching and lookups.
	Key() string

	// Source retrieves the processed WGSL source code.
	Source() string

	// VertexEntryPoint returns the vertex stage entry point name.
	VertexEntryPoint() string

	// FragmentEntryPoint returns the fragment stage entry point name.
	FragmentEntryPoint() string
}

var _ Shader = &shader{}

// NewShader pre-processes raw WGSL and wraps it as a Shader using the default entry points.
//
// Parameters:
//   - key: the unique shader key
//   - raw: the WGSL source containing @oxy: annotations
//   - pp: the pre-processor used to expand includes
//
// Returns:
//   - Shader: the processed shader
//   - error: an error if pre-processing fails
func NewShader(key, raw string, pp PreProcessor) (Shader, error) {
	src, err := pp.Process(raw)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", key, err)
	}
	return &shader{
		key:                key,
		source:             src,
		vertexEntryPoint:   DefaultVertexEntryPoint,
		fragmentEntryPoint: DefaultFragmentEntryPoint,
	}, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) VertexEntryPoint() string {
	return s.vertexEntryPoint
}

func (s *shader) FragmentEntryPoint() string {
	return s.fragmentEntryPoint
}

package renderer

// SceneRendererBuilderOption is a functional option applied to a scene renderer via NewSceneRenderer.
type SceneRendererBuilderOption func(*sceneRenderer)

// WithMaxInstances sets the proxy instance buffer capacity. Frames with more instances draw the
// first n.
//
// Parameters:
//   - n: the capacity; non-positive values are ignored
//
// Returns:
//   - SceneRendererBuilderOption: a function that applies the capacity to a scene renderer
func WithMaxInstances(n int) SceneRendererBuilderOption {
	return func(s *sceneRenderer) {
		if n > 0 {
			s.maxInstances = n
		}
	}
}

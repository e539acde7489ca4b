package loader

// loaderBackend defines the generic interface for loading models from files.
// Concrete implementations (e.g., gltfLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Load imports the model at path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - *Asset: the imported asset summary
	//   - error: error if loading fails
	Load(path string) (*Asset, error)
}

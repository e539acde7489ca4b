package noise

// NoiseFieldBuilderOption is a functional option for configuring a NoiseField during construction.
type NoiseFieldBuilderOption func(*noiseField)

// WithSeed sets the seed of the underlying gradient noise. Fields sharing a backend, seed and
// octave configuration return bit-identical samples.
//
// Parameters:
//   - seed: the generator seed
//
// Returns:
//   - NoiseFieldBuilderOption: a function that applies the seed option
func WithSeed(seed int64) NoiseFieldBuilderOption {
	return func(n *noiseField) {
		n.seed = seed
	}
}

// WithOctaves sets how many octaves are layered. Each octave doubles the frequency and is
// weighted by persistence^i; the sum is normalized by the total weight. Values < 1 become 1.
//
// Parameters:
//   - octaves: the number of octaves
//
// Returns:
//   - NoiseFieldBuilderOption: a function that applies the octave option
func WithOctaves(octaves int) NoiseFieldBuilderOption {
	return func(n *noiseField) {
		n.octaves = octaves
	}
}

// WithPersistence sets the amplitude falloff between octaves.
//
// Parameters:
//   - persistence: amplitude multiplier per octave (typically 0.5)
//
// Returns:
//   - NoiseFieldBuilderOption: a function that applies the persistence option
func WithPersistence(persistence float64) NoiseFieldBuilderOption {
	return func(n *noiseField) {
		n.persistence = persistence
	}
}

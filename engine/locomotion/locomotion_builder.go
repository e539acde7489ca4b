package locomotion

// RoamingEntityBuilderOption is a functional option applied to a freshly spawned RoamingEntity.
type RoamingEntityBuilderOption func(*RoamingEntity)

// WithModelIndex records which model the entity renders with.
//
// Parameters:
//   - index: the model index
//
// Returns:
//   - RoamingEntityBuilderOption: a function that applies the model index
func WithModelIndex(index int) RoamingEntityBuilderOption {
	return func(e *RoamingEntity) {
		e.ModelIndex = index
	}
}

// WithScale sets the uniform render scale.
//
// Parameters:
//   - scale: the scale factor
//
// Returns:
//   - RoamingEntityBuilderOption: a function that applies the scale
func WithScale(scale float32) RoamingEntityBuilderOption {
	return func(e *RoamingEntity) {
		e.Scale = scale
	}
}

// WithAnimation attaches a playback handle built for the entity's rolled speed, so faster fish
// play their clip faster.
//
// Parameters:
//   - build: creates the animation state from the playback rate Speed / CruiseSpeed
//
// Returns:
//   - RoamingEntityBuilderOption: a function that applies the animation
func WithAnimation(build func(rate float32) AnimationState) RoamingEntityBuilderOption {
	return func(e *RoamingEntity) {
		e.Animation = build(e.Speed / CruiseSpeed)
	}
}

package animator

// MixerBuilderOption is a functional option for configuring a Mixer.
type MixerBuilderOption func(*mixer)

// WithAutoplay starts looping the clip picked by SelectClip(clips, keyword). Nothing plays if the
// mixer has no clips.
//
// Parameters:
//   - keyword: the clip name fragment to prefer
//
// Returns:
//   - MixerBuilderOption: a function that starts playback
func WithAutoplay(keyword string) MixerBuilderOption {
	return func(m *mixer) {
		if i := SelectClip(m.clips, keyword); i >= 0 {
			m.clip = i
			m.loop = true
		}
	}
}

// WithSpeed sets the initial playback speed multiplier.
//
// Parameters:
//   - speed: the multiplier
//
// Returns:
//   - MixerBuilderOption: a function that applies the speed
func WithSpeed(speed float32) MixerBuilderOption {
	return func(m *mixer) {
		m.speed = speed
	}
}

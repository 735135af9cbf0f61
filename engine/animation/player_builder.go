package animation

// PlayerBuilderOption is a functional option for configuring a Player via NewPlayer.
type PlayerBuilderOption func(*player)

// WithPreferredDefault names the animation that should end up active once it loads,
// regardless of which animation registered first. When it registers after another
// animation already became active, the player transitions to it using the default fade.
// Without this option the first registered animation stays the default.
//
// Parameters:
//   - name: the preferred default animation
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithPreferredDefault(name string) PlayerBuilderOption {
	return func(p *player) {
		p.preferredDefault = name
	}
}

// WithDefaultFade sets the fade duration used when switching to the preferred default (default 0, instant).
//
// Parameters:
//   - seconds: the fade duration
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithDefaultFade(seconds float32) PlayerBuilderOption {
	return func(p *player) {
		p.defaultFade = seconds
	}
}

// WithActiveChanged registers a callback fired whenever a different animation becomes active.
//
// Parameters:
//   - callback: function receiving the newly active name
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithActiveChanged(callback func(name string)) PlayerBuilderOption {
	return func(p *player) {
		p.onActiveChanged = callback
	}
}

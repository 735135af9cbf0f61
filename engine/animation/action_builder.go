package animation

// ActionBuilderOption is a functional option for configuring an Action via NewAction.
type ActionBuilderOption func(*action)

// WithName overrides the action name, which otherwise defaults to the clip name.
//
// Parameters:
//   - name: the registry name
//
// Returns:
//   - ActionBuilderOption: option function to apply
func WithName(name string) ActionBuilderOption {
	return func(a *action) {
		a.name = name
	}
}

// WithSkeleton binds the action to a shared skeleton.
//
// Parameters:
//   - s: the skeleton the clip drives
//
// Returns:
//   - ActionBuilderOption: option function to apply
func WithSkeleton(s *Skeleton) ActionBuilderOption {
	return func(a *action) {
		a.skeleton = s
	}
}

// WithLoop sets whether playback wraps at the end of the clip (default true).
//
// Parameters:
//   - loop: true to loop
//
// Returns:
//   - ActionBuilderOption: option function to apply
func WithLoop(loop bool) ActionBuilderOption {
	return func(a *action) {
		a.loop = loop
	}
}

// WithTimeScale sets the initial playback speed multiplier (default 1).
//
// Parameters:
//   - scale: the time scale
//
// Returns:
//   - ActionBuilderOption: option function to apply
func WithTimeScale(scale float32) ActionBuilderOption {
	return func(a *action) {
		a.timeScale = scale
	}
}

package animation

import (
	"github.com/chewxy/math32"
)

// fadeState is the in-flight weight interpolation of an action.
type fadeState struct {
	active            bool
	from, to          float32
	duration, elapsed float32
}

// action is the implementation of the Action interface.
type action struct {
	name     string
	clip     *Clip
	skeleton *Skeleton

	weight, timeScale, time float32
	playing, loop           bool

	fade fadeState
}

// Action is a controllable playback instance of a Clip bound to a shared Skeleton.
//
// An Action owns its own weight, time scale, playback time and play state. Weight fades are
// advanced by Update together with playback time, so an Action driven by a Player needs no
// other clock.
type Action interface {
	// Name returns the registry name of the action.
	//
	// Returns:
	//   - string: the name the action was created with
	Name() string

	// Clip returns the clip this action plays.
	//
	// Returns:
	//   - *Clip: the source clip
	Clip() *Clip

	// Skeleton returns the skeleton the clip is bound to, or nil for unbound actions.
	//
	// Returns:
	//   - *Skeleton: the shared skeletal target
	Skeleton() *Skeleton

	// Weight returns the current effective blend weight in [0, 1].
	//
	// Returns:
	//   - float32: the blend weight
	Weight() float32

	// TimeScale returns the effective playback speed multiplier.
	//
	// Returns:
	//   - float32: the time scale (1 = normal speed)
	TimeScale() float32

	// Time returns the local playback position in seconds.
	//
	// Returns:
	//   - float32: the playback time
	Time() float32

	// IsPlaying reports whether Update advances the action.
	//
	// Returns:
	//   - bool: true while the action plays
	IsPlaying() bool

	// IsFading reports whether a weight fade is in flight.
	//
	// Returns:
	//   - bool: true while fading
	IsFading() bool

	// Play starts or resumes playback from the current time.
	Play()

	// Stop halts playback, cancels any fade and drops the weight to zero so the action
	// has no influence on the blended pose.
	Stop()

	// Reset rewinds playback time to zero and cancels any fade. Weight and time scale are kept.
	Reset()

	// SetEffectiveWeight sets the blend weight immediately, cancelling any fade.
	// Values are clamped to [0, 1].
	//
	// Parameters:
	//   - weight: the new weight
	SetEffectiveWeight(weight float32)

	// SetEffectiveTimeScale sets the playback speed multiplier.
	//
	// Parameters:
	//   - scale: the new time scale
	SetEffectiveTimeScale(scale float32)

	// FadeIn schedules the weight to rise from 0 to the current effective weight over duration.
	// A non-positive duration leaves the weight where it is.
	//
	// Parameters:
	//   - duration: fade length in seconds
	FadeIn(duration float32)

	// FadeOut schedules the weight to fall from its current value to 0 over duration.
	// Once the fade completes the action stops. A non-positive duration stops it at once.
	//
	// Parameters:
	//   - duration: fade length in seconds
	FadeOut(duration float32)

	// Update advances playback time and fade progress.
	//
	// Parameters:
	//   - deltaTime: elapsed seconds since the previous update; negative values count as zero
	Update(deltaTime float32)
}

var _ Action = &action{}

// NewAction creates an Action for the given clip.
// The action starts stopped, at time zero, weight 1, time scale 1, looping.
//
// Parameters:
//   - clip: the clip to play (must not be nil)
//   - options: functional options to configure the action
//
// Returns:
//   - Action: the new action
func NewAction(clip *Clip, options ...ActionBuilderOption) Action {
	if clip == nil {
		panic("animation: NewAction requires a non-nil Clip")
	}
	a := &action{
		name:      clip.Name,
		clip:      clip,
		weight:    1,
		timeScale: 1,
		loop:      true,
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// NewClipAction creates an Action for clip bound to skeleton, named after the clip.
// It rejects clips that animate none of the skeleton's joints.
//
// Parameters:
//   - name: the registry name for the action
//   - clip: the clip to play
//   - skeleton: the shared skeletal target (nil skips the binding check)
//
// Returns:
//   - Action: the bound action
//   - error: ErrClipMismatch if the clip cannot drive the skeleton
func NewClipAction(name string, clip *Clip, skeleton *Skeleton) (Action, error) {
	if skeleton != nil {
		if _, err := skeleton.Bind(clip); err != nil {
			return nil, err
		}
	}
	return NewAction(clip, WithName(name), WithSkeleton(skeleton)), nil
}

func (a *action) Name() string {
	return a.name
}

func (a *action) Clip() *Clip {
	return a.clip
}

func (a *action) Skeleton() *Skeleton {
	return a.skeleton
}

func (a *action) Weight() float32 {
	return a.weight
}

func (a *action) TimeScale() float32 {
	return a.timeScale
}

func (a *action) Time() float32 {
	return a.time
}

func (a *action) IsPlaying() bool {
	return a.playing
}

func (a *action) IsFading() bool {
	return a.fade.active
}

func (a *action) Play() {
	a.playing = true
}

func (a *action) Stop() {
	a.playing = false
	a.fade = fadeState{}
	a.weight = 0
}

func (a *action) Reset() {
	a.time = 0
	a.fade = fadeState{}
}

func (a *action) SetEffectiveWeight(weight float32) {
	a.fade = fadeState{}
	a.weight = clampWeight(weight)
}

func (a *action) SetEffectiveTimeScale(scale float32) {
	a.timeScale = scale
}

func (a *action) FadeIn(duration float32) {
	if duration <= 0 {
		a.fade = fadeState{}
		return
	}
	target := a.weight
	a.weight = 0
	a.fade = fadeState{
		active:   true,
		from:     0,
		to:       target,
		duration: duration,
	}
}

func (a *action) FadeOut(duration float32) {
	if duration <= 0 {
		a.Stop()
		return
	}
	a.fade = fadeState{
		active:   true,
		from:     a.weight,
		to:       0,
		duration: duration,
	}
}

func (a *action) Update(deltaTime float32) {
	if !a.playing {
		return
	}
	dt := math32.Max(deltaTime, 0)

	a.time += dt * a.timeScale
	if duration := a.clip.Duration; duration > 0 {
		if a.loop {
			a.time = math32.Mod(a.time, duration)
			if a.time < 0 {
				a.time += duration
			}
		} else {
			a.time = math32.Min(math32.Max(a.time, 0), duration)
		}
	}

	if !a.fade.active {
		return
	}
	a.fade.elapsed += dt
	progress := math32.Min(a.fade.elapsed/a.fade.duration, 1)
	a.weight = clampWeight(a.fade.from + (a.fade.to-a.fade.from)*progress)
	if progress >= 1 {
		to := a.fade.to
		a.fade = fadeState{}
		if to == 0 {
			a.Stop()
		}
	}
}

// clampWeight limits a weight to [0, 1].
func clampWeight(w float32) float32 {
	return math32.Min(math32.Max(w, 0), 1)
}

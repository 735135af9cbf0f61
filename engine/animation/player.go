package animation

// player is the implementation of the Player interface.
type player struct {
	registry *Registry

	active, previous Action

	preferredDefault string
	defaultFade      float32

	onActiveChanged func(name string)
}

// Player holds the loaded animations of one model and cross-fades between them.
//
// At most one action is active. A transition fades the active action out while the
// requested one fades in over the same duration, so at most one fade-in and one fade-out
// are in flight at any time. Once a fade settles the active action has weight 1 and every
// other action has weight 0 and is stopped.
//
// A Player is not safe for concurrent use. Register, Transition and Tick must all be
// called from the same goroutine.
type Player interface {
	// Register inserts an action under name. If nothing is active yet, the action becomes
	// active and starts playing at full weight.
	//
	// Parameters:
	//   - name: the unique animation name
	//   - a: the action to register
	//
	// Returns:
	//   - error: ErrDuplicateAnimation if name is already registered
	Register(name string, a Action) error

	// Transition cross-fades from the active animation to name over duration seconds.
	// Unknown names and the already-active name are ignored. A non-positive duration
	// switches instantly.
	//
	// Parameters:
	//   - name: the animation to activate
	//   - duration: the fade length in seconds
	//
	// Returns:
	//   - bool: true if the transition was started
	Transition(name string, duration float32) bool

	// Tick advances playback and fade progress of the active and fading-out actions.
	//
	// Parameters:
	//   - deltaTime: elapsed seconds since the previous tick; negative values count as zero
	Tick(deltaTime float32)

	// Active returns the active action, or nil before the first registration.
	//
	// Returns:
	//   - Action: the active action
	Active() Action

	// ActiveName returns the name of the active action, or "" when none is active.
	//
	// Returns:
	//   - string: the active animation name
	ActiveName() string

	// Previous returns the action currently fading out, or nil when no fade-out is in flight.
	//
	// Returns:
	//   - Action: the fading-out action
	Previous() Action

	// Weight returns the current blend weight of the named action, or 0 if it is not registered.
	//
	// Parameters:
	//   - name: the animation name
	//
	// Returns:
	//   - float32: the blend weight
	Weight(name string) float32

	// Registry returns the underlying name to action registry.
	//
	// Returns:
	//   - *Registry: the registry
	Registry() *Registry

	// Len returns the number of registered animations.
	//
	// Returns:
	//   - int: the registry size
	Len() int
}

var _ Player = &player{}

// NewPlayer creates an empty Player.
//
// Parameters:
//   - options: functional options to configure the player
//
// Returns:
//   - Player: the new player
func NewPlayer(options ...PlayerBuilderOption) Player {
	p := &player{
		registry: NewRegistry(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *player) Register(name string, a Action) error {
	if err := p.registry.Add(name, a); err != nil {
		return err
	}

	if p.active == nil {
		a.Reset()
		a.SetEffectiveTimeScale(1)
		a.SetEffectiveWeight(1)
		a.Play()
		p.active = a
		p.notify(name)
		return nil
	}
	a.Stop()

	if p.preferredDefault != "" && name == p.preferredDefault {
		p.Transition(name, p.defaultFade)
	}
	return nil
}

func (p *player) Transition(name string, duration float32) bool {
	next, ok := p.registry.Get(name)
	if !ok || next == p.active {
		return false
	}

	// Only one fade-out is tracked: an older one still in flight is cut short.
	if p.previous != nil && p.previous != next {
		p.previous.Stop()
	}
	p.previous = nil

	prev := p.active
	p.active = next
	if prev != nil {
		prev.FadeOut(duration)
		if prev.IsPlaying() {
			p.previous = prev
		}
	}

	next.Reset()
	next.SetEffectiveTimeScale(1)
	next.SetEffectiveWeight(1)
	next.FadeIn(duration)
	next.Play()

	p.notify(name)
	return true
}

func (p *player) Tick(deltaTime float32) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	if p.active != nil {
		p.active.Update(deltaTime)
	}
	if p.previous != nil {
		p.previous.Update(deltaTime)
		if !p.previous.IsPlaying() {
			p.previous = nil
		}
	}
}

func (p *player) Active() Action {
	return p.active
}

func (p *player) ActiveName() string {
	if p.active == nil {
		return ""
	}
	return p.active.Name()
}

func (p *player) Previous() Action {
	return p.previous
}

func (p *player) Weight(name string) float32 {
	if a, ok := p.registry.Get(name); ok {
		return a.Weight()
	}
	return 0
}

func (p *player) Registry() *Registry {
	return p.registry
}

func (p *player) Len() int {
	return p.registry.Len()
}

func (p *player) notify(name string) {
	if p.onActiveChanged != nil {
		p.onActiveChanged(name)
	}
}

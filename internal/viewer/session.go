// Package viewer ties the animation player, the asset sequencer and the key bindings
// into the state driven by the frame loop.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Carmen-Shannon/oxy-viewer/engine/animation"
	"github.com/Carmen-Shannon/oxy-viewer/engine/loader"
	"github.com/Carmen-Shannon/oxy-viewer/internal/config"
)

// ErrStarted is returned by Start when the session is already loading.
var ErrStarted = errors.New("viewer: session already started")

// AssetLoader loads the model skeleton and the animation clips bound to it.
// loader.Loader satisfies it.
type AssetLoader interface {
	LoadSkeleton(path string) (*animation.Skeleton, error)
	LoadClip(path string) (*animation.Clip, error)
}

// session is the implementation of the Session interface.
type session struct {
	cfg      *config.Config
	loader   AssetLoader
	bindings Bindings
	player   animation.Player
	seq      loader.Sequencer
	skeleton *animation.Skeleton

	seqOptions      []loader.SequencerBuilderOption
	onActiveChanged func(name string)
	onLoadFailed    func(name string, err error)

	failed int
}

// Session is the viewer state owned by main and driven from the window goroutine.
// None of its methods are safe for concurrent use; loads complete on worker goroutines but
// their results are registered inside Update.
type Session interface {
	// Start loads the model skeleton, then starts loading every configured animation.
	// It returns once the loads are issued; animations register as Update observes them.
	//
	// Parameters:
	//   - ctx: cancelling it abandons loads that have not started yet
	//
	// Returns:
	//   - error: skeleton load failure, or ErrStarted
	Start(ctx context.Context) error

	// HandleKey resolves a key press to an animation and cross-fades to it.
	// Unbound keys and animations that have not loaded are ignored.
	//
	// Parameters:
	//   - key: the GLFW key code
	//
	// Returns:
	//   - bool: true if a transition started
	HandleKey(key uint32) bool

	// Update registers completed loads, then advances playback by dt seconds.
	Update(dt float32)

	// Wait blocks until every animation load has been registered or has failed.
	Wait(ctx context.Context) error

	// Instructions returns the key binding lines shown to the user.
	Instructions() []string

	// Status returns a one-line summary of the model, the active animation and load progress.
	Status() string

	// Player returns the animation player.
	Player() animation.Player

	// Skeleton returns the model skeleton, or nil before Start succeeds.
	Skeleton() *animation.Skeleton

	// Close stops outstanding loads.
	Close()
}

var _ Session = &session{}

// NewSession creates a Session for a validated configuration.
// Panics if cfg or ldr is nil.
//
// Parameters:
//   - cfg: the viewer configuration
//   - ldr: the asset loader
//   - options: a variadic list of SessionBuilderOption functions
//
// Returns:
//   - Session: the session, not yet started
func NewSession(cfg *config.Config, ldr AssetLoader, options ...SessionBuilderOption) Session {
	if cfg == nil || ldr == nil {
		panic("viewer: NewSession requires a config and a loader")
	}

	s := &session{
		cfg:      cfg,
		loader:   ldr,
		bindings: NewBindings(cfg.Animations),
	}
	for _, option := range options {
		option(s)
	}

	s.player = animation.NewPlayer(
		animation.WithPreferredDefault(cfg.DefaultAnimation),
		animation.WithDefaultFade(cfg.FadeSeconds),
		animation.WithActiveChanged(s.activeChanged),
	)
	return s
}

func (s *session) Start(ctx context.Context) error {
	if s.seq != nil {
		return ErrStarted
	}

	skeleton, err := s.loader.LoadSkeleton(s.cfg.ModelPath())
	if err != nil {
		return fmt.Errorf("viewer: model %q: %w", s.cfg.Model, err)
	}
	s.skeleton = skeleton
	log.Printf("[Viewer] Loaded %q with %d joints", s.cfg.Model, len(skeleton.Joints))

	options := append([]loader.SequencerBuilderOption{
		loader.WithBaseDir(s.cfg.AssetDir),
		loader.WithExtension(s.cfg.Extension),
		loader.WithWorkers(s.cfg.Workers),
		loader.WithErrorHandler(s.loadFailed),
	}, s.seqOptions...)
	s.seq = loader.NewSequencer(s.loader, options...)
	s.seq.LoadAll(ctx, s.cfg.Animations, s.register)
	return nil
}

func (s *session) HandleKey(key uint32) bool {
	name, ok := s.bindings.Resolve(key)
	if !ok {
		return false
	}
	return s.player.Transition(name, s.cfg.FadeSeconds)
}

func (s *session) Update(dt float32) {
	if s.seq != nil {
		s.seq.Poll()
	}
	s.player.Tick(dt)
}

func (s *session) Wait(ctx context.Context) error {
	if s.seq == nil {
		return nil
	}
	return s.seq.Wait(ctx)
}

func (s *session) Instructions() []string {
	return s.bindings.Lines()
}

func (s *session) Status() string {
	active := s.player.ActiveName()
	if active == "" {
		active = "loading"
	}
	status := fmt.Sprintf("%s - %s", s.cfg.Model, active)
	if loaded, total := s.player.Len(), len(s.bindings); loaded+s.failed < total {
		status += fmt.Sprintf(" (%d/%d)", loaded, total)
	}
	return status
}

func (s *session) Player() animation.Player {
	return s.player
}

func (s *session) Skeleton() *animation.Skeleton {
	return s.skeleton
}

func (s *session) Close() {
	if s.seq != nil {
		s.seq.Close()
	}
}

// register runs inside Update via the sequencer's Poll.
func (s *session) register(name string, clip *animation.Clip) {
	a, err := animation.NewClipAction(name, clip, s.skeleton)
	if err != nil {
		s.loadFailed(name, err)
		return
	}
	if err := s.player.Register(name, a); err != nil {
		s.loadFailed(name, err)
		return
	}
	log.Printf("[Viewer] Registered %q (%.2fs)", name, clip.Duration)
}

func (s *session) loadFailed(name string, err error) {
	s.failed++
	log.Printf("[Viewer] Animation %q unavailable: %v", name, err)
	if s.onLoadFailed != nil {
		s.onLoadFailed(name, err)
	}
}

func (s *session) activeChanged(name string) {
	if s.onActiveChanged != nil {
		s.onActiveChanged(name)
	}
}

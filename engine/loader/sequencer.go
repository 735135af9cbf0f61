package loader

import (
	"context"
	"log"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-viewer/engine/animation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Carmen-Shannon/oxy-viewer/engine/loader"

// ClipLoader is the subset of Loader the Sequencer needs.
type ClipLoader interface {
	LoadClip(path string) (*animation.Clip, error)
}

// Result is the outcome of loading one named asset.
type Result struct {
	// Name is the asset name as requested.
	Name string

	// Path is the file the name resolved to.
	Path string

	// Clip is the loaded clip. Nil when Err is set.
	Clip *animation.Clip

	// Err is the load failure, or the context error when the batch was cancelled first.
	Err error
}

// batch tracks the results of a single LoadAll call.
type batch struct {
	results   <-chan Result
	onLoaded  func(name string, clip *animation.Clip)
	remaining int
}

// Task states for queuedLoad.
const (
	loadQueued int32 = iota
	loadRunning
	loadAbandoned
)

// queuedLoad is one submitted load. Whichever of the worker or Close claims it first
// resolves it.
type queuedLoad struct {
	name  string
	path  string
	out   chan<- Result
	wg    *sync.WaitGroup
	state atomic.Int32
}

// sequencer is the implementation of the Sequencer interface.
type sequencer struct {
	loader ClipLoader
	pool   worker.DynamicWorkerPool

	baseDir     string
	ext         string
	workers     int
	queueSize   int
	idleTimeout time.Duration

	tracer  trace.Tracer
	onError func(name string, err error)

	// batches and nextTaskID are only touched on the caller's goroutine.
	batches    []*batch
	queued     []*queuedLoad
	nextTaskID int
	closed     bool
}

// Sequencer starts asset loads in parallel on a worker pool and hands completed results back
// to the caller's goroutine, in completion order.
//
// Loads run concurrently; callbacks never do. Completion callbacks passed to LoadAll run only
// inside Poll or Wait, on whichever goroutine calls them, so a single logic thread can mutate
// state (such as an animation.Player) from those callbacks without locking.
type Sequencer interface {
	// LoadAll starts a load for every name and returns immediately.
	// onEachLoaded is invoked once per successful load, in completion order, from Poll or Wait.
	// Failed loads are logged and passed to the error handler instead; they never reach onEachLoaded.
	//
	// Parameters:
	//   - ctx: cancelling it resolves not-yet-started loads with ctx.Err()
	//   - names: asset names, resolved to paths with Path
	//   - onEachLoaded: the per-asset completion callback
	LoadAll(ctx context.Context, names []string, onEachLoaded func(name string, clip *animation.Clip))

	// Stream starts a load for every name and returns a channel receiving one Result per name,
	// in completion order. The channel is closed once every load has finished.
	//
	// Parameters:
	//   - ctx: cancelling it resolves not-yet-started loads with ctx.Err()
	//   - names: asset names, resolved to paths with Path
	//
	// Returns:
	//   - <-chan Result: the buffered result channel
	Stream(ctx context.Context, names []string) <-chan Result

	// Poll delivers every result that has completed so far without blocking.
	//
	// Returns:
	//   - int: the number of results delivered, successes and failures
	Poll() int

	// Wait blocks until every outstanding LoadAll batch has been delivered or ctx is done.
	//
	// Parameters:
	//   - ctx: bounds the wait
	//
	// Returns:
	//   - error: ctx.Err() if the context ended first
	Wait(ctx context.Context) error

	// Pending returns the number of LoadAll results not yet delivered.
	Pending() int

	// Path resolves an asset name to its file path.
	Path(name string) string

	// Close stops the worker pool. Loads that have not started resolve with context.Canceled
	// on their Stream channels; undelivered LoadAll results are dropped.
	Close()
}

var _ Sequencer = &sequencer{}

// NewSequencer creates a Sequencer that loads clips through the given loader.
// Panics if loader is nil.
//
// Parameters:
//   - loader: the clip loader called from worker goroutines
//   - options: a variadic list of SequencerBuilderOption functions
//
// Returns:
//   - Sequencer: the sequencer with its worker pool started
func NewSequencer(loader ClipLoader, options ...SequencerBuilderOption) Sequencer {
	if loader == nil {
		panic("loader: NewSequencer requires a non-nil loader")
	}

	s := &sequencer{
		loader:      loader,
		ext:         ".glb",
		workers:     4,
		queueSize:   64,
		idleTimeout: time.Second,
	}

	for _, option := range options {
		option(s)
	}

	if s.workers < 1 {
		s.workers = 1
	}
	if s.queueSize < 1 {
		s.queueSize = 1
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}

	s.pool = worker.NewDynamicWorkerPool(s.workers, s.queueSize, s.idleTimeout)
	return s
}

func (s *sequencer) Path(name string) string {
	return filepath.Join(s.baseDir, name+s.ext)
}

func (s *sequencer) LoadAll(ctx context.Context, names []string, onEachLoaded func(name string, clip *animation.Clip)) {
	if len(names) == 0 {
		return
	}
	s.batches = append(s.batches, &batch{
		results:   s.Stream(ctx, names),
		onLoaded:  onEachLoaded,
		remaining: len(names),
	})
}

func (s *sequencer) Stream(ctx context.Context, names []string) <-chan Result {
	out := make(chan Result, len(names))
	if s.closed {
		for _, name := range names {
			out <- Result{Name: name, Path: s.Path(name), Err: context.Canceled}
		}
		close(out)
		return out
	}

	s.queued = slices.DeleteFunc(s.queued, func(q *queuedLoad) bool {
		return q.state.Load() != loadQueued
	})

	wg := new(sync.WaitGroup)
	wg.Add(len(names))
	for _, name := range names {
		q := &queuedLoad{name: name, path: s.Path(name), out: out, wg: wg}
		s.queued = append(s.queued, q)
		id := s.nextTaskID
		s.nextTaskID++
		s.pool.SubmitTask(worker.Task{
			ID:      id,
			Payload: name,
			Do: func() (any, error) {
				if !q.state.CompareAndSwap(loadQueued, loadRunning) {
					return nil, context.Canceled
				}
				defer wg.Done()
				res := s.load(ctx, q.name, q.path)
				out <- res
				return res.Clip, res.Err
			},
		})
	}

	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// load runs on a worker goroutine.
func (s *sequencer) load(ctx context.Context, name, path string) Result {
	res := Result{Name: name, Path: path}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	_, span := s.tracer.Start(ctx, "loader.LoadClip", trace.WithAttributes(
		attribute.String("asset.name", name),
		attribute.String("asset.path", path),
	))
	defer span.End()

	start := time.Now()
	res.Clip, res.Err = s.loader.LoadClip(path)
	span.SetAttributes(attribute.Int64("asset.load_ms", time.Since(start).Milliseconds()))
	if res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
	}
	return res
}

func (s *sequencer) Poll() int {
	delivered := 0
	// Callbacks may call LoadAll, which appends to s.batches while we iterate.
	batches := s.batches
	s.batches = nil
	var kept []*batch
	for _, b := range batches {
		done := false
	drain:
		for {
			select {
			case r, ok := <-b.results:
				if !ok {
					done = true
					break drain
				}
				s.deliver(b, r)
				delivered++
			default:
				break drain
			}
		}
		if !done {
			kept = append(kept, b)
		}
	}
	if !s.closed {
		s.batches = append(kept, s.batches...)
	}
	return delivered
}

func (s *sequencer) Wait(ctx context.Context) error {
	for len(s.batches) > 0 {
		b := s.batches[0]
		select {
		case r, ok := <-b.results:
			if !ok {
				s.batches = s.batches[1:]
				continue
			}
			s.deliver(b, r)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (s *sequencer) Pending() int {
	n := 0
	for _, b := range s.batches {
		n += b.remaining
	}
	return n
}

func (s *sequencer) Close() {
	if s.closed {
		return
	}
	s.closed = true

	// Loads still sitting in the pool queue will never run; resolve them here so every
	// Stream channel still gets one Result per name and is closed.
	for _, q := range s.queued {
		if q.state.CompareAndSwap(loadQueued, loadAbandoned) {
			q.out <- Result{Name: q.name, Path: q.path, Err: context.Canceled}
			q.wg.Done()
		}
	}
	s.queued = nil

	s.pool.ClearTaskQueue()
	s.pool.Stop()
	s.batches = nil
}

func (s *sequencer) deliver(b *batch, r Result) {
	b.remaining--
	if r.Err != nil {
		log.Printf("[Loader] failed to load %q: %v", r.Name, r.Err)
		if s.onError != nil {
			s.onError(r.Name, r.Err)
		}
		return
	}
	if b.onLoaded != nil {
		b.onLoaded(r.Name, r.Clip)
	}
}

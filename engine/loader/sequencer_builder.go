package loader

import (
	"time"

	"go.opentelemetry.io/otel/trace"
)

// SequencerBuilderOption is a functional option for configuring a Sequencer via NewSequencer.
type SequencerBuilderOption func(*sequencer)

// WithBaseDir sets the directory asset names are resolved against.
//
// Parameters:
//   - dir: the asset directory
//
// Returns:
//   - SequencerBuilderOption: a function that applies the directory option to a sequencer
func WithBaseDir(dir string) SequencerBuilderOption {
	return func(s *sequencer) {
		s.baseDir = dir
	}
}

// WithExtension sets the file extension appended to asset names. Defaults to ".glb".
//
// Parameters:
//   - ext: the extension including the leading dot
//
// Returns:
//   - SequencerBuilderOption: a function that applies the extension option to a sequencer
func WithExtension(ext string) SequencerBuilderOption {
	return func(s *sequencer) {
		s.ext = ext
	}
}

// WithWorkers sets the number of concurrent load workers. Defaults to 4.
//
// Parameters:
//   - n: the worker count, clamped to at least 1
//
// Returns:
//   - SequencerBuilderOption: a function that applies the worker option to a sequencer
func WithWorkers(n int) SequencerBuilderOption {
	return func(s *sequencer) {
		s.workers = n
	}
}

// WithQueueSize sets the capacity of the pending task queue. Defaults to 64.
func WithQueueSize(n int) SequencerBuilderOption {
	return func(s *sequencer) {
		s.queueSize = n
	}
}

// WithIdleTimeout sets how long an idle pool worker waits before it may be reclaimed.
func WithIdleTimeout(d time.Duration) SequencerBuilderOption {
	return func(s *sequencer) {
		s.idleTimeout = d
	}
}

// WithErrorHandler registers a callback for failed loads, invoked from Poll or Wait.
//
// Parameters:
//   - fn: receives the asset name and the load error
//
// Returns:
//   - SequencerBuilderOption: a function that applies the handler option to a sequencer
func WithErrorHandler(fn func(name string, err error)) SequencerBuilderOption {
	return func(s *sequencer) {
		s.onError = fn
	}
}

// WithTracer overrides the tracer used for per-load spans. Defaults to the global provider's tracer.
func WithTracer(tracer trace.Tracer) SequencerBuilderOption {
	return func(s *sequencer) {
		s.tracer = tracer
	}
}

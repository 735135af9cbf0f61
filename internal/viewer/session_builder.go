package viewer

import (
	"github.com/Carmen-Shannon/oxy-viewer/engine/loader"
)

// SessionBuilderOption is a functional option for configuring a Session via NewSession.
type SessionBuilderOption func(*session)

// WithActiveChanged registers a callback invoked whenever the active animation changes.
// It runs on the goroutine calling Update or HandleKey.
//
// Parameters:
//   - callback: receives the newly active animation name
//
// Returns:
//   - SessionBuilderOption: a function that applies the callback option to a session
func WithActiveChanged(callback func(name string)) SessionBuilderOption {
	return func(s *session) {
		s.onActiveChanged = callback
	}
}

// WithLoadFailed registers a callback for animations that could not be loaded or bound.
func WithLoadFailed(callback func(name string, err error)) SessionBuilderOption {
	return func(s *session) {
		s.onLoadFailed = callback
	}
}

// WithSequencerOptions appends options to the sequencer created by Start.
// They are applied after the options derived from the configuration.
func WithSequencerOptions(options ...loader.SequencerBuilderOption) SessionBuilderOption {
	return func(s *session) {
		s.seqOptions = append(s.seqOptions, options...)
	}
}

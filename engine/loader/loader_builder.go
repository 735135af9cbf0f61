package loader

import (
	"github.com/Carmen-Shannon/oxy-viewer/engine/animation"
)

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithClip is an option builder that pre-populates the clip cache.
//
// Parameters:
//   - key: the cache key for the clip (usually its file path)
//   - clip: the clip to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the clip option to a loader
func WithClip(key string, clip *animation.Clip) LoaderBuilderOption {
	return func(l *loader) {
		l.clipCache[key] = clip
	}
}

// WithSkeleton is an option builder that pre-populates the skeleton cache.
//
// Parameters:
//   - key: the cache key for the skeleton (usually the model file path)
//   - skeleton: the skeleton to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the skeleton option to a loader
func WithSkeleton(key string, skeleton *animation.Skeleton) LoaderBuilderOption {
	return func(l *loader) {
		l.skeletonCache[key] = skeleton
	}
}

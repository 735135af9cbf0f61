package loader

import (
	"io"

	"github.com/Carmen-Shannon/oxy-viewer/engine/animation"
)

// loaderBackend defines the generic interface for reading clips and skeletons from files or streams.
// Concrete implementations (e.g., gltfLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// LoadClip reads the first animation clip from the given file path.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - *animation.Clip: the clip
	//   - error: error if loading fails
	LoadClip(path string) (*animation.Clip, error)

	// LoadClipReader reads the first animation clip from a binary stream.
	//
	// Parameters:
	//   - name: fallback clip name when the asset does not name its animation
	//   - r: the reader providing asset data
	//
	// Returns:
	//   - *animation.Clip: the clip
	//   - error: error if loading fails
	LoadClipReader(name string, r io.Reader) (*animation.Clip, error)

	// LoadSkeleton reads the joint hierarchy of the first skin in the given file.
	//
	// Parameters:
	//   - path: the file path to load
	//
	// Returns:
	//   - *animation.Skeleton: the skeleton
	//   - error: error if loading fails
	LoadSkeleton(path string) (*animation.Skeleton, error)
}

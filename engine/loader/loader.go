package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-viewer/engine/animation"
	"golang.org/x/sync/singleflight"
)

// LoaderBackendType identifies the asset file format backend to use.
type LoaderBackendType int

const (
	// BackendTypeGLTF selects the glTF/GLB loader backend.
	BackendTypeGLTF LoaderBackendType = iota
)

var (
	// ErrUnsupportedFormat is returned for files whose extension no backend handles.
	ErrUnsupportedFormat = errors.New("loader: unsupported asset format")

	// ErrNoAnimation is returned when an asset holds no animation clip.
	ErrNoAnimation = errors.New("loader: asset has no animation")

	// ErrNoSkeleton is returned when a model asset holds no skin.
	ErrNoSkeleton = errors.New("loader: asset has no skeleton")
)

// loader is the implementation of the Loader interface.
type loader struct {
	mu sync.RWMutex

	clipCache     map[string]*animation.Clip
	skeletonCache map[string]*animation.Skeleton

	// group collapses concurrent loads of the same key into one parse.
	group singleflight.Group

	backend loaderBackend
}

// Loader loads animation clips and model skeletons from asset files and caches them by path.
// It is safe for concurrent use; the Sequencer calls it from its worker goroutines.
type Loader interface {
	// LoadClip imports the first animation clip of an asset file and caches the result.
	// If the clip is already cached (by file path), the cached version is returned.
	// The backend is selected based on the file extension (.gltf/.glb → glTF backend).
	//
	// Parameters:
	//   - path: the file path to the asset
	//
	// Returns:
	//   - *animation.Clip: the loaded clip
	//   - error: error if loading fails
	LoadClip(path string) (*animation.Clip, error)

	// LoadClipReader imports the first animation clip of a GLB stream and caches it by name.
	//
	// Parameters:
	//   - name: the cache key and fallback clip name
	//   - r: the reader providing GLB data
	//
	// Returns:
	//   - *animation.Clip: the loaded clip
	//   - error: error if loading fails
	LoadClipReader(name string, r io.Reader) (*animation.Clip, error)

	// LoadSkeleton imports the joint hierarchy of the first skin in a model file.
	//
	// Parameters:
	//   - path: the file path to the model
	//
	// Returns:
	//   - *animation.Skeleton: the shared skeleton
	//   - error: error if loading fails
	LoadSkeleton(path string) (*animation.Skeleton, error)

	// Clip retrieves a cached clip by key. Returns nil if not found.
	//
	// Parameters:
	//   - key: the path or reader name the clip was loaded under
	//
	// Returns:
	//   - *animation.Clip: the cached clip or nil
	Clip(key string) *animation.Clip

	// Clips returns a copy of the clip cache.
	//
	// Returns:
	//   - map[string]*animation.Clip: all cached clips keyed by path or name
	Clips() map[string]*animation.Clip
}

var _ Loader = &loader{}

// NewLoader creates a new Loader instance with the specified backend type and options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeGLTF)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType LoaderBackendType, options ...LoaderBuilderOption) Loader {
	l := &loader{
		clipCache:     make(map[string]*animation.Clip),
		skeletonCache: make(map[string]*animation.Skeleton),
	}

	switch backendType {
	case BackendTypeGLTF:
		l.backend = newGLTFLoaderBackend()
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *loader) LoadClip(path string) (*animation.Clip, error) {
	if cached := l.Clip(path); cached != nil {
		return cached, nil
	}

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	v, err, _ := l.group.Do("clip:"+path, func() (any, error) {
		clip, err := backend.LoadClip(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		l.mu.Lock()
		l.clipCache[path] = clip
		l.mu.Unlock()
		return clip, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*animation.Clip), nil
}

func (l *loader) LoadClipReader(name string, r io.Reader) (*animation.Clip, error) {
	if cached := l.Clip(name); cached != nil {
		return cached, nil
	}

	clip, err := l.backend.LoadClipReader(name, r)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}

	l.mu.Lock()
	l.clipCache[name] = clip
	l.mu.Unlock()

	return clip, nil
}

func (l *loader) LoadSkeleton(path string) (*animation.Skeleton, error) {
	l.mu.RLock()
	if cached, ok := l.skeletonCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	backend, err := l.resolveBackend(path)
	if err != nil {
		return nil, err
	}

	v, err, _ := l.group.Do("skeleton:"+path, func() (any, error) {
		skel, err := backend.LoadSkeleton(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		l.mu.Lock()
		l.skeletonCache[path] = skel
		l.mu.Unlock()
		return skel, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*animation.Skeleton), nil
}

func (l *loader) Clip(key string) *animation.Clip {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.clipCache[key]
}

func (l *loader) Clips() map[string]*animation.Clip {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]*animation.Clip, len(l.clipCache))
	for k, v := range l.clipCache {
		result[k] = v
	}
	return result
}

// resolveBackend selects an appropriate loader backend based on the file extension.
// Currently only glTF/GLB is supported.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb":
		if l.backend == nil {
			return nil, fmt.Errorf("%w: no backend for %s", ErrUnsupportedFormat, ext)
		}
		return l.backend, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// assetName derives a display name from a file path: the base name without extension.
func assetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

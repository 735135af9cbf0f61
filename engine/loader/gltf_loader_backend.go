package loader

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-viewer/engine/animation"
	"github.com/qmuntal/gltf"
)

// gltfLoaderBackendImpl is the implementation of gltfLoaderBackend.
type gltfLoaderBackendImpl struct{}

// gltfLoaderBackend is a loaderBackend implementation for glTF/GLB files.
// Document decoding is done by qmuntal/gltf; the extractors turn the document into engine types.
type gltfLoaderBackend interface {
	loaderBackend
}

var _ gltfLoaderBackend = &gltfLoaderBackendImpl{}

// newGLTFLoaderBackend creates a new glTF loader backend.
//
// Returns:
//   - gltfLoaderBackend: the loader backend for glTF/GLB files
func newGLTFLoaderBackend() gltfLoaderBackend {
	return &gltfLoaderBackendImpl{}
}

func (b *gltfLoaderBackendImpl) LoadClip(path string) (*animation.Clip, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return extractClip(doc, assetName(path))
}

func (b *gltfLoaderBackendImpl) LoadClipReader(name string, r io.Reader) (*animation.Clip, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to parse from reader: %w", err)
	}
	return extractClip(doc, name)
}

func (b *gltfLoaderBackendImpl) LoadSkeleton(path string) (*animation.Skeleton, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return extractSkeleton(doc, assetName(path))
}

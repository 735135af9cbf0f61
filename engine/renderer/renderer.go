package renderer

import (
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
)

// Surface is the window side of the renderer: where frames go and how large they are.
// window.Window satisfies it.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     rendererBackend

	clear                [4]float64
	presentMode          PresentMode
	forceFallbackAdapter bool

	// minimized is set while the framebuffer has a zero dimension; frames are skipped.
	minimized bool
}

// Renderer draws the viewer's frames. Scene drawing is not part of the viewer; each frame
// clears the surface to the background color and presents it.
type Renderer interface {
	// Resize reconfigures the surface for a new framebuffer size.
	// A zero width or height pauses rendering until the next non-zero resize.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// SetClearColor changes the background color used from the next frame on.
	//
	// Parameters:
	//   - r, g, b, a: channels in [0, 1]
	SetClearColor(r, g, b, a float64)

	// ClearColor returns the current background color.
	ClearColor() (r, g, b, a float64)

	// RenderFrame renders and presents one frame.
	//
	// Returns:
	//   - error: surface acquisition or encoding failure; the frame is dropped
	RenderFrame() error

	// Release frees the GPU resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer bound to the given surface and configures its swapchain.
// Panics if no GPU adapter or device can be obtained.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - surface: the window providing the surface descriptor and framebuffer size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, surface Surface, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		clear:       [4]float64{0, 0, 0, 1},
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter)
	}

	r.backend.SetPresentMode(r.presentMode)
	r.Resize(surface.Width(), surface.Height())
	return r
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.minimized = width <= 0 || height <= 0
	if r.minimized {
		return
	}
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetClearColor(red, green, blue, alpha float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clear = [4]float64{red, green, blue, alpha}
}

func (r *renderer) ClearColor() (float64, float64, float64, float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clear[0], r.clear[1], r.clear[2], r.clear[3]
}

func (r *renderer) RenderFrame() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.minimized {
		return nil
	}
	return r.backend.ClearFrame(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backend.Release()
}

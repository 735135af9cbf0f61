package renderer

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. This is the default for the viewer.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	PresentModeUncapped
)

// rendererBackend is the per-API backend behind the Renderer.
type rendererBackend interface {
	// ConfigureSurface (re)configures the swapchain for the given framebuffer size.
	ConfigureSurface(width, height int)

	// SetPresentMode takes effect on the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// ClearFrame acquires the next surface texture, clears it to color and presents it.
	//
	// Parameters:
	//   - r, g, b, a: the clear color channels in [0, 1]
	//
	// Returns:
	//   - error: surface acquisition or encoding failure
	ClearFrame(r, g, b, a float64) error

	// Release frees every GPU object the backend created.
	Release()
}

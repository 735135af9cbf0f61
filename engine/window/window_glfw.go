package window

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var errNotInitialized = errors.New("window: not initialized")

// glfwWindow is the GLFW side of an engineWindow.
type glfwWindow struct {
	owner   *engineWindow
	handle  *glfw.Window
	running bool
}

// newPlatformWindow opens a client-API-less GLFW window for a WebGPU surface.
// Must be called on the main thread.
func newPlatformWindow(w *engineWindow) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("window: glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	handle, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("window: create %dx%d: %w", w.width, w.height, err)
	}

	gw := &glfwWindow{owner: w, handle: handle, running: true}
	handle.SetKeyCallback(gw.key)
	handle.SetFramebufferSizeCallback(gw.framebufferResized)
	w.internalWindow = gw

	// High-DPI displays report a framebuffer larger than the requested size.
	w.width, w.height = handle.GetFramebufferSize()
	return nil
}

// key forwards presses and repeats as raw GLFW key codes, which match common's key constants.
// Esc closes the window instead.
func (gw *glfwWindow) key(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	if key == glfw.KeyEscape {
		if action == glfw.Press {
			gw.stop()
		}
		return
	}
	if gw.owner.onKeyDown != nil {
		gw.owner.onKeyDown(uint32(key))
	}
}

func (gw *glfwWindow) framebufferResized(_ *glfw.Window, width, height int) {
	gw.owner.width, gw.owner.height = width, height
	if gw.owner.onResize != nil {
		gw.owner.onResize(width, height)
	}
}

func (gw *glfwWindow) stop() {
	gw.running = false
	gw.handle.SetShouldClose(true)
}

func platformWindow(w *engineWindow) (*glfwWindow, bool) {
	gw, ok := w.internalWindow.(*glfwWindow)
	return gw, ok && gw != nil
}

func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	gw, ok := platformWindow(w)
	if !ok {
		return nil
	}
	return wgpuglfw.GetSurfaceDescriptor(gw.handle)
}

func platformIsRunningCheck(w *engineWindow) bool {
	gw, ok := platformWindow(w)
	return ok && gw.running && !gw.handle.ShouldClose()
}

// platformCloseWindow destroys the window and shuts GLFW down.
func platformCloseWindow(w *engineWindow) error {
	gw, ok := platformWindow(w)
	if !ok {
		return errNotInitialized
	}
	gw.stop()
	gw.handle.Destroy()
	glfw.Terminate()
	return nil
}

// platformProcessMessages runs pending key and resize callbacks on the calling goroutine.
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}

func platformSetTitle(w *engineWindow, title string) {
	if gw, ok := platformWindow(w); ok {
		gw.handle.SetTitle(title)
	}
}

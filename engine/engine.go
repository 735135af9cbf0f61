package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
)

// engine implements the Engine interface.
// Input, logic and rendering all run on the window goroutine, one frame at a time.
type engine struct {
	window   window.Window
	renderer renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	maxFrameDelta    time.Duration // longest delta handed to callbacks

	now         func() time.Time
	lastFrame   time.Time
	frameErrors int

	quit atomic.Bool
}

// Engine is the main entry point for the viewer loop.
// It owns the frame cycle: poll window events, tick, render, report.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the renderer, or nil when running without one.
	Renderer() renderer.Renderer

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called once per frame before rendering.
	// Use this for input-driven state and animation updates.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback registers the function called once per frame after the frame is presented.
	//
	// Parameters:
	//   - callback: function receiving the frame delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run processes frames on the calling goroutine until the window closes or Quit is called.
	Run()

	// Quit asks the loop to stop after the current frame. Safe to call from any goroutine
	// and more than once.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Panics if no window is provided.
//
// Parameters:
//   - options: functional options for engine configuration (window, renderer, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		maxFrameDelta: 250 * time.Millisecond,
		now:           time.Now,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		panic("engine: NewEngine requires a window")
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler()
	}

	e.window.SetResizeCallback(func(width, height int) {
		if e.renderer != nil {
			e.renderer.Resize(width, height)
		}
	})

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) Run() {
	e.lastFrame = e.now()
	e.window.SetUpdateCallback(e.frame)
	e.window.ProcessMessages()
}

func (e *engine) Quit() {
	e.quit.Store(true)
}

// frame runs one iteration of the loop. Called by the window after each event poll.
func (e *engine) frame() {
	if e.quit.Load() {
		if err := e.window.Close(); err != nil {
			log.Printf("[Engine] close window: %v", err)
		}
		return
	}

	start := e.now()
	delta := start.Sub(e.lastFrame)
	e.lastFrame = start
	if delta < 0 {
		delta = 0
	}
	if e.maxFrameDelta > 0 && delta > e.maxFrameDelta {
		delta = e.maxFrameDelta
	}
	dt := float32(delta.Seconds())

	if e.tickCallback != nil {
		e.tickCallback(dt)
	}

	if e.renderer != nil {
		if err := e.renderer.RenderFrame(); err != nil {
			e.frameErrors++
			// Surface errors repeat every frame while they last.
			if e.frameErrors == 1 || e.frameErrors%600 == 0 {
				log.Printf("[Engine] frame dropped (%d so far): %v", e.frameErrors, err)
			}
		}
	}

	if e.renderCallback != nil {
		e.renderCallback(dt)
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - e.now().Sub(start); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetTickCallback registers the function called each frame before rendering.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderCallback registers the function called each frame after presenting.
func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}

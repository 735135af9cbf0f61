// Command viewer opens a window, loads a skinned model's animation set and cross-fades
// between animations on number-key presses.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/Carmen-Shannon/oxy-viewer/common"
	"github.com/Carmen-Shannon/oxy-viewer/engine"
	"github.com/Carmen-Shannon/oxy-viewer/engine/loader"
	"github.com/Carmen-Shannon/oxy-viewer/engine/profiler"
	"github.com/Carmen-Shannon/oxy-viewer/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewer/engine/window"
	"github.com/Carmen-Shannon/oxy-viewer/internal/config"
	"github.com/Carmen-Shannon/oxy-viewer/internal/otel"
	"github.com/Carmen-Shannon/oxy-viewer/internal/viewer"
)

// GLFW must be driven from the process's main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	var configPath string
	var software bool
	var frameLimit float64

	flag.StringVar(&configPath, "config", "", "path to a YAML config file (OXY_VIEWER_* env vars override it)")
	flag.BoolVar(&software, "software", false, "force the software fallback GPU adapter")
	flag.Float64Var(&frameLimit, "fps", 0, "frame rate cap (0 = uncapped, vsync still applies)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("[Viewer] %v", err)
	}

	if err := run(cfg, software, frameLimit); err != nil {
		log.Printf("[Viewer] %v", err)
		os.Exit(1)
	}
}

// run owns every resource the viewer opens; they are released by its defers before main exits.
func run(cfg *config.Config, software bool, frameLimit float64) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, "oxy-viewer", cfg.OTLPEndpoint)
	if err != nil {
		log.Printf("[Viewer] tracing disabled: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("[Viewer] tracing shutdown: %v", err)
		}
	}()

	// The model is loaded before any window opens, so a bad model path fails fast.
	sess := viewer.NewSession(cfg, loader.NewLoader(loader.BackendTypeGLTF),
		viewer.WithActiveChanged(func(name string) {
			log.Printf("[Viewer] Playing %q", name)
		}),
	)
	defer sess.Close()

	if err := sess.Start(ctx); err != nil {
		return err
	}

	title := common.Coalesce(cfg.Window.Title, "oxy-viewer")
	win := window.NewWindow(
		window.WithTitle(title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	defer win.Close()

	r, g, b, a := cfg.BackgroundColor().Float()
	rnd := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithClearColor(r, g, b, a),
		renderer.WithForceSoftwareRenderer(software),
	)
	defer rnd.Release()

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(rnd),
		engine.WithProfiler(profiler.NewProfiler(profiler.WithStatus(sess.Status))),
		engine.WithProfiling(cfg.Profile),
		engine.WithRenderFrameLimit(frameLimit),
	)

	// Key events fire inside the window's event poll, on the same goroutine as the tick.
	win.SetKeyDownCallback(func(keyCode uint32) {
		sess.HandleKey(keyCode)
	})
	eng.SetTickCallback(sess.Update)
	eng.SetRenderCallback(func(float32) {
		win.SetTitle(title + " - " + sess.Status())
	})

	go func() {
		<-ctx.Done()
		eng.Quit()
	}()

	fmt.Print(viewer.FormatBox(cfg.Model+" - press a number to switch animation, Esc to quit", sess.Instructions()))
	eng.Run()
	return nil
}

package profiler

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// Profiler tracks frame rate and heap statistics for the frame loop.
// Outputs a stats line to the log at a configurable interval, followed by an optional status suffix.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	fps            float64

	now    func() time.Time
	status func() string
	logf   func(format string, args ...any)
}

// NewProfiler creates a new Profiler with the options applied.
// Update interval defaults to 1 second.
//
// Parameters:
//   - options: a variadic list of ProfilerBuilderOption functions
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
		logf:           log.Printf,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per frame to track frame timing.
// Logs FPS, heap usage and GC count when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	p.fps = float64(p.frameCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	gcDelta := p.memStats.NumGC - p.lastGCCount

	line := fmt.Sprintf("[Profiler] FPS: %.2f | Heap: %.2f MB | GC: %d (+%d)", p.fps, allocMB, p.memStats.NumGC, gcDelta)
	if p.status != nil {
		if s := p.status(); s != "" {
			line += " | " + s
		}
	}
	p.logf("%s", line)

	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = p.memStats.NumGC
	return true
}

// FPS returns the frame rate measured over the last completed interval.
func (p *Profiler) FPS() float64 {
	return p.fps
}

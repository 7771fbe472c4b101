package telemetry

import "time"

// Collector accumulates frame samples and interaction counts within time
// windows and produces WindowStats.
type Collector struct {
	windowDurationSec    float64
	windowDurationFrames int64
	dt                   float64

	// Current window tracking
	windowStartFrame int64

	// Event counters for current window
	pointerMoves int
	selections   int
	navigates    int

	// Trail lifecycle totals at window start
	baseSpawned uint64
	baseExpired uint64
	baseEvicted uint64

	// Per-frame samples
	particles []float64
	frameMS   []float64
}

// TrailTotals holds cumulative trail lifecycle counters.
type TrailTotals struct {
	Spawned uint64
	Expired uint64
	Evicted uint64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in seconds
// dt: seconds per frame (used for frame-to-time conversion)
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	framesPerWindow := int64(windowDurationSec / dt)
	if framesPerWindow < 1 {
		framesPerWindow = 1
	}

	return &Collector{
		windowDurationSec:    windowDurationSec,
		windowDurationFrames: framesPerWindow,
		dt:                   dt,
	}
}

// RecordPointerMove records a pointer-move event.
func (c *Collector) RecordPointerMove() {
	c.pointerMoves++
}

// RecordSelection records a carousel selection change.
func (c *Collector) RecordSelection() {
	c.selections++
}

// RecordNavigate records a click-through navigation.
func (c *Collector) RecordNavigate() {
	c.navigates++
}

// RecordFrame samples the live particle count and the frame's duration.
func (c *Collector) RecordFrame(liveParticles int, frameTime time.Duration) {
	c.particles = append(c.particles, float64(liveParticles))
	c.frameMS = append(c.frameMS, float64(frameTime)/float64(time.Millisecond))
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentFrame int64) bool {
	return currentFrame-c.windowStartFrame >= c.windowDurationFrames
}

// Flush produces a WindowStats and resets counters for the next window.
// The caller provides the current frame, the cumulative trail counters,
// the live particle count, the selected index and the page scroll offset.
func (c *Collector) Flush(
	currentFrame int64,
	totals TrailTotals,
	liveParticles int,
	selected int,
	scrollY float64,
) WindowStats {
	particles := Summarize(c.particles)
	frames := Summarize(c.frameMS)

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		TimeSec:          float64(currentFrame) * c.dt,

		PointerMoves: c.pointerMoves,

		Spawned: int(totals.Spawned - c.baseSpawned),
		Expired: int(totals.Expired - c.baseExpired),
		Evicted: int(totals.Evicted - c.baseEvicted),

		ParticlesMean: particles.Mean,
		ParticlesStd:  particles.Std,
		ParticlesP50:  particles.P50,
		ParticlesP95:  particles.P95,
		ParticlesMax:  particles.Max,
		ParticlesEnd:  liveParticles,

		FrameMeanMS: frames.Mean,
		FrameP95MS:  frames.P95,
		FrameMaxMS:  frames.Max,

		Selected:   selected,
		Selections: c.selections,
		Navigates:  c.navigates,

		ScrollY: scrollY,
	}

	// Reset for next window
	c.windowStartFrame = currentFrame
	c.pointerMoves = 0
	c.selections = 0
	c.navigates = 0
	c.baseSpawned = totals.Spawned
	c.baseExpired = totals.Expired
	c.baseEvicted = totals.Evicted
	c.particles = c.particles[:0]
	c.frameMS = c.frameMS[:0]

	return stats
}

// WindowDurationFrames returns the number of frames per window.
func (c *Collector) WindowDurationFrames() int64 {
	return c.windowDurationFrames
}

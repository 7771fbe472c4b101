package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one frame.
const (
	PhaseInput     = "input"
	PhaseTrail     = "trail"
	PhaseOrbit     = "orbit"
	PhasePage      = "page"
	PhaseDraw      = "draw"
	PhaseTelemetry = "telemetry"
)

var phaseOrder = []string{PhaseInput, PhaseTrail, PhaseOrbit, PhasePage, PhaseDraw, PhaseTelemetry}

// frameSample is the timing of one frame split by phase.
type frameSample struct {
	total  time.Duration
	phases map[string]time.Duration
}

// PerfCollector times frame phases over a rolling window of frames.
type PerfCollector struct {
	now    func() time.Time
	budget time.Duration

	ring  []frameSample
	next  int
	count int

	current    map[string]time.Duration
	frameStart time.Time
	phaseStart time.Time
	phase      string

	lastPresent time.Time
	presentGap  time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize frames.
// Frames longer than budget are counted as over budget; zero disables the count.
func NewPerfCollector(windowSize int, budget time.Duration) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		now:     time.Now,
		budget:  budget,
		ring:    make([]frameSample, windowSize),
		current: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = p.now()
	p.current = make(map[string]time.Duration)
	p.phase = ""
}

// StartPhase closes the running phase and starts timing the named one.
func (p *PerfCollector) StartPhase(phase string) {
	now := p.now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.current[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndFrame records the frame and returns its duration.
func (p *PerfCollector) EndFrame() time.Duration {
	now := p.now()
	p.closePhase(now)
	p.phase = ""

	sample := frameSample{total: now.Sub(p.frameStart), phases: p.current}
	p.ring[p.next] = sample
	p.next = (p.next + 1) % len(p.ring)
	p.count = min(p.count+1, len(p.ring))
	return sample.total
}

// RecordPresent records the moment a frame reached the screen.
func (p *PerfCollector) RecordPresent() {
	now := p.now()
	if !p.lastPresent.IsZero() {
		p.presentGap = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PerfStats summarizes the window.
type PerfStats struct {
	AvgFrameDuration time.Duration
	P95FrameDuration time.Duration
	OverBudget       int // Frames in the window slower than the budget

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // Share of the average frame, 0-100

	PresentGap time.Duration
	FPS        float64
}

// Stats computes statistics over the frames in the window.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		PhaseAvg:   make(map[string]time.Duration),
		PhasePct:   make(map[string]float64),
		PresentGap: p.presentGap,
	}
	if p.presentGap > 0 {
		stats.FPS = float64(time.Second) / float64(p.presentGap)
	}
	if p.count == 0 {
		return stats
	}

	totals := make([]float64, p.count)
	phaseSum := make(map[string]time.Duration)
	for i, s := range p.ring[:p.count] {
		totals[i] = float64(s.total)
		if p.budget > 0 && s.total > p.budget {
			stats.OverBudget++
		}
		for phase, d := range s.phases {
			phaseSum[phase] += d
		}
	}

	dist := Summarize(totals)
	stats.AvgFrameDuration = time.Duration(dist.Mean)
	stats.P95FrameDuration = time.Duration(dist.P95)

	for phase, sum := range phaseSum {
		avg := sum / time.Duration(p.count)
		stats.PhaseAvg[phase] = avg
		if dist.Mean > 0 {
			stats.PhasePct[phase] = float64(avg) / dist.Mean * 100
		}
	}
	return stats
}

// LogStats logs the window summary.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrameDuration.Microseconds()),
		slog.Int64("p95_frame_us", s.P95FrameDuration.Microseconds()),
		slog.Int("over_budget", s.OverBudget),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range phaseOrder {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is the perf.csv row.
type PerfStatsCSV struct {
	WindowEnd    int64   `csv:"window_end"`
	AvgFrameUS   int64   `csv:"avg_frame_us"`
	P95FrameUS   int64   `csv:"p95_frame_us"`
	OverBudget   int     `csv:"over_budget"`
	FPS          float64 `csv:"fps"`
	InputPct     float64 `csv:"input_pct"`
	TrailPct     float64 `csv:"trail_pct"`
	OrbitPct     float64 `csv:"orbit_pct"`
	PagePct      float64 `csv:"page_pct"`
	DrawPct      float64 `csv:"draw_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the stats for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgFrameUS:   s.AvgFrameDuration.Microseconds(),
		P95FrameUS:   s.P95FrameDuration.Microseconds(),
		OverBudget:   s.OverBudget,
		FPS:          s.FPS,
		InputPct:     s.PhasePct[PhaseInput],
		TrailPct:     s.PhasePct[PhaseTrail],
		OrbitPct:     s.PhasePct[PhaseOrbit],
		PagePct:      s.PhasePct[PhasePage],
		DrawPct:      s.PhasePct[PhaseDraw],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}

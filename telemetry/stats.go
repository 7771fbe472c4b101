package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end"`
	TimeSec          float64 `csv:"time"`

	// Pointer input during window
	PointerMoves int `csv:"pointer_moves"`

	// Trail lifecycle during window
	Spawned int `csv:"spawned"`
	Expired int `csv:"expired"`
	Evicted int `csv:"evicted"`

	// Live particle count distribution (sampled every frame)
	ParticlesMean float64 `csv:"particles_mean"`
	ParticlesStd  float64 `csv:"particles_std"`
	ParticlesP50  float64 `csv:"particles_p50"`
	ParticlesP95  float64 `csv:"particles_p95"`
	ParticlesMax  float64 `csv:"particles_max"`
	ParticlesEnd  int     `csv:"particles_end"`

	// Frame time distribution in milliseconds
	FrameMeanMS float64 `csv:"frame_mean_ms"`
	FrameP95MS  float64 `csv:"frame_p95_ms"`
	FrameMaxMS  float64 `csv:"frame_max_ms"`

	// Carousel
	Selected   int `csv:"selected"`
	Selections int `csv:"selections"`
	Navigates  int `csv:"navigates"`

	// Page
	ScrollY float64 `csv:"scroll_y"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Distribution summarizes a sample.
type Distribution struct {
	Mean, Std, P50, P95, Max float64
}

// Summarize computes mean, population standard deviation, percentiles and max.
func Summarize(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	mean, std := stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Distribution{
		Mean: mean,
		Std:  std,
		P50:  Percentile(sorted, 0.50),
		P95:  Percentile(sorted, 0.95),
		Max:  floats.Max(sorted),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartFrame),
		slog.Int64("window_end", s.WindowEndFrame),
		slog.Float64("time", s.TimeSec),
		slog.Int("pointer_moves", s.PointerMoves),
		slog.Int("spawned", s.Spawned),
		slog.Int("expired", s.Expired),
		slog.Int("evicted", s.Evicted),
		slog.Float64("particles_mean", s.ParticlesMean),
		slog.Float64("particles_std", s.ParticlesStd),
		slog.Float64("particles_p50", s.ParticlesP50),
		slog.Float64("particles_p95", s.ParticlesP95),
		slog.Float64("particles_max", s.ParticlesMax),
		slog.Int("particles_end", s.ParticlesEnd),
		slog.Float64("frame_mean_ms", s.FrameMeanMS),
		slog.Float64("frame_p95_ms", s.FrameP95MS),
		slog.Float64("frame_max_ms", s.FrameMaxMS),
		slog.Int("selected", s.Selected),
		slog.Int("selections", s.Selections),
		slog.Int("navigates", s.Navigates),
		slog.Float64("scroll_y", s.ScrollY),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"time", s.TimeSec,
		"pointer_moves", s.PointerMoves,
		"spawned", s.Spawned,
		"expired", s.Expired,
		"evicted", s.Evicted,
		"particles_mean", s.ParticlesMean,
		"particles_p95", s.ParticlesP95,
		"particles_max", s.ParticlesMax,
		"particles_end", s.ParticlesEnd,
		"frame_mean_ms", s.FrameMeanMS,
		"frame_p95_ms", s.FrameP95MS,
		"selected", s.Selected,
		"selections", s.Selections,
		"navigates", s.Navigates,
		"scroll_y", s.ScrollY,
	)
}

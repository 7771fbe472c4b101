package site

import (
	"log/slog"

	"github.com/pthm-cable/starfield/telemetry"
)

// writeEvent records an interaction event to events.csv when output is enabled.
func (s *Site) writeEvent(e telemetry.Event) {
	if s.logStats {
		slog.Info("event", "event", e)
	}
	if err := s.output.WriteEvent(e); err != nil {
		slog.Error("failed to write event", "error", err)
	}
}

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (s *Site) flushTelemetry() {
	if !s.collector.ShouldFlush(s.frame) {
		return
	}

	ts := s.trail.Stats()
	totals := telemetry.TrailTotals{Spawned: ts.Spawned, Expired: ts.Expired, Evicted: ts.Evicted}
	stats := s.collector.Flush(s.frame, totals, s.trail.Count(), s.orbit.Selected(), float64(s.camera.Y))
	perfStats := s.perf.Stats()

	// Log stats if enabled (console output)
	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := s.output.WriteStats(stats); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
	if err := s.output.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range s.bookmarks.Check(stats) {
		if s.logStats {
			bm.LogBookmark()
		}
		if err := s.output.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}

		// Save snapshot on bookmark
		if s.snapshotDir != "" {
			if _, err := s.SaveSnapshot(s.snapshotDir, &bm); err != nil {
				slog.Error("failed to save snapshot", "error", err)
			}
		}
	}
}

// Snapshot captures the visible state. bookmark may be nil.
func (s *Site) Snapshot(bookmark *telemetry.Bookmark) *telemetry.Snapshot {
	return &telemetry.Snapshot{
		Version:   telemetry.SnapshotVersion,
		RNGSeed:   s.seed,
		ViewportW: int(s.width),
		ViewportH: int(s.height),
		Frame:     s.frame,
		Selected:  s.orbit.Selected(),
		ScrollY:   float64(s.camera.Y),
		Particles: telemetry.ParticleStates(s.trail.Snapshot()),
		Bookmark:  bookmark,
	}
}

// SaveSnapshot writes the current state to dir and returns the file path.
func (s *Site) SaveSnapshot(dir string, bookmark *telemetry.Bookmark) (string, error) {
	path, err := telemetry.SaveSnapshot(s.Snapshot(bookmark), dir)
	if err != nil {
		return "", err
	}
	slog.Info("snapshot saved", "path", path, "frame", s.frame)
	return path, nil
}

package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkTrailSaturated BookmarkType = "trail_saturated"
	BookmarkTrailDrained   BookmarkType = "trail_drained"
	BookmarkFrameSpike     BookmarkType = "frame_spike"
	BookmarkPointerBurst   BookmarkType = "pointer_burst"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Frame       int64        `csv:"frame"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"frame", b.Frame,
		"description", b.Description,
	)
}

// BookmarkDetector detects notable moments in the trail and frame statistics.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	saturated bool // evictions seen in the previous window
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	// Saturated: the cap started evicting particles
	if stats.Evicted > 0 && !bd.saturated {
		bookmarks = append(bookmarks, Bookmark{
			Type:        BookmarkTrailSaturated,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("Trail hit its cap, %d particles evicted", stats.Evicted),
		})
	}
	bd.saturated = stats.Evicted > 0

	if bd.historyFull || bd.historyIdx > 0 {
		if b := bd.checkDrained(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkFrameSpike(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
		if b := bd.checkPointerBurst(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

// latest returns the most recently added window.
func (bd *BookmarkDetector) latest() WindowStats {
	idx := bd.historyIdx - 1
	if idx < 0 {
		idx = bd.historySize - 1
	}
	return bd.history[idx]
}

func (bd *BookmarkDetector) checkDrained(stats WindowStats) *Bookmark {
	prev := bd.latest()
	if prev.ParticlesEnd == 0 || stats.ParticlesEnd != 0 {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkTrailDrained,
		Frame:       stats.WindowEndFrame,
		Description: fmt.Sprintf("Trail emptied from %d particles", prev.ParticlesEnd),
	}
}

func (bd *BookmarkDetector) checkFrameSpike(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.FrameP95MS
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	if stats.FrameP95MS > avg*2.0 && stats.FrameP95MS > 8 {
		return &Bookmark{
			Type:        BookmarkFrameSpike,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("Frame p95 %.2fms is %.1fx average (%.2fms)", stats.FrameP95MS, stats.FrameP95MS/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkPointerBurst(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.PointerMoves
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.PointerMoves) > avg*3.0 && stats.PointerMoves >= 60 {
		return &Bookmark{
			Type:        BookmarkPointerBurst,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("%d pointer moves is %.1fx average (%.1f)", stats.PointerMoves, float64(stats.PointerMoves)/avg, avg),
		}
	}
	return nil
}

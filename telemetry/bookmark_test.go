package telemetry

import "testing"

func hasBookmark(bookmarks []Bookmark, typ BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_TrailSaturated(t *testing.T) {
	bd := NewBookmarkDetector(10)

	if got := bd.Check(WindowStats{WindowEndFrame: 600, ParticlesEnd: 200}); hasBookmark(got, BookmarkTrailSaturated) {
		t.Error("unexpected saturation without evictions")
	}

	got := bd.Check(WindowStats{WindowEndFrame: 1200, ParticlesEnd: 600, Evicted: 30})
	if !hasBookmark(got, BookmarkTrailSaturated) {
		t.Error("expected trail_saturated bookmark")
	}

	// Still saturated: no repeat
	got = bd.Check(WindowStats{WindowEndFrame: 1800, ParticlesEnd: 600, Evicted: 12})
	if hasBookmark(got, BookmarkTrailSaturated) {
		t.Error("saturation should trigger once per episode")
	}
}

func TestBookmarkDetector_TrailDrained(t *testing.T) {
	bd := NewBookmarkDetector(10)
	bd.Check(WindowStats{WindowEndFrame: 600, ParticlesEnd: 120})

	got := bd.Check(WindowStats{WindowEndFrame: 1200, ParticlesEnd: 0})
	if !hasBookmark(got, BookmarkTrailDrained) {
		t.Error("expected trail_drained bookmark")
	}

	got = bd.Check(WindowStats{WindowEndFrame: 1800, ParticlesEnd: 0})
	if hasBookmark(got, BookmarkTrailDrained) {
		t.Error("drained should not repeat while empty")
	}
}

func TestBookmarkDetector_FrameSpike(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndFrame: int64(i * 600), FrameP95MS: 4})
	}

	got := bd.Check(WindowStats{WindowEndFrame: 3000, FrameP95MS: 20})
	if !hasBookmark(got, BookmarkFrameSpike) {
		t.Error("expected frame_spike bookmark")
	}
}

func TestBookmarkDetector_PointerBurst(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndFrame: int64(i * 600), PointerMoves: 20})
	}

	got := bd.Check(WindowStats{WindowEndFrame: 3000, PointerMoves: 240})
	if !hasBookmark(got, BookmarkPointerBurst) {
		t.Error("expected pointer_burst bookmark")
	}
}

func TestBookmarkDetector_QuietHistory(t *testing.T) {
	bd := NewBookmarkDetector(10)
	for i := 0; i < 10; i++ {
		got := bd.Check(WindowStats{WindowEndFrame: int64(i * 600), FrameP95MS: 4, PointerMoves: 30, ParticlesEnd: 90})
		if len(got) != 0 {
			t.Fatalf("window %d: unexpected bookmarks %v", i, got)
		}
	}
}

package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time         { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClockedCollector(window int, budget time.Duration) (*PerfCollector, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	pc := NewPerfCollector(window, budget)
	pc.now = clock.now
	return pc, clock
}

func TestPerfCollector_PhaseTiming(t *testing.T) {
	pc, clock := newClockedCollector(10, 0)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseTrail)
		clock.advance(1 * time.Millisecond)
		pc.StartPhase(PhaseDraw)
		clock.advance(3 * time.Millisecond)
		if d := pc.EndFrame(); d != 4*time.Millisecond {
			t.Fatalf("expected 4ms frame, got %v", d)
		}
	}

	stats := pc.Stats()

	if stats.AvgFrameDuration != 4*time.Millisecond {
		t.Errorf("expected 4ms average, got %v", stats.AvgFrameDuration)
	}
	if got := stats.PhaseAvg[PhaseTrail]; got != time.Millisecond {
		t.Errorf("expected 1ms trail phase, got %v", got)
	}
	if got := stats.PhaseAvg[PhaseDraw]; got != 3*time.Millisecond {
		t.Errorf("expected 3ms draw phase, got %v", got)
	}
	if got := stats.PhasePct[PhaseTrail]; got != 25 {
		t.Errorf("expected trail at 25%%, got %v", got)
	}
	if got := stats.PhasePct[PhaseDraw]; got != 75 {
		t.Errorf("expected draw at 75%%, got %v", got)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc, clock := newClockedCollector(5, 0)

	// Five slow frames are pushed out by five fast ones
	for i := 0; i < 10; i++ {
		d := 10 * time.Millisecond
		if i >= 5 {
			d = 2 * time.Millisecond
		}
		pc.StartFrame()
		pc.StartPhase(PhaseOrbit)
		clock.advance(d)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrameDuration != 2*time.Millisecond {
		t.Errorf("expected only the last 5 frames averaged (2ms), got %v", stats.AvgFrameDuration)
	}
	if stats.P95FrameDuration != 2*time.Millisecond {
		t.Errorf("expected p95 of 2ms, got %v", stats.P95FrameDuration)
	}
}

func TestPerfCollector_OverBudget(t *testing.T) {
	tests := []struct {
		name   string
		budget time.Duration
		want   int
	}{
		{"60fps budget", time.Second / 60, 2},
		{"no budget", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, clock := newClockedCollector(10, tt.budget)
			for _, d := range []time.Duration{5, 20, 16, 30} {
				pc.StartFrame()
				clock.advance(d * time.Millisecond)
				pc.EndFrame()
			}
			if got := pc.Stats().OverBudget; got != tt.want {
				t.Errorf("expected %d frames over budget, got %d", tt.want, got)
			}
		})
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10, 0)

	stats := pc.Stats()

	if stats.AvgFrameDuration != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfCollector_PresentTiming(t *testing.T) {
	pc, clock := newClockedCollector(10, 0)

	pc.RecordPresent()
	if got := pc.Stats().FPS; got != 0 {
		t.Errorf("expected no fps from a single present, got %v", got)
	}
	clock.advance(20 * time.Millisecond)
	pc.RecordPresent()

	stats := pc.Stats()

	if stats.PresentGap != 20*time.Millisecond {
		t.Errorf("expected 20ms present gap, got %v", stats.PresentGap)
	}
	if stats.FPS != 50 {
		t.Errorf("expected 50 fps, got %v", stats.FPS)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgFrameDuration: 2 * time.Millisecond,
		PhasePct:         map[string]float64{PhaseTrail: 40, PhaseDraw: 55},
	}
	row := s.ToCSV(600)

	if row.WindowEnd != 600 || row.AvgFrameUS != 2000 {
		t.Errorf("unexpected row %+v", row)
	}
	if row.TrailPct != 40 || row.DrawPct != 55 || row.InputPct != 0 {
		t.Errorf("unexpected phase columns %+v", row)
	}
}

func TestPhasesCoverFrameOrder(t *testing.T) {
	phases := Phases()
	if len(phases) != len(phaseOrder) {
		t.Fatalf("expected %d phases, got %d", len(phaseOrder), len(phases))
	}
	for i, p := range phases {
		if p.ID != phaseOrder[i] {
			t.Errorf("phase %d: expected %q, got %q", i, phaseOrder[i], p.ID)
		}
		if p.Name == "" || p.Description == "" {
			t.Errorf("phase %q is missing display text", p.ID)
		}
	}

	if got := PhaseName(PhaseTrail); got != "Star Trail" {
		t.Errorf("expected \"Star Trail\", got %q", got)
	}
	if got := PhaseName("custom"); got != "custom" {
		t.Errorf("expected unknown phase to fall back to its ID, got %q", got)
	}
}

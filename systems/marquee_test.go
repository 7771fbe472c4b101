package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/starfield/config"
)

func testMarqueeConfig() config.MarqueeConfig {
	return config.MarqueeConfig{Speed: 1.5, HoverSpeed: 0.05, Easing: 0.05, Copies: 4}
}

func TestMarqueeMovesLeft(t *testing.T) {
	m := NewMarquee(testMarqueeConfig())
	m.Update(1, false)

	if math.Abs(m.Offset()+1.5) > 1e-9 {
		t.Errorf("expected offset -1.5 after one second, got %v", m.Offset())
	}
}

func TestMarqueeWraps(t *testing.T) {
	m := NewMarquee(testMarqueeConfig())
	for i := 0; i < 10000; i++ {
		m.Update(1.0/60, false)
		if m.Offset() > 0 || m.Offset() <= -50 {
			t.Fatalf("step %d: offset %v outside (-50, 0]", i, m.Offset())
		}
	}
}

func TestMarqueeHoverSlowsDown(t *testing.T) {
	cfg := testMarqueeConfig()
	m := NewMarquee(cfg)

	for i := 0; i < 300; i++ {
		m.Update(1.0/60, true)
	}
	if math.Abs(m.Speed()-cfg.HoverSpeed) > 1e-3 {
		t.Errorf("expected speed near %v while hovered, got %v", cfg.HoverSpeed, m.Speed())
	}

	m.Update(1.0/60, false)
	first := m.Speed()
	if first <= cfg.HoverSpeed || first >= 1 {
		t.Errorf("expected speed to ease back gradually, got %v", first)
	}

	for i := 0; i < 300; i++ {
		m.Update(1.0/60, false)
	}
	if math.Abs(m.Speed()-1) > 1e-3 {
		t.Errorf("expected full speed after leaving, got %v", m.Speed())
	}
}

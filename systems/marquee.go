package systems

import (
	"math"

	"github.com/pthm-cable/starfield/config"
)

// Marquee scrolls a strip of logos that is repeated twice end to end.
// Offset is a percentage of the strip width and wraps at -50 so the second
// half seamlessly replaces the first.
type Marquee struct {
	cfg    config.MarqueeConfig
	offset float64
	speed  float64
}

// NewMarquee creates a marquee at rest position moving at full speed.
func NewMarquee(cfg config.MarqueeConfig) *Marquee {
	return &Marquee{cfg: cfg, speed: 1}
}

// Update advances the strip by dt seconds. Hovering eases the speed down
// toward HoverSpeed; leaving eases it back to full speed.
func (m *Marquee) Update(dt float64, hovered bool) {
	target := 1.0
	if hovered {
		target = m.cfg.HoverSpeed
	}
	m.speed += (target - m.speed) * m.cfg.Easing

	m.offset -= m.cfg.Speed * dt * m.speed
	if m.offset <= -50 {
		m.offset = math.Mod(m.offset, 50)
	}
}

// Offset returns the strip position in percent, within (-50, 0].
func (m *Marquee) Offset() float64 {
	return m.offset
}

// Speed returns the current speed multiplier.
func (m *Marquee) Speed() float64 {
	return m.speed
}

package systems

import (
	"github.com/charmbracelet/harmonica"

	"github.com/pthm-cable/starfield/config"
)

// settleEps is the distance and speed below which a spring counts as at rest.
const settleEps = 1e-3

// Visual is the interpolated appearance of one carousel item.
type Visual struct {
	Rotation   float64
	Scale      float64
	Opacity    float64
	Grayscale  float64
	Brightness float64
}

// tween is an ease-out interpolation between two values.
type tween struct {
	from, to float64
	elapsed  float64
}

func (tw *tween) value(duration float64) float64 {
	if duration <= 0 || tw.elapsed >= duration {
		return tw.to
	}
	t := tw.elapsed / duration
	e := 1 - (1-t)*(1-t)
	return tw.from + (tw.to-tw.from)*e
}

func (tw *tween) retarget(to, duration float64) {
	if to == tw.to {
		return
	}
	tw.from = tw.value(duration)
	tw.to = to
	tw.elapsed = 0
}

type itemMotion struct {
	rot    float64
	vel    float64
	target float64

	scale, opacity, gray, bright tween
}

// Motion animates carousel items toward their layout targets.
// Rotation follows a damped spring; emphasis values follow a timed ease-out.
// Retargeting mid-transition continues from the current value.
type Motion struct {
	frequency float64
	damping   float64
	duration  float64

	spring   harmonica.Spring
	springDT float64

	items []itemMotion
}

// NewMotion creates an animator using the spring and tween parameters from cfg.
func NewMotion(cfg *config.Config) *Motion {
	m := &Motion{
		frequency: cfg.Derived.SpringFrequency,
		damping:   cfg.Derived.SpringDamping,
		duration:  cfg.Motion.StyleDuration,
	}
	m.springFor(cfg.Derived.DT)
	return m
}

// springFor rebuilds the spring coefficients when the step size changes.
func (m *Motion) springFor(dt float64) {
	if dt == m.springDT {
		return
	}
	m.spring = harmonica.NewSpring(dt, m.frequency, m.damping)
	m.springDT = dt
}

// SetTargets points every item at its new layout. Items added since the
// previous call start at their target.
func (m *Motion) SetTargets(slots []ItemLayout) {
	for len(m.items) < len(slots) {
		s := slots[len(m.items)]
		m.items = append(m.items, itemMotion{
			rot:     s.Rotation,
			target:  s.Rotation,
			scale:   tween{from: s.Scale, to: s.Scale},
			opacity: tween{from: s.Opacity, to: s.Opacity},
			gray:    tween{from: s.Grayscale, to: s.Grayscale},
			bright:  tween{from: s.Brightness, to: s.Brightness},
		})
	}
	m.items = m.items[:len(slots)]

	for i, s := range slots {
		it := &m.items[i]
		it.target = s.Rotation
		it.scale.retarget(s.Scale, m.duration)
		it.opacity.retarget(s.Opacity, m.duration)
		it.gray.retarget(s.Grayscale, m.duration)
		it.bright.retarget(s.Brightness, m.duration)
	}
}

// Step advances every item by dt seconds.
func (m *Motion) Step(dt float64) {
	if dt <= 0 {
		return
	}
	m.springFor(dt)
	for i := range m.items {
		it := &m.items[i]
		it.rot, it.vel = m.spring.Update(it.rot, it.vel, it.target)
		if abs(it.rot-it.target) < settleEps && abs(it.vel) < settleEps {
			it.rot, it.vel = it.target, 0
		}
		it.scale.elapsed += dt
		it.opacity.elapsed += dt
		it.gray.elapsed += dt
		it.bright.elapsed += dt
	}
}

// Snap jumps every item to its target.
func (m *Motion) Snap() {
	for i := range m.items {
		it := &m.items[i]
		it.rot, it.vel = it.target, 0
		for _, tw := range []*tween{&it.scale, &it.opacity, &it.gray, &it.bright} {
			tw.from = tw.to
			tw.elapsed = 0
		}
	}
}

// Len returns the number of animated items.
func (m *Motion) Len() int {
	return len(m.items)
}

// Current returns the interpolated visual of item i.
func (m *Motion) Current(i int) Visual {
	if i < 0 || i >= len(m.items) {
		return Visual{}
	}
	it := &m.items[i]
	return Visual{
		Rotation:   it.rot,
		Scale:      it.scale.value(m.duration),
		Opacity:    it.opacity.value(m.duration),
		Grayscale:  it.gray.value(m.duration),
		Brightness: it.bright.value(m.duration),
	}
}

// Settled reports whether every item has reached its target.
func (m *Motion) Settled() bool {
	for i := range m.items {
		it := &m.items[i]
		if it.rot != it.target || it.vel != 0 {
			return false
		}
		for _, tw := range []*tween{&it.scale, &it.opacity, &it.gray, &it.bright} {
			if tw.value(m.duration) != tw.to {
				return false
			}
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

package systems

import (
	"math"

	"github.com/pthm-cable/starfield/config"
)

// Z-order for carousel items.
const (
	ZResting = 10
	ZFocused = 20
)

// ItemLayout is the computed placement and emphasis of one carousel item.
// All values are pure functions of (index, selected, preset, styles).
type ItemLayout struct {
	Index  int
	Offset int // index - selected

	// Rotation around the pivot in degrees, clockwise on screen.
	Rotation float64

	// Pivot in item-local coordinates (origin at the item's top-left corner).
	PivotX, PivotY float64

	// Item centre relative to the stage centre after rotation.
	CenterX, CenterY float64

	Size       float64
	Scale      float64
	Opacity    float64
	Grayscale  float64
	Brightness float64
	Focused    bool
	Z          int
}

// PresetFor returns the orbit preset for a viewport width.
// Widths below the breakpoint use the mobile preset.
func PresetFor(width int, orbit config.OrbitConfig) config.Preset {
	if width < orbit.Breakpoint {
		return orbit.Mobile
	}
	return orbit.Desktop
}

// Slot computes the layout of the item at index when selected is focused.
func Slot(index, selected int, p config.Preset, focused, resting config.ItemStyle) ItemLayout {
	offset := index - selected
	rotation := float64(offset) * p.Spacing

	// The pivot sits Radius below the item's own centre, so every item shares
	// one virtual circle and the focused item rests at its top.
	half := p.ItemSize / 2
	cx, cy := OrbitPoint(rotation, p.Radius)

	style := resting
	z := ZResting
	if offset == 0 {
		style = focused
		z = ZFocused
	}

	return ItemLayout{
		Index:      index,
		Offset:     offset,
		Rotation:   rotation,
		PivotX:     half,
		PivotY:     half + p.Radius,
		CenterX:    cx,
		CenterY:    cy,
		Size:       p.ItemSize,
		Scale:      style.Scale,
		Opacity:    style.Opacity,
		Grayscale:  style.Grayscale,
		Brightness: style.Brightness,
		Focused:    offset == 0,
		Z:          z,
	}
}

// Layout computes every item's slot for n items.
func Layout(n, selected int, p config.Preset, focused, resting config.ItemStyle) []ItemLayout {
	out := make([]ItemLayout, n)
	for i := range out {
		out[i] = Slot(i, selected, p, focused, resting)
	}
	return out
}

// OrbitPoint returns the centre of an item rotated by rotation degrees around
// a pivot radius below the stage centre, relative to the stage centre.
func OrbitPoint(rotation, radius float64) (x, y float64) {
	theta := rotation * math.Pi / 180
	return radius * math.Sin(theta), radius - radius*math.Cos(theta)
}

// Hit returns the index of the item drawn under (x, y), relative to the stage
// centre, or -1. Items are tested top-most first using their animated rotation
// and scale.
func Hit(slots []ItemLayout, visuals []Visual, radius, x, y float64) int {
	best, bestZ := -1, -1
	for i, s := range slots {
		v := Visual{Rotation: s.Rotation, Scale: s.Scale}
		if i < len(visuals) {
			v = visuals[i]
		}
		cx, cy := OrbitPoint(v.Rotation, radius)
		r := s.Size * v.Scale / 2
		dx, dy := x-cx, y-cy
		if dx*dx+dy*dy > r*r {
			continue
		}
		if s.Z > bestZ {
			best, bestZ = i, s.Z
		}
	}
	return best
}

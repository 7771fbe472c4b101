// Package camera provides the vertical page scroller for the site viewport.
package camera

import "github.com/charmbracelet/harmonica"

// settleEps is the distance in pixels below which scrolling snaps to target.
const settleEps = 0.05

// Camera controls the viewport into the page.
// Y is the page offset of the viewport's top edge, clamped to [0, MaxY()].
type Camera struct {
	// Current and target scroll offsets in page pixels
	Y, TargetY float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Total page height
	PageH float32

	spring    harmonica.Spring
	springDT  float64
	frequency float64
	damping   float64
	vel       float64
}

// New creates a camera at the top of the page. frequency and damping
// configure the smooth-scroll spring.
func New(viewportW, viewportH, pageH float32, frequency, damping float64) *Camera {
	return &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		PageH:     pageH,
		frequency: frequency,
		damping:   damping,
	}
}

// MaxY returns the largest valid scroll offset.
func (c *Camera) MaxY() float32 {
	if c.PageH <= c.ViewportH {
		return 0
	}
	return c.PageH - c.ViewportH
}

// WorldToScreen converts page coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return wx, wy - c.Y
}

// ScreenToWorld converts screen coordinates to page coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return sx, sy + c.Y
}

// IsVisible reports whether a band of height h starting at page offset y
// overlaps the viewport.
func (c *Camera) IsVisible(y, h float32) bool {
	return y+h >= c.Y && y <= c.Y+c.ViewportH
}

// Resize updates viewport dimensions and re-clamps the scroll offsets.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.clampAll()
}

// SetPageHeight updates the page length and re-clamps the scroll offsets.
func (c *Camera) SetPageHeight(pageH float32) {
	c.PageH = pageH
	c.clampAll()
}

func (c *Camera) clampAll() {
	c.Y = clamp(c.Y, 0, c.MaxY())
	c.TargetY = clamp(c.TargetY, 0, c.MaxY())
}

// Scroll moves the scroll target by dy pixels.
func (c *Camera) Scroll(dy float32) {
	c.ScrollTo(c.TargetY + dy)
}

// ScrollTo sets the scroll target. The viewport glides there on Update.
func (c *Camera) ScrollTo(y float32) {
	c.TargetY = clamp(y, 0, c.MaxY())
}

// JumpTo moves the viewport immediately, cancelling any glide.
func (c *Camera) JumpTo(y float32) {
	c.ScrollTo(y)
	c.Y = c.TargetY
	c.vel = 0
}

// Update advances the smooth scroll by dt seconds.
func (c *Camera) Update(dt float64) {
	if dt <= 0 {
		return
	}
	if dt != c.springDT {
		c.spring = harmonica.NewSpring(dt, c.frequency, c.damping)
		c.springDT = dt
	}
	y, v := c.spring.Update(float64(c.Y), c.vel, float64(c.TargetY))
	c.Y, c.vel = clamp(float32(y), 0, c.MaxY()), v
	if absf(c.Y-c.TargetY) < settleEps && absf(float32(c.vel)) < settleEps {
		c.Y, c.vel = c.TargetY, 0
	}
}

// Settled reports whether the viewport has reached its target.
func (c *Camera) Settled() bool {
	return c.Y == c.TargetY && c.vel == 0
}

// Reset returns the camera to the top of the page.
func (c *Camera) Reset() {
	c.Y, c.TargetY, c.vel = 0, 0, 0
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

package site

import (
	"math"

	"github.com/pthm-cable/starfield/content"
	"github.com/pthm-cable/starfield/systems"
)

// clickSlop is the pointer travel in pixels below which a press and release
// count as a click rather than a drag.
const clickSlop = 6

// Input is one frame of sampled user input. Coordinates are screen pixels.
type Input struct {
	X, Y  float32
	Moved bool

	// Primary button edges and level
	Pressed, Down, Released bool

	// Wheel notches; positive scrolls toward the top of the page
	Wheel float32

	// Viewport size; a change triggers a resize
	Width, Height int32

	Left, Right, Enter, Home, PageUp, PageDown bool
}

// handleInput applies one frame of input once the welcome overlay is gone.
func (s *Site) handleInput(in Input) {
	if in.Moved {
		s.pointerX, s.pointerY = in.X, in.Y
		s.sched.PointerMove(in.X, in.Y)
		s.collector.RecordPointerMove()
	}

	s.handlePress(in)
	s.handleKeys(in)

	if in.Wheel != 0 {
		s.camera.Scroll(-in.Wheel * float32(s.cfg.Page.WheelStep))
	}

	s.updateHover()
}

// handlePress runs the drag and click protocols.
func (s *Site) handlePress(in Input) {
	if in.Pressed {
		s.pressed = true
		s.pressX, s.pressY = in.X, in.Y
		_, py := s.camera.ScreenToWorld(in.X, in.Y)
		if s.page.Stage.Contains(in.X, py) && s.navLinkAt(in.X, in.Y) < 0 {
			s.orbit.DragStart(float64(in.X))
		}
	}

	if in.Down && s.orbit.Dragging() {
		s.orbit.DragMove(float64(in.X))
	}

	if in.Released && s.pressed {
		s.pressed = false
		travel := math.Hypot(float64(in.X-s.pressX), float64(in.Y-s.pressY))
		if s.orbit.Dragging() {
			s.orbit.DragMove(float64(in.X))
			if travel < clickSlop {
				s.orbit.CancelDrag()
				s.click(in.X, in.Y)
			} else {
				s.orbit.DragEnd()
			}
		} else if travel < clickSlop {
			s.click(in.X, in.Y)
		}
	}
}

// handleKeys maps keyboard shortcuts onto the carousel and scroller.
func (s *Site) handleKeys(in Input) {
	if in.Left {
		s.orbit.SelectPrevious()
	}
	if in.Right {
		s.orbit.SelectNext()
	}
	if in.Enter {
		s.orbit.Click(s.orbit.Selected())
	}
	if in.Home {
		s.NavigateTo(content.AnchorHome)
	}
	page := float32(s.height) * 0.9
	if in.PageDown {
		s.camera.Scroll(page)
	}
	if in.PageUp {
		s.camera.Scroll(-page)
	}
}

// click dispatches a click at screen (x, y) to the element under it.
func (s *Site) click(x, y float32) {
	if NavLogo().Contains(x, y) {
		s.NavigateTo(content.AnchorHome)
		return
	}
	if i := s.navLinkAt(x, y); i >= 0 {
		s.NavigateTo(content.Anchors()[i])
		return
	}

	_, py := s.camera.ScreenToWorld(x, y)
	if i := s.planetAt(x, py); i >= 0 {
		s.orbit.Click(i)
		return
	}
	for i, r := range s.page.Projects {
		if r.Contains(x, py) {
			s.open(content.Projects[i].Link)
			return
		}
	}
	if s.page.Marquee.Contains(x, py) {
		if i := MarqueeItemAt(x, s.marquee.Offset(), s.cfg.Marquee.Copies); i >= 0 {
			s.open(content.TechStack[i].URL)
		}
		return
	}
	for i, r := range s.page.Socials {
		if r.Contains(x, py) {
			s.open(content.Socials[i].URL)
			return
		}
	}
}

// navLinkAt returns the navbar link under screen (x, y), or -1. Links only
// respond while shown.
func (s *Site) navLinkAt(x, y float32) int {
	if !s.NavVisible() {
		return -1
	}
	for i, r := range NavLinks(float32(s.width)) {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// planetAt returns the carousel item under page (x, y), or -1.
func (s *Site) planetAt(x, y float32) int {
	if !s.page.Stage.Contains(x, y) {
		return -1
	}
	rx := float64(x-s.page.StageCenterX) - s.orbit.DragOffset()
	ry := float64(y - s.page.StageCenterY)
	return systems.Hit(s.slots, s.Visuals(), s.preset.Radius, rx, ry)
}

// updateHover recomputes what the pointer is over.
func (s *Site) updateHover() {
	h := noHover()
	x, y := s.pointerX, s.pointerY
	_, py := s.camera.ScreenToWorld(x, y)

	h.Logo = NavLogo().Contains(x, y)
	h.Nav = s.navLinkAt(x, y)
	if h.Nav < 0 && !h.Logo {
		h.Planet = s.planetAt(x, py)
		for i, r := range s.page.Projects {
			if r.Contains(x, py) {
				h.Project = i
			}
		}
		if s.page.Marquee.Contains(x, py) {
			h.Marquee = true
			h.Tech = MarqueeItemAt(x, s.marquee.Offset(), s.cfg.Marquee.Copies)
		}
		for i, r := range s.page.Socials {
			if r.Contains(x, py) {
				h.Social = i
			}
		}
	}
	s.hover = h
}

package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/site"
)

// sampleInput reads the window's pointer, wheel and keys for this frame.
// Keys are withheld while a form field is being edited.
func (g *Game) sampleInput() site.Input {
	g.handleResize()

	mouse := rl.GetMousePosition()
	in := site.Input{
		X:        mouse.X,
		Y:        mouse.Y,
		Moved:    mouse.X != g.lastX || mouse.Y != g.lastY,
		Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Down:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
		Wheel:    rl.GetMouseWheelMove(),
		Width:    int32(g.screenWidth),
		Height:   int32(g.screenHeight),
	}
	g.lastX, g.lastY = mouse.X, mouse.Y

	if !g.form.Editing() {
		in.Left = rl.IsKeyPressed(rl.KeyLeft)
		in.Right = rl.IsKeyPressed(rl.KeyRight)
		in.Enter = rl.IsKeyPressed(rl.KeyEnter)
		in.Home = rl.IsKeyPressed(rl.KeyHome)
		in.PageUp = rl.IsKeyPressed(rl.KeyPageUp)
		in.PageDown = rl.IsKeyPressed(rl.KeyPageDown) || rl.IsKeyPressed(rl.KeySpace)
	}
	return in
}

// handleResize picks up window size changes. The site resizes itself and
// the trail surface from the sampled input.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth, g.screenHeight = w, h

	g.background.Resize(w, h)
	g.sections.Resize(w, h)
	g.marquee.Resize(w, h)
	g.nav.Resize(w)
	g.perfPanel.SetPosition(int32(w)-250, 80)
	g.inspector.SetPosition(int32(w)-250, 300)
}

// updateCursor shows a pointing hand over anything clickable.
func (g *Game) updateCursor() {
	h := g.site.Hover()
	pointing := h.Planet >= 0 || h.Project >= 0 || h.Nav >= 0 || h.Social >= 0 || h.Tech >= 0 || h.Logo
	if pointing == g.pointing {
		return
	}
	g.pointing = pointing
	if pointing {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/content"
	"github.com/pthm-cable/starfield/systems"
	"github.com/pthm-cable/starfield/ui"
)

// drawActiveOverlays renders every enabled debug overlay.
func (g *Game) drawActiveOverlays() {
	if g.overlays.IsEnabled(ui.OverlaySections) {
		g.drawSectionBounds()
	}
	if g.overlays.IsEnabled(ui.OverlayHitboxes) {
		g.drawHitboxes()
	}
	if g.overlays.IsEnabled(ui.OverlayControls) {
		g.controls.Draw(g.overlays)
	}
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.site.Perf().Stats())
		g.hud.Draw(g.hudData(), int32(g.screenHeight))
	}
	if g.overlays.IsEnabled(ui.OverlayInspector) {
		g.inspector.Draw(g.inspectorData())
	}
}

func (g *Game) hudData() ui.HUDData {
	s := g.site
	selected := ""
	if sel := s.Orbit().Selected(); sel >= 0 && sel < len(content.Planets) {
		selected = content.Planets[sel].Name
	}
	return ui.HUDData{
		Frame:     s.Frame(),
		FPS:       rl.GetFPS(),
		Particles: s.Trail().Count(),
		Selected:  selected,
		ScrollY:   s.Camera().Y,
		MaxY:      s.Camera().MaxY(),
		Section:   s.CurrentAnchor(),
	}
}

func (g *Game) inspectorData() ui.InspectorData {
	s := g.site
	orbit := s.Orbit()
	sel := orbit.Selected()
	data := ui.InspectorData{
		Dragging:  orbit.Dragging(),
		DragDelta: orbit.DragDelta(),
		Settled:   s.Motion().Settled(),
	}
	if sel >= 0 && sel < len(content.Planets) {
		data.Planet = content.Planets[sel]
	}
	if slots := s.Slots(); sel >= 0 && sel < len(slots) {
		data.Slot = slots[sel]
	}
	if visuals := s.Visuals(); sel >= 0 && sel < len(visuals) {
		data.Visual = visuals[sel]
	}
	return data
}

// drawSectionBounds outlines each page section and the orbit stage.
func (g *Game) drawSectionBounds() {
	page := g.site.Page()
	scrollY := g.site.Camera().Y
	for _, sec := range page.Sections {
		y := int32(sec.Y - scrollY)
		rl.DrawRectangleLines(1, y, int32(page.Width)-2, int32(sec.H), rl.Fade(rl.SkyBlue, 0.6))
		rl.DrawText("#"+sec.Anchor, 8, y+4, 12, rl.SkyBlue)
	}
	st := page.Stage
	rl.DrawRectangleLines(int32(st.X), int32(st.Y-scrollY), int32(st.W), int32(st.H), rl.Fade(rl.Orange, 0.6))
}

// drawHitboxes outlines the circle each planet accepts clicks in.
func (g *Game) drawHitboxes() {
	s := g.site
	page := s.Page()
	preset := s.Preset()
	cx := page.StageCenterX + float32(s.Orbit().DragOffset())
	cy := page.StageCenterY - s.Camera().Y

	slots := s.Slots()
	for i, v := range s.Visuals() {
		if i >= len(slots) {
			break
		}
		ox, oy := systems.OrbitPoint(v.Rotation, preset.Radius)
		r := float32(slots[i].Size * v.Scale / 2)
		color := rl.Red
		if i == s.Hover().Planet {
			color = rl.Green
		}
		rl.DrawCircleLinesV(rl.Vector2{X: cx + float32(ox), Y: cy + float32(oy)}, r, color)
	}
}

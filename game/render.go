package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/content"
	"github.com/pthm-cable/starfield/renderer"
)

// Draw renders the frame: page content back to front, the navbar, the star
// trail above everything, then debug overlays.
func (g *Game) Draw() {
	s := g.site
	s.BeginDraw()

	rl.BeginDrawing()

	page := s.Page()
	scrollY := s.Camera().Y
	hover := s.Hover()
	px, py := s.Pointer()

	g.background.Draw(s.Elapsed(), scrollY)

	// Hero
	g.sections.DrawHero(page, scrollY, px, py)
	preset := s.Preset()
	stage := renderer.OrbitStage{
		CenterX:    page.StageCenterX,
		CenterY:    page.StageCenterY - scrollY,
		DragOffset: float32(s.Orbit().DragOffset()),
		Preset:     preset,
	}
	g.orbit.Draw(stage, s.Slots(), s.Visuals(), content.Planets, hover.Planet)
	if sel := s.Orbit().Selected(); sel >= 0 && sel < len(content.Planets) {
		captionY := stage.CenterY + float32(preset.ItemSize)*0.7 + 24
		g.orbit.DrawCaption(page.StageCenterX, captionY, content.Planets[sel])
	}

	g.sections.DrawProjects(page, scrollY, hover.Project)
	g.sections.DrawAbout(page, scrollY)
	g.marquee.Draw(page.Marquee, scrollY, s.Marquee().Offset(), s.Config().Marquee.Copies, hover.Tech)
	g.sections.DrawContactHeading(page, scrollY, hover.Social)
	g.form.Draw(page.Form, scrollY, g.screenHeight, s.Form(), func() {
		// Validation errors are shown by the form itself
		_ = s.SubmitContact()
	})
	g.sections.DrawFooter(page, scrollY)

	g.nav.Draw(s.NavVisible(), hover.Logo, hover.Nav)

	if loading, remaining := s.Loading(); loading {
		g.sections.DrawLoader(remaining)
	}

	g.trailTex.Draw()

	g.drawActiveOverlays()

	rl.EndDrawing()

	s.EndFrame()
}

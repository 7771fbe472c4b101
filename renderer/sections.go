package renderer

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/content"
	"github.com/pthm-cable/starfield/raster"
	"github.com/pthm-cable/starfield/site"
)

// spotlightRadius is how far from the pointer the hero title lights up.
const spotlightRadius = 250

// SectionRenderer draws the static page sections.
type SectionRenderer struct {
	screenW, screenH float32
}

// NewSectionRenderer creates a section renderer for the given viewport.
func NewSectionRenderer(screenW, screenH int32) *SectionRenderer {
	return &SectionRenderer{screenW: float32(screenW), screenH: float32(screenH)}
}

// Resize updates the viewport dimensions.
func (r *SectionRenderer) Resize(w, h float32) {
	r.screenW, r.screenH = w, h
}

// DrawHero renders the hero captions around the orbit stage. The title
// brightens near the pointer.
func (r *SectionRenderer) DrawHero(page site.Page, scrollY, pointerX, pointerY float32) {
	top := page.Stage.Y - scrollY
	cx := page.Width / 2

	drawTextCentered("WELCOME TO MY UNIVERSE", cx, top-70, 16, rl.Fade(ColorCyan300, 0.8))

	title := "SAYAN RAUT"
	size := int32(64)
	if page.Width < 768 {
		size = 40
	}
	tw := float32(rl.MeasureText(title, size))
	ty := top - 40
	dist := math.Hypot(float64(pointerX-cx), float64(pointerY-(ty+float32(size)/2)))
	lit := 1 - math.Min(dist/spotlightRadius, 1)
	color := raster.Lerp(rl.Fade(rl.White, 0.12), rl.White, lit)
	rl.DrawText(title, int32(cx-tw/2), int32(ty), size, color)

	bottom := page.Stage.Y + page.Stage.H - scrollY
	drawTextCentered("SWIPE OR DRAG TO EXPLORE", cx, bottom+80, 14, rl.Fade(ColorGray500, 0.8))
}

// DrawProjects renders the works list. hovered is the row under the pointer or -1.
func (r *SectionRenderer) DrawProjects(page site.Page, scrollY float32, hovered int) {
	sec := page.Sections[1]
	headY := sec.Y - scrollY + 100
	if headY+120 >= 0 && headY <= r.screenH {
		rl.DrawText("SELECTED", int32(page.Projects[0].X), int32(headY), 48, rl.White)
		rl.DrawText("WORKS", int32(page.Projects[0].X), int32(headY+52), 48, ColorAccent)
	}

	for i, p := range content.Projects {
		rect := screenRect(page.Projects[i], scrollY)
		if !visible(rect, r.screenH) {
			continue
		}
		bg := rl.Fade(rl.White, 0.03)
		border := ColorHairline
		if i == hovered {
			bg = rl.Fade(rl.White, 0.07)
			border = rl.Fade(rl.White, 0.3)
		}
		rl.DrawRectangleRounded(rect, 0.2, 8, bg)
		rl.DrawRectangleRoundedLines(rect, 0.2, 8, border)

		x := int32(rect.X + 28)
		rl.DrawText(fmt.Sprintf("%02d", i+1), x, int32(rect.Y+24), 20, ColorGray500)
		rl.DrawText(p.Title, x+56, int32(rect.Y+20), 32, rl.White)
		rl.DrawText(p.Category, x+56, int32(rect.Y+62), 14, ColorAccent)

		arrow := rl.Fade(rl.White, 0.4)
		if i == hovered {
			arrow = ColorAccent
		}
		rl.DrawText("->", int32(rect.X+rect.Width-60), int32(rect.Y+38), 28, arrow)
	}
}

// DrawAbout renders the about headline, marquee label and expertise cards.
func (r *SectionRenderer) DrawAbout(page site.Page, scrollY float32) {
	sec := page.Sections[2]
	cx := page.Width / 2
	y := sec.Y - scrollY + 100

	if y+300 >= 0 && y <= r.screenH {
		drawTextCentered("I AM "+content.OwnerName+".", cx, y, 40, ColorAccent)
		drawTextCentered("ENGINEERED FOR PERFORMANCE.", cx, y+60, 40, ColorGray400)
		drawTextCentered("DESIGNED FOR IMPACT.", cx, y+120, 40, ColorGray400)
		rl.DrawRectangle(int32(cx-96), int32(y+190), 192, 6, ColorAccent)
	}

	labelY := page.Marquee.Y - scrollY - 36
	drawTextCentered("TECH ARSENAL", cx, labelY, 14, ColorGray500)

	headY := page.Cards[0].Y - scrollY - 150
	if headY+100 >= 0 && headY <= r.screenH {
		drawTextCentered("AREAS OF EXPERTISE", cx, headY, 40, rl.White)
		drawTextCentered("My technical toolkit and design philosophy.", cx, headY+56, 16, ColorGray500)
	}

	for i, e := range content.ExpertiseAreas {
		rect := screenRect(page.Cards[i], scrollY)
		if !visible(rect, r.screenH) {
			continue
		}
		rl.DrawRectangleRounded(rect, 0.15, 8, rl.Fade(rl.White, 0.03))
		rl.DrawRectangleRoundedLines(rect, 0.15, 8, ColorHairline)
		rl.DrawText(e.Title, int32(rect.X+28), int32(rect.Y+24), 26, rl.White)
		drawTextWrapped(e.Description, rect.X+28, rect.Y+64, rect.Width-56, 16, ColorGray400)
	}
}

// DrawContactHeading renders the contact section heading and the socials row.
// hoveredSocial is the link under the pointer or -1.
func (r *SectionRenderer) DrawContactHeading(page site.Page, scrollY float32, hoveredSocial int) {
	sec := page.Sections[3]
	cx := page.Width / 2
	y := sec.Y - scrollY + 60

	if y+260 >= 0 && y <= r.screenH {
		drawTextCentered("LET'S WORK", cx, y, 56, rl.White)
		drawTextCentered("TOGETHER", cx, y+64, 56, ColorAccent)
		drawTextWrapped("Have an idea? Let's turn it into reality. Send me a message and I'll get back to you.",
			page.Form.Bounds.X, y+156, page.Form.Bounds.W, 18, ColorGray400)
	}

	for i, link := range content.Socials {
		rect := screenRect(page.Socials[i], scrollY)
		if !visible(rect, r.screenH) {
			continue
		}
		color := ColorGray500
		border := ColorHairline
		if i == hoveredSocial {
			color = rl.White
			border = ColorAccent
		}
		rl.DrawRectangleRounded(rect, 1, 12, rl.Fade(rl.White, 0.02))
		rl.DrawRectangleRoundedLines(rect, 1, 12, border)
		drawTextCentered(link.Name, rect.X+rect.Width/2, rect.Y+16, 16, color)
	}
}

// DrawFooter renders the copyright line.
func (r *SectionRenderer) DrawFooter(page site.Page, scrollY float32) {
	rect := screenRect(page.Footer, scrollY)
	if !visible(rect, r.screenH) {
		return
	}
	rl.DrawLine(0, int32(rect.Y), int32(rect.Width), int32(rect.Y), rl.Fade(rl.White, 0.05))
	drawTextCentered(fmt.Sprintf("(C) 2024 %s. ALL RIGHTS RESERVED.", content.OwnerName), rect.Width/2, rect.Y+32, 12, ColorGray500)
}

// DrawLoader renders the welcome overlay. remaining runs from 1 down to 0.
func (r *SectionRenderer) DrawLoader(remaining float64) {
	rl.DrawRectangle(0, 0, int32(r.screenW), int32(r.screenH), ColorDark)

	// Fade the word in over the first fifth, out over the last fifth
	t := 1 - remaining
	alpha := math.Min(math.Min(t/0.2, remaining/0.2), 1)
	drawTextCentered("WELCOME", r.screenW/2, r.screenH/2-12, 24, rl.Fade(ColorLight, float32(alpha)))
}

// Unload frees resources (none for this renderer).
func (r *SectionRenderer) Unload() {}

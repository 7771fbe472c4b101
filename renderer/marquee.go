package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/content"
	"github.com/pthm-cable/starfield/site"
)

const marqueeFade = 120

// MarqueeRenderer draws the scrolling tech-stack strip.
type MarqueeRenderer struct {
	screenW, screenH float32
}

// NewMarqueeRenderer creates a marquee renderer for the given viewport.
func NewMarqueeRenderer(screenW, screenH int32) *MarqueeRenderer {
	return &MarqueeRenderer{screenW: float32(screenW), screenH: float32(screenH)}
}

// Resize updates the viewport dimensions.
func (r *MarqueeRenderer) Resize(w, h float32) {
	r.screenW, r.screenH = w, h
}

// Draw renders the strip inside the marquee band. offset is the scroll
// position in percent of the full strip; hovered is the tech index under the
// pointer or -1.
func (r *MarqueeRenderer) Draw(band site.Rect, scrollY float32, offset float64, copies, hovered int) {
	rect := screenRect(band, scrollY)
	if !visible(rect, r.screenH) || copies < 1 {
		return
	}
	n := len(content.TechStack)
	stripW := site.MarqueeStripW() * float32(copies)
	x0 := float32(offset/100) * stripW
	cy := rect.Y + rect.Height/2

	rl.DrawLine(0, int32(rect.Y), int32(r.screenW), int32(rect.Y), ColorHairline)
	rl.DrawLine(0, int32(rect.Y+rect.Height), int32(r.screenW), int32(rect.Y+rect.Height), ColorHairline)

	for k := 0; k < n*copies; k++ {
		x := x0 + float32(k)*site.MarqueeItemW
		if x+site.MarqueeItemW < 0 || x > r.screenW {
			continue
		}
		i := k % n
		cx := x + site.MarqueeItemW/2

		color := ColorGray600
		label := ColorGray500
		if i == hovered {
			color = ColorAccent
			label = rl.White
		}
		rl.DrawCircleLinesV(rl.Vector2{X: cx, Y: cy - 14}, 22, color)
		initial := content.TechStack[i].Name[:1]
		drawTextCentered(initial, cx, cy-24, 20, color)
		drawTextCentered(content.TechStack[i].Name, cx, cy+18, 14, label)
	}

	// Soft edges
	rl.DrawRectangleGradientH(0, int32(rect.Y), marqueeFade, int32(rect.Height), ColorDark, rl.Fade(ColorDark, 0))
	rl.DrawRectangleGradientH(int32(r.screenW)-marqueeFade, int32(rect.Y), marqueeFade, int32(rect.Height), rl.Fade(ColorDark, 0), ColorDark)
}

// Unload frees resources (none for this renderer).
func (r *MarqueeRenderer) Unload() {}

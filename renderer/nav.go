package renderer

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/content"
	"github.com/pthm-cable/starfield/site"
)

// navFade is the per-frame easing of the link opacity.
const navFade = 0.15

// NavRenderer draws the fixed navbar. Links fade in once the page has
// scrolled past the hero.
type NavRenderer struct {
	screenW float32
	alpha   float32
}

// NewNavRenderer creates a navbar renderer for the given viewport width.
func NewNavRenderer(screenW int32) *NavRenderer {
	return &NavRenderer{screenW: float32(screenW)}
}

// Resize updates the viewport width.
func (r *NavRenderer) Resize(w float32) {
	r.screenW = w
}

// Draw renders the logo and, when shown, the section links. hovered is the
// link under the pointer or -1.
func (r *NavRenderer) Draw(shown, logoHovered bool, hovered int) {
	target := float32(0)
	if shown {
		target = 1
	}
	r.alpha += (target - r.alpha) * navFade

	logo := site.NavLogo()
	rl.DrawText("SR", int32(logo.X), int32(logo.Y+6), 28, rl.White)
	dot := ColorAccent
	if logoHovered {
		dot = rl.White
	}
	rl.DrawText(".", int32(logo.X)+rl.MeasureText("SR", 28), int32(logo.Y+6), 28, dot)

	if r.alpha < 0.01 {
		return
	}
	anchors := content.Anchors()
	for i, rect := range site.NavLinks(r.screenW) {
		color := rl.Fade(ColorGray400, r.alpha)
		if i == hovered {
			color = rl.Fade(rl.White, r.alpha)
		}
		drawTextCentered(strings.ToUpper(anchors[i]), rect.X+rect.W/2, rect.Y+9, 14, color)
	}
}

// Alpha returns the current link opacity.
func (r *NavRenderer) Alpha() float32 { return r.alpha }

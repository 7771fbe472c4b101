package renderer

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/site"
)

// Site palette.
var (
	ColorDark     = rl.Color{R: 10, G: 10, B: 12, A: 255}
	ColorLight    = rl.Color{R: 235, G: 235, B: 235, A: 255}
	ColorAccent   = rl.Color{R: 255, G: 77, B: 41, A: 255}
	ColorCyan200  = rl.Color{R: 165, G: 243, B: 252, A: 255}
	ColorCyan300  = rl.Color{R: 103, G: 232, B: 249, A: 255}
	ColorCyan500  = rl.Color{R: 6, G: 182, B: 212, A: 255}
	ColorGray400  = rl.Color{R: 156, G: 163, B: 175, A: 255}
	ColorGray500  = rl.Color{R: 107, G: 114, B: 128, A: 255}
	ColorGray600  = rl.Color{R: 75, G: 85, B: 99, A: 255}
	ColorRed500   = rl.Color{R: 239, G: 68, B: 68, A: 255}
	ColorGreen    = rl.Color{R: 34, G: 197, B: 94, A: 255}
	ColorHairline = rl.Color{R: 255, G: 255, B: 255, A: 25}
)

// screenRect converts a page rectangle to screen space for a scroll offset.
func screenRect(r site.Rect, scrollY float32) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y - scrollY, Width: r.W, Height: r.H}
}

// visible reports whether a screen rectangle overlaps a viewport of height h.
func visible(r rl.Rectangle, h float32) bool {
	return r.Y+r.Height >= 0 && r.Y <= h
}

// drawTextCentered draws text horizontally centred on cx.
func drawTextCentered(text string, cx, y float32, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, int32(cx)-w/2, int32(y), size, color)
}

// drawTextWrapped draws text word-wrapped to width and returns the height used.
func drawTextWrapped(text string, x, y, width float32, size int32, color rl.Color) float32 {
	lineH := float32(size) * 1.4
	line := ""
	lines := 0
	flush := func() {
		rl.DrawText(line, int32(x), int32(y+float32(lines)*lineH), size, color)
		lines++
		line = ""
	}
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && float32(rl.MeasureText(candidate, size)) > width {
			flush()
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		flush()
	}
	return float32(lines) * lineH
}

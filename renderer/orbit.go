package renderer

import (
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/config"
	"github.com/pthm-cable/starfield/content"
	"github.com/pthm-cable/starfield/raster"
	"github.com/pthm-cable/starfield/systems"
)

// Track arc geometry in degrees either side of the top of the circle.
const (
	trackSpan     = 48
	trackSegments = 24
	dashStep      = 2.5
)

// OrbitStage is the screen placement of the carousel for one frame.
type OrbitStage struct {
	CenterX, CenterY float32 // Stage centre on screen
	DragOffset       float32 // Elastic drag displacement
	Preset           config.Preset
}

// OrbitRenderer draws the orbit track, the planets and the active caption.
type OrbitRenderer struct {
	order []int
}

// NewOrbitRenderer creates a new orbit renderer.
func NewOrbitRenderer() *OrbitRenderer {
	return &OrbitRenderer{}
}

// Draw renders the carousel. hovered is the planet under the pointer or -1.
func (r *OrbitRenderer) Draw(stage OrbitStage, slots []systems.ItemLayout, visuals []systems.Visual, planets []content.Planet, hovered int) {
	r.drawTrack(stage)

	// Resting items first so the focused one is painted on top
	r.order = r.order[:0]
	for i := range slots {
		r.order = append(r.order, i)
	}
	sort.SliceStable(r.order, func(a, b int) bool {
		return slots[r.order[a]].Z < slots[r.order[b]].Z
	})

	radius := stage.Preset.Radius
	for _, i := range r.order {
		if i >= len(visuals) || i >= len(planets) {
			continue
		}
		v := visuals[i]
		ox, oy := systems.OrbitPoint(v.Rotation, radius)
		x := stage.CenterX + stage.DragOffset + float32(ox)
		y := stage.CenterY + float32(oy)
		size := float32(slots[i].Size * v.Scale / 2)

		if slots[i].Focused {
			drawPlanetGlow(x, y, size, planets[i].Color, v)
		}
		drawPlanet(x, y, size, planets[i].Color, v, i == hovered)
	}
}

// drawTrack renders the orbit line along the top of the shared circle. The
// ends fade out so the arc dissolves into the page.
func (r *OrbitRenderer) drawTrack(stage OrbitStage) {
	radius := float32(stage.Preset.Radius)
	center := rl.Vector2{X: stage.CenterX + stage.DragOffset, Y: stage.CenterY + radius}

	step := float32(2*trackSpan) / trackSegments
	for s := 0; s < trackSegments; s++ {
		start := 270 - trackSpan + float32(s)*step
		mid := start + step/2 - 270
		fade := 1 - float32(math.Abs(float64(mid)))/trackSpan

		// Glow, then the line itself
		rl.DrawRing(center, radius-6, radius+6, start, start+step, 4, rl.Fade(ColorCyan500, 0.05*fade))
		rl.DrawRing(center, radius-1, radius+1, start, start+step, 4, rl.Fade(ColorCyan500, 0.3*fade))
	}

	// Dashed inner line
	inner := radius - 24
	for a := float32(270 - trackSpan); a < 270+trackSpan; a += 2 * dashStep {
		fade := 1 - float32(math.Abs(float64(a+dashStep/2-270)))/trackSpan
		rl.DrawRing(center, inner-0.5, inner+0.5, a, a+dashStep, 2, rl.Fade(rl.White, 0.2*fade))
	}
}

// drawPlanetGlow draws the focused planet's halo as layered translucent discs.
func drawPlanetGlow(x, y, radius float32, c rl.Color, v systems.Visual) {
	glowLayers := []struct {
		scale float32
		alpha float32
	}{
		{2.0, 10},
		{1.6, 18},
		{1.3, 30},
		{1.1, 50},
	}

	strength := float32(v.Opacity * (1 - v.Grayscale))
	for _, layer := range glowLayers {
		color := c
		color.A = uint8(layer.alpha * strength)
		rl.DrawCircle(int32(x), int32(y), radius*layer.scale, color)
	}
}

// drawPlanet draws one planet with its emphasis filters applied.
func drawPlanet(x, y, radius float32, c rl.Color, v systems.Visual, hovered bool) {
	body := raster.Shade(c, v.Grayscale, v.Brightness, v.Opacity)
	shadow := raster.Shade(c, v.Grayscale, v.Brightness*0.35, v.Opacity)
	light := raster.Lerp(body, rl.White, 0.45)
	light.A = body.A

	rl.DrawCircleGradient(int32(x), int32(y), radius, body, shadow)
	// Sunlit cap toward the upper left
	rl.DrawCircleGradient(int32(x-radius*0.3), int32(y-radius*0.3), radius*0.45, rl.Fade(light, 0.5), rl.Fade(body, 0))

	rim := rl.Fade(rl.White, float32(0.15*v.Opacity))
	if hovered {
		rim = rl.Fade(rl.White, float32(0.45*v.Opacity))
	}
	rl.DrawCircleLinesV(rl.Vector2{X: x, Y: y}, radius, rim)
}

// DrawCaption renders the focused planet's name and description under the stage.
func (r *OrbitRenderer) DrawCaption(cx, y float32, planet content.Planet) {
	drawTextCentered(planet.Name, cx, y, 36, rl.White)
	drawTextCentered(planet.Description, cx, y+46, 18, rl.Fade(ColorCyan200, 0.9))
}

// Unload frees resources (none for this renderer).
func (r *OrbitRenderer) Unload() {}

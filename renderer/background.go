package renderer

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/starfield/raster"
)

// Sky density and nebula texture resolution.
const (
	starsPerMegapixel = 180
	nebulaDownscale   = 4
	nebulaParallax    = 0.3
)

// BackgroundRenderer renders the dark page backdrop: a noise nebula that
// drifts with the page and a twinkling star field.
type BackgroundRenderer struct {
	screenW, screenH float32
	seed             int64
	stars            []raster.Star
	tint             rl.Color

	nebula           rl.Texture2D
	hasNebula        bool
	nebulaW, nebulaH int
}

// NewBackgroundRenderer creates a background for the given viewport. The
// same seed always produces the same sky. Requires an open window.
func NewBackgroundRenderer(screenW, screenH int32, seed int64) *BackgroundRenderer {
	b := &BackgroundRenderer{
		seed: seed,
		tint: rl.Color{R: 8, G: 47, B: 73, A: 140},
	}
	b.Resize(float32(screenW), float32(screenH))
	return b
}

// Resize regenerates the sky for a new viewport.
func (b *BackgroundRenderer) Resize(w, h float32) {
	if w == b.screenW && h == b.screenH {
		return
	}
	b.screenW, b.screenH = w, h
	n := int(w * h / 1e6 * starsPerMegapixel)
	b.stars = raster.GenerateStars(rand.New(rand.NewSource(b.seed)), n)
	b.loadNebula()
}

// loadNebula uploads a low-resolution cloud layer; it is stretched on draw.
func (b *BackgroundRenderer) loadNebula() {
	b.unloadNebula()
	b.nebulaW = int(b.screenW) / nebulaDownscale
	b.nebulaH = int(b.screenH) / nebulaDownscale
	if b.nebulaW <= 0 || b.nebulaH <= 0 {
		return
	}
	img := rl.NewImageFromImage(raster.Nebula(b.nebulaW, b.nebulaH, b.seed, b.tint))
	b.nebula = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(b.nebula, rl.FilterBilinear)
	b.hasNebula = true
}

func (b *BackgroundRenderer) unloadNebula() {
	if b.hasNebula {
		rl.UnloadTexture(b.nebula)
		b.hasNebula = false
	}
}

// Draw renders the backdrop at time t seconds for a page scrolled by scrollY.
func (b *BackgroundRenderer) Draw(t float64, scrollY float32) {
	rl.ClearBackground(ColorDark)

	// The nebula sits over the hero and scrolls away slower than the page
	if b.hasNebula {
		src := rl.Rectangle{Width: float32(b.nebulaW), Height: float32(b.nebulaH)}
		dst := rl.Rectangle{Y: -scrollY * nebulaParallax, Width: b.screenW, Height: b.screenH}
		if dst.Y+dst.Height > 0 {
			rl.DrawTexturePro(b.nebula, src, dst, rl.Vector2{}, 0, rl.White)
		}
	}

	for _, s := range b.stars {
		x := s.X * b.screenW
		y := s.ScreenY(b.screenH, scrollY)
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, s.Radius, rl.Fade(rl.White, s.Alpha(t)))
	}
}

// Unload frees the nebula texture.
func (b *BackgroundRenderer) Unload() {
	b.unloadNebula()
}

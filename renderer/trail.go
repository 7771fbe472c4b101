package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// TrailCanvas is a GPU render target the star trail draws into.
// It is composited over the page every frame.
type TrailCanvas struct {
	target      rl.RenderTexture2D
	width       int32
	height      int32
	initialized bool
	drawing     bool
}

// NewTrailCanvas creates a trail canvas covering a width x height viewport.
func NewTrailCanvas(width, height int32) *TrailCanvas {
	return &TrailCanvas{width: width, height: height}
}

// Init allocates the render texture (must be called after raylib window is created).
func (c *TrailCanvas) Init() {
	if c.initialized {
		return
	}
	c.target = rl.LoadRenderTexture(c.width, c.height)
	c.initialized = true
}

// Ready reports whether the render texture exists.
func (c *TrailCanvas) Ready() bool {
	return c.initialized
}

// Resize reallocates the render texture. Its pixels are redrawn on the next frame.
func (c *TrailCanvas) Resize(width, height int32) {
	if width <= 0 || height <= 0 || (width == c.width && height == c.height) {
		return
	}
	c.width, c.height = width, height
	if !c.initialized {
		return
	}
	rl.UnloadRenderTexture(c.target)
	c.target = rl.LoadRenderTexture(width, height)
}

// Clear starts a frame on the render texture with every pixel transparent.
func (c *TrailCanvas) Clear() {
	if !c.initialized {
		return
	}
	rl.BeginTextureMode(c.target)
	c.drawing = true
	rl.ClearBackground(rl.Blank)
}

// FillDiamond draws a four-point star. Opacity is the particle's remaining life.
func (c *TrailCanvas) FillDiamond(x, y, radius, alpha float32) {
	if !c.drawing {
		return
	}
	// A square polygon with a zero rotation has its corners on the axes
	rl.DrawPoly(rl.Vector2{X: x, Y: y}, 4, radius, 0, rl.Fade(rl.White, alpha))
}

// Flush ends the frame on the render texture.
func (c *TrailCanvas) Flush() {
	if !c.drawing {
		return
	}
	rl.EndTextureMode()
	c.drawing = false
}

// Draw composites the trail over the screen.
func (c *TrailCanvas) Draw() {
	if !c.initialized {
		return
	}
	// Render textures are stored bottom-up
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(c.width), Height: -float32(c.height)}
	rl.DrawTextureRec(c.target.Texture, src, rl.Vector2{}, rl.White)
}

// Unload frees resources.
func (c *TrailCanvas) Unload() {
	if c.initialized {
		rl.UnloadRenderTexture(c.target)
		c.initialized = false
	}
}

// ExportPNG writes the current trail pixels to a PNG file.
func (c *TrailCanvas) ExportPNG(path string) bool {
	if !c.initialized {
		return false
	}
	img := rl.LoadImageFromTexture(c.target.Texture)
	defer rl.UnloadImage(img)
	rl.ImageFlipVertical(img)
	return rl.ExportImage(*img, path)
}

package raster

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
)

// ErrNoPixels is returned when encoding a canvas that was never sized.
var ErrNoPixels = errors.New("image canvas has no pixels")

// ImageCanvas is an in-memory trail surface for headless runs and snapshots.
type ImageCanvas struct {
	img        *image.NRGBA
	background color.NRGBA
}

// NewImageCanvas creates a canvas of the given size filled with background.
func NewImageCanvas(width, height int32, background color.NRGBA) *ImageCanvas {
	c := &ImageCanvas{background: background}
	c.Resize(width, height)
	return c
}

// Ready reports whether the canvas has pixels.
func (c *ImageCanvas) Ready() bool {
	return c.img != nil
}

// Resize reallocates the pixel buffer. Its content is redrawn on the next frame.
func (c *ImageCanvas) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	if c.img != nil && c.img.Rect.Dx() == int(width) && c.img.Rect.Dy() == int(height) {
		return
	}
	c.img = image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	c.Clear()
}

// Clear fills the canvas with the background colour.
func (c *ImageCanvas) Clear() {
	if c.img == nil {
		return
	}
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = c.background.R
		pix[i+1] = c.background.G
		pix[i+2] = c.background.B
		pix[i+3] = c.background.A
	}
}

// FillDiamond blends white into every pixel whose centre lies within the
// diamond |dx|+|dy| <= radius around (x, y).
func (c *ImageCanvas) FillDiamond(x, y, radius, alpha float32) {
	if c.img == nil || radius <= 0 || alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	b := c.img.Rect
	x0 := max(int(math.Floor(float64(x-radius))), b.Min.X)
	x1 := min(int(math.Ceil(float64(x+radius))), b.Max.X-1)
	y0 := max(int(math.Floor(float64(y-radius))), b.Min.Y)
	y1 := min(int(math.Ceil(float64(y+radius))), b.Max.Y-1)

	for py := y0; py <= y1; py++ {
		dy := float32(py) + 0.5 - y
		if dy < 0 {
			dy = -dy
		}
		for px := x0; px <= x1; px++ {
			dx := float32(px) + 0.5 - x
			if dx < 0 {
				dx = -dx
			}
			if dx+dy > radius {
				continue
			}
			c.blendWhite(px, py, alpha)
		}
	}
}

// blendWhite composites white at the given opacity over one pixel.
func (c *ImageCanvas) blendWhite(px, py int, alpha float32) {
	i := c.img.PixOffset(px, py)
	p := c.img.Pix[i : i+4 : i+4]

	dstA := float32(p[3]) / 255
	outA := alpha + dstA*(1-alpha)
	if outA <= 0 {
		return
	}
	for ch := 0; ch < 3; ch++ {
		dst := float32(p[ch]) / 255
		v := (alpha + dst*dstA*(1-alpha)) / outA
		p[ch] = uint8(v*255 + 0.5)
	}
	p[3] = uint8(outA*255 + 0.5)
}

// Flush is a no-op; pixels are written immediately.
func (c *ImageCanvas) Flush() {}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.NRGBA {
	return c.img
}

// WritePNG encodes the current canvas as PNG.
func (c *ImageCanvas) WritePNG(w io.Writer) error {
	if c.img == nil {
		return ErrNoPixels
	}
	return png.Encode(w, c.img)
}

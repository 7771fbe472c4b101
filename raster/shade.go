// Package raster holds drawing helpers that do not need a graphics context:
// the in-memory trail canvas, colour filters and the background star field.
package raster

import (
	"image/color"
	"math"
)

// Rec. 709 luma weights, as used by the CSS grayscale filter.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Shade applies grayscale, brightness and opacity filters to c, in that order.
// grayscale and opacity are in [0, 1]; brightness is a multiplier.
func Shade(c color.RGBA, grayscale, brightness, opacity float64) color.RGBA {
	grayscale = clamp01(grayscale)
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	l := lumaR*r + lumaG*g + lumaB*b
	r += (l - r) * grayscale
	g += (l - g) * grayscale
	b += (l - b) * grayscale

	if brightness < 0 {
		brightness = 0
	}
	return color.RGBA{
		R: channel(r * brightness),
		G: channel(g * brightness),
		B: channel(b * brightness),
		A: channel(float64(c.A) * clamp01(opacity)),
	}
}

// WithAlpha returns c with its alpha scaled by a.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	c.A = channel(float64(c.A) * clamp01(a))
	return c
}

// Lerp blends from a to b by t in [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return channel(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

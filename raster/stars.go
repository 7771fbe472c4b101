package raster

import (
	"math"
	"math/rand"
)

// Star is one background star. Position is normalized to the viewport.
type Star struct {
	X, Y   float32
	Radius float32
	Base   float32 // Mean opacity
	Phase  float64
	Speed  float64 // Twinkle angular speed in radians per second
	Depth  float32 // Parallax factor against page scroll, in (0, 1]
}

// GenerateStars returns n stars drawn from rng. The same seed always yields
// the same sky.
func GenerateStars(rng *rand.Rand, n int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:      rng.Float32(),
			Y:      rng.Float32(),
			Radius: 0.5 + rng.Float32()*1.2,
			Base:   0.25 + rng.Float32()*0.5,
			Phase:  rng.Float64() * 2 * math.Pi,
			Speed:  0.5 + rng.Float64()*2,
			Depth:  0.05 + rng.Float32()*0.25,
		}
	}
	return stars
}

// Alpha returns the star's opacity at time t seconds, in [0, 1].
func (s Star) Alpha(t float64) float32 {
	a := float64(s.Base) * (0.6 + 0.4*math.Sin(t*s.Speed+s.Phase))
	return float32(clamp01(a))
}

// ScreenY returns the star's vertical screen position for a viewport of
// height h scrolled by scrollY, wrapping so the sky never runs out.
func (s Star) ScreenY(h, scrollY float32) float32 {
	if h <= 0 {
		return 0
	}
	y := s.Y*h - scrollY*s.Depth
	y = float32(math.Mod(float64(y), float64(h)))
	if y < 0 {
		y += h
	}
	if y >= h {
		y = 0
	}
	return y
}

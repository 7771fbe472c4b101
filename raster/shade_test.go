package raster

import (
	"image/color"
	"math/rand"
	"testing"
)

func TestShade(t *testing.T) {
	green := color.RGBA{0x22, 0xc5, 0x5e, 0xff}

	tests := []struct {
		name                  string
		gray, bright, opacity float64
		check                 func(color.RGBA) bool
	}{
		{"identity", 0, 1, 1, func(c color.RGBA) bool { return c == green }},
		{"full grayscale", 1, 1, 1, func(c color.RGBA) bool { return c.R == c.G && c.G == c.B }},
		{"half opacity", 0, 1, 0.5, func(c color.RGBA) bool { return c.A == 128 && c.G == green.G }},
		{"brightness clamps", 0, 2, 1, func(c color.RGBA) bool { return c.G == 255 && c.R == 0x44 }},
		{"zero brightness", 0, 0, 1, func(c color.RGBA) bool { return c.R == 0 && c.G == 0 && c.B == 0 && c.A == 255 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shade(green, tt.gray, tt.bright, tt.opacity)
			if !tt.check(got) {
				t.Errorf("unexpected colour %v", got)
			}
		})
	}
}

func TestShadeRestingDimmerThanFocused(t *testing.T) {
	blue := color.RGBA{0x3b, 0x82, 0xf6, 0xff}
	focused := Shade(blue, 0, 1.2, 1)
	resting := Shade(blue, 0.6, 0.5, 0.6)

	sum := func(c color.RGBA) int { return int(c.R) + int(c.G) + int(c.B) }
	if sum(resting) >= sum(focused) {
		t.Errorf("expected resting %v dimmer than focused %v", resting, focused)
	}
	if resting.A >= focused.A {
		t.Errorf("expected resting more transparent, got %d vs %d", resting.A, focused.A)
	}
}

func TestLerp(t *testing.T) {
	a := color.RGBA{0, 0, 0, 0}
	b := color.RGBA{200, 100, 50, 255}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("expected start colour, got %v", got)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("expected end colour, got %v", got)
	}
	if got := Lerp(a, b, 0.5); got.R != 100 || got.G != 50 {
		t.Errorf("expected midpoint, got %v", got)
	}
}

func TestGenerateStarsDeterministic(t *testing.T) {
	a := GenerateStars(rand.New(rand.NewSource(3)), 50)
	b := GenerateStars(rand.New(rand.NewSource(3)), 50)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("star %d differs between identical seeds", i)
		}
	}
}

func TestStarAlphaAndWrap(t *testing.T) {
	stars := GenerateStars(rand.New(rand.NewSource(9)), 100)
	for i, s := range stars {
		for _, tm := range []float64{0, 0.7, 12.5, 300} {
			if a := s.Alpha(tm); a < 0 || a > 1 {
				t.Errorf("star %d alpha %f outside [0, 1]", i, a)
			}
		}
		for _, scroll := range []float32{0, 450, 12000} {
			if y := s.ScreenY(800, scroll); y < 0 || y >= 800 {
				t.Errorf("star %d y %f outside viewport at scroll %f", i, y, scroll)
			}
		}
	}
}

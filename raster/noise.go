package raster

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Perlin is a seeded 2D gradient noise source.
type Perlin struct {
	perm [512]uint8
}

// NewPerlin creates a noise source whose permutation is shuffled by seed.
func NewPerlin(seed int64) *Perlin {
	p := &Perlin{}
	rng := rand.New(rand.NewSource(seed))

	var perm [256]uint8
	for i := range perm {
		perm[i] = uint8(i)
	}
	rng.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })

	for i := 0; i < 256; i++ {
		p.perm[i] = perm[i]
		p.perm[i+256] = perm[i]
	}
	return p
}

// Noise returns gradient noise at (x, y), roughly in [-1, 1].
func (p *Perlin) Noise(x, y float64) float64 {
	xf, yf := math.Floor(x), math.Floor(y)
	xi, yi := int(xf)&255, int(yf)&255
	x, y = x-xf, y-yf

	u, v := fade(x), fade(y)

	a := int(p.perm[xi]) + yi
	b := int(p.perm[xi+1]) + yi

	return lerpf(v,
		lerpf(u, grad(p.perm[a], x, y), grad(p.perm[b], x-1, y)),
		lerpf(u, grad(p.perm[a+1], x, y-1), grad(p.perm[b+1], x-1, y-1)),
	)
}

// FBM sums octaves of noise, each at double frequency and gain times the
// amplitude of the last. The result is normalized to about [-1, 1].
func (p *Perlin) FBM(x, y float64, octaves int, gain float64) float64 {
	var sum, norm float64
	amp, freq := 1.0, 1.0
	for i := 0; i < octaves; i++ {
		sum += amp * p.Noise(x*freq, y*freq)
		norm += amp
		amp *= gain
		freq *= 2
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerpf(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad picks one of eight gradient directions from the hash.
func grad(hash uint8, x, y float64) float64 {
	switch hash & 7 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x
	case 5:
		return -x
	case 6:
		return y
	default:
		return -y
	}
}

// Nebula renders a soft cloud layer of width x height pixels. Density rises
// with the noise value and fades toward the bottom edge; tint's alpha caps
// the opacity.
func Nebula(width, height int, seed int64, tint color.RGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if width <= 0 || height <= 0 {
		return img
	}
	p := NewPerlin(seed)
	scale := 3.0 / float64(max(width, height))

	for y := 0; y < height; y++ {
		falloff := 1 - float64(y)/float64(height)
		for x := 0; x < width; x++ {
			n := p.FBM(float64(x)*scale, float64(y)*scale, 5, 0.5)
			density := clamp01((n+0.2)*1.4) * falloff * falloff
			img.SetNRGBA(x, y, color.NRGBA{
				R: tint.R, G: tint.G, B: tint.B,
				A: channel(density * float64(tint.A)),
			})
		}
	}
	return img
}

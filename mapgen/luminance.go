// Package mapgen derives PBR material maps from a single albedo buffer.
//
// luminance.go computes the shared luminance signal: every derivation
// except metalness reads the source only through per-pixel luminance.
package mapgen

import (
	"github.com/OnlyRezxx/pbr/texture"
)

// Luminance returns the luminance of the pixel at (x, y) as a scalar in
// [0,1], computed as mean(R,G,B)/255.
// This is a pure function with no side effects.
func Luminance(src *texture.PixelBuffer, x, y int) float64 {
	r, g, b, _ := src.At(x, y)
	return (float64(r) + float64(g) + float64(b)) / 3.0 / 255.0
}

// luminancePlane is a precomputed per-pixel luminance field in [0,1].
// Generators that sample neighborhoods build one up front so the O(9·W·H)
// normal-map scan reads floats instead of re-averaging channels.
type luminancePlane struct {
	w, h int
	v    []float64
}

// newLuminancePlane scans the source once and caches its luminance.
func newLuminancePlane(src *texture.PixelBuffer) *luminancePlane {
	p := &luminancePlane{
		w: src.Width,
		h: src.Height,
		v: make([]float64, src.Width*src.Height),
	}
	i := 0
	for o := 0; o < len(src.Pix); o += texture.BytesPerPixel {
		p.v[i] = (float64(src.Pix[o]) + float64(src.Pix[o+1]) + float64(src.Pix[o+2])) / 3.0 / 255.0
		i++
	}
	return p
}

// at returns the luminance at (x, y) with coordinates clamped to the
// plane bounds. Border samples repeat the nearest edge pixel, never wrap.
func (p *luminancePlane) at(x, y int) float64 {
	if x < 0 {
		x = 0
	} else if x >= p.w {
		x = p.w - 1
	}
	if y < 0 {
		y = 0
	} else if y >= p.h {
		y = p.h - 1
	}
	return p.v[y*p.w+x]
}

// smoothed returns the 3x3 neighborhood average around (x, y), the
// smoothed height sample used by the normal map. Out-of-bounds neighbor
// coordinates are clamped via at.
func (p *luminancePlane) smoothed(x, y int) float64 {
	sum := 0.0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			sum += p.at(x+dx, y+dy)
		}
	}
	return sum / 9.0
}

// pixelAverage returns mean(R,G,B) for the pixel starting at byte offset
// o, on the 0..255 scale used by the grayscale remap formulas.
func pixelAverage(pix []uint8, o int) float64 {
	return (float64(pix[o]) + float64(pix[o+1]) + float64(pix[o+2])) / 3.0
}

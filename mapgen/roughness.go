// Package mapgen derives PBR material maps from a single albedo buffer.
//
// roughness.go approximates microsurface roughness from luminance, under
// the heuristic that darker regions (crevices, grooves) are rougher and
// brighter regions (flat, polished) are smoother.
package mapgen

import (
	"github.com/OnlyRezxx/pbr/texture"
)

// roughnessContrast is the fixed contrast boost applied after the
// multiplier. The constant has no derivation on record; it is preserved
// exactly for output compatibility.
const roughnessContrast = 1.5

// RoughnessMap derives a grayscale roughness map from the source albedo.
//
// Per pixel: the inverted luminance (255 - mean(R,G,B)) is scaled by
// multiplier, contrast-boosted around mid-gray by roughnessContrast, and
// clamped into [0,255]. The result is written identically to R, G and B
// with opaque alpha.
//
// This is a pure function: the source buffer is never mutated.
func RoughnessMap(src *texture.PixelBuffer, multiplier float64) (*texture.PixelBuffer, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}

	out, err := texture.NewPixelBuffer(src.Width, src.Height)
	if err != nil {
		return nil, err
	}

	for o := 0; o < len(src.Pix); o += texture.BytesPerPixel {
		avg := pixelAverage(src.Pix, o)
		val := (255.0 - avg) * multiplier
		val = ((val/255.0-0.5)*roughnessContrast + 0.5) * 255.0

		v := clamp255(val)
		out.Pix[o] = v
		out.Pix[o+1] = v
		out.Pix[o+2] = v
		out.Pix[o+3] = 255
	}

	return out, nil
}

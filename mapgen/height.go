// Package mapgen derives PBR material maps from a single albedo buffer.
//
// height.go derives a displacement map from luminance with a fixed mild
// contrast adjustment.
package mapgen

import (
	"github.com/OnlyRezxx/pbr/texture"
)

// heightContrast is the fixed contrast adjustment applied to luminance.
// The constant has no derivation on record; it is preserved exactly for
// output compatibility.
const heightContrast = 1.2

// HeightMap derives a grayscale height (displacement) map from the
// source albedo.
//
// Per pixel: with avg = mean(R,G,B), the output is
// ((avg/255 - 0.5) × heightContrast + 0.5) × 255, clamped into [0,255]
// and written identically to R, G and B with opaque alpha.
//
// This is a pure function: the source buffer is never mutated.
func HeightMap(src *texture.PixelBuffer) (*texture.PixelBuffer, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}

	out, err := texture.NewPixelBuffer(src.Width, src.Height)
	if err != nil {
		return nil, err
	}

	for o := 0; o < len(src.Pix); o += texture.BytesPerPixel {
		avg := pixelAverage(src.Pix, o)
		v := clamp255(((avg/255.0-0.5)*heightContrast + 0.5) * 255.0)

		out.Pix[o] = v
		out.Pix[o+1] = v
		out.Pix[o+2] = v
		out.Pix[o+3] = 255
	}

	return out, nil
}

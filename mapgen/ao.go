// Package mapgen derives PBR material maps from a single albedo buffer.
//
// ao.go approximates contact shadowing by darkening low-luminance regions
// more aggressively than a linear mapping would.
package mapgen

import (
	"github.com/OnlyRezxx/pbr/texture"
)

// aoThreshold is the luminance floor below which occlusion intensifies.
// Pixels at or above the floor are fully unoccluded (white). The value
// has no derivation on record; it is preserved exactly for output
// compatibility.
const aoThreshold = 100.0

// AOMap derives a grayscale ambient-occlusion map from the source albedo.
//
// Per pixel: with avg = mean(R,G,B), pixels below aoThreshold map to
// round(avg/aoThreshold × 255) and everything else maps to 255. The hard
// threshold means shadows only deepen under the fixed luminance floor.
//
// This is a pure function: the source buffer is never mutated.
func AOMap(src *texture.PixelBuffer) (*texture.PixelBuffer, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}

	out, err := texture.NewPixelBuffer(src.Width, src.Height)
	if err != nil {
		return nil, err
	}

	for o := 0; o < len(src.Pix); o += texture.BytesPerPixel {
		avg := pixelAverage(src.Pix, o)

		var v uint8 = 255
		if avg < aoThreshold {
			v = clamp255(avg / aoThreshold * 255.0)
		}

		out.Pix[o] = v
		out.Pix[o+1] = v
		out.Pix[o+2] = v
		out.Pix[o+3] = 255
	}

	return out, nil
}

// Package mapgen derives PBR material maps from a single albedo buffer.
//
// normal.go estimates a tangent-space normal at each pixel from local
// luminance variation, producing a plausible bump-mapped surface from a
// flat color image.
package mapgen

import (
	"math"

	"github.com/OnlyRezxx/pbr/texture"
)

// DefaultNormalStrength is the conventional gradient amplification used
// when no caller-supplied strength is available.
const DefaultNormalStrength = 2.5

// NormalMap derives a tangent-space normal map from the source albedo.
//
// For each pixel the smoothed height (3x3 clamped-edge luminance average)
// is sampled at the four axis neighbors, giving the central differences
//
//	dx = (hL - hR) * strength
//	dy = (hU - hD) * strength
//	dz = 1.0
//
// The (dx, dy, dz) vector is normalized to unit length and each component
// is mapped from [-1,1] into an 8-bit channel. Alpha is fixed at 255.
//
// Border pixels reuse the nearest valid pixel for out-of-bounds neighbor
// samples (clamped, never wrapped). Sources are assumed seamlessly
// tileable, so clamping is technically inconsistent with tiling, but
// unclamped sampling produces worse edge artifacts; the policy is kept
// deliberately.
//
// This is a pure function: the source buffer is never mutated.
func NormalMap(src *texture.PixelBuffer, strength float64) (*texture.PixelBuffer, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}

	out, err := texture.NewPixelBuffer(src.Width, src.Height)
	if err != nil {
		return nil, err
	}

	plane := newLuminancePlane(src)

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			hL := plane.smoothed(x-1, y)
			hR := plane.smoothed(x+1, y)
			hU := plane.smoothed(x, y-1)
			hD := plane.smoothed(x, y+1)

			dx := (hL - hR) * strength
			dy := (hU - hD) * strength
			dz := 1.0

			length := math.Sqrt(dx*dx + dy*dy + dz*dz)
			dx /= length
			dy /= length
			dz /= length

			out.Set(x, y, encodeUnit(dx), encodeUnit(dy), encodeUnit(dz), 255)
		}
	}

	return out, nil
}

// encodeUnit maps a unit-vector component from [-1,1] to [0,255].
func encodeUnit(v float64) uint8 {
	return clamp255((v*0.5 + 0.5) * 255.0)
}

// clamp255 rounds v to the nearest integer and clamps it into [0,255].
func clamp255(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

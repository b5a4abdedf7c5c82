// Package mapgen derives PBR material maps from a single albedo buffer.
//
// metalness.go produces the spatially uniform metal classification.
package mapgen

import (
	"github.com/OnlyRezxx/pbr/texture"
)

// MetalnessMap produces a solid metalness map matching the source
// dimensions: every pixel is 255 when metal is true, 0 otherwise.
//
// This is a whole-texture binary classification, not a per-pixel
// inference. Real metalness varies spatially; treating the texture as
// uniformly one material class is an intentional simplification.
func MetalnessMap(src *texture.PixelBuffer, metal bool) (*texture.PixelBuffer, error) {
	if err := validateSource(src); err != nil {
		return nil, err
	}

	out, err := texture.NewPixelBuffer(src.Width, src.Height)
	if err != nil {
		return nil, err
	}

	if metal {
		out.Fill(255)
	} else {
		out.Fill(0)
	}

	return out, nil
}

// Package analysis estimates material properties for an albedo image.
//
// preprocess.go bounds the pixel data handed to analyzers. Vision models
// neither need nor want full-resolution textures; a downscaled copy keeps
// request payloads small without changing the statistics analyzers read.
package analysis

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/OnlyRezxx/pbr/texture"
)

// DefaultAnalysisSize is the bounding dimension for analyzer input.
const DefaultAnalysisSize = 336

// ResizeForAnalysis scales the buffer down so that neither dimension
// exceeds maxDim, preserving aspect ratio with high-quality resampling.
// Buffers already within bounds are returned unchanged (no copy).
// This is a pure function with no side effects beyond allocation.
func ResizeForAnalysis(buf *texture.PixelBuffer, maxDim int) (*texture.PixelBuffer, error) {
	if buf == nil {
		return nil, texture.ErrNilBuffer
	}
	if maxDim <= 0 {
		maxDim = DefaultAnalysisSize
	}
	if buf.Width <= maxDim && buf.Height <= maxDim {
		return buf, nil
	}

	scale := float64(maxDim) / float64(max(buf.Width, buf.Height))
	newWidth := max(1, int(float64(buf.Width)*scale))
	newHeight := max(1, int(float64(buf.Height)*scale))

	src := buf.ToImage()
	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return texture.FromImage(dst)
}

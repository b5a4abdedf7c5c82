// Package texture provides the pixel buffer type shared by the map
// derivation pipeline, plus decoding and encoding between buffers and
// portable raster formats.
//
// buffer.go defines the PixelBuffer atom. All derived maps are
// PixelBuffers with the same dimensions as their source.
package texture

import (
	"errors"
	"fmt"
	"image"
)

// Buffer validation errors
var (
	ErrInvalidDimensions = errors.New("texture: invalid dimensions")
	ErrNilBuffer         = errors.New("texture: nil pixel buffer")
)

// BytesPerPixel is the channel layout stride: RGBA, 8 bits per channel.
const BytesPerPixel = 4

// PixelBuffer is an owned, fixed-size RGBA pixel array.
//
// Pix holds width*height*4 bytes in row-major R,G,B,A order. A buffer is
// read-only by convention once populated: generators never mutate their
// source buffer, they allocate a new one.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixelBuffer allocates a zeroed buffer with the given dimensions.
// Returns ErrInvalidDimensions if either dimension is not positive.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimensions, width, height)
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*BytesPerPixel),
	}, nil
}

// FromImage converts any image.Image into a PixelBuffer.
// The fast path copies *image.RGBA pixel data directly; other formats go
// through the color model. This is a pure function with no side effects.
func FromImage(img image.Image) (*PixelBuffer, error) {
	if img == nil {
		return nil, ErrNilBuffer
	}
	bounds := img.Bounds()
	buf, err := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == buf.Width*BytesPerPixel && bounds.Min == (image.Point{}) {
		copy(buf.Pix, rgba.Pix[:len(buf.Pix)])
		return buf, nil
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			// RGBA() returns 16-bit values; shift down to 8-bit channels.
			buf.Pix[i] = uint8(r >> 8)
			buf.Pix[i+1] = uint8(g >> 8)
			buf.Pix[i+2] = uint8(b >> 8)
			buf.Pix[i+3] = uint8(a >> 8)
			i += BytesPerPixel
		}
	}
	return buf, nil
}

// ToImage converts the buffer into an *image.RGBA without sharing the
// underlying pixel slice.
func (b *PixelBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Pix)
	return img
}

// At returns the RGBA channels of the pixel at (x, y).
// Coordinates must be within bounds; callers are expected to iterate
// over the buffer's own dimensions.
func (b *PixelBuffer) At(x, y int) (r, g, blue, a uint8) {
	i := (y*b.Width + x) * BytesPerPixel
	return b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]
}

// Set writes the RGBA channels of the pixel at (x, y).
func (b *PixelBuffer) Set(x, y int, r, g, blue, a uint8) {
	i := (y*b.Width + x) * BytesPerPixel
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = blue
	b.Pix[i+3] = a
}

// SetGray writes an opaque grayscale pixel (R=G=B=v, A=255) at (x, y).
func (b *PixelBuffer) SetGray(x, y int, v uint8) {
	b.Set(x, y, v, v, v, 255)
}

// Fill sets every pixel to the given opaque grayscale value.
func (b *PixelBuffer) Fill(v uint8) {
	for i := 0; i < len(b.Pix); i += BytesPerPixel {
		b.Pix[i] = v
		b.Pix[i+1] = v
		b.Pix[i+2] = v
		b.Pix[i+3] = 255
	}
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	out := &PixelBuffer{
		Width:  b.Width,
		Height: b.Height,
		Pix:    make([]uint8, len(b.Pix)),
	}
	copy(out.Pix, b.Pix)
	return out
}

// SameSize reports whether two buffers have identical dimensions.
func (b *PixelBuffer) SameSize(other *PixelBuffer) bool {
	return other != nil && b.Width == other.Width && b.Height == other.Height
}

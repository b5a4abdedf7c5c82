// Package texture provides the pixel buffer type shared by the map
// derivation pipeline, plus decoding and encoding between buffers and
// portable raster formats.
//
// encoder.go serializes PixelBuffers back into PNG bytes and data URIs.
// PNG is the only output format: derived grayscale and normal-vector
// channels must survive encode/decode byte-identically, which rules out
// lossy formats.
package texture

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
)

// PNG magic bytes for file identification
var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Encoding errors
var (
	ErrEncode    = errors.New("texture: failed to encode image")
	ErrNotPNG    = errors.New("texture: data is not a valid PNG")
	ErrImageSize = errors.New("texture: image data too small to be valid")
)

// IsPNG checks if the given data starts with PNG magic bytes.
// This is a pure function with no side effects.
func IsPNG(data []byte) bool {
	if len(data) < len(pngMagic) {
		return false
	}
	return bytes.Equal(data[:len(pngMagic)], pngMagic)
}

// ValidatePNG validates that data is a structurally valid PNG image.
// Returns nil if valid, error otherwise.
func ValidatePNG(data []byte) error {
	if len(data) == 0 {
		return ErrEmptyImage
	}

	// Minimum PNG file size: 8 (signature) + 25 (IHDR) + 12 (IEND) bytes.
	if len(data) < 45 {
		return ErrImageSize
	}

	if !IsPNG(data) {
		return ErrNotPNG
	}

	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return nil
}

// EncodePNG serializes a PixelBuffer into PNG bytes.
// This is a pure function with no side effects.
func EncodePNG(buf *PixelBuffer) ([]byte, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	if buf.Width <= 0 || buf.Height <= 0 {
		return nil, fmt.Errorf("%w: width=%d height=%d", ErrInvalidDimensions, buf.Width, buf.Height)
	}
	if len(buf.Pix) != buf.Width*buf.Height*BytesPerPixel {
		return nil, fmt.Errorf("%w: expected %d bytes for %dx%d RGBA, got %d",
			ErrInvalidDimensions, buf.Width*buf.Height*BytesPerPixel, buf.Width, buf.Height, len(buf.Pix))
	}

	var out bytes.Buffer
	if err := png.Encode(&out, buf.ToImage()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return out.Bytes(), nil
}

// EncodeDataURI serializes a PixelBuffer into a base64 PNG data URI.
func EncodeDataURI(buf *PixelBuffer) (string, error) {
	data, err := EncodePNG(buf)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Package texture provides the pixel buffer type shared by the map
// derivation pipeline, plus decoding and encoding between buffers and
// portable raster formats.
//
// loader.go decodes raw image bytes or base64 data URIs into PixelBuffers.
// Decoding is a distinct, explicit, fallible step that precedes any
// derivation work.
package texture

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
)

// Decoding errors
var (
	ErrEmptyImage = errors.New("texture: empty image data")
	ErrDecode     = errors.New("texture: failed to decode image")
	ErrDataURI    = errors.New("texture: malformed data URI")
)

// dataURIPrefix is the scheme prefix shared by all data URIs.
const dataURIPrefix = "data:"

// Decode decodes PNG, JPEG or GIF bytes into a PixelBuffer.
// This is a pure function with no side effects beyond allocation.
func Decode(data []byte) (*PixelBuffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return FromImage(img)
}

// IsDataURI reports whether s looks like a data URI.
// This is a pure function with no side effects.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, dataURIPrefix)
}

// DecodeDataURIBytes extracts the raw payload bytes from a base64 data URI
// such as "data:image/png;base64,iVBOR...". The media type is not
// validated here; Decode rejects payloads it cannot parse.
func DecodeDataURIBytes(uri string) ([]byte, error) {
	if !IsDataURI(uri) {
		return nil, fmt.Errorf("%w: missing data: prefix", ErrDataURI)
	}

	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return nil, fmt.Errorf("%w: missing payload separator", ErrDataURI)
	}

	meta := uri[len(dataURIPrefix):comma]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("%w: only base64 payloads are supported", ErrDataURI)
	}

	payload, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataURI, err)
	}
	if len(payload) == 0 {
		return nil, ErrEmptyImage
	}
	return payload, nil
}

// DecodeDataURI decodes a base64 image data URI into a PixelBuffer.
func DecodeDataURI(uri string) (*PixelBuffer, error) {
	payload, err := DecodeDataURIBytes(uri)
	if err != nil {
		return nil, err
	}
	return Decode(payload)
}

// Package mapgen derives PBR material maps (normal, roughness, ambient
// occlusion, metalness, height) from a single albedo pixel buffer.
//
// Every generator is a pure, total function from (source buffer,
// parameters) to a newly allocated buffer of identical dimensions. The
// source is never mutated and no state survives a call.
//
// mapset.go defines the map kinds, derivation parameters and the result
// set shared by all generators.
package mapgen

import (
	"errors"
	"fmt"

	"github.com/OnlyRezxx/pbr/texture"
)

// Derivation errors
var (
	ErrNilSource         = errors.New("mapgen: nil source buffer")
	ErrMalformedSource   = errors.New("mapgen: malformed source buffer")
	ErrDimensionMismatch = errors.New("mapgen: map dimensions do not match source")
)

// MapKind identifies the semantic role of a derived map.
type MapKind string

// The five derived map kinds.
const (
	KindNormal    MapKind = "normal"
	KindRoughness MapKind = "roughness"
	KindAO        MapKind = "ao"
	KindMetalness MapKind = "metalness"
	KindHeight    MapKind = "height"
)

// Kinds lists all map kinds in canonical order.
func Kinds() []MapKind {
	return []MapKind{KindNormal, KindRoughness, KindAO, KindMetalness, KindHeight}
}

// Params holds the per-invocation derivation parameters.
// All fields are required; the core applies no hidden defaults. Callers
// that want defaults should start from a preset or from
// DefaultNormalStrength and analysis.DefaultSuggestion.
type Params struct {
	// NormalStrength amplifies luminance gradients in the normal map.
	// Higher values exaggerate the apparent bump depth.
	NormalStrength float64

	// RoughnessMultiplier scales the inverted-luminance roughness signal
	// before the contrast boost. Typically derived from a suggested
	// roughness estimate in [0,1].
	RoughnessMultiplier float64

	// Metal selects the uniform metalness classification for the whole
	// texture: 255 everywhere when true, 0 everywhere when false.
	Metal bool
}

// MaterialMap is a derived pixel buffer tagged with its semantic kind.
// Immutable once produced; ownership transfers to the caller.
type MaterialMap struct {
	Kind   MapKind
	Buffer *texture.PixelBuffer
}

// MapSet holds the five derived maps for one albedo input.
// Every buffer matches the source dimensions exactly.
type MapSet struct {
	Normal    *texture.PixelBuffer
	Roughness *texture.PixelBuffer
	AO        *texture.PixelBuffer
	Metalness *texture.PixelBuffer
	Height    *texture.PixelBuffer
}

// Maps returns the set as tagged maps in canonical kind order.
func (s *MapSet) Maps() []MaterialMap {
	return []MaterialMap{
		{Kind: KindNormal, Buffer: s.Normal},
		{Kind: KindRoughness, Buffer: s.Roughness},
		{Kind: KindAO, Buffer: s.AO},
		{Kind: KindMetalness, Buffer: s.Metalness},
		{Kind: KindHeight, Buffer: s.Height},
	}
}

// Validate checks that every map in the set is present and matches the
// source dimensions. Internally derived sets always pass; the check
// guards sets assembled from independently supplied buffers.
func (s *MapSet) Validate(src *texture.PixelBuffer) error {
	if src == nil {
		return ErrNilSource
	}
	for _, m := range s.Maps() {
		if m.Buffer == nil {
			return fmt.Errorf("%w: %s map missing", ErrDimensionMismatch, m.Kind)
		}
		if !src.SameSize(m.Buffer) {
			return fmt.Errorf("%w: %s map is %dx%d, source is %dx%d",
				ErrDimensionMismatch, m.Kind, m.Buffer.Width, m.Buffer.Height, src.Width, src.Height)
		}
	}
	return nil
}

// validateSource rejects nil or malformed source buffers before any
// per-pixel work starts.
func validateSource(src *texture.PixelBuffer) error {
	if src == nil {
		return ErrNilSource
	}
	if src.Width <= 0 || src.Height <= 0 {
		return fmt.Errorf("%w: width=%d height=%d", ErrMalformedSource, src.Width, src.Height)
	}
	if len(src.Pix) != src.Width*src.Height*texture.BytesPerPixel {
		return fmt.Errorf("%w: expected %d pixel bytes, got %d",
			ErrMalformedSource, src.Width*src.Height*texture.BytesPerPixel, len(src.Pix))
	}
	return nil
}

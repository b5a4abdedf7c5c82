// Package analysis estimates material properties (suggested roughness
// and metalness scalars) for an albedo image.
//
// The pipeline treats analysis as an external collaborator: any analyzer
// failure or malformed output is substituted with fixed defaults rather
// than surfaced as a pipeline error.
//
// analyzer.go defines the Suggestion value, the Analyzer interface and
// the default-substitution wrapper.
package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/OnlyRezxx/pbr/logging"
	"github.com/OnlyRezxx/pbr/mapgen"
)

// Fixed fallback values used whenever analysis is unavailable or invalid.
const (
	// DefaultRoughness is the fallback roughness multiplier.
	DefaultRoughness = 0.6

	// DefaultMetalness is the fallback metalness scalar (non-metal).
	DefaultMetalness = 0.0

	// MetalThreshold converts the metalness scalar into the binary
	// whole-texture metal classification.
	MetalThreshold = 0.5
)

// Suggestion holds analyzer output: suggested roughness and metalness
// scalars, each in [0,1].
type Suggestion struct {
	Roughness float64 `json:"roughness"`
	Metalness float64 `json:"metalness"`
}

// DefaultSuggestion returns the fixed fallback suggestion.
// This is a pure function with no side effects.
func DefaultSuggestion() Suggestion {
	return Suggestion{Roughness: DefaultRoughness, Metalness: DefaultMetalness}
}

// Valid reports whether both scalars are inside [0,1].
func (s Suggestion) Valid() bool {
	return s.Roughness >= 0 && s.Roughness <= 1 && s.Metalness >= 0 && s.Metalness <= 1
}

// Metal converts the metalness scalar into the binary classification
// used by the metalness map.
func (s Suggestion) Metal() bool {
	return s.Metalness >= MetalThreshold
}

// Params assembles derivation parameters from the suggestion and a
// caller-chosen normal strength.
func (s Suggestion) Params(normalStrength float64) mapgen.Params {
	return mapgen.Params{
		NormalStrength:      normalStrength,
		RoughnessMultiplier: s.Roughness,
		Metal:               s.Metal(),
	}
}

// Analyzer estimates material properties from encoded image bytes.
type Analyzer interface {
	// Analyze inspects the image and returns a suggestion.
	// Implementations must return an error rather than out-of-range
	// values; range enforcement is still re-checked by callers.
	Analyze(ctx context.Context, imageData []byte) (Suggestion, error)
}

// SuggestOrDefault runs the analyzer and substitutes DefaultSuggestion on
// any failure: nil analyzer, analyzer error, or out-of-range output.
//
// The substitution is deliberate default behavior for a collaborator
// boundary, not error suppression; the failure is logged at warn level.
func SuggestOrDefault(ctx context.Context, analyzer Analyzer, imageData []byte, logger *logging.Logger) Suggestion {
	if logger == nil {
		logger = logging.Nop()
	}
	log := logger.Named("analysis")

	if analyzer == nil {
		log.Debug("no analyzer configured, using defaults")
		return DefaultSuggestion()
	}

	suggestion, err := analyzer.Analyze(ctx, imageData)
	if err != nil {
		log.Warn("material analysis failed, using defaults", zap.Error(err))
		return DefaultSuggestion()
	}
	if !suggestion.Valid() {
		log.Warn("material analysis out of range, using defaults",
			zap.Float64("roughness", suggestion.Roughness),
			zap.Float64("metalness", suggestion.Metalness))
		return DefaultSuggestion()
	}

	log.Debug("material analysis complete",
		zap.Float64("roughness", suggestion.Roughness),
		zap.Float64("metalness", suggestion.Metalness))
	return suggestion
}

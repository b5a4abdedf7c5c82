package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/OnlyRezxx/pbr/mapgen"
)

// stubAnalyzer returns a fixed suggestion or error.
type stubAnalyzer struct {
	suggestion Suggestion
	err        error
}

func (s *stubAnalyzer) Analyze(ctx context.Context, imageData []byte) (Suggestion, error) {
	return s.suggestion, s.err
}

func TestSuggestionValid(t *testing.T) {
	tests := []struct {
		name       string
		suggestion Suggestion
		want       bool
	}{
		{name: "both in range", suggestion: Suggestion{Roughness: 0.5, Metalness: 0.5}, want: true},
		{name: "boundaries", suggestion: Suggestion{Roughness: 0.0, Metalness: 1.0}, want: true},
		{name: "roughness too high", suggestion: Suggestion{Roughness: 1.2, Metalness: 0.5}, want: false},
		{name: "negative metalness", suggestion: Suggestion{Roughness: 0.5, Metalness: -0.1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.suggestion.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSuggestionMetal(t *testing.T) {
	tests := []struct {
		metalness float64
		want      bool
	}{
		{metalness: 0.0, want: false},
		{metalness: 0.49, want: false},
		{metalness: 0.5, want: true},
		{metalness: 1.0, want: true},
	}

	for _, tt := range tests {
		s := Suggestion{Roughness: 0.5, Metalness: tt.metalness}
		if got := s.Metal(); got != tt.want {
			t.Errorf("Metal() with metalness %v = %v, want %v", tt.metalness, got, tt.want)
		}
	}
}

func TestSuggestionParams(t *testing.T) {
	s := Suggestion{Roughness: 0.8, Metalness: 0.9}
	params := s.Params(3.0)

	want := mapgen.Params{NormalStrength: 3.0, RoughnessMultiplier: 0.8, Metal: true}
	if params != want {
		t.Errorf("Params = %+v, want %+v", params, want)
	}
}

func TestSuggestOrDefault(t *testing.T) {
	ctx := context.Background()
	defaults := DefaultSuggestion()

	tests := []struct {
		name     string
		analyzer Analyzer
		want     Suggestion
	}{
		{
			name:     "nil analyzer",
			analyzer: nil,
			want:     defaults,
		},
		{
			name:     "analyzer error",
			analyzer: &stubAnalyzer{err: errors.New("connection refused")},
			want:     defaults,
		},
		{
			name:     "out of range result",
			analyzer: &stubAnalyzer{suggestion: Suggestion{Roughness: 1.5, Metalness: 0.2}},
			want:     defaults,
		},
		{
			name:     "valid result passes through",
			analyzer: &stubAnalyzer{suggestion: Suggestion{Roughness: 0.3, Metalness: 0.7}},
			want:     Suggestion{Roughness: 0.3, Metalness: 0.7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestOrDefault(ctx, tt.analyzer, nil, nil)
			if got != tt.want {
				t.Errorf("SuggestOrDefault = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultSuggestion(t *testing.T) {
	s := DefaultSuggestion()
	if s.Roughness != DefaultRoughness || s.Metalness != DefaultMetalness {
		t.Errorf("DefaultSuggestion = %+v", s)
	}
	if s.Metal() {
		t.Error("default suggestion should not be metallic")
	}
	if !s.Valid() {
		t.Error("default suggestion should be valid")
	}
}

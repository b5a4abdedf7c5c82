// Package mapgen derives PBR material maps from a single albedo buffer.
//
// presets.go provides named derivation parameter sets. Presets are a
// caller-side convenience: the core generators never read them
// implicitly, every Derive call is fully parameterized.
package mapgen

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Preset is a named set of derivation parameters, typically describing a
// broad material family.
type Preset struct {
	// NormalStrength amplifies luminance gradients in the normal map.
	NormalStrength float64 `yaml:"normal_strength"`

	// RoughnessMultiplier scales the inverted-luminance roughness signal.
	RoughnessMultiplier float64 `yaml:"roughness_multiplier"`

	// Metal marks the whole texture as metallic.
	Metal bool `yaml:"metal"`
}

// Params converts the preset into derivation parameters.
func (p Preset) Params() Params {
	return Params{
		NormalStrength:      p.NormalStrength,
		RoughnessMultiplier: p.RoughnessMultiplier,
		Metal:               p.Metal,
	}
}

// DefaultPresets returns the built-in material presets.
// This is a pure function with no side effects.
func DefaultPresets() map[string]Preset {
	return map[string]Preset{
		"default": {NormalStrength: DefaultNormalStrength, RoughnessMultiplier: 0.6},
		"stone":   {NormalStrength: 3.5, RoughnessMultiplier: 0.85},
		"wood":    {NormalStrength: 2.0, RoughnessMultiplier: 0.7},
		"fabric":  {NormalStrength: 1.5, RoughnessMultiplier: 0.95},
		"metal":   {NormalStrength: 1.8, RoughnessMultiplier: 0.35, Metal: true},
	}
}

// LoadPresets parses YAML preset definitions of the form:
//
//	stone:
//	  normal_strength: 3.5
//	  roughness_multiplier: 0.85
//	  metal: false
//
// Every entry is validated before the result is returned.
func LoadPresets(data []byte) (map[string]Preset, error) {
	var presets map[string]Preset
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("mapgen: failed to parse presets: %w", err)
	}

	for name, p := range presets {
		if err := validatePreset(name, p); err != nil {
			return nil, err
		}
	}
	return presets, nil
}

// LoadPresetsFile reads and parses a YAML preset file from disk.
func LoadPresetsFile(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapgen: failed to read presets file: %w", err)
	}
	return LoadPresets(data)
}

// PresetNames returns preset names in sorted order, for user-facing
// listings.
func PresetNames(presets map[string]Preset) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// validatePreset rejects parameter values that cannot produce a usable
// map set.
func validatePreset(name string, p Preset) error {
	if p.NormalStrength <= 0 {
		return fmt.Errorf("mapgen: preset %q: normal_strength must be positive, got %v", name, p.NormalStrength)
	}
	if p.RoughnessMultiplier < 0 {
		return fmt.Errorf("mapgen: preset %q: roughness_multiplier cannot be negative, got %v", name, p.RoughnessMultiplier)
	}
	return nil
}

package mapgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPresets(t *testing.T) {
	presets := DefaultPresets()

	for _, name := range []string{"default", "stone", "wood", "fabric", "metal"} {
		p, ok := presets[name]
		if !ok {
			t.Errorf("built-in preset %q missing", name)
			continue
		}
		if err := validatePreset(name, p); err != nil {
			t.Errorf("built-in preset %q fails validation: %v", name, err)
		}
	}

	if !presets["metal"].Metal {
		t.Error("metal preset should be metallic")
	}
	if presets["default"].NormalStrength != DefaultNormalStrength {
		t.Errorf("default preset normal strength = %v, want %v",
			presets["default"].NormalStrength, DefaultNormalStrength)
	}
}

func TestLoadPresets(t *testing.T) {
	data := []byte(`
brick:
  normal_strength: 4.0
  roughness_multiplier: 0.9
chrome:
  normal_strength: 1.2
  roughness_multiplier: 0.1
  metal: true
`)

	presets, err := LoadPresets(data)
	if err != nil {
		t.Fatalf("LoadPresets failed: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("got %d presets, want 2", len(presets))
	}

	brick := presets["brick"]
	if brick.NormalStrength != 4.0 || brick.RoughnessMultiplier != 0.9 || brick.Metal {
		t.Errorf("brick preset = %+v", brick)
	}
	if !presets["chrome"].Metal {
		t.Error("chrome preset should be metallic")
	}

	params := brick.Params()
	if params.NormalStrength != 4.0 || params.RoughnessMultiplier != 0.9 {
		t.Errorf("brick params = %+v", params)
	}
}

func TestLoadPresetsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed yaml", data: "brick: [not a preset"},
		{name: "zero normal strength", data: "brick:\n  normal_strength: 0\n  roughness_multiplier: 0.5"},
		{name: "negative normal strength", data: "brick:\n  normal_strength: -2\n  roughness_multiplier: 0.5"},
		{name: "negative roughness multiplier", data: "brick:\n  normal_strength: 2\n  roughness_multiplier: -0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadPresets([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadPresetsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := "leather:\n  normal_strength: 2.2\n  roughness_multiplier: 0.75\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write presets file: %v", err)
	}

	presets, err := LoadPresetsFile(path)
	if err != nil {
		t.Fatalf("LoadPresetsFile failed: %v", err)
	}
	if presets["leather"].RoughnessMultiplier != 0.75 {
		t.Errorf("leather preset = %+v", presets["leather"])
	}

	_, err = LoadPresetsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
	if err != nil && !strings.Contains(err.Error(), "failed to read presets file") {
		t.Errorf("missing file error = %v", err)
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames(DefaultPresets())
	want := []string{"default", "fabric", "metal", "stone", "wood"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

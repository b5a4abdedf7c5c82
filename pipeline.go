// pipeline.go wires the acquisition, analysis, derivation and export
// stages behind the CLI. The derivation core stays pure; everything
// stateful (network, filesystem, terminal output) lives here.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/OnlyRezxx/pbr/albedo"
	"github.com/OnlyRezxx/pbr/analysis"
	"github.com/OnlyRezxx/pbr/core"
	"github.com/OnlyRezxx/pbr/logging"
	"github.com/OnlyRezxx/pbr/mapgen"
	"github.com/OnlyRezxx/pbr/texture"
)

// runPipeline executes the full flow: acquire albedo, resolve parameters,
// derive the map set, export PNG files.
func runPipeline(ctx context.Context, cfg *core.Config, opts *options, logger *logging.Logger) error {
	log := logger.Named("pipeline")

	// Step 1: acquire the albedo bytes.
	imageData, sourceName, err := acquireAlbedo(ctx, cfg, opts, log)
	if err != nil {
		return err
	}

	// Step 2: decode. Decode failures abort before any generator runs.
	src, err := texture.Decode(imageData)
	if err != nil {
		return err
	}
	if src.Width > cfg.MaxImageDimension || src.Height > cfg.MaxImageDimension {
		return fmt.Errorf("pbr: input is %dx%d, exceeds MAX_IMAGE_DIMENSION=%d",
			src.Width, src.Height, cfg.MaxImageDimension)
	}
	log.Info("albedo decoded",
		zap.String("source", sourceName),
		zap.Int("width", src.Width),
		zap.Int("height", src.Height))

	// Step 3: resolve derivation parameters.
	params, err := resolveParams(ctx, cfg, opts, imageData, logger)
	if err != nil {
		return err
	}
	color.Cyan("Deriving maps from %s (%dx%d, strength=%.2f, roughness=%.2f, metal=%v)",
		sourceName, src.Width, src.Height,
		params.NormalStrength, params.RoughnessMultiplier, params.Metal)

	// Step 4: derive all five maps.
	set, err := mapgen.NewDeriver(logger).Derive(ctx, src, params)
	if err != nil {
		return err
	}

	// Step 5: export.
	outDir := opts.outDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	written, err := exportMaps(set, outDir, baseName(sourceName))
	if err != nil {
		return err
	}
	for _, path := range written {
		color.Green("  wrote %s", path)
	}
	log.Info("map set exported", zap.Int("maps", len(written)), zap.String("dir", outDir))
	return nil
}

// acquireAlbedo resolves the CLI input into raw image bytes plus a name
// used for output files and logs.
func acquireAlbedo(ctx context.Context, cfg *core.Config, opts *options, log *logging.Logger) ([]byte, string, error) {
	fetcher := albedo.NewFetcher(cfg)

	if opts.prompt != "" {
		provider, err := albedo.NewOpenAIProvider(cfg)
		if err != nil {
			return nil, "", err
		}
		log.Info("generating albedo from prompt", zap.String("model", provider.Model()))
		ref, err := provider.Generate(ctx, opts.prompt)
		if err != nil {
			return nil, "", err
		}
		data, err := fetcher.Fetch(ctx, ref)
		if err != nil {
			return nil, "", err
		}
		return data, "generated", nil
	}

	data, err := fetcher.Fetch(ctx, opts.input)
	if err != nil {
		return nil, "", err
	}
	return data, opts.input, nil
}

// resolveParams layers parameter sources: preset (or config defaults),
// then the analysis pass, then explicit flag overrides. Later sources
// win.
func resolveParams(ctx context.Context, cfg *core.Config, opts *options, imageData []byte, logger *logging.Logger) (mapgen.Params, error) {
	params := mapgen.Params{
		NormalStrength:      cfg.NormalStrength,
		RoughnessMultiplier: cfg.RoughnessMultiplier,
	}

	presetSelected := false
	if opts.preset != "" {
		preset, err := lookupPreset(cfg, opts.preset)
		if err != nil {
			return mapgen.Params{}, err
		}
		params = preset.Params()
		presetSelected = true
	}

	// Analysis fills roughness/metal unless a preset already pinned them.
	if !presetSelected && opts.analyze != "off" {
		analyzer := selectAnalyzer(cfg, opts.analyze, logger)
		suggestion := analysis.SuggestOrDefault(ctx, analyzer, imageData, logger)
		params.RoughnessMultiplier = suggestion.Roughness
		params.Metal = suggestion.Metal()
	}

	if opts.strength > 0 {
		params.NormalStrength = opts.strength
	}
	if opts.roughness >= 0 {
		params.RoughnessMultiplier = opts.roughness
	}
	if opts.metalSet {
		params.Metal = opts.metal
	}
	return params, nil
}

// selectAnalyzer picks the analyzer implementation for the requested
// mode. Auto prefers the vision model when credentials exist and falls
// back to the local heuristic otherwise. A nil return means analysis is
// skipped (SuggestOrDefault then yields the fixed defaults).
func selectAnalyzer(cfg *core.Config, mode string, logger *logging.Logger) analysis.Analyzer {
	switch mode {
	case "vision":
		analyzer, err := analysis.NewVisionAnalyzer(cfg, logger)
		if err != nil {
			logger.Warn("vision analyzer unavailable", zap.Error(err))
			return nil
		}
		return analyzer
	case "heuristic":
		return analysis.NewHeuristicAnalyzer(logger)
	case "auto":
		if cfg.HasOpenAI() {
			if analyzer, err := analysis.NewVisionAnalyzer(cfg, logger); err == nil {
				return analyzer
			}
		}
		return analysis.NewHeuristicAnalyzer(logger)
	default:
		return nil
	}
}

// lookupPreset finds a named preset in the optional preset file, falling
// back to the built-ins.
func lookupPreset(cfg *core.Config, name string) (mapgen.Preset, error) {
	presets := mapgen.DefaultPresets()
	if cfg.PresetsFile != "" {
		loaded, err := mapgen.LoadPresetsFile(cfg.PresetsFile)
		if err != nil {
			return mapgen.Preset{}, err
		}
		for k, v := range loaded {
			presets[k] = v
		}
	}

	preset, ok := presets[name]
	if !ok {
		return mapgen.Preset{}, fmt.Errorf("pbr: unknown preset %q (available: %s)",
			name, strings.Join(mapgen.PresetNames(presets), ", "))
	}
	return preset, nil
}

// exportMaps writes each derived map as
// <outDir>/<base>_<kind>.png and returns the written paths.
func exportMaps(set *mapgen.MapSet, outDir, base string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("pbr: failed to create output directory: %w", err)
	}

	written := make([]string, 0, 5)
	for _, m := range set.Maps() {
		data, err := texture.EncodePNG(m.Buffer)
		if err != nil {
			return nil, fmt.Errorf("pbr: %s map: %w", m.Kind, err)
		}
		path := filepath.Join(outDir, fmt.Sprintf("%s_%s.png", base, m.Kind))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("pbr: %s map: %w", m.Kind, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// baseName derives an output file prefix from the input reference.
func baseName(source string) string {
	if source == "" || source == "generated" {
		return "albedo"
	}
	if texture.IsDataURI(source) || albedo.IsHTTPURL(source) {
		return "albedo"
	}
	base := filepath.Base(source)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." {
		return "albedo"
	}
	return base
}

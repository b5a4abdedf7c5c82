// Command pbr derives a PBR material map set (normal, roughness, ambient
// occlusion, metalness, height) from a single albedo image.
//
// The albedo can be a local file, an http(s) URL, a base64 data URI, or
// a prompt sent to a generative image provider. Material parameters come
// from presets, flags, or an optional analysis pass (vision model or
// local color-statistics heuristic).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/OnlyRezxx/pbr/core"
	"github.com/OnlyRezxx/pbr/logging"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		// Use fmt here since logger isn't initialized yet
		fmt.Printf("Warning: could not load .env file: %v\n", err)
	}

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(core.ExitCodeUsage)
	}

	isDevelopment := core.ParseBoolEnv("DEV_MODE", false)

	logger, err := logging.NewLogger(isDevelopment, core.GetEnvOrDefault("LOG_FILE", "pbr.log"))
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(core.ExitCodeError)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := core.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runPipeline(ctx, cfg, opts, logger); err != nil {
		logger.Error("pipeline failed", zap.Error(err))
		os.Exit(core.ExitCodeError)
	}
	os.Exit(core.ExitCodeSuccess)
}

// options holds the parsed command line.
type options struct {
	input     string
	prompt    string
	preset    string
	analyze   string
	outDir    string
	strength  float64
	roughness float64
	metal     bool
	metalSet  bool
}

// parseFlags parses argv without touching the global flag set, so tests
// can call it directly.
func parseFlags(argv []string) (*options, error) {
	fs := flag.NewFlagSet("pbr", flag.ContinueOnError)
	opts := &options{}

	fs.StringVar(&opts.input, "input", "", "albedo image: file path, http(s) URL or data URI")
	fs.StringVar(&opts.prompt, "prompt", "", "generate the albedo from a text prompt instead of -input")
	fs.StringVar(&opts.preset, "preset", "", "named material preset (built-in or from PRESETS_FILE)")
	fs.StringVar(&opts.analyze, "analyze", "auto", "material analysis mode: auto, vision, heuristic, off")
	fs.StringVar(&opts.outDir, "out", "", "output directory for derived maps (default from OUTPUT_DIR)")
	fs.Float64Var(&opts.strength, "strength", 0, "normal map strength override (0 = preset/config value)")
	fs.Float64Var(&opts.roughness, "roughness", -1, "roughness multiplier override (-1 = preset/analysis value)")
	fs.BoolVar(&opts.metal, "metal", false, "force the metal classification")

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "metal" {
			opts.metalSet = true
		}
	})

	if opts.input == "" && opts.prompt == "" {
		return nil, fmt.Errorf("pbr: one of -input or -prompt is required")
	}
	if opts.input != "" && opts.prompt != "" {
		return nil, fmt.Errorf("pbr: -input and -prompt are mutually exclusive")
	}
	switch opts.analyze {
	case "auto", "vision", "heuristic", "off":
	default:
		return nil, fmt.Errorf("pbr: invalid -analyze mode %q", opts.analyze)
	}
	return opts, nil
}

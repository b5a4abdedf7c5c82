// Package core holds shared configuration and glue for the PBR
// derivation backend: environment-driven config, error types, the HTTP
// client factory and process exit codes.
package core

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"time"
)

// Config holds all configuration values.
// Values come from the environment (optionally via a .env file loaded by
// main); the derivation core itself never reads configuration.
type Config struct {
	// OpenAI / compatible API configuration (optional; acquisition and
	// vision analysis degrade gracefully without it)
	OpenAIAPIKey  string
	BaseLLMURL    string // API endpoint override; empty means api.openai.com
	ImageModel    string // image generation model (default: dall-e-3)
	AnalysisModel string // vision analysis model (default: gpt-4o-mini)

	// Derivation defaults applied by the CLI when no preset or flag
	// overrides them
	NormalStrength      float64
	RoughnessMultiplier float64

	// Processing configuration
	AITimeout            time.Duration
	MaxImageDimension    int // inputs larger than this are rejected
	OutputDir            string
	PresetsFile          string // optional YAML preset file
	AllowSelfSignedCerts bool

	// Logging
	DevMode     bool
	LogFilePath string
}

// LoadConfig reads configuration from the environment, applying defaults
// for everything that is unset.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		OpenAIAPIKey:  GetEnvOrDefault("OPENAI_API_KEY", ""),
		BaseLLMURL:    GetEnvOrDefault("BASE_LLM_URL", ""),
		ImageModel:    GetEnvOrDefault("OPENAI_IMAGE_MODEL", "dall-e-3"),
		AnalysisModel: GetEnvOrDefault("OPENAI_ANALYSIS_MODEL", "gpt-4o-mini"),

		NormalStrength:      ParseFloat64Env("NORMAL_STRENGTH", 2.5),
		RoughnessMultiplier: ParseFloat64Env("ROUGHNESS_MULTIPLIER", 0.6),

		AITimeout:            ParseDurationEnv("AI_TIMEOUT_SECONDS", 60),
		MaxImageDimension:    ParseIntEnv("MAX_IMAGE_DIMENSION", 4096),
		OutputDir:            GetEnvOrDefault("OUTPUT_DIR", "maps"),
		PresetsFile:          GetEnvOrDefault("PRESETS_FILE", ""),
		AllowSelfSignedCerts: ParseBoolEnv("ALLOW_SELF_SIGNED_CERTS", false),

		DevMode:     ParseBoolEnv("DEV_MODE", false),
		LogFilePath: GetEnvOrDefault("LOG_FILE", "pbr.log"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded configuration for values that would fail
// later in less obvious places.
func (c *Config) Validate() error {
	if c.BaseLLMURL != "" {
		if _, err := url.ParseRequestURI(c.BaseLLMURL); err != nil {
			return ErrInvalidEndpointURL(c.BaseLLMURL, err.Error())
		}
	}
	if c.NormalStrength <= 0 {
		return ErrInvalidParameter("NORMAL_STRENGTH", "must be positive")
	}
	if c.RoughnessMultiplier < 0 {
		return ErrInvalidParameter("ROUGHNESS_MULTIPLIER", "cannot be negative")
	}
	if c.MaxImageDimension <= 0 {
		return ErrInvalidParameter("MAX_IMAGE_DIMENSION", "must be positive")
	}
	return nil
}

// HasOpenAI reports whether remote OpenAI-backed collaborators are
// configured at all.
func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}

// GetHTTPClient returns an HTTP client with the given timeout, honoring
// the self-signed certificate setting.
func GetHTTPClient(cfg *Config, timeout time.Duration) *http.Client {
	client := &http.Client{
		Timeout: timeout,
	}

	if cfg != nil && cfg.AllowSelfSignedCerts {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return client
}

// GetDefaultHTTPClient returns an HTTP client with a 30 second timeout.
func GetDefaultHTTPClient(cfg *Config) *http.Client {
	return GetHTTPClient(cfg, 30*time.Second)
}

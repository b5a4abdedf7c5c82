// Package albedo acquires the base color image for the derivation
// pipeline.
//
// openai_provider.go implements Provider against the OpenAI image API.
//
// This molecule composes:
//   - provider.go: endpoint validation atoms
//   - core.Config: for API configuration
//   - go-openai client: for API calls
package albedo

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/OnlyRezxx/pbr/core"
)

// OpenAIProvider implements Provider for OpenAI image generation.
//
// Thread Safety: OpenAIProvider is safe for concurrent use. The
// underlying client handles connection pooling.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates an image generation provider from the shared
// config.
//
// Returns an error if:
//   - The API key is empty
//   - The endpoint is a local endpoint (localhost, 127.0.0.1), which
//     does not support image generation
func NewOpenAIProvider(cfg *core.Config) (*OpenAIProvider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("albedo: config cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, core.ErrMissingAuth("albedo generation")
	}

	endpoint := cfg.BaseLLMURL
	if endpoint == "" {
		endpoint = "https://api.openai.com/v1"
	}
	if IsLocalEndpoint(endpoint) {
		return nil, fmt.Errorf("albedo: local endpoint (%s) does not support image generation; "+
			"configure BASE_LLM_URL to use a hosted provider", endpoint)
	}

	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	clientConfig.BaseURL = endpoint
	clientConfig.HTTPClient = core.GetHTTPClient(cfg, cfg.AITimeout)

	model := cfg.ImageModel
	if model == "" {
		model = "dall-e-3"
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// Generate creates an albedo texture from the given prompt.
//
// The image is requested as base64 and returned as a PNG data URI, so no
// second fetch against an expiring provider URL is needed.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("albedo: prompt cannot be empty")
	}

	req := openai.ImageRequest{
		Prompt:         prompt,
		Model:          p.model,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
		N:              1,
	}

	// Style parameter only exists on DALL-E 3.
	if p.model == "dall-e-3" {
		req.Style = openai.CreateImageStyleNatural
	}

	response, err := p.client.CreateImage(ctx, req)
	if err != nil {
		return "", fmt.Errorf("albedo: image generation failed: %w", err)
	}

	if len(response.Data) == 0 {
		return "", fmt.Errorf("albedo: provider returned empty data array")
	}
	if response.Data[0].B64JSON == "" {
		return "", fmt.Errorf("albedo: provider returned empty image payload")
	}

	return "data:image/png;base64," + response.Data[0].B64JSON, nil
}

// Model returns the configured image model name.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// Ensure OpenAIProvider implements Provider at compile time.
var _ Provider = (*OpenAIProvider)(nil)

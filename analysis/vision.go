// Package analysis estimates material properties for an albedo image.
//
// vision.go implements the remote analyzer: a vision-capable chat model
// is shown a downscaled copy of the albedo and asked for strict JSON
// material scalars.
//
// This molecule composes:
//   - core.Config: for API configuration
//   - go-openai client: for API calls
//   - texture: for decode/resize/data-URI round trips
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/OnlyRezxx/pbr/core"
	"github.com/OnlyRezxx/pbr/logging"
	"github.com/OnlyRezxx/pbr/texture"
)

// Vision analysis errors
var (
	ErrEmptyResponse     = errors.New("analysis: model returned no choices")
	ErrMalformedResponse = errors.New("analysis: malformed model response")
)

// visionPrompt requests machine-parseable output only. Temperature 0 and
// a strict schema keep the collaborator boundary narrow.
const visionPrompt = `You are a material analyst for physically-based rendering. ` +
	`Look at this texture image and estimate two scalars: "roughness" (0 = mirror smooth, 1 = fully rough) ` +
	`and "metalness" (0 = dielectric, 1 = raw metal). ` +
	`Respond with strict JSON only, no prose: {"roughness": <number>, "metalness": <number>}`

// VisionAnalyzer estimates material properties via a vision-capable
// model behind an OpenAI-compatible API.
//
// Thread Safety: VisionAnalyzer is safe for concurrent use; the
// underlying client handles connection pooling.
type VisionAnalyzer struct {
	client *openai.Client
	model  string
	maxDim int
	logger *logging.Logger
}

// NewVisionAnalyzer creates a vision analyzer from the shared config.
// Returns an error if no API key is configured.
func NewVisionAnalyzer(cfg *core.Config, logger *logging.Logger) (*VisionAnalyzer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("analysis: config cannot be nil")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, core.ErrMissingAuth("vision material analysis")
	}
	if logger == nil {
		logger = logging.Nop()
	}

	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.BaseLLMURL != "" {
		clientConfig.BaseURL = cfg.BaseLLMURL
	}
	clientConfig.HTTPClient = core.GetHTTPClient(cfg, cfg.AITimeout)

	model := cfg.AnalysisModel
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &VisionAnalyzer{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
		maxDim: DefaultAnalysisSize,
		logger: logger.Named("analysis"),
	}, nil
}

// Analyze sends a downscaled copy of the image to the vision model and
// parses its JSON reply. Any transport, parse or range failure is
// returned as an error; default substitution belongs to the caller
// (SuggestOrDefault).
func (v *VisionAnalyzer) Analyze(ctx context.Context, imageData []byte) (Suggestion, error) {
	buf, err := texture.Decode(imageData)
	if err != nil {
		return Suggestion{}, fmt.Errorf("analysis: %w", err)
	}

	resized, err := ResizeForAnalysis(buf, v.maxDim)
	if err != nil {
		return Suggestion{}, fmt.Errorf("analysis: %w", err)
	}

	dataURI, err := texture.EncodeDataURI(resized)
	if err != nil {
		return Suggestion{}, fmt.Errorf("analysis: %w", err)
	}

	resp, err := v.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       v.model,
		MaxTokens:   100,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: visionPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURI,
							Detail: openai.ImageURLDetailLow,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return Suggestion{}, fmt.Errorf("analysis: vision request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Suggestion{}, ErrEmptyResponse
	}

	return parseSuggestion(resp.Choices[0].Message.Content)
}

// parseSuggestion extracts the JSON object from the model reply and
// validates its range. Models occasionally wrap JSON in markdown fences
// despite instructions, so the parser tolerates surrounding text.
func parseSuggestion(content string) (Suggestion, error) {
	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end <= start {
		return Suggestion{}, fmt.Errorf("%w: no JSON object in %q", ErrMalformedResponse, truncate(content, 80))
	}

	var suggestion Suggestion
	if err := json.Unmarshal([]byte(content[start:end+1]), &suggestion); err != nil {
		return Suggestion{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !suggestion.Valid() {
		return Suggestion{}, fmt.Errorf("%w: scalars out of [0,1]: roughness=%v metalness=%v",
			ErrMalformedResponse, suggestion.Roughness, suggestion.Metalness)
	}
	return suggestion, nil
}

// truncate shortens text for error messages.
func truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen] + "..."
}

// Ensure VisionAnalyzer implements Analyzer at compile time.
var _ Analyzer = (*VisionAnalyzer)(nil)

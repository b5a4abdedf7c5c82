// Package albedo acquires the base color image the derivation pipeline
// consumes. Inputs can come from a local file, an HTTP URL, a base64
// data URI, or a prompt sent to a generative image provider.
//
// The package is collaborator glue: no image synthesis happens here, and
// the derivation core never depends on it.
//
// provider.go defines the Provider interface and endpoint helpers.
package albedo

import (
	"context"
	"strings"
)

// Provider is the interface for generative image providers. The Generate
// method takes a prompt and returns a reference to the generated image,
// either a temporary URL or a data URI, which Fetcher resolves into bytes.
type Provider interface {
	// Generate creates an image from the given prompt.
	// The context can be used for cancellation and timeout control.
	Generate(ctx context.Context, prompt string) (string, error)
}

// IsLocalEndpoint checks if the given endpoint URL is a local or
// self-hosted endpoint. Local endpoints do not serve image generation.
//
// This is a pure function with no dependencies - it performs string
// matching against localhost, loopback and private LAN patterns.
func IsLocalEndpoint(endpoint string) bool {
	if endpoint == "" {
		return false
	}
	lower := strings.ToLower(endpoint)
	return strings.Contains(lower, "localhost") ||
		strings.Contains(lower, "127.0.0.1") ||
		strings.Contains(lower, "0.0.0.0") ||
		strings.Contains(lower, "192.168.") ||
		strings.Contains(lower, "10.")
}

// IsHTTPURL reports whether ref looks like an http(s) URL.
// This is a pure function with no side effects.
func IsHTTPURL(ref string) bool {
	lower := strings.ToLower(ref)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

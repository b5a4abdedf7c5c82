// Package albedo acquires the base color image for the derivation
// pipeline.
//
// fetcher.go resolves an image reference (data URI, http(s) URL or
// local file path) into raw image bytes. Nothing is persisted beyond
// the returned slice.
package albedo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/OnlyRezxx/pbr/core"
	"github.com/OnlyRezxx/pbr/texture"
)

// Fetch errors
var (
	ErrEmptyRef    = errors.New("albedo: empty image reference")
	ErrFetchFailed = errors.New("albedo: failed to fetch image")
)

// maxFetchBytes caps remote downloads. Provider images are a few MB;
// anything larger is a misdirected reference.
const maxFetchBytes = 32 << 20

// Fetcher resolves image references into bytes.
//
// Thread Safety: Fetcher is safe for concurrent use. Each fetch creates
// its own HTTP request.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher using the HTTP settings from the shared
// config. A nil config yields a default client with a 60 second timeout.
func NewFetcher(cfg *core.Config) *Fetcher {
	if cfg == nil {
		return &Fetcher{client: &http.Client{Timeout: 60 * time.Second}}
	}
	return &Fetcher{client: core.GetHTTPClient(cfg, 60*time.Second)}
}

// Fetch resolves ref into raw image bytes.
//
// Supported reference forms, tried in order:
//   - base64 data URI ("data:image/...;base64,...")
//   - http(s) URL (typically a temporary provider URL)
//   - local file path
func (f *Fetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	if ref == "" {
		return nil, ErrEmptyRef
	}

	switch {
	case texture.IsDataURI(ref):
		return texture.DecodeDataURIBytes(ref)
	case IsHTTPURL(ref):
		return f.download(ctx, ref)
	default:
		data, err := os.ReadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
		return data, nil
	}
}

// download retrieves image bytes from a URL.
func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d from %s", ErrFetchFailed, resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if len(data) > maxFetchBytes {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", ErrFetchFailed, maxFetchBytes)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty response body", ErrFetchFailed)
	}
	return data, nil
}

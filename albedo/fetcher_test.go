package albedo

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestFetchDataURI(t *testing.T) {
	fetcher := NewFetcher(nil)
	payload := []byte("fake image bytes")
	ref := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	data, err := fetcher.Fetch(context.Background(), ref)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("fetched %q, want %q", data, payload)
	}
}

func TestFetchLocalFile(t *testing.T) {
	fetcher := NewFetcher(nil)
	payload := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	path := filepath.Join(t.TempDir(), "albedo.png")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	data, err := fetcher.Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("fetched %d bytes, want %d", len(data), len(payload))
	}

	_, err = fetcher.Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrFetchFailed) {
		t.Errorf("missing file error = %v, want ErrFetchFailed", err)
	}
}

func TestFetchHTTP(t *testing.T) {
	payload := []byte("remote image bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Path == "/empty.png" {
			return
		}
		w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewFetcher(nil)

	data, err := fetcher.Fetch(context.Background(), server.URL+"/albedo.png")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("fetched %q, want %q", data, payload)
	}

	_, err = fetcher.Fetch(context.Background(), server.URL+"/missing.png")
	if !errors.Is(err, ErrFetchFailed) {
		t.Errorf("404 error = %v, want ErrFetchFailed", err)
	}

	_, err = fetcher.Fetch(context.Background(), server.URL+"/empty.png")
	if !errors.Is(err, ErrFetchFailed) {
		t.Errorf("empty body error = %v, want ErrFetchFailed", err)
	}
}

func TestFetchHTTPCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	fetcher := NewFetcher(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := fetcher.Fetch(ctx, server.URL+"/albedo.png"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestFetchEmptyRef(t *testing.T) {
	fetcher := NewFetcher(nil)
	if _, err := fetcher.Fetch(context.Background(), ""); !errors.Is(err, ErrEmptyRef) {
		t.Errorf("empty ref error = %v, want ErrEmptyRef", err)
	}
}

// Package source acquires the raw Markdown text of a document: an embedded
// literal, a local file, or a plain HTTP GET.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// MaxBodyBytes caps how much of a fetched document is read.
const MaxBodyBytes = 8 << 20

var (
	// ErrNoSource is returned by Open for an empty reference.
	ErrNoSource = errors.New("no document source configured")
	// ErrTooLarge is returned when a fetched document exceeds MaxBodyBytes.
	ErrTooLarge = errors.New("document exceeds size limit")
)

// Source supplies the text of one document.
type Source interface {
	// Fetch returns the full document text.
	Fetch(ctx context.Context) (string, error)
	// Name identifies the source in messages, e.g. a path or URL.
	Name() string
}

// StatusError reports a non-2xx response to a fetch.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// Literal is a document embedded in the program.
type Literal struct {
	Text  string
	Label string
}

// Fetch returns the literal text.
func (l Literal) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return l.Text, nil
}

// Name returns the label, or "inline".
func (l Literal) Name() string {
	if l.Label == "" {
		return "inline"
	}
	return l.Label
}

// File reads a document from the local filesystem.
type File struct {
	Path string
}

// Fetch reads the file.
func (f File) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.Path, err)
	}
	return string(data), nil
}

// Name returns the file path.
func (f File) Name() string { return f.Path }

// HTTP fetches a document with a plain GET request.
type HTTP struct {
	URL    string
	Client *http.Client
}

// Fetch issues the request and returns the response body.
func (h HTTP) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", h.URL, err)
	}
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", h.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: h.URL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", h.URL, err)
	}
	if len(body) > MaxBodyBytes {
		return "", fmt.Errorf("fetching %s: %w", h.URL, ErrTooLarge)
	}
	return string(body), nil
}

// Name returns the URL.
func (h HTTP) Name() string { return h.URL }

// Open picks a Source for ref: http and https URLs are fetched with client,
// anything else is read as a file path.
func Open(ref string, client *http.Client) (Source, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrNoSource
	}
	lower := strings.ToLower(ref)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return HTTP{URL: ref, Client: client}, nil
	}
	return File{Path: ref}, nil
}

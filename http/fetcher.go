// Package http downloads documents to import from the web.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/vvduth/studydoc"
)

// Fetch limits.
const (
	DefaultFetchTimeout = 30 * time.Second
	DefaultMaxBytes     = 32 << 20
)

var _ studydoc.Fetcher = (*Fetcher)(nil)

// Fetcher downloads documents over HTTP. Pages are returned as served;
// JavaScript is not executed.
type Fetcher struct {
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for a whole request including the body.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBytes sets the largest body Fetch accepts.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxBytes: DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch downloads url. Non-200 responses and bodies over the size limit
// return EINVALID.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", studydoc.Errorf(studydoc.EINVALID, "invalid URL %q", url)
	}
	req.Header.Set("User-Agent", "studydoc")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", studydoc.Errorf(studydoc.EINVALID, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	if int64(len(body)) > f.maxBytes {
		return "", studydoc.Errorf(studydoc.EINVALID, "%s is larger than %d bytes", url, f.maxBytes)
	}

	return string(body), nil
}

// Close is a no-op; http.Client needs no cleanup.
func (f *Fetcher) Close() error {
	return nil
}

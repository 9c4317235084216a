package studydoc

import "context"

// Fetcher retrieves documents from URLs.
type Fetcher interface {
	// Fetch downloads the resource at url and returns its body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

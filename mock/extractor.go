package mock

import (
	"context"

	"github.com/vvduth/studydoc"
)

var (
	_ studydoc.Extractor       = (*Extractor)(nil)
	_ studydoc.ContentDetector = (*ContentDetector)(nil)
	_ studydoc.HTMLExtractor   = (*HTMLExtractor)(nil)
)

// Extractor is a mock implementation of studydoc.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, path, contentType string) (*studydoc.Extraction, error)
}

func (e *Extractor) Extract(ctx context.Context, path, contentType string) (*studydoc.Extraction, error) {
	return e.ExtractFn(ctx, path, contentType)
}

// ContentDetector is a mock implementation of studydoc.ContentDetector.
type ContentDetector struct {
	DetectFn func(path string) (string, error)
}

func (d *ContentDetector) Detect(path string) (string, error) {
	return d.DetectFn(path)
}

// HTMLExtractor is a mock implementation of studydoc.HTMLExtractor.
type HTMLExtractor struct {
	ExtractFn func(html string) (*studydoc.HTMLResult, error)
}

func (e *HTMLExtractor) Extract(html string) (*studydoc.HTMLResult, error) {
	return e.ExtractFn(html)
}

// Package trafilatura extracts the main content of saved web pages.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/vvduth/studydoc"
	"golang.org/x/net/html"
)

var _ studydoc.HTMLExtractor = (*Extractor)(nil)

// Extractor implements studydoc.HTMLExtractor with go-trafilatura.
// Navigation, footers, sidebars and comment sections are dropped.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// Extract returns the title and main content of a page.
// ContentHTML is empty when no main content could be identified.
func (e *Extractor) Extract(rawHTML string) (*studydoc.HTMLResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, studydoc.Errorf(studydoc.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, studydoc.Errorf(studydoc.EINVALID, "extract page content: %v", err)
	}

	res := &studydoc.HTMLResult{Title: strings.TrimSpace(result.Metadata.Title)}
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		res.ContentHTML = buf.String()
	}

	return res, nil
}

// Package readability extracts article content from web pages with
// go-readability. It is used when trafilatura finds no main content.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/vvduth/studydoc"
)

var _ studydoc.HTMLExtractor = (*Extractor)(nil)

// Extractor implements studydoc.HTMLExtractor with go-readability.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the title and article content of a page.
func (e *Extractor) Extract(rawHTML string) (*studydoc.HTMLResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, studydoc.Errorf(studydoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, studydoc.Errorf(studydoc.EINVALID, "extract article: %v", err)
	}

	return &studydoc.HTMLResult{
		Title:       strings.TrimSpace(article.Title),
		ContentHTML: article.Content,
	}, nil
}

// Package pdf extracts plain text from PDF documents.
package pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/vvduth/studydoc"
)

var _ studydoc.Extractor = (*Extractor)(nil)

// Extractor implements studydoc.Extractor for PDF files using ledongthuc/pdf.
// Text is read page by page without layout; pages are joined by a newline.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the PDF at path and returns its plain text.
func (e *Extractor) Extract(ctx context.Context, path, contentType string) (_ *studydoc.Extraction, err error) {
	if contentType != studydoc.ContentTypePDF {
		return nil, studydoc.Errorf(studydoc.EINVALID, "pdf extractor cannot read %s", contentType)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	// The parser panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = studydoc.Errorf(studydoc.EINVALID, "unreadable PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(f, stat.Size())
	if err != nil {
		return nil, studydoc.Errorf(studydoc.EINVALID, "unreadable PDF: %v", err)
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		if text = strings.TrimSpace(text); text != "" {
			pages = append(pages, text)
		}
	}

	return &studydoc.Extraction{
		Text:     strings.Join(pages, "\n"),
		Title:    strings.TrimSpace(reader.Trailer().Key("Info").Key("Title").Text()),
		NumPages: numPages,
	}, nil
}

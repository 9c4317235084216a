package study

import (
	"context"
	"os"
	"strings"

	"github.com/vvduth/studydoc"
)

// Ensure extractors implement studydoc.Extractor at compile time.
var (
	_ studydoc.Extractor = (*Extractors)(nil)
	_ studydoc.Extractor = (*HTMLTextExtractor)(nil)
	_ studydoc.Extractor = (*TextExtractor)(nil)
)

// Extractors routes extraction to a format-specific extractor by content
// type. A nil field disables that format.
type Extractors struct {
	PDF      studydoc.Extractor
	Markdown studydoc.Extractor
	HTML     studydoc.Extractor
	Text     studydoc.Extractor
}

// Extract delegates to the extractor registered for contentType.
// Returns EINVALID for unsupported content types.
func (e *Extractors) Extract(ctx context.Context, path, contentType string) (*studydoc.Extraction, error) {
	var next studydoc.Extractor
	switch contentType {
	case studydoc.ContentTypePDF:
		next = e.PDF
	case studydoc.ContentTypeMarkdown:
		next = e.Markdown
	case studydoc.ContentTypeHTML:
		next = e.HTML
	case studydoc.ContentTypeText:
		next = e.Text
	}
	if next == nil {
		return nil, studydoc.Errorf(studydoc.EINVALID, "unsupported file type %q", contentType)
	}
	return next.Extract(ctx, path, contentType)
}

// Supports reports whether contentType has a registered extractor.
func (e *Extractors) Supports(contentType string) bool {
	switch contentType {
	case studydoc.ContentTypePDF:
		return e.PDF != nil
	case studydoc.ContentTypeMarkdown:
		return e.Markdown != nil
	case studydoc.ContentTypeHTML:
		return e.HTML != nil
	case studydoc.ContentTypeText:
		return e.Text != nil
	}
	return false
}

// HTMLTextExtractor extracts the readable text of a saved HTML page.
// The page's main content is isolated, converted to Markdown, and then
// flattened to plain text.
type HTMLTextExtractor struct {
	Extractor studydoc.HTMLExtractor
	Converter studydoc.Converter

	// Fallback is tried when Extractor fails or finds no main content.
	Fallback studydoc.HTMLExtractor

	// Flatten renders Markdown as plain text. Nil keeps the Markdown.
	Flatten func(markdown string) string
}

// Extract reads the HTML file at path and returns its main text.
func (e *HTMLTextExtractor) Extract(ctx context.Context, path, contentType string) (*studydoc.Extraction, error) {
	if contentType != studydoc.ContentTypeHTML {
		return nil, studydoc.Errorf(studydoc.EINVALID, "html extractor cannot read %s", contentType)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	result, err := e.mainContent(string(raw))
	if err != nil {
		return nil, err
	}

	markdown, err := e.Converter.Convert(result.ContentHTML)
	if err != nil {
		return nil, err
	}

	text := markdown
	if e.Flatten != nil {
		text = e.Flatten(markdown)
	}

	return &studydoc.Extraction{Text: text, Title: result.Title, NumPages: 1}, nil
}

func (e *HTMLTextExtractor) mainContent(raw string) (*studydoc.HTMLResult, error) {
	result, err := e.Extractor.Extract(raw)
	if e.Fallback == nil || (err == nil && strings.TrimSpace(result.ContentHTML) != "") {
		return result, err
	}

	fallback, ferr := e.Fallback.Extract(raw)
	if ferr != nil {
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	if fallback.Title == "" && result != nil {
		fallback.Title = result.Title
	}
	return fallback, nil
}

// TextExtractor reads plain text files as-is.
type TextExtractor struct{}

// Extract reads the text file at path. Text files carry no title.
func (e *TextExtractor) Extract(ctx context.Context, path, contentType string) (*studydoc.Extraction, error) {
	if contentType != studydoc.ContentTypeText {
		return nil, studydoc.Errorf(studydoc.EINVALID, "text extractor cannot read %s", contentType)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &studydoc.Extraction{Text: string(raw), NumPages: 1}, nil
}

package studydoc

import "context"

// Content types understood by the extractors.
const (
	ContentTypePDF      = "application/pdf"
	ContentTypeMarkdown = "text/markdown"
	ContentTypeHTML     = "text/html"
	ContentTypeText     = "text/plain"
)

// Extraction holds the text extracted from a document file.
type Extraction struct {
	// Text is the plain text of the document; it may be empty.
	Text string

	// Title is the document title found in the file, if any.
	Title string

	// NumPages is the page count for paged formats, 1 otherwise.
	NumPages int
}

// Extractor extracts plain text from a document file.
type Extractor interface {
	// Extract reads the file at path and returns its text.
	// contentType is one of the ContentType constants.
	// Returns EINVALID if the content type is not supported.
	Extract(ctx context.Context, path, contentType string) (*Extraction, error)
}

// ContentDetector identifies the content type of a file.
type ContentDetector interface {
	// Detect returns one of the ContentType constants, or the detected
	// MIME type when the file is of an unsupported kind.
	Detect(path string) (string, error)
}

// HTMLResult holds the main content extracted from an HTML page.
type HTMLResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// HTMLExtractor extracts main content from HTML pages, removing boilerplate.
type HTMLExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*HTMLResult, error)
}

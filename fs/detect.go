package fs

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/vvduth/studydoc"
)

// Ensure Detector implements studydoc.ContentDetector at compile time.
var _ studydoc.ContentDetector = (*Detector)(nil)

// Markdown has no magic bytes and sniffs as plain text, so it is recognised
// by extension.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
	".mkd":      true,
}

// Detector identifies document content types by sniffing file contents.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns one of the studydoc.ContentType constants for supported
// files and the sniffed MIME type (without parameters) for anything else.
func (d *Detector) Detect(path string) (string, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("detect content type of %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case mime.Is(studydoc.ContentTypePDF):
		return studydoc.ContentTypePDF, nil
	case markdownExts[ext] && (mime.Is(studydoc.ContentTypeText) || mime.Is(studydoc.ContentTypeHTML)):
		return studydoc.ContentTypeMarkdown, nil
	case mime.Is(studydoc.ContentTypeHTML):
		return studydoc.ContentTypeHTML, nil
	case mime.Is(studydoc.ContentTypeText):
		if ext == ".html" || ext == ".htm" {
			return studydoc.ContentTypeHTML, nil
		}
		return studydoc.ContentTypeText, nil
	}

	detected, _, _ := strings.Cut(mime.String(), ";")
	return strings.TrimSpace(detected), nil
}

package study_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvduth/studydoc"
	"github.com/vvduth/studydoc/mock"
	"github.com/vvduth/studydoc/study"
)

func TestExtractors_Extract(t *testing.T) {
	t.Parallel()

	named := func(name string) *mock.Extractor {
		return &mock.Extractor{
			ExtractFn: func(_ context.Context, _, contentType string) (*studydoc.Extraction, error) {
				return &studydoc.Extraction{Text: name + ":" + contentType}, nil
			},
		}
	}
	e := &study.Extractors{
		PDF:      named("pdf"),
		Markdown: named("markdown"),
		HTML:     named("html"),
		Text:     named("text"),
	}

	tests := []struct {
		contentType string
		expected    string
	}{
		{studydoc.ContentTypePDF, "pdf:application/pdf"},
		{studydoc.ContentTypeMarkdown, "markdown:text/markdown"},
		{studydoc.ContentTypeHTML, "html:text/html"},
		{studydoc.ContentTypeText, "text:text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			t.Parallel()

			ext, err := e.Extract(context.Background(), "/store/file", tt.contentType)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ext.Text)
			assert.True(t, e.Supports(tt.contentType))
		})
	}

	t.Run("rejects unknown content types", func(t *testing.T) {
		t.Parallel()

		_, err := e.Extract(context.Background(), "/store/file", "image/png")

		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
		assert.False(t, e.Supports("image/png"))
	})

	t.Run("rejects formats without an extractor", func(t *testing.T) {
		t.Parallel()

		partial := &study.Extractors{PDF: named("pdf")}

		_, err := partial.Extract(context.Background(), "/store/file", studydoc.ContentTypeMarkdown)

		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
		assert.False(t, partial.Supports(studydoc.ContentTypeMarkdown))
	})
}

func TestHTMLTextExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content, converts and flattens it", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "page.html", "<html><body><nav>Menu</nav><main><h1>Cells</h1></main></body></html>")
		e := &study.HTMLTextExtractor{
			Extractor: &mock.HTMLExtractor{
				ExtractFn: func(html string) (*studydoc.HTMLResult, error) {
					assert.Contains(t, html, "<nav>Menu</nav>")
					return &studydoc.HTMLResult{Title: "Cells", ContentHTML: "<h1>Cells</h1>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					assert.Equal(t, "<h1>Cells</h1>", html)
					return "# Cells", nil
				},
			},
			Flatten: func(markdown string) string {
				return strings.TrimPrefix(markdown, "# ")
			},
		}

		ext, err := e.Extract(context.Background(), path, studydoc.ContentTypeHTML)

		require.NoError(t, err)
		assert.Equal(t, "Cells", ext.Text)
		assert.Equal(t, "Cells", ext.Title)
		assert.Equal(t, 1, ext.NumPages)
	})

	t.Run("falls back when no main content is found", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "page.html", "<article><p>Osmosis</p></article>")
		e := &study.HTMLTextExtractor{
			Extractor: &mock.HTMLExtractor{
				ExtractFn: func(string) (*studydoc.HTMLResult, error) {
					return &studydoc.HTMLResult{Title: "Osmosis"}, nil
				},
			},
			Fallback: &mock.HTMLExtractor{
				ExtractFn: func(string) (*studydoc.HTMLResult, error) {
					return &studydoc.HTMLResult{ContentHTML: "<p>Osmosis</p>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					assert.Equal(t, "<p>Osmosis</p>", html)
					return "Osmosis", nil
				},
			},
		}

		ext, err := e.Extract(context.Background(), path, studydoc.ContentTypeHTML)

		require.NoError(t, err)
		assert.Equal(t, "Osmosis", ext.Text)
		assert.Equal(t, "Osmosis", ext.Title)
	})

	t.Run("falls back when the main extractor fails", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "page.html", "<p>x</p>")
		e := &study.HTMLTextExtractor{
			Extractor: &mock.HTMLExtractor{
				ExtractFn: func(string) (*studydoc.HTMLResult, error) {
					return nil, studydoc.Errorf(studydoc.EINVALID, "extract page content: no body")
				},
			},
			Fallback: &mock.HTMLExtractor{
				ExtractFn: func(string) (*studydoc.HTMLResult, error) {
					return &studydoc.HTMLResult{Title: "Page", ContentHTML: "<p>x</p>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(string) (string, error) { return "x", nil },
			},
		}

		ext, err := e.Extract(context.Background(), path, studydoc.ContentTypeHTML)

		require.NoError(t, err)
		assert.Equal(t, "Page", ext.Title)
	})

	t.Run("keeps the main error when the fallback also fails", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "page.html", "<p>x</p>")
		primary := studydoc.Errorf(studydoc.EINVALID, "extract page content: no body")
		e := &study.HTMLTextExtractor{
			Extractor: &mock.HTMLExtractor{
				ExtractFn: func(string) (*studydoc.HTMLResult, error) { return nil, primary },
			},
			Fallback: &mock.HTMLExtractor{
				ExtractFn: func(string) (*studydoc.HTMLResult, error) {
					return nil, studydoc.Errorf(studydoc.EINVALID, "extract article: empty")
				},
			},
		}

		_, err := e.Extract(context.Background(), path, studydoc.ContentTypeHTML)

		assert.Equal(t, primary, err)
	})

	t.Run("keeps markdown without a flattener", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "page.html", "<p>x</p>")
		e := &study.HTMLTextExtractor{
			Extractor: &mock.HTMLExtractor{
				ExtractFn: func(string) (*studydoc.HTMLResult, error) {
					return &studydoc.HTMLResult{ContentHTML: "<p>x</p>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(string) (string, error) { return "**x**", nil },
			},
		}

		ext, err := e.Extract(context.Background(), path, studydoc.ContentTypeHTML)

		require.NoError(t, err)
		assert.Equal(t, "**x**", ext.Text)
	})

	t.Run("rejects other content types", func(t *testing.T) {
		t.Parallel()

		_, err := (&study.HTMLTextExtractor{}).Extract(context.Background(), "/store/a.pdf", studydoc.ContentTypePDF)

		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
	})
}

func TestTextExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("reads the file as-is", func(t *testing.T) {
		t.Parallel()

		path := writeTemp(t, "notes.txt", "Line one.\nLine two.")

		ext, err := (&study.TextExtractor{}).Extract(context.Background(), path, studydoc.ContentTypeText)

		require.NoError(t, err)
		assert.Equal(t, "Line one.\nLine two.", ext.Text)
		assert.Empty(t, ext.Title)
	})

	t.Run("rejects other content types", func(t *testing.T) {
		t.Parallel()

		_, err := (&study.TextExtractor{}).Extract(context.Background(), "/store/a.md", studydoc.ContentTypeMarkdown)

		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
	})
}

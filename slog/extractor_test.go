package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvduth/studydoc"
	"github.com/vvduth/studydoc/mock"
	sdslog "github.com/vvduth/studydoc/slog"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs path, type and extracted size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(ctx context.Context, path, contentType string) (*studydoc.Extraction, error) {
				return &studydoc.Extraction{Text: "hello", NumPages: 2}, nil
			},
		}

		extractor := sdslog.NewLoggingExtractor(inner, newLogger(&buf))
		ext, err := extractor.Extract(context.Background(), "/tmp/a.pdf", studydoc.ContentTypePDF)

		require.NoError(t, err)
		assert.Equal(t, "hello", ext.Text)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "path=/tmp/a.pdf")
		assert.Contains(t, output, "type=application/pdf")
		assert.Contains(t, output, "chars=5")
		assert.Contains(t, output, "pages=2")
	})

	t.Run("logs error without extraction", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(ctx context.Context, path, contentType string) (*studydoc.Extraction, error) {
				return nil, errors.New("corrupt file")
			},
		}

		extractor := sdslog.NewLoggingExtractor(inner, newLogger(&buf))
		_, err := extractor.Extract(context.Background(), "/tmp/a.pdf", studydoc.ContentTypePDF)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "chars=0")
		assert.Contains(t, output, "err=\"corrupt file\"")
	})
}

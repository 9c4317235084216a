package pdf_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvduth/studydoc"
	"github.com/vvduth/studydoc/pdf"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("rejects other content types", func(t *testing.T) {
		t.Parallel()

		_, err := pdf.NewExtractor().Extract(context.Background(), "notes.md", studydoc.ContentTypeMarkdown)

		require.Error(t, err)
		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := pdf.NewExtractor().Extract(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"), studydoc.ContentTypePDF)

		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("returns EINVALID for corrupt file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "corrupt.pdf")
		require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0o644))

		_, err := pdf.NewExtractor().Extract(context.Background(), path, studydoc.ContentTypePDF)

		require.Error(t, err)
		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
	})
}

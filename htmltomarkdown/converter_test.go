package htmltomarkdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvduth/studydoc"
	"github.com/vvduth/studydoc/htmltomarkdown"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h1>Mitosis</h1><p>Cell division.</p><h2>Phases</h2>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Mitosis")
		assert.Contains(t, md, "Cell division.")
		assert.Contains(t, md, "## Phases")
	})

	t.Run("converts lists", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<ol><li>Prophase</li><li>Metaphase</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, md, "1. Prophase")
		assert.Contains(t, md, "2. Metaphase")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<table>
<thead><tr><th>Organelle</th><th>Role</th></tr></thead>
<tbody><tr><td>Ribosome</td><td>Protein synthesis</td></tr></tbody>
</table>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Organelle")
		assert.Contains(t, md, "Protein synthesis")
		assert.Contains(t, md, "|")
	})

	t.Run("converts strikethrough", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p><del>wrong</del> right</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "~~wrong~~")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("")

		require.Error(t, err)
		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
	})
}

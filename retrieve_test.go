package studydoc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvduth/studydoc"
)

func newChunks(contents ...string) []*studydoc.Chunk {
	chunks := make([]*studydoc.Chunk, len(contents))
	for i, content := range contents {
		chunks[i] = &studydoc.Chunk{ChunkIndex: i, Content: content}
	}
	return chunks
}

func chunkIndices(results []studydoc.ScoredChunk) []int {
	indices := make([]int, len(results))
	for i, r := range results {
		indices[i] = r.Chunk.ChunkIndex
	}
	return indices
}

func TestKeywords(t *testing.T) {
	t.Parallel()

	t.Run("drops stop words and short tokens", func(t *testing.T) {
		t.Parallel()

		got := studydoc.Keywords("What is THE role of an Enzyme in digestion")

		assert.Equal(t, []string{"what", "role", "enzyme", "digestion"}, got)
	})

	t.Run("returns nothing for stop words only", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, studydoc.Keywords("the a of these those"))
	})

	t.Run("keeps repeated keywords", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"cell", "cell"}, studydoc.Keywords("cell cell"))
	})
}

func TestFindRelevantChunks(t *testing.T) {
	t.Parallel()

	t.Run("returns nothing for no chunks", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, studydoc.FindRelevantChunks(nil, "cats", 3))
	})

	t.Run("returns nothing for blank query", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, studydoc.FindRelevantChunks(newChunks("cats"), "   ", 3))
	})

	t.Run("falls back to first chunks unscored for stop-word query", func(t *testing.T) {
		t.Parallel()

		chunks := newChunks("one", "two", "three", "four", "five")

		results := studydoc.FindRelevantChunks(chunks, "the a of", 3)

		require.Len(t, results, 3)
		assert.Equal(t, []int{0, 1, 2}, chunkIndices(results))
		for _, r := range results {
			assert.Zero(t, r.Score)
			assert.Zero(t, r.MatchedWords)
		}
	})

	t.Run("fallback returns all chunks when fewer than max", func(t *testing.T) {
		t.Parallel()

		results := studydoc.FindRelevantChunks(newChunks("one", "two"), "is it", 3)

		assert.Equal(t, []int{0, 1}, chunkIndices(results))
	})

	t.Run("excludes chunks without matches", func(t *testing.T) {
		t.Parallel()

		chunks := newChunks(
			"cats are mammals",
			"dogs and cats are pets, cats are loyal",
			"birds fly",
		)

		results := studydoc.FindRelevantChunks(chunks, "cats", 3)

		require.Len(t, results, 2)
		assert.NotContains(t, chunkIndices(results), 2)
	})

	t.Run("applies position bonus to exact match scores", func(t *testing.T) {
		t.Parallel()

		chunks := newChunks(
			"cats are mammals",
			"dogs and cats are pets, cats are loyal",
			"birds fly",
		)

		results := studydoc.FindRelevantChunks(chunks, "cats", 3)

		// chunk 0: 1 exact match, 3 words, bonus 1.1
		// chunk 1: 2 exact matches, 8 words, bonus 1 - 1/3 + 0.1
		require.Len(t, results, 2)
		assert.Equal(t, []int{0, 1}, chunkIndices(results))
		assert.InDelta(t, 3/math.Sqrt(3)*1.1, results[0].Score, 1e-9)
		assert.InDelta(t, 6/math.Sqrt(8)*(1-1.0/3+0.1), results[1].Score, 1e-9)
	})

	t.Run("more exact matches outrank fewer at the same length", func(t *testing.T) {
		t.Parallel()

		chunks := newChunks(
			"cats chase cats daily",
			"cats chase mice daily",
		)

		results := studydoc.FindRelevantChunks(chunks, "cats", 3)

		assert.Equal(t, []int{0, 1}, chunkIndices(results))
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("weights partial matches below exact matches", func(t *testing.T) {
		t.Parallel()

		results := studydoc.FindRelevantChunks(newChunks("category cat"), "cat", 3)

		require.Len(t, results, 1)
		// one exact match (3) plus one partial match (1.5) over two words
		assert.InDelta(t, 4.5/math.Sqrt(2)*1.1, results[0].Score, 1e-9)
		assert.Equal(t, 1, results[0].MatchedWords)
	})

	t.Run("scores substring-only matches", func(t *testing.T) {
		t.Parallel()

		results := studydoc.FindRelevantChunks(newChunks("photosynthetic organisms"), "photosynthetic", 3)
		require.Len(t, results, 1)

		results = studydoc.FindRelevantChunks(newChunks("categories of things"), "category", 3)
		assert.Empty(t, results)

		results = studydoc.FindRelevantChunks(newChunks("subcategory list"), "category", 3)
		require.Len(t, results, 1)
		assert.InDelta(t, 1.5/math.Sqrt(2)*1.1, results[0].Score, 1e-9)
	})

	t.Run("adds co-occurrence bonus for several keywords", func(t *testing.T) {
		t.Parallel()

		results := studydoc.FindRelevantChunks(
			newChunks("photosynthesis uses chlorophyll"),
			"photosynthesis chlorophyll",
			3,
		)

		require.Len(t, results, 1)
		// two exact matches (6) plus bonus 2*2 over three words
		assert.InDelta(t, 10/math.Sqrt(3)*1.1, results[0].Score, 1e-9)
		assert.Equal(t, 2, results[0].MatchedWords)
	})

	t.Run("is case insensitive", func(t *testing.T) {
		t.Parallel()

		results := studydoc.FindRelevantChunks(newChunks("The MITOCHONDRIA produce energy"), "Mitochondria", 3)

		require.Len(t, results, 1)
		assert.Equal(t, 1, results[0].MatchedWords)
	})

	t.Run("limits results to max chunks", func(t *testing.T) {
		t.Parallel()

		chunks := newChunks("atom one", "atom two", "atom three", "atom four")

		results := studydoc.FindRelevantChunks(chunks, "atom", 2)

		assert.Equal(t, []int{0, 1}, chunkIndices(results))
	})

	t.Run("returns every positive chunk when max exceeds matches", func(t *testing.T) {
		t.Parallel()

		chunks := newChunks("atom one", "nothing here", "atom three")

		results := studydoc.FindRelevantChunks(chunks, "atom", 10)

		assert.Equal(t, []int{0, 2}, chunkIndices(results))
	})

	t.Run("uses default max for non-positive max", func(t *testing.T) {
		t.Parallel()

		chunks := newChunks("atom", "atom", "atom", "atom", "atom")

		results := studydoc.FindRelevantChunks(chunks, "atom", 0)

		assert.Len(t, results, studydoc.DefaultMaxChunks)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		chunks := newChunks(
			"enzymes speed reactions",
			"reactions need energy and enzymes",
			"energy flows through ecosystems",
			"enzymes are proteins",
		)

		first := studydoc.FindRelevantChunks(chunks, "enzymes energy reactions", 4)
		second := studydoc.FindRelevantChunks(chunks, "enzymes energy reactions", 4)

		assert.Equal(t, first, second)
	})
}

func TestRankChunks(t *testing.T) {
	t.Parallel()

	t.Run("breaks score ties by matched words then chunk index", func(t *testing.T) {
		t.Parallel()

		chunks := newChunks("a", "b", "c", "d")
		scored := []studydoc.ScoredChunk{
			{Chunk: chunks[3], Score: 1.5, MatchedWords: 1},
			{Chunk: chunks[2], Score: 1.5, MatchedWords: 2},
			{Chunk: chunks[1], Score: 1.5, MatchedWords: 1},
			{Chunk: chunks[0], Score: 0.5, MatchedWords: 3},
		}

		studydoc.RankChunks(scored)

		assert.Equal(t, []int{2, 1, 3, 0}, chunkIndices(scored))
	})

	t.Run("orders identical score and matches by ascending index", func(t *testing.T) {
		t.Parallel()

		chunks := newChunks("a", "b")
		scored := []studydoc.ScoredChunk{
			{Chunk: chunks[1], Score: 2, MatchedWords: 1},
			{Chunk: chunks[0], Score: 2, MatchedWords: 1},
		}

		studydoc.RankChunks(scored)

		assert.Equal(t, []int{0, 1}, chunkIndices(scored))
	})
}

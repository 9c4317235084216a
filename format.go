package studydoc

import (
	"fmt"
	"strings"
)

// FormatContext formats ranked chunks as model context.
// Each chunk is labelled with its 1-based rank; chunks are separated by
// blank lines.
func FormatContext(chunks []ScoredChunk) string {
	if len(chunks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(chunks))
	for i, c := range chunks {
		parts = append(parts, fmt.Sprintf("Chunk %d\n%s", i+1, c.Chunk.Content))
	}

	return strings.Join(parts, "\n\n")
}

// JoinContent joins the content of ranked chunks with blank lines.
func JoinContent(chunks []ScoredChunk) string {
	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, c.Chunk.Content)
	}
	return strings.Join(parts, "\n\n")
}

// ChunkIndices returns the chunk indices of ranked chunks in rank order.
func ChunkIndices(chunks []ScoredChunk) []int {
	indices := make([]int, 0, len(chunks))
	for _, c := range chunks {
		indices = append(indices, c.Chunk.ChunkIndex)
	}
	return indices
}

package studydoc

import (
	"context"
	"regexp"
	"strings"
)

// Default chunking parameters, in words.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
)

// Chunk represents a contiguous, paragraph-aligned slice of a document's text.
type Chunk struct {
	ID         string `json:"id"`
	DocumentID string `json:"documentId"`

	// ChunkIndex is the zero-based emission order within the document.
	// Chat history references chunks by this index.
	ChunkIndex int `json:"chunkIndex"`

	// PageNumber is reserved for page-aware extraction and is always 0.
	PageNumber int    `json:"pageNumber"`
	Content    string `json:"content"`
}

// ChunkOptions configures ChunkText. Size and Overlap are word counts.
type ChunkOptions struct {
	Size    int `json:"size"`
	Overlap int `json:"overlap"`
}

// DefaultChunkOptions returns the default chunk size and overlap.
func DefaultChunkOptions() ChunkOptions {
	return ChunkOptions{Size: DefaultChunkSize, Overlap: DefaultChunkOverlap}
}

// Validate returns an error if the options cannot make forward progress.
func (o ChunkOptions) Validate() error {
	if o.Size <= 0 {
		return Errorf(EINVALID, "chunk size must be positive, got %d", o.Size)
	}
	if o.Overlap < 0 {
		return Errorf(EINVALID, "chunk overlap cannot be negative, got %d", o.Overlap)
	}
	if o.Overlap >= o.Size {
		return Errorf(EINVALID, "chunk overlap %d must be smaller than chunk size %d", o.Overlap, o.Size)
	}
	return nil
}

// stride is the window advance for word-window splitting.
func (o ChunkOptions) stride() int {
	return o.Size - o.Overlap
}

var (
	horizontalSpaceRe = regexp.MustCompile(`[\t\v\f \p{Zs}\x{feff}]+`)
	newlineSpaceRe    = regexp.MustCompile(` ?\n ?`)
	newlineRunRe      = regexp.MustCompile(`\n{2,}`)
)

// NormalizeText normalizes whitespace the way ChunkText sees it: all line
// breaks become "\n", runs of horizontal whitespace become one space, spaces
// next to line breaks are removed, repeated line breaks collapse to one, and
// the result is trimmed.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = horizontalSpaceRe.ReplaceAllString(text, " ")
	text = newlineSpaceRe.ReplaceAllString(text, "\n")
	text = newlineRunRe.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// CountWords returns the number of whitespace-delimited words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// ChunkText splits text into ordered, paragraph-preserving chunks of at most
// opts.Size words. Paragraphs are accumulated until the next one would
// overflow the chunk; the following chunk then starts with the last
// opts.Overlap words of the chunk just emitted. A paragraph longer than
// opts.Size is split into word windows advancing by Size-Overlap words.
//
// Empty or whitespace-only text yields no chunks. Invalid options return an
// EINVALID error.
func ChunkText(text string, opts ChunkOptions) ([]*Chunk, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	normalized := NormalizeText(text)
	if normalized == "" {
		return nil, nil
	}

	var chunks []*Chunk
	emit := func(content string) {
		chunks = append(chunks, &Chunk{
			ChunkIndex: len(chunks),
			Content:    content,
		})
	}

	var current []string
	wordCount := 0

	for _, paragraph := range strings.Split(normalized, "\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		words := strings.Fields(paragraph)

		// Oversized paragraph: flush what we have, then window the paragraph.
		if len(words) > opts.Size {
			if len(current) > 0 {
				emit(strings.Join(current, "\n\n"))
				current = nil
				wordCount = 0
			}
			for _, window := range wordWindows(words, opts) {
				emit(window)
			}
			continue
		}

		if wordCount+len(words) > opts.Size && len(current) > 0 {
			emit(strings.Join(current, "\n\n"))

			// Overlap is taken from the chunk that was just emitted.
			prev := strings.Fields(strings.Join(current, " "))
			current = nil
			if tail := lastWords(prev, opts.Overlap); tail != "" {
				current = append(current, tail)
			}
			current = append(current, paragraph)
			wordCount = opts.Overlap + len(words)
			continue
		}

		current = append(current, paragraph)
		wordCount += len(words)
	}

	if len(current) > 0 {
		emit(strings.Join(current, "\n\n"))
	}

	if len(chunks) == 0 {
		for _, window := range wordWindows(strings.Fields(normalized), opts) {
			emit(window)
		}
	}

	return chunks, nil
}

// wordWindows splits words into windows of opts.Size words advancing by
// opts.Size-opts.Overlap. The last window may be shorter.
func wordWindows(words []string, opts ChunkOptions) []string {
	var windows []string
	for i := 0; i < len(words); i += opts.stride() {
		end := min(i+opts.Size, len(words))
		windows = append(windows, strings.Join(words[i:end], " "))
		if i+opts.Size >= len(words) {
			break
		}
	}
	return windows
}

// lastWords joins the trailing n words, capped at len(words).
func lastWords(words []string, n int) string {
	n = min(n, len(words))
	if n <= 0 {
		return ""
	}
	return strings.Join(words[len(words)-n:], " ")
}

// ChunkService represents a service for managing a document's chunks.
type ChunkService interface {
	// ReplaceChunks stores chunks for a document exactly as emitted by
	// ChunkText, replacing any previously stored set.
	ReplaceChunks(ctx context.Context, documentID string, chunks []*Chunk) error

	// FindChunks returns a document's chunks ordered by chunk index.
	FindChunks(ctx context.Context, documentID string) ([]*Chunk, error)
}

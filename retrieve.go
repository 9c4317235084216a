package studydoc

import (
	"cmp"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultMaxChunks is the number of chunks handed to the model as context.
const DefaultMaxChunks = 3

// Scoring weights. These are tuned by hand, not derived.
const (
	exactMatchWeight   = 3.0
	partialMatchWeight = 1.5
	coOccurrenceWeight = 2.0
	positionFloor      = 0.1
	minKeywordLength   = 3
)

var stopWords = map[string]struct{}{
	"the": {}, "is": {}, "at": {}, "which": {}, "on": {}, "a": {}, "an": {},
	"and": {}, "or": {}, "but": {}, "in": {}, "with": {}, "to": {}, "of": {},
	"as": {}, "by": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"for": {}, "it": {}, "its": {},
}

// ScoredChunk is a chunk ranked against a query.
type ScoredChunk struct {
	Chunk *Chunk `json:"chunk"`

	// Score is the final ranking key; 0 for unscored fallback results.
	Score float64 `json:"score"`

	// MatchedWords is the number of distinct keywords found in the chunk.
	MatchedWords int `json:"matchedWords"`
}

// Keywords lowercases the query, splits it on whitespace, and drops short
// tokens and stop words. Repeated keywords are kept.
func Keywords(query string) []string {
	var keywords []string
	for _, token := range strings.Fields(strings.ToLower(query)) {
		if utf8.RuneCountInString(token) < minKeywordLength {
			continue
		}
		if _, ok := stopWords[token]; ok {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}

// FindRelevantChunks ranks chunks against query and returns at most
// maxChunks of them, best first. A maxChunks of zero or less means
// DefaultMaxChunks.
//
// Each keyword scores its whole-word occurrences higher than occurrences
// inside longer words, chunks matching several distinct keywords get a
// bonus, scores are divided by the square root of the chunk's word count,
// and earlier chunks get a mild position bonus. Chunks that score zero are
// dropped. Ties are broken by matched keyword count, then chunk index.
//
// When the query has no usable keywords, the first maxChunks chunks are
// returned unscored in document order.
func FindRelevantChunks(chunks []*Chunk, query string, maxChunks int) []ScoredChunk {
	if maxChunks <= 0 {
		maxChunks = DefaultMaxChunks
	}
	if len(chunks) == 0 || strings.TrimSpace(query) == "" {
		return nil
	}

	keywords := Keywords(query)
	if len(keywords) == 0 {
		results := make([]ScoredChunk, 0, min(maxChunks, len(chunks)))
		for _, c := range chunks[:min(maxChunks, len(chunks))] {
			results = append(results, ScoredChunk{Chunk: c})
		}
		return results
	}

	patterns := make([]*regexp.Regexp, len(keywords))
	for i, k := range keywords {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(k) + `\b`)
	}

	total := float64(len(chunks))
	var scored []ScoredChunk
	for i, c := range chunks {
		content := strings.ToLower(c.Content)
		wordCount := CountWords(content)
		if wordCount == 0 {
			continue
		}

		var raw float64
		found := make(map[string]struct{}, len(keywords))
		for j, k := range keywords {
			exact := len(patterns[j].FindAllStringIndex(content, -1))
			partial := strings.Count(content, k)
			raw += float64(exact) * exactMatchWeight
			raw += float64(max(0, partial-exact)) * partialMatchWeight
			if partial > 0 {
				found[k] = struct{}{}
			}
		}
		if len(found) > 1 {
			raw += float64(len(found)) * coOccurrenceWeight
		}

		normalized := raw / math.Sqrt(float64(wordCount))
		positionBonus := 1 - float64(i)/total + positionFloor
		score := normalized * positionBonus
		if score <= 0 {
			continue
		}

		scored = append(scored, ScoredChunk{
			Chunk:        c,
			Score:        score,
			MatchedWords: len(found),
		})
	}

	rankChunks(scored)
	if len(scored) > maxChunks {
		scored = scored[:maxChunks]
	}
	return scored
}

// rankChunks sorts by score descending, then matched keywords descending,
// then chunk index ascending.
func rankChunks(scored []ScoredChunk) {
	slices.SortStableFunc(scored, func(a, b ScoredChunk) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(b.MatchedWords, a.MatchedWords); c != 0 {
			return c
		}
		return cmp.Compare(a.Chunk.ChunkIndex, b.Chunk.ChunkIndex)
	})
}

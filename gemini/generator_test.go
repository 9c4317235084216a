package gemini_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvduth/studydoc"
	"github.com/vvduth/studydoc/gemini"
	"google.golang.org/genai"
)

// fakeModels is a gemini.ContentGenerator with a replaceable function.
type fakeModels struct {
	GenerateContentFn func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return f.GenerateContentFn(ctx, model, contents, config)
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func respondWith(text string) *fakeModels {
	return &fakeModels{
		GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return textResponse(text), nil
		},
	}
}

func newTestGenerator(models gemini.ContentGenerator) *gemini.Generator {
	g := gemini.NewGenerator(models, "", 0)
	g.RetryDelays = []time.Duration{0, 0}
	return g
}

func TestGenerator_GenerateFlashcards(t *testing.T) {
	t.Parallel()

	t.Run("sends prompt to configured model and parses cards", func(t *testing.T) {
		t.Parallel()

		var gotModel, gotPrompt string
		var gotConfig *genai.GenerateContentConfig
		models := &fakeModels{
			GenerateContentFn: func(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				gotModel = model
				gotPrompt = contents[0].Parts[0].Text
				gotConfig = config
				return textResponse("Q: What is ATP?\nA: Energy currency.\nD: easy\n---\nQ: Where?\nA: Mitochondria."), nil
			},
		}
		g := gemini.NewGenerator(models, "gemini-test", 0)

		cards, err := g.GenerateFlashcards(context.Background(), "ATP is made in mitochondria.", 2)

		require.NoError(t, err)
		assert.Equal(t, "gemini-test", gotModel)
		assert.Contains(t, gotPrompt, "Generate exactly 2 flashcards")
		assert.Contains(t, gotPrompt, "ATP is made in mitochondria.")
		require.NotNil(t, gotConfig.SystemInstruction)
		require.Len(t, cards, 2)
		assert.Equal(t, studydoc.DifficultyEasy, cards[0].Difficulty)
		assert.Equal(t, studydoc.DifficultyMedium, cards[1].Difficulty)
	})

	t.Run("rejects non-positive count", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(nil)

		_, err := g.GenerateFlashcards(context.Background(), "text", 0)

		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
	})

	t.Run("rejects empty text", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(nil)

		_, err := g.GenerateFlashcards(context.Background(), "  ", 5)

		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
	})

	t.Run("fails when nothing parses", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(respondWith("I cannot help with that."))

		_, err := g.GenerateFlashcards(context.Background(), "text", 5)

		assert.Equal(t, studydoc.EINTERNAL, studydoc.ErrorCode(err))
	})
}

func TestGenerator_GenerateQuiz(t *testing.T) {
	t.Parallel()

	t.Run("parses questions", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(respondWith("Q: Powerhouse?\nO1: Nucleus\nO2: Mitochondria\nO3: Ribosome\nO4: Golgi\nC: Mitochondria\nE: It makes ATP.\nD: hard"))

		questions, err := g.GenerateQuiz(context.Background(), "text", 5)

		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "Mitochondria", questions[0].CorrectAnswer)
		assert.Equal(t, studydoc.DifficultyHard, questions[0].Difficulty)
	})

	t.Run("fails when nothing parses", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(respondWith("Q: Incomplete?\nO1: a"))

		_, err := g.GenerateQuiz(context.Background(), "text", 5)

		assert.Equal(t, studydoc.EINTERNAL, studydoc.ErrorCode(err))
	})
}

func TestGenerator_Answer(t *testing.T) {
	t.Parallel()

	t.Run("includes ranked chunks in prompt", func(t *testing.T) {
		t.Parallel()

		var gotPrompt string
		models := &fakeModels{
			GenerateContentFn: func(_ context.Context, _ string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				gotPrompt = contents[0].Parts[0].Text
				return textResponse("  Chlorophyll.  "), nil
			},
		}
		g := newTestGenerator(models)
		chunks := []studydoc.ScoredChunk{
			{Chunk: &studydoc.Chunk{ChunkIndex: 4, Content: "Leaves contain chlorophyll."}},
		}

		answer, err := g.Answer(context.Background(), "What pigment?", chunks)

		require.NoError(t, err)
		assert.Equal(t, "Chlorophyll.", answer)
		assert.Contains(t, gotPrompt, "Chunk 1\nLeaves contain chlorophyll.")
		assert.True(t, strings.HasSuffix(gotPrompt, "Question: What pigment?"))
	})

	t.Run("rejects empty question", func(t *testing.T) {
		t.Parallel()

		_, err := newTestGenerator(nil).Answer(context.Background(), "", nil)

		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for empty response", func(t *testing.T) {
		t.Parallel()

		g := newTestGenerator(respondWith("   "))

		_, err := g.Answer(context.Background(), "why?", nil)

		assert.Equal(t, studydoc.EINTERNAL, studydoc.ErrorCode(err))
	})
}

func TestGenerator_Retry(t *testing.T) {
	t.Parallel()

	t.Run("retries failed requests", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		models := &fakeModels{
			GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				if calls.Add(1) < 3 {
					return nil, errors.New("503 unavailable")
				}
				return textResponse("summary"), nil
			},
		}

		summary, err := newTestGenerator(models).Summarize(context.Background(), "text")

		require.NoError(t, err)
		assert.Equal(t, "summary", summary)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("returns last error after all attempts", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		models := &fakeModels{
			GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				calls.Add(1)
				return nil, errors.New("quota exceeded")
			},
		}

		_, err := newTestGenerator(models).Summarize(context.Background(), "text")

		require.EqualError(t, err, "quota exceeded")
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		models := &fakeModels{
			GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				calls.Add(1)
				return nil, genai.APIError{Code: 400, Message: "API key not valid", Status: "INVALID_ARGUMENT"}
			},
		}

		_, err := newTestGenerator(models).Summarize(context.Background(), "text")

		var apiErr genai.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.Code)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("retries rate limit and server API errors", func(t *testing.T) {
		t.Parallel()

		for _, code := range []int{429, 500, 503} {
			var calls atomic.Int32
			models := &fakeModels{
				GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
					if calls.Add(1) < 2 {
						return nil, genai.APIError{Code: code, Message: "try again"}
					}
					return textResponse("summary"), nil
				},
			}

			summary, err := newTestGenerator(models).Summarize(context.Background(), "text")

			require.NoError(t, err, "code %d", code)
			assert.Equal(t, "summary", summary)
			assert.Equal(t, int32(2), calls.Load(), "code %d", code)
		}
	})

	t.Run("does not retry canceled requests", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		models := &fakeModels{
			GenerateContentFn: func(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				calls.Add(1)
				return nil, context.Canceled
			},
		}

		_, err := newTestGenerator(models).Explain(context.Background(), "osmosis", "context")

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("be brief")

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "be brief", config.SystemInstruction.Parts[0].Text)
	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

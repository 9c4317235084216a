// Package gemini implements studydoc generation on Google Gemini.
package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/vvduth/studydoc"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash-lite"

// ContentGenerator is the part of the genai client the Generator calls.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var _ studydoc.Generator = (*Generator)(nil)

// Generator implements studydoc.Generator using Google Gemini.
type Generator struct {
	models  ContentGenerator
	model   string
	limiter *rate.Limiter

	// RetryDelays are the waits between attempts after a failed request.
	// Defaults to DefaultRetryDelays.
	RetryDelays []time.Duration
}

// NewGenerator creates a Generator sending at most rps requests per second
// to model. A non-positive rps disables rate limiting.
func NewGenerator(models ContentGenerator, model string, rps float64) *Generator {
	if model == "" {
		model = DefaultModel
	}
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Generator{
		models:      models,
		model:       model,
		limiter:     rate.NewLimiter(limit, 1),
		RetryDelays: DefaultRetryDelays(),
	}
}

// DefaultRetryDelays returns the backoff delays for request retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// GenerateFlashcards generates up to count flashcards from text.
func (g *Generator) GenerateFlashcards(ctx context.Context, text string, count int) ([]studydoc.Flashcard, error) {
	if err := validateGeneration(text, count); err != nil {
		return nil, err
	}

	out, err := g.generate(ctx, studyInstruction, BuildFlashcardPrompt(text, count))
	if err != nil {
		return nil, err
	}

	cards := ParseFlashcards(out, count)
	if len(cards) == 0 {
		return nil, studydoc.Errorf(studydoc.EINTERNAL, "model returned no usable flashcards")
	}
	return cards, nil
}

// GenerateQuiz generates up to count multiple-choice questions from text.
func (g *Generator) GenerateQuiz(ctx context.Context, text string, count int) ([]studydoc.Question, error) {
	if err := validateGeneration(text, count); err != nil {
		return nil, err
	}

	out, err := g.generate(ctx, studyInstruction, BuildQuizPrompt(text, count))
	if err != nil {
		return nil, err
	}

	questions := ParseQuestions(out, count)
	if len(questions) == 0 {
		return nil, studydoc.Errorf(studydoc.EINTERNAL, "model returned no usable quiz questions")
	}
	return questions, nil
}

// Summarize returns a structured summary of text.
func (g *Generator) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", studydoc.Errorf(studydoc.EINVALID, "document has no text")
	}
	return g.generate(ctx, studyInstruction, BuildSummaryPrompt(text))
}

// Answer answers question using the ranked chunks as context.
func (g *Generator) Answer(ctx context.Context, question string, chunks []studydoc.ScoredChunk) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", studydoc.Errorf(studydoc.EINVALID, "question required")
	}
	return g.generate(ctx, tutorInstruction, BuildChatPrompt(question, chunks))
}

// Explain explains concept using contextText as source material.
func (g *Generator) Explain(ctx context.Context, concept, contextText string) (string, error) {
	if strings.TrimSpace(concept) == "" {
		return "", studydoc.Errorf(studydoc.EINVALID, "concept required")
	}
	return g.generate(ctx, tutorInstruction, BuildExplainPrompt(concept, contextText))
}

func validateGeneration(text string, count int) error {
	if count <= 0 {
		return studydoc.Errorf(studydoc.EINVALID, "count must be positive, got %d", count)
	}
	if strings.TrimSpace(text) == "" {
		return studydoc.Errorf(studydoc.EINVALID, "document has no text")
	}
	return nil
}

// generate sends one prompt, retrying failed requests with backoff.
// Every attempt waits on the rate limiter.
func (g *Generator) generate(ctx context.Context, instruction, prompt string) (string, error) {
	contents := []*genai.Content{{
		Role:  "user",
		Parts: []*genai.Part{{Text: prompt}},
	}}
	config := BuildConfig(instruction)

	var lastErr error
	for attempt := 0; attempt <= len(g.RetryDelays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(g.RetryDelays[attempt-1]):
			}
		}

		if err := g.limiter.Wait(ctx); err != nil {
			return "", err
		}

		result, err := g.models.GenerateContent(ctx, g.model, contents, config)
		if err != nil {
			if !retryable(err) {
				return "", err
			}
			lastErr = err
			continue
		}
		if result == nil {
			return "", studydoc.Errorf(studydoc.EINTERNAL, "gemini returned nil result")
		}

		text := strings.TrimSpace(result.Text())
		if text == "" {
			return "", studydoc.Errorf(studydoc.EINTERNAL, "no text generated")
		}
		return text, nil
	}

	return "", lastErr
}

// retryable reports whether a failed request may succeed when repeated.
// API errors are retried only for rate limiting and server failures.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var code int
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code = apiErr.Code
	case errors.As(err, &apiErrPtr):
		code = apiErrPtr.Code
	default:
		return true
	}
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

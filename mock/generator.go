package mock

import (
	"context"

	"github.com/vvduth/studydoc"
)

var _ studydoc.Generator = (*Generator)(nil)

// Generator is a mock implementation of studydoc.Generator.
type Generator struct {
	GenerateFlashcardsFn func(ctx context.Context, text string, count int) ([]studydoc.Flashcard, error)
	GenerateQuizFn       func(ctx context.Context, text string, count int) ([]studydoc.Question, error)
	SummarizeFn          func(ctx context.Context, text string) (string, error)
	AnswerFn             func(ctx context.Context, question string, chunks []studydoc.ScoredChunk) (string, error)
	ExplainFn            func(ctx context.Context, concept, contextText string) (string, error)
}

func (g *Generator) GenerateFlashcards(ctx context.Context, text string, count int) ([]studydoc.Flashcard, error) {
	return g.GenerateFlashcardsFn(ctx, text, count)
}

func (g *Generator) GenerateQuiz(ctx context.Context, text string, count int) ([]studydoc.Question, error) {
	return g.GenerateQuizFn(ctx, text, count)
}

func (g *Generator) Summarize(ctx context.Context, text string) (string, error) {
	return g.SummarizeFn(ctx, text)
}

func (g *Generator) Answer(ctx context.Context, question string, chunks []studydoc.ScoredChunk) (string, error) {
	return g.AnswerFn(ctx, question, chunks)
}

func (g *Generator) Explain(ctx context.Context, concept, contextText string) (string, error) {
	return g.ExplainFn(ctx, concept, contextText)
}

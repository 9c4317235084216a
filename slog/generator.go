// Package slog provides logging decorators for studydoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/vvduth/studydoc"
)

// Ensure LoggingGenerator implements studydoc.Generator.
var _ studydoc.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with debug logging.
type LoggingGenerator struct {
	next   studydoc.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next studydoc.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// GenerateFlashcards delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) GenerateFlashcards(ctx context.Context, text string, count int) (cards []studydoc.Flashcard, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate flashcards",
			"chars", len(text),
			"requested", count,
			"count", len(cards),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateFlashcards(ctx, text, count)
}

// GenerateQuiz delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) GenerateQuiz(ctx context.Context, text string, count int) (questions []studydoc.Question, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate quiz",
			"chars", len(text),
			"requested", count,
			"count", len(questions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.GenerateQuiz(ctx, text, count)
}

// Summarize delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Summarize(ctx context.Context, text string) (summary string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("summarize",
			"chars", len(text),
			"bytes", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Summarize(ctx, text)
}

// Answer delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Answer(ctx context.Context, question string, chunks []studydoc.ScoredChunk) (answer string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("answer",
			"question", question,
			"chunks", len(chunks),
			"bytes", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Answer(ctx, question, chunks)
}

// Explain delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Explain(ctx context.Context, concept, contextText string) (explanation string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("explain",
			"concept", concept,
			"chars", len(contextText),
			"bytes", len(explanation),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Explain(ctx, concept, contextText)
}

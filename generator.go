package studydoc

import "context"

// Generator produces study material and answers with a language model.
// It treats the model as an opaque text-in, text-out capability.
type Generator interface {
	// GenerateFlashcards generates up to count flashcards from text.
	GenerateFlashcards(ctx context.Context, text string, count int) ([]Flashcard, error)

	// GenerateQuiz generates up to count multiple-choice questions from text.
	GenerateQuiz(ctx context.Context, text string, count int) ([]Question, error)

	// Summarize returns a structured summary of text.
	Summarize(ctx context.Context, text string) (string, error)

	// Answer answers question using the ranked chunks as context.
	Answer(ctx context.Context, question string, chunks []ScoredChunk) (string, error)

	// Explain explains concept using contextText as source material.
	Explain(ctx context.Context, concept, contextText string) (string, error)
}

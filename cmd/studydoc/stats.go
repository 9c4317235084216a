package main

import (
	"fmt"

	"github.com/vvduth/studydoc"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	docs, err := deps.Documents.FindDocuments(deps.Ctx, studydoc.DocumentFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	sets, err := deps.Flashcards.FindFlashcardSets(deps.Ctx, studydoc.FlashcardSetFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	quizzes, err := deps.Quizzes.FindQuizzes(deps.Ctx, studydoc.QuizFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	p := studydoc.ComputeProgress(docs, sets, quizzes)

	w := deps.Stdout
	fmt.Fprintf(w, "Documents:       %d\n", p.Documents)
	fmt.Fprintf(w, "Flashcard sets:  %d\n", p.FlashcardSets)
	fmt.Fprintf(w, "Flashcards:      %d (%d reviewed, %d starred)\n", p.Flashcards, p.ReviewedFlashcards, p.StarredFlashcards)
	fmt.Fprintf(w, "Quizzes:         %d (%d completed)\n", p.Quizzes, p.CompletedQuizzes)
	if p.CompletedQuizzes > 0 {
		fmt.Fprintf(w, "Average score:   %d%%\n", p.AverageScore)
	}
	return nil
}

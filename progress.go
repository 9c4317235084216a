package studydoc

import "math"

// Progress summarizes study activity across all documents.
type Progress struct {
	Documents          int `json:"documents"`
	FlashcardSets      int `json:"flashcardSets"`
	Flashcards         int `json:"flashcards"`
	ReviewedFlashcards int `json:"reviewedFlashcards"`
	StarredFlashcards  int `json:"starredFlashcards"`
	Quizzes            int `json:"quizzes"`
	CompletedQuizzes   int `json:"completedQuizzes"`

	// AverageScore is the rounded mean score of completed quizzes.
	AverageScore int `json:"averageScore"`
}

// ComputeProgress aggregates documents, flashcard sets and quizzes.
func ComputeProgress(docs []*Document, sets []*FlashcardSet, quizzes []*Quiz) Progress {
	p := Progress{
		Documents:     len(docs),
		FlashcardSets: len(sets),
		Quizzes:       len(quizzes),
	}

	for _, set := range sets {
		p.Flashcards += len(set.Cards)
		for _, card := range set.Cards {
			if card.ReviewCount > 0 {
				p.ReviewedFlashcards++
			}
			if card.Starred {
				p.StarredFlashcards++
			}
		}
	}

	total := 0
	for _, q := range quizzes {
		if q.IsCompleted() {
			p.CompletedQuizzes++
			total += q.Score
		}
	}
	if p.CompletedQuizzes > 0 {
		p.AverageScore = int(math.Round(float64(total) / float64(p.CompletedQuizzes)))
	}

	return p
}

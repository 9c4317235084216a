package studydoc

import (
	"context"
	"strings"
	"time"
)

// Difficulty rates a flashcard or quiz question.
type Difficulty string

// Difficulty values.
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty parses s case-insensitively, defaulting to medium.
func ParseDifficulty(s string) Difficulty {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d
	}
	return DifficultyMedium
}

// Flashcard is a single question/answer card.
type Flashcard struct {
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	Difficulty     Difficulty `json:"difficulty"`
	ReviewCount    int        `json:"reviewCount"`
	LastReviewedAt *time.Time `json:"lastReviewedAt,omitempty"`
	Starred        bool       `json:"starred"`
}

// FlashcardSet is a batch of cards generated from one document.
type FlashcardSet struct {
	ID         string      `json:"id"`
	DocumentID string      `json:"documentId"`
	Cards      []Flashcard `json:"cards"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Validate returns an error if the set contains invalid fields.
func (s *FlashcardSet) Validate() error {
	if s.DocumentID == "" {
		return Errorf(EINVALID, "flashcard set document ID required")
	}
	if len(s.Cards) == 0 {
		return Errorf(EINVALID, "flashcard set requires at least one card")
	}
	for i, c := range s.Cards {
		if c.Question == "" || c.Answer == "" {
			return Errorf(EINVALID, "flashcard %d requires a question and an answer", i)
		}
	}
	return nil
}

// Card returns a pointer to the card at index.
// Returns ENOTFOUND if index is out of range.
func (s *FlashcardSet) Card(index int) (*Flashcard, error) {
	if index < 0 || index >= len(s.Cards) {
		return nil, Errorf(ENOTFOUND, "flashcard %d not found in set", index)
	}
	return &s.Cards[index], nil
}

// FlashcardService represents a service for managing flashcard sets.
type FlashcardService interface {
	// CreateFlashcardSet creates a new flashcard set.
	CreateFlashcardSet(ctx context.Context, set *FlashcardSet) error

	// FindFlashcardSetByID retrieves a set by ID.
	// Returns ENOTFOUND if set does not exist.
	FindFlashcardSetByID(ctx context.Context, id string) (*FlashcardSet, error)

	// FindFlashcardSets retrieves sets matching the filter, newest first.
	FindFlashcardSets(ctx context.Context, filter FlashcardSetFilter) ([]*FlashcardSet, error)

	// ReviewFlashcard increments a card's review count and stamps the review time.
	// Returns ENOTFOUND if the set or card does not exist.
	ReviewFlashcard(ctx context.Context, setID string, index int) (*FlashcardSet, error)

	// ToggleStar flips a card's starred flag.
	// Returns ENOTFOUND if the set or card does not exist.
	ToggleStar(ctx context.Context, setID string, index int) (*FlashcardSet, error)

	// DeleteFlashcardSet permanently removes a set.
	// Returns ENOTFOUND if set does not exist.
	DeleteFlashcardSet(ctx context.Context, id string) error
}

// FlashcardSetFilter represents a filter for FindFlashcardSets.
type FlashcardSetFilter struct {
	DocumentID *string `json:"documentId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

package mock

import (
	"context"

	"github.com/vvduth/studydoc"
)

var _ studydoc.FlashcardService = (*FlashcardService)(nil)

// FlashcardService is a mock implementation of studydoc.FlashcardService.
type FlashcardService struct {
	CreateFlashcardSetFn   func(ctx context.Context, set *studydoc.FlashcardSet) error
	FindFlashcardSetByIDFn func(ctx context.Context, id string) (*studydoc.FlashcardSet, error)
	FindFlashcardSetsFn    func(ctx context.Context, filter studydoc.FlashcardSetFilter) ([]*studydoc.FlashcardSet, error)
	ReviewFlashcardFn      func(ctx context.Context, setID string, index int) (*studydoc.FlashcardSet, error)
	ToggleStarFn           func(ctx context.Context, setID string, index int) (*studydoc.FlashcardSet, error)
	DeleteFlashcardSetFn   func(ctx context.Context, id string) error
}

func (s *FlashcardService) CreateFlashcardSet(ctx context.Context, set *studydoc.FlashcardSet) error {
	return s.CreateFlashcardSetFn(ctx, set)
}

func (s *FlashcardService) FindFlashcardSetByID(ctx context.Context, id string) (*studydoc.FlashcardSet, error) {
	return s.FindFlashcardSetByIDFn(ctx, id)
}

func (s *FlashcardService) FindFlashcardSets(ctx context.Context, filter studydoc.FlashcardSetFilter) ([]*studydoc.FlashcardSet, error) {
	return s.FindFlashcardSetsFn(ctx, filter)
}

func (s *FlashcardService) ReviewFlashcard(ctx context.Context, setID string, index int) (*studydoc.FlashcardSet, error) {
	return s.ReviewFlashcardFn(ctx, setID, index)
}

func (s *FlashcardService) ToggleStar(ctx context.Context, setID string, index int) (*studydoc.FlashcardSet, error) {
	return s.ToggleStarFn(ctx, setID, index)
}

func (s *FlashcardService) DeleteFlashcardSet(ctx context.Context, id string) error {
	return s.DeleteFlashcardSetFn(ctx, id)
}

package mock

import (
	"context"

	"github.com/vvduth/studydoc"
)

var _ studydoc.QuizService = (*QuizService)(nil)

// QuizService is a mock implementation of studydoc.QuizService.
type QuizService struct {
	CreateQuizFn   func(ctx context.Context, quiz *studydoc.Quiz) error
	FindQuizByIDFn func(ctx context.Context, id string) (*studydoc.Quiz, error)
	FindQuizzesFn  func(ctx context.Context, filter studydoc.QuizFilter) ([]*studydoc.Quiz, error)
	SubmitQuizFn   func(ctx context.Context, id string, selections map[int]string) (*studydoc.Quiz, error)
	DeleteQuizFn   func(ctx context.Context, id string) error
}

func (s *QuizService) CreateQuiz(ctx context.Context, quiz *studydoc.Quiz) error {
	return s.CreateQuizFn(ctx, quiz)
}

func (s *QuizService) FindQuizByID(ctx context.Context, id string) (*studydoc.Quiz, error) {
	return s.FindQuizByIDFn(ctx, id)
}

func (s *QuizService) FindQuizzes(ctx context.Context, filter studydoc.QuizFilter) ([]*studydoc.Quiz, error) {
	return s.FindQuizzesFn(ctx, filter)
}

func (s *QuizService) SubmitQuiz(ctx context.Context, id string, selections map[int]string) (*studydoc.Quiz, error) {
	return s.SubmitQuizFn(ctx, id, selections)
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	return s.DeleteQuizFn(ctx, id)
}

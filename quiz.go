package studydoc

import (
	"context"
	"math"
	"slices"
	"time"
)

// QuizOptionCount is the number of options every question carries.
const QuizOptionCount = 4

// Question is a multiple-choice quiz question.
type Question struct {
	Question      string     `json:"question"`
	Options       []string   `json:"options"`
	CorrectAnswer string     `json:"correctAnswer"`
	Explanation   string     `json:"explanation,omitempty"`
	Difficulty    Difficulty `json:"difficulty"`
}

// Answer records the user's selection for one question.
type Answer struct {
	QuestionIndex  int       `json:"questionIndex"`
	SelectedAnswer string    `json:"selectedAnswer"`
	IsCorrect      bool      `json:"isCorrect"`
	AnsweredAt     time.Time `json:"answeredAt"`
}

// Quiz is a set of questions generated from one document.
type Quiz struct {
	ID          string     `json:"id"`
	DocumentID  string     `json:"documentId"`
	Title       string     `json:"title"`
	Questions   []Question `json:"questions"`
	Answers     []Answer   `json:"answers"`
	Score       int        `json:"score"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Validate returns an error if the quiz contains invalid fields.
func (q *Quiz) Validate() error {
	if q.DocumentID == "" {
		return Errorf(EINVALID, "quiz document ID required")
	}
	if q.Title == "" {
		return Errorf(EINVALID, "quiz title required")
	}
	if len(q.Questions) == 0 {
		return Errorf(EINVALID, "quiz requires at least one question")
	}
	for i, question := range q.Questions {
		if len(question.Options) != QuizOptionCount {
			return Errorf(EINVALID, "question %d must have exactly %d options", i, QuizOptionCount)
		}
		if question.Question == "" || question.CorrectAnswer == "" {
			return Errorf(EINVALID, "question %d requires text and a correct answer", i)
		}
	}
	return nil
}

// IsCompleted reports whether answers have been submitted.
func (q *Quiz) IsCompleted() bool {
	return q.CompletedAt != nil
}

// CorrectCount returns the number of correct answers.
func (q *Quiz) CorrectCount() int {
	n := 0
	for _, a := range q.Answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}

// Grade records selections (question index to selected option), scores
// them as a rounded percentage of all questions, and marks the quiz
// completed. Returns ECONFLICT if the quiz was already submitted.
func (q *Quiz) Grade(selections map[int]string, now time.Time) error {
	if q.IsCompleted() {
		return Errorf(ECONFLICT, "quiz has already been submitted")
	}
	if len(selections) == 0 {
		return Errorf(EINVALID, "at least one answer required")
	}
	if len(q.Questions) == 0 {
		return Errorf(EINVALID, "quiz has no questions")
	}

	indices := make([]int, 0, len(selections))
	for i := range selections {
		if i < 0 || i >= len(q.Questions) {
			return Errorf(EINVALID, "question %d not found in quiz", i)
		}
		indices = append(indices, i)
	}
	slices.Sort(indices)

	answers := make([]Answer, 0, len(indices))
	correct := 0
	for _, i := range indices {
		selected := selections[i]
		isCorrect := q.Questions[i].CorrectAnswer == selected
		if isCorrect {
			correct++
		}
		answers = append(answers, Answer{
			QuestionIndex:  i,
			SelectedAnswer: selected,
			IsCorrect:      isCorrect,
			AnsweredAt:     now,
		})
	}

	q.Answers = answers
	q.Score = int(math.Round(float64(correct) / float64(len(q.Questions)) * 100))
	q.CompletedAt = &now
	return nil
}

// QuizService represents a service for managing quizzes.
type QuizService interface {
	// CreateQuiz creates a new quiz.
	CreateQuiz(ctx context.Context, quiz *Quiz) error

	// FindQuizByID retrieves a quiz by ID.
	// Returns ENOTFOUND if quiz does not exist.
	FindQuizByID(ctx context.Context, id string) (*Quiz, error)

	// FindQuizzes retrieves quizzes matching the filter, newest first.
	FindQuizzes(ctx context.Context, filter QuizFilter) ([]*Quiz, error)

	// SubmitQuiz grades selections and stores the result.
	// Returns ENOTFOUND if quiz does not exist, ECONFLICT if already submitted.
	SubmitQuiz(ctx context.Context, id string, selections map[int]string) (*Quiz, error)

	// DeleteQuiz permanently removes a quiz.
	// Returns ENOTFOUND if quiz does not exist.
	DeleteQuiz(ctx context.Context, id string) error
}

// QuizFilter represents a filter for FindQuizzes.
type QuizFilter struct {
	DocumentID *string `json:"documentId"`
	Completed  *bool   `json:"completed"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

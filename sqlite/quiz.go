package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vvduth/studydoc"
)

var _ studydoc.QuizService = (*QuizService)(nil)

// QuizService implements studydoc.QuizService using SQLite.
type QuizService struct {
	db *DB
}

// NewQuizService creates a new QuizService.
func NewQuizService(db *DB) *QuizService {
	return &QuizService{db: db}
}

const quizColumns = "id, document_id, title, questions, answers, score, completed_at, created_at"

func scanQuiz(row rowScanner) (*studydoc.Quiz, error) {
	var quiz studydoc.Quiz
	var questions, answers, createdAt string
	var completedAt sql.NullString

	if err := row.Scan(&quiz.ID, &quiz.DocumentID, &quiz.Title, &questions, &answers,
		&quiz.Score, &completedAt, &createdAt); err != nil {
		return nil, err
	}

	if err := decodeJSON(questions, "questions", &quiz.Questions); err != nil {
		return nil, err
	}
	if err := decodeJSON(answers, "answers", &quiz.Answers); err != nil {
		return nil, err
	}
	var err error
	if quiz.CompletedAt, err = parseNullRFC3339(completedAt, "completed_at"); err != nil {
		return nil, err
	}
	if quiz.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &quiz, nil
}

// CreateQuiz creates a new quiz.
func (s *QuizService) CreateQuiz(ctx context.Context, quiz *studydoc.Quiz) error {
	if err := quiz.Validate(); err != nil {
		return err
	}

	quiz.ID = uuid.New().String()
	quiz.CreatedAt = now()

	questions, err := encodeJSON(quiz.Questions, "questions")
	if err != nil {
		return err
	}
	answers, err := encodeJSON(quiz.Answers, "answers")
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quizzes (id, document_id, title, questions, answers, score, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, quiz.ID, quiz.DocumentID, quiz.Title, questions, answers, quiz.Score,
		formatNullRFC3339(quiz.CompletedAt), quiz.CreatedAt.Format(time.RFC3339))

	return err
}

// FindQuizByID retrieves a quiz by ID.
func (s *QuizService) FindQuizByID(ctx context.Context, id string) (*studydoc.Quiz, error) {
	quiz, err := scanQuiz(s.db.QueryRowContext(ctx, "SELECT "+quizColumns+" FROM quizzes WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, studydoc.Errorf(studydoc.ENOTFOUND, "quiz not found")
	}
	if err != nil {
		return nil, err
	}
	return quiz, nil
}

// FindQuizzes retrieves quizzes matching the filter, newest first.
func (s *QuizService) FindQuizzes(ctx context.Context, filter studydoc.QuizFilter) ([]*studydoc.Quiz, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + quizColumns + " FROM quizzes WHERE 1=1")

	if filter.DocumentID != nil {
		query.WriteString(" AND document_id = ?")
		args = append(args, *filter.DocumentID)
	}
	if filter.Completed != nil {
		if *filter.Completed {
			query.WriteString(" AND completed_at IS NOT NULL")
		} else {
			query.WriteString(" AND completed_at IS NULL")
		}
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []*studydoc.Quiz
	for rows.Next() {
		quiz, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, quiz)
	}

	return quizzes, rows.Err()
}

// SubmitQuiz grades selections and stores the result.
func (s *QuizService) SubmitQuiz(ctx context.Context, id string, selections map[int]string) (*studydoc.Quiz, error) {
	quiz, err := s.FindQuizByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := quiz.Grade(selections, now()); err != nil {
		return nil, err
	}

	answers, err := encodeJSON(quiz.Answers, "answers")
	if err != nil {
		return nil, err
	}

	// The completed_at guard keeps concurrent submissions from both succeeding.
	result, err := s.db.ExecContext(ctx, `
		UPDATE quizzes SET answers = ?, score = ?, completed_at = ?
		WHERE id = ? AND completed_at IS NULL
	`, answers, quiz.Score, formatNullRFC3339(quiz.CompletedAt), id)
	if err != nil {
		return nil, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, studydoc.Errorf(studydoc.ECONFLICT, "quiz has already been submitted")
	}

	return quiz, nil
}

// DeleteQuiz permanently removes a quiz.
func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM quizzes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return studydoc.Errorf(studydoc.ENOTFOUND, "quiz not found")
	}

	return nil
}

package studydoc_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvduth/studydoc"
)

func newQuiz() *studydoc.Quiz {
	return &studydoc.Quiz{
		DocumentID: "doc-1",
		Title:      "Biology",
		Questions: []studydoc.Question{
			{Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a"},
			{Question: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "b"},
			{Question: "Q3", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "c"},
		},
	}
}

func TestQuiz_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts valid quiz", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, newQuiz().Validate())
	})

	t.Run("rejects question without four options", func(t *testing.T) {
		t.Parallel()

		quiz := newQuiz()
		quiz.Questions[1].Options = []string{"a", "b"}

		err := quiz.Validate()

		require.Error(t, err)
		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
	})

	t.Run("rejects quiz without questions", func(t *testing.T) {
		t.Parallel()

		quiz := newQuiz()
		quiz.Questions = nil

		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(quiz.Validate()))
	})
}

func TestQuiz_Grade(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("scores rounded percentage over all questions", func(t *testing.T) {
		t.Parallel()

		quiz := newQuiz()

		err := quiz.Grade(map[int]string{2: "c", 0: "a", 1: "d"}, now)

		require.NoError(t, err)
		assert.Equal(t, 67, quiz.Score)
		assert.Equal(t, 2, quiz.CorrectCount())
		require.Len(t, quiz.Answers, 3)
		assert.Equal(t, 0, quiz.Answers[0].QuestionIndex)
		assert.True(t, quiz.Answers[0].IsCorrect)
		assert.False(t, quiz.Answers[1].IsCorrect)
		assert.Equal(t, now, quiz.Answers[2].AnsweredAt)
		require.NotNil(t, quiz.CompletedAt)
		assert.True(t, quiz.IsCompleted())
	})

	t.Run("counts unanswered questions as wrong", func(t *testing.T) {
		t.Parallel()

		quiz := newQuiz()

		require.NoError(t, quiz.Grade(map[int]string{0: "a"}, now))
		assert.Equal(t, 33, quiz.Score)
	})

	t.Run("rejects second submission", func(t *testing.T) {
		t.Parallel()

		quiz := newQuiz()
		require.NoError(t, quiz.Grade(map[int]string{0: "a"}, now))

		err := quiz.Grade(map[int]string{1: "b"}, now)

		require.Error(t, err)
		assert.Equal(t, studydoc.ECONFLICT, studydoc.ErrorCode(err))
	})

	t.Run("rejects out of range question", func(t *testing.T) {
		t.Parallel()

		quiz := newQuiz()

		err := quiz.Grade(map[int]string{3: "a"}, now)

		require.Error(t, err)
		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
		assert.False(t, quiz.IsCompleted())
	})

	t.Run("rejects empty selections", func(t *testing.T) {
		t.Parallel()

		err := newQuiz().Grade(nil, now)

		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
	})
}

package gemini_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvduth/studydoc"
	"github.com/vvduth/studydoc/gemini"
)

func TestParseFlashcards(t *testing.T) {
	t.Parallel()

	t.Run("parses separated blocks", func(t *testing.T) {
		t.Parallel()

		text := `Q: What is osmosis?
A: Diffusion of water across a membrane.
D: Medium
---
  Q: What is a solute?
  A: A dissolved substance.
  D: easy
---
`

		cards := gemini.ParseFlashcards(text, 10)

		require.Len(t, cards, 2)
		assert.Equal(t, studydoc.Flashcard{
			Question:   "What is osmosis?",
			Answer:     "Diffusion of water across a membrane.",
			Difficulty: studydoc.DifficultyMedium,
		}, cards[0])
		assert.Equal(t, "What is a solute?", cards[1].Question)
		assert.Equal(t, studydoc.DifficultyEasy, cards[1].Difficulty)
	})

	t.Run("drops blocks without an answer", func(t *testing.T) {
		t.Parallel()

		cards := gemini.ParseFlashcards("Q: Lonely question\n---\nQ: Full?\nA: Yes.", 10)

		require.Len(t, cards, 1)
		assert.Equal(t, "Full?", cards[0].Question)
	})

	t.Run("defaults unknown difficulty to medium", func(t *testing.T) {
		t.Parallel()

		cards := gemini.ParseFlashcards("Q: q\nA: a\nD: brutal", 10)

		require.Len(t, cards, 1)
		assert.Equal(t, studydoc.DifficultyMedium, cards[0].Difficulty)
	})

	t.Run("truncates to count", func(t *testing.T) {
		t.Parallel()

		cards := gemini.ParseFlashcards("Q: 1\nA: 1\n---\nQ: 2\nA: 2\n---\nQ: 3\nA: 3", 2)

		require.Len(t, cards, 2)
		assert.Equal(t, "2", cards[1].Question)
	})

	t.Run("keeps dashes inside a line", func(t *testing.T) {
		t.Parallel()

		text := "Q: What does --- mean in YAML?\nA: It starts a document --- nothing more.\n----\n---\nQ: Next?\nA: Yes."

		cards := gemini.ParseFlashcards(text, 10)

		require.Len(t, cards, 2)
		assert.Equal(t, "What does --- mean in YAML?", cards[0].Question)
		assert.Equal(t, "It starts a document --- nothing more.", cards[0].Answer)
		assert.Equal(t, "Next?", cards[1].Question)
	})

	t.Run("returns nothing for free text", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, gemini.ParseFlashcards("Here are some flashcards about cells.", 5))
	})
}

func TestParseQuestions(t *testing.T) {
	t.Parallel()

	const block = `Q: Which gas do plants absorb?
O1: Oxygen
O2: Carbon dioxide
O3: Nitrogen
O4: Helium
C: Carbon dioxide
E: Plants use CO2 in photosynthesis.
D: easy`

	t.Run("parses complete block", func(t *testing.T) {
		t.Parallel()

		questions := gemini.ParseQuestions(block, 5)

		require.Len(t, questions, 1)
		assert.Equal(t, studydoc.Question{
			Question:      "Which gas do plants absorb?",
			Options:       []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Helium"},
			CorrectAnswer: "Carbon dioxide",
			Explanation:   "Plants use CO2 in photosynthesis.",
			Difficulty:    studydoc.DifficultyEasy,
		}, questions[0])
	})

	t.Run("resolves correct answer given as option label", func(t *testing.T) {
		t.Parallel()

		text := "Q: q\nO1: a\nO2: b\nO3: c\nO4: d\nC: O3"

		questions := gemini.ParseQuestions(text, 5)

		require.Len(t, questions, 1)
		assert.Equal(t, "c", questions[0].CorrectAnswer)
	})

	t.Run("normalizes correct answer case to the option text", func(t *testing.T) {
		t.Parallel()

		text := "Q: q\nO1: Alpha\nO2: Beta\nO3: Gamma\nO4: Delta\nC: beta"

		questions := gemini.ParseQuestions(text, 5)

		require.Len(t, questions, 1)
		assert.Equal(t, "Beta", questions[0].CorrectAnswer)
	})

	t.Run("drops blocks with missing options", func(t *testing.T) {
		t.Parallel()

		text := "Q: q\nO1: a\nO2: b\nO4: d\nC: a\n---\n" + block

		questions := gemini.ParseQuestions(text, 5)

		require.Len(t, questions, 1)
		assert.Equal(t, "Which gas do plants absorb?", questions[0].Question)
	})

	t.Run("drops blocks whose answer is not an option", func(t *testing.T) {
		t.Parallel()

		text := "Q: q\nO1: a\nO2: b\nO3: c\nO4: d\nC: e"

		assert.Empty(t, gemini.ParseQuestions(text, 5))
	})

	t.Run("truncates to count", func(t *testing.T) {
		t.Parallel()

		questions := gemini.ParseQuestions(block+"\n---\n"+block+"\n---\n"+block, 2)

		assert.Len(t, questions, 2)
	})
}

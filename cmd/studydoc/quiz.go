package main

import (
	"fmt"
	"strings"

	"github.com/vvduth/studydoc"
)

// Run executes the quiz generate command.
func (c *QuizGenerateCmd) Run(deps *Dependencies) error {
	quiz, err := deps.Tutor.GenerateQuiz(deps.Ctx, c.ID, c.Title, c.Count)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created quiz %q (%s) with %d questions\n", quiz.Title, quiz.ID, len(quiz.Questions))
	return nil
}

// Run executes the quiz list command.
func (c *QuizListCmd) Run(deps *Dependencies) error {
	var filter studydoc.QuizFilter
	if c.Document != "" {
		filter.DocumentID = &c.Document
	}

	quizzes, err := deps.Quizzes.FindQuizzes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	if len(quizzes) == 0 {
		fmt.Fprintln(deps.Stdout, "No quizzes found. Use 'studydoc quiz generate' to create one.")
		return nil
	}

	for _, q := range quizzes {
		state := "not taken"
		if q.IsCompleted() {
			state = fmt.Sprintf("score %d%%", q.Score)
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %d questions  %s\n", q.ID, q.Title, len(q.Questions), state)
	}
	return nil
}

// Run executes the quiz show command.
func (c *QuizShowCmd) Run(deps *Dependencies) error {
	quiz, err := deps.Quizzes.FindQuizByID(deps.Ctx, c.QuizID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	selected := make(map[int]studydoc.Answer, len(quiz.Answers))
	for _, a := range quiz.Answers {
		selected[a.QuestionIndex] = a
	}

	fmt.Fprintf(deps.Stdout, "%s\n", quiz.Title)
	if quiz.IsCompleted() {
		fmt.Fprintf(deps.Stdout, "Score: %d%% (%d/%d correct)\n", quiz.Score, quiz.CorrectCount(), len(quiz.Questions))
	}

	for i, q := range quiz.Questions {
		fmt.Fprintf(deps.Stdout, "\n%d. [%s] %s\n", i+1, q.Difficulty, q.Question)
		for j, opt := range q.Options {
			marker := " "
			if a, ok := selected[i]; ok && a.SelectedAnswer == opt {
				marker = ">"
			}
			fmt.Fprintf(deps.Stdout, "  %s %s) %s\n", marker, optionLabel(j), opt)
		}
		if c.Answers {
			fmt.Fprintf(deps.Stdout, "   Answer: %s\n", q.CorrectAnswer)
			if q.Explanation != "" {
				fmt.Fprintf(deps.Stdout, "   %s\n", q.Explanation)
			}
		}
	}
	return nil
}

// Run executes the quiz submit command.
func (c *QuizSubmitCmd) Run(deps *Dependencies) error {
	quiz, err := deps.Quizzes.FindQuizByID(deps.Ctx, c.QuizID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	selections, err := parseSelections(quiz, c.Answers)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	graded, err := deps.Quizzes.SubmitQuiz(deps.Ctx, quiz.ID, selections)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Score: %d%% (%d/%d correct)\n", graded.Score, graded.CorrectCount(), len(graded.Questions))
	for _, a := range graded.Answers {
		if !a.IsCorrect {
			fmt.Fprintf(deps.Stdout, "  %d. wrong, answer: %s\n", a.QuestionIndex+1, graded.Questions[a.QuestionIndex].CorrectAnswer)
		}
	}
	return nil
}

// parseSelections maps option letters, given in question order, to the
// option text they select. "-" skips a question.
func parseSelections(quiz *studydoc.Quiz, letters []string) (map[int]string, error) {
	if len(letters) > len(quiz.Questions) {
		return nil, studydoc.Errorf(studydoc.EINVALID, "quiz has %d questions, got %d answers", len(quiz.Questions), len(letters))
	}

	selections := make(map[int]string, len(letters))
	for i, letter := range letters {
		letter = strings.ToUpper(strings.TrimSpace(letter))
		if letter == "-" {
			continue
		}
		options := quiz.Questions[i].Options
		if len(letter) != 1 || letter[0] < 'A' || int(letter[0]-'A') >= len(options) {
			return nil, studydoc.Errorf(studydoc.EINVALID, "answer %d: %q is not one of A-%s", i+1, letter, optionLabel(len(options)-1))
		}
		selections[i] = options[letter[0]-'A']
	}

	if len(selections) == 0 {
		return nil, studydoc.Errorf(studydoc.EINVALID, "at least one answer required")
	}
	return selections, nil
}

// Run executes the quiz delete command.
func (c *QuizDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Quizzes.DeleteQuiz(deps.Ctx, c.QuizID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted quiz %s\n", c.QuizID)
	return nil
}

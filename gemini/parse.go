package gemini

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vvduth/studydoc"
)

const blockSeparator = "---"

var optionRe = regexp.MustCompile(`^O([1-9]):\s*(.*)$`)

// blocks splits model output into non-empty blocks of trimmed lines. A block
// ends at a line consisting only of "---".
func blocks(text string) [][]string {
	var out [][]string
	var lines []string
	flush := func() {
		if len(lines) > 0 {
			out = append(out, lines)
			lines = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch line {
		case "":
		case blockSeparator:
			flush()
		default:
			lines = append(lines, line)
		}
	}
	flush()
	return out
}

// field returns the value after prefix, if line starts with it.
func field(line, prefix string) (string, bool) {
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	return strings.TrimSpace(line[len(prefix):]), true
}

// ParseFlashcards parses Q:/A:/D: blocks. Blocks without a question or an
// answer are dropped; at most count cards are returned.
func ParseFlashcards(text string, count int) []studydoc.Flashcard {
	var cards []studydoc.Flashcard
	for _, lines := range blocks(text) {
		card := studydoc.Flashcard{Difficulty: studydoc.DifficultyMedium}
		for _, line := range lines {
			if v, ok := field(line, "Q:"); ok {
				card.Question = v
			} else if v, ok := field(line, "A:"); ok {
				card.Answer = v
			} else if v, ok := field(line, "D:"); ok {
				card.Difficulty = studydoc.ParseDifficulty(v)
			}
		}
		if card.Question == "" || card.Answer == "" {
			continue
		}
		cards = append(cards, card)
		if len(cards) == count {
			break
		}
	}
	return cards
}

// ParseQuestions parses Q:/O1..O4:/C:/E:/D: blocks. Blocks missing the
// question, any of the four options, or a correct answer that names one of
// the options are dropped; at most count questions are returned.
//
// The correct answer may be given as the option text or as its label
// ("O2").
func ParseQuestions(text string, count int) []studydoc.Question {
	var questions []studydoc.Question
	for _, lines := range blocks(text) {
		q := studydoc.Question{Difficulty: studydoc.DifficultyMedium}
		options := make([]string, studydoc.QuizOptionCount)
		var correct string

		for _, line := range lines {
			if m := optionRe.FindStringSubmatch(line); m != nil {
				n, _ := strconv.Atoi(m[1])
				if n <= studydoc.QuizOptionCount {
					options[n-1] = strings.TrimSpace(m[2])
				}
			} else if v, ok := field(line, "Q:"); ok {
				q.Question = v
			} else if v, ok := field(line, "C:"); ok {
				correct = v
			} else if v, ok := field(line, "E:"); ok {
				q.Explanation = v
			} else if v, ok := field(line, "D:"); ok {
				q.Difficulty = studydoc.ParseDifficulty(v)
			}
		}

		if q.Question == "" || correct == "" {
			continue
		}
		complete := true
		for _, o := range options {
			if o == "" {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}

		answer, ok := matchOption(correct, options)
		if !ok {
			continue
		}
		q.Options = options
		q.CorrectAnswer = answer

		questions = append(questions, q)
		if len(questions) == count {
			break
		}
	}
	return questions
}

// matchOption resolves a correct-answer line to one of the options.
func matchOption(correct string, options []string) (string, bool) {
	for _, o := range options {
		if strings.EqualFold(o, correct) {
			return o, true
		}
	}
	if m := optionRe.FindStringSubmatch(correct + ":"); m != nil && m[2] == "" {
		n, _ := strconv.Atoi(m[1])
		if n <= len(options) {
			return options[n-1], true
		}
	}
	return "", false
}

package gemini

import (
	"fmt"
	"strings"

	"github.com/vvduth/studydoc"
	"google.golang.org/genai"
)

// MaxPromptChars is the number of characters of document text sent to the
// model. Longer text is cut off.
const MaxPromptChars = 15000

// Temperature for every request.
const temperature = 0.4

// System instructions per request kind.
const (
	studyInstruction = "You are a study assistant that writes learning material from a student's document. Follow the requested output format exactly and do not add commentary."
	tutorInstruction = "You are a patient tutor helping a student understand their own study document. Answer based only on the context provided. If the answer is not in the context, say so."
)

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(instruction string) *genai.GenerateContentConfig {
	temp := float32(temperature)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: instruction}},
		},
		Temperature: &temp,
	}
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// BuildFlashcardPrompt asks for count flashcards in Q:/A:/D: blocks.
func BuildFlashcardPrompt(text string, count int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate exactly %d flashcards from the following text.\n", count)
	sb.WriteString("Format each flashcard as:\n")
	sb.WriteString("Q: [Clear, specific, and concise question]\n")
	sb.WriteString("A: [Accurate and concise answer]\n")
	sb.WriteString("D: [easy, medium, or hard]\n\n")
	sb.WriteString("Separate each flashcard with a line containing only \"---\".\n\n")
	sb.WriteString("<text>\n")
	sb.WriteString(truncate(text, MaxPromptChars))
	sb.WriteString("\n</text>")
	return sb.String()
}

// BuildQuizPrompt asks for count multiple-choice questions in
// Q:/O1-O4:/C:/E:/D: blocks.
func BuildQuizPrompt(text string, count int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate exactly %d multiple-choice quiz questions from the following text.\n", count)
	sb.WriteString("Format each question as:\n")
	sb.WriteString("Q: [Clear, specific question]\n")
	for i := 1; i <= studydoc.QuizOptionCount; i++ {
		fmt.Fprintf(&sb, "O%d: [Option %d]\n", i, i)
	}
	sb.WriteString("C: [Correct option, written exactly as one of the options above]\n")
	sb.WriteString("E: [Brief explanation of the correct answer]\n")
	sb.WriteString("D: [easy, medium, or hard]\n\n")
	sb.WriteString("Separate each question with a line containing only \"---\".\n\n")
	sb.WriteString("<text>\n")
	sb.WriteString(truncate(text, MaxPromptChars))
	sb.WriteString("\n</text>")
	return sb.String()
}

// BuildSummaryPrompt asks for a structured summary.
func BuildSummaryPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("Summarize the following text concisely, highlighting the key points, main ideas, and important details.\n")
	sb.WriteString("Keep the summary clear, easy to understand, and structured.\n\n")
	sb.WriteString("<text>\n")
	sb.WriteString(truncate(text, MaxPromptChars))
	sb.WriteString("\n</text>")
	return sb.String()
}

// BuildChatPrompt builds the question prompt around ranked chunks.
func BuildChatPrompt(question string, chunks []studydoc.ScoredChunk) string {
	var sb strings.Builder
	sb.WriteString("Using the following context from a document, answer the question accurately.\n")
	sb.WriteString("If the answer is not found in the context, say so.\n\n")
	sb.WriteString("<context>\n")
	sb.WriteString(studydoc.FormatContext(chunks))
	sb.WriteString("\n</context>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}

// BuildExplainPrompt asks for an educational explanation of concept.
func BuildExplainPrompt(concept, contextText string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Explain the concept of %q in detail using the context below.\n", concept)
	sb.WriteString("Provide a clear, educational explanation suitable for someone learning the topic, with examples where appropriate.\n")
	sb.WriteString("If the concept is not covered in the context, say so clearly.\n\n")
	sb.WriteString("<context>\n")
	sb.WriteString(truncate(contextText, MaxPromptChars))
	sb.WriteString("\n</context>")
	return sb.String()
}

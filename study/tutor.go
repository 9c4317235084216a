package study

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vvduth/studydoc"
)

// Generation defaults.
const (
	DefaultFlashcardCount = 10
	DefaultQuestionCount  = 5
)

// Tutor answers questions about ready documents and generates study
// material from them.
type Tutor struct {
	Documents  studydoc.DocumentService
	Chunks     studydoc.ChunkService
	Chats      studydoc.ChatService
	Flashcards studydoc.FlashcardService
	Quizzes    studydoc.QuizService
	Generator  studydoc.Generator

	// MaxChunks is the number of chunks used as context. Zero means
	// studydoc.DefaultMaxChunks.
	MaxChunks int

	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// ChatResult is a generated reply with the chunks it was grounded on.
type ChatResult struct {
	Answer         string
	RelevantChunks []studydoc.ScoredChunk
}

func (t *Tutor) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// readyDocument loads a document and rejects it unless its chunks are stored.
func (t *Tutor) readyDocument(ctx context.Context, id string) (*studydoc.Document, error) {
	doc, err := t.Documents.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !doc.IsReady() {
		return nil, studydoc.Errorf(studydoc.ENOTFOUND, "document %q is not ready (status %s)", doc.Title, doc.Status)
	}
	return doc, nil
}

// touch records that a document was used. Failures are ignored.
func (t *Tutor) touch(ctx context.Context, id string) {
	now := t.now()
	_, _ = t.Documents.UpdateDocument(ctx, id, studydoc.DocumentUpdate{LastAccessedAt: &now})
}

// Search ranks a ready document's chunks against query without generating
// anything.
func (t *Tutor) Search(ctx context.Context, documentID, query string) ([]studydoc.ScoredChunk, error) {
	if strings.TrimSpace(query) == "" {
		return nil, studydoc.Errorf(studydoc.EINVALID, "query required")
	}
	if _, err := t.readyDocument(ctx, documentID); err != nil {
		return nil, err
	}
	return t.relevantChunks(ctx, documentID, query)
}

func (t *Tutor) relevantChunks(ctx context.Context, documentID, query string) ([]studydoc.ScoredChunk, error) {
	chunks, err := t.Chunks.FindChunks(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("find chunks: %w", err)
	}
	return studydoc.FindRelevantChunks(chunks, query, t.MaxChunks), nil
}

// Chat answers a question about a ready document from its most relevant
// chunks and appends the exchange to the document's chat history. The
// assistant message records the chunk indices it was answered from.
func (t *Tutor) Chat(ctx context.Context, documentID, question string) (*ChatResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, studydoc.Errorf(studydoc.EINVALID, "question required")
	}
	if _, err := t.readyDocument(ctx, documentID); err != nil {
		return nil, err
	}

	relevant, err := t.relevantChunks(ctx, documentID, question)
	if err != nil {
		return nil, err
	}

	answer, err := t.Generator.Answer(ctx, question, relevant)
	if err != nil {
		return nil, err
	}

	asked := t.now()
	if _, err := t.Chats.AppendMessages(ctx, documentID,
		studydoc.ChatMessage{Role: studydoc.RoleUser, Content: question, Timestamp: asked},
		studydoc.ChatMessage{
			Role:           studydoc.RoleAssistant,
			Content:        answer,
			Timestamp:      t.now(),
			RelevantChunks: studydoc.ChunkIndices(relevant),
		},
	); err != nil {
		return nil, fmt.Errorf("save chat history: %w", err)
	}

	t.touch(ctx, documentID)

	return &ChatResult{Answer: answer, RelevantChunks: relevant}, nil
}

// Explain explains a concept using the chunks of a ready document most
// relevant to it.
func (t *Tutor) Explain(ctx context.Context, documentID, concept string) (*ChatResult, error) {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return nil, studydoc.Errorf(studydoc.EINVALID, "concept required")
	}
	if _, err := t.readyDocument(ctx, documentID); err != nil {
		return nil, err
	}

	relevant, err := t.relevantChunks(ctx, documentID, concept)
	if err != nil {
		return nil, err
	}

	explanation, err := t.Generator.Explain(ctx, concept, studydoc.JoinContent(relevant))
	if err != nil {
		return nil, err
	}

	t.touch(ctx, documentID)

	return &ChatResult{Answer: explanation, RelevantChunks: relevant}, nil
}

// Summarize summarizes a ready document's extracted text.
func (t *Tutor) Summarize(ctx context.Context, documentID string) (string, error) {
	doc, err := t.readyDocument(ctx, documentID)
	if err != nil {
		return "", err
	}

	summary, err := t.Generator.Summarize(ctx, doc.ExtractedText)
	if err != nil {
		return "", err
	}

	t.touch(ctx, documentID)
	return summary, nil
}

// GenerateFlashcards generates and stores a flashcard set for a ready
// document. A count of zero or less means DefaultFlashcardCount.
func (t *Tutor) GenerateFlashcards(ctx context.Context, documentID string, count int) (*studydoc.FlashcardSet, error) {
	if count <= 0 {
		count = DefaultFlashcardCount
	}

	doc, err := t.readyDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	cards, err := t.Generator.GenerateFlashcards(ctx, doc.ExtractedText, count)
	if err != nil {
		return nil, err
	}

	set := &studydoc.FlashcardSet{DocumentID: doc.ID, Cards: cards}
	if err := t.Flashcards.CreateFlashcardSet(ctx, set); err != nil {
		return nil, fmt.Errorf("save flashcards: %w", err)
	}

	t.touch(ctx, documentID)
	return set, nil
}

// GenerateQuiz generates and stores a quiz for a ready document. An empty
// title defaults to "Quiz for <document title>"; a count of zero or less
// means DefaultQuestionCount.
func (t *Tutor) GenerateQuiz(ctx context.Context, documentID, title string, count int) (*studydoc.Quiz, error) {
	if count <= 0 {
		count = DefaultQuestionCount
	}

	doc, err := t.readyDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	questions, err := t.Generator.GenerateQuiz(ctx, doc.ExtractedText, count)
	if err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = "Quiz for " + doc.Title
	}

	quiz := &studydoc.Quiz{DocumentID: doc.ID, Title: title, Questions: questions}
	if err := t.Quizzes.CreateQuiz(ctx, quiz); err != nil {
		return nil, fmt.Errorf("save quiz: %w", err)
	}

	t.touch(ctx, documentID)
	return quiz, nil
}

package main

import (
	"context"
	"io"
	"time"

	"github.com/vvduth/studydoc"
	"github.com/vvduth/studydoc/sqlite"
	"github.com/vvduth/studydoc/study"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Documents  studydoc.DocumentService
	Chunks     studydoc.ChunkService
	Chats      studydoc.ChatService
	Flashcards studydoc.FlashcardService
	Quizzes    studydoc.QuizService
	Processor  *study.Processor
	Tutor      *study.Tutor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB           string        `name:"db" env:"STUDYDOC_DB" default:"~/.studydoc/studydoc.db" type:"path" help:"SQLite database path"`
	Storage      string        `env:"STUDYDOC_STORAGE" default:"~/.studydoc/uploads" type:"path" help:"Directory for imported files"`
	ChunkSize    int           `env:"STUDYDOC_CHUNK_SIZE" default:"500" help:"Chunk size in words"`
	ChunkOverlap int           `env:"STUDYDOC_CHUNK_OVERLAP" default:"50" help:"Words shared by consecutive chunks"`
	MaxChunks    int           `env:"STUDYDOC_MAX_CHUNKS" default:"3" help:"Chunks used as context for answers"`
	Model        string        `env:"STUDYDOC_MODEL" default:"gemini-2.5-flash-lite" help:"Gemini model"`
	Rate         float64       `env:"STUDYDOC_RATE" default:"1" help:"Gemini requests per second (0 for unlimited)"`
	FetchTimeout time.Duration `env:"STUDYDOC_FETCH_TIMEOUT" default:"30s" help:"Timeout for downloading URLs"`
	Debug        bool          `env:"STUDYDOC_DEBUG" help:"Log service calls to stderr"`

	Add        AddCmd        `cmd:"" help:"Import PDF, Markdown, HTML or text files and web pages"`
	List       ListCmd       `cmd:"" help:"List imported documents"`
	Show       ShowCmd       `cmd:"" help:"Show a document's details"`
	Delete     DeleteCmd     `cmd:"" help:"Delete a document and everything generated from it"`
	Reprocess  ReprocessCmd  `cmd:"" help:"Extract and chunk a document again"`
	Chunks     ChunksCmd     `cmd:"" help:"List a document's chunks"`
	Search     SearchCmd     `cmd:"" help:"Find the chunks most relevant to a query"`
	Ask        AskCmd        `cmd:"" help:"Ask a question about a document"`
	Explain    ExplainCmd    `cmd:"" help:"Explain a concept using a document"`
	History    HistoryCmd    `cmd:"" help:"Show a document's chat history"`
	Summary    SummaryCmd    `cmd:"" help:"Summarize a document"`
	Flashcards FlashcardsCmd `cmd:"" help:"Generate and review flashcards"`
	Quiz       QuizCmd       `cmd:"" help:"Generate and take quizzes"`
	Stats      StatsCmd      `cmd:"" help:"Show study progress"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Files       []string `arg:"" help:"Files or http(s) URLs to import"`
	Title       string   `short:"t" help:"Document title (single file only)"`
	Concurrency int      `short:"c" default:"4" help:"Files processed at once"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Status string `short:"s" help:"Only show documents with this status (processing, ready, failed)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Document ID"`
	Text bool   `help:"Print the extracted text"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Force bool   `help:"Confirm deletion"`
}

// ReprocessCmd is the "reprocess" subcommand.
type ReprocessCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// ChunksCmd is the "chunks" subcommand.
type ChunksCmd struct {
	ID   string `arg:"" help:"Document ID"`
	Full bool   `help:"Show full chunk content"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Query string `arg:"" help:"Search query"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	ID       string `arg:"" help:"Document ID"`
	Question string `arg:"" help:"Question about the document"`
}

// ExplainCmd is the "explain" subcommand.
type ExplainCmd struct {
	ID      string `arg:"" help:"Document ID"`
	Concept string `arg:"" help:"Concept to explain"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// SummaryCmd is the "summary" subcommand.
type SummaryCmd struct {
	ID string `arg:"" help:"Document ID"`
}

// FlashcardsCmd groups the flashcard subcommands.
type FlashcardsCmd struct {
	Generate FlashcardsGenerateCmd `cmd:"" help:"Generate a flashcard set from a document"`
	List     FlashcardsListCmd     `cmd:"" help:"List flashcard sets"`
	Show     FlashcardsShowCmd     `cmd:"" help:"Show the cards of a set"`
	Review   FlashcardsReviewCmd   `cmd:"" help:"Mark a card as reviewed"`
	Star     FlashcardsStarCmd     `cmd:"" help:"Star or unstar a card"`
	Delete   FlashcardsDeleteCmd   `cmd:"" help:"Delete a flashcard set"`
}

// FlashcardsGenerateCmd is the "flashcards generate" subcommand.
type FlashcardsGenerateCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Count int    `short:"n" default:"10" help:"Number of cards"`
}

// FlashcardsListCmd is the "flashcards list" subcommand.
type FlashcardsListCmd struct {
	Document string `short:"d" help:"Only show sets for this document ID"`
}

// FlashcardsShowCmd is the "flashcards show" subcommand.
type FlashcardsShowCmd struct {
	SetID   string `arg:"" help:"Flashcard set ID"`
	Starred bool   `help:"Only show starred cards"`
}

// FlashcardsReviewCmd is the "flashcards review" subcommand.
type FlashcardsReviewCmd struct {
	SetID string `arg:"" help:"Flashcard set ID"`
	Card  int    `arg:"" help:"Card number (1-based)"`
}

// FlashcardsStarCmd is the "flashcards star" subcommand.
type FlashcardsStarCmd struct {
	SetID string `arg:"" help:"Flashcard set ID"`
	Card  int    `arg:"" help:"Card number (1-based)"`
}

// FlashcardsDeleteCmd is the "flashcards delete" subcommand.
type FlashcardsDeleteCmd struct {
	SetID string `arg:"" help:"Flashcard set ID"`
}

// QuizCmd groups the quiz subcommands.
type QuizCmd struct {
	Generate QuizGenerateCmd `cmd:"" help:"Generate a quiz from a document"`
	List     QuizListCmd     `cmd:"" help:"List quizzes"`
	Show     QuizShowCmd     `cmd:"" help:"Show a quiz"`
	Submit   QuizSubmitCmd   `cmd:"" help:"Submit answers to a quiz"`
	Delete   QuizDeleteCmd   `cmd:"" help:"Delete a quiz"`
}

// QuizGenerateCmd is the "quiz generate" subcommand.
type QuizGenerateCmd struct {
	ID    string `arg:"" help:"Document ID"`
	Title string `short:"t" help:"Quiz title"`
	Count int    `short:"n" default:"5" help:"Number of questions"`
}

// QuizListCmd is the "quiz list" subcommand.
type QuizListCmd struct {
	Document string `short:"d" help:"Only show quizzes for this document ID"`
}

// QuizShowCmd is the "quiz show" subcommand.
type QuizShowCmd struct {
	QuizID  string `arg:"" help:"Quiz ID"`
	Answers bool   `help:"Reveal correct answers and explanations"`
}

// QuizSubmitCmd is the "quiz submit" subcommand.
type QuizSubmitCmd struct {
	QuizID  string   `arg:"" help:"Quiz ID"`
	Answers []string `arg:"" help:"Option letter per question in order (A-D, or - to skip)"`
}

// QuizDeleteCmd is the "quiz delete" subcommand.
type QuizDeleteCmd struct {
	QuizID string `arg:"" help:"Quiz ID"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// timeFormat is used for all timestamps printed by the CLI.
const timeFormat = time.DateTime

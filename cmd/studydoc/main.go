package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/vvduth/studydoc"
	"github.com/vvduth/studydoc/fs"
	"github.com/vvduth/studydoc/gemini"
	"github.com/vvduth/studydoc/goldmark"
	"github.com/vvduth/studydoc/htmltomarkdown"
	sdhttp "github.com/vvduth/studydoc/http"
	"github.com/vvduth/studydoc/pdf"
	"github.com/vvduth/studydoc/readability"
	sdslog "github.com/vvduth/studydoc/slog"
	"github.com/vvduth/studydoc/sqlite"
	"github.com/vvduth/studydoc/study"
	"github.com/vvduth/studydoc/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Overrides --db when set.
	DBPath string

	// Storage directory. Overrides --storage when set.
	StorageDir string

	// Getenv looks up environment variables.
	Getenv func(string) string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Generator and TokenCounter override the Gemini implementations.
	Generator    studydoc.Generator
	TokenCounter studydoc.TokenCounter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("studydoc"),
		kong.Description("Study your documents: ask questions, get explanations, drill flashcards and take quizzes"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'studydoc --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := kongCtx.Command()
	cmd := strings.Fields(command)[0]

	logger := slog.New(slog.DiscardHandler)
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	dbPath := cli.DB
	if m.DBPath != "" {
		dbPath = m.DBPath
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set STUDYDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	storageDir := cli.Storage
	if m.StorageDir != "" {
		storageDir = m.StorageDir
	}

	// Wire core services into dependencies
	deps.DB = m.DB
	deps.Documents = sqlite.NewDocumentService(m.DB)
	deps.Chunks = sqlite.NewChunkService(m.DB)
	deps.Chats = sqlite.NewChatService(m.DB)
	deps.Flashcards = sqlite.NewFlashcardService(m.DB)
	deps.Quizzes = sqlite.NewQuizService(m.DB)

	var extractor studydoc.Extractor = &study.Extractors{
		PDF:      pdf.NewExtractor(),
		Markdown: goldmark.NewExtractor(),
		HTML: &study.HTMLTextExtractor{
			Extractor: trafilatura.NewExtractor(),
			Fallback:  readability.NewExtractor(),
			Converter: htmltomarkdown.NewConverter(),
			Flatten:   goldmark.Plain,
		},
		Text: &study.TextExtractor{},
	}
	if cli.Debug {
		extractor = sdslog.NewLoggingExtractor(extractor, logger)
	}

	fetcher := sdhttp.NewFetcher(sdhttp.WithTimeout(cli.FetchTimeout))
	defer fetcher.Close()

	deps.Processor = &study.Processor{
		Documents: deps.Documents,
		Chunks:    deps.Chunks,
		Files:     fs.NewFileStore(storageDir),
		Extractor: extractor,
		Fetcher:   fetcher,
		Options: &studydoc.ChunkOptions{
			Size:    cli.ChunkSize,
			Overlap: cli.ChunkOverlap,
		},
	}

	deps.Tutor = &study.Tutor{
		Documents:  deps.Documents,
		Chunks:     deps.Chunks,
		Chats:      deps.Chats,
		Flashcards: deps.Flashcards,
		Quizzes:    deps.Quizzes,
		MaxChunks:  cli.MaxChunks,
	}

	// Token counts are informational; import works without them.
	if cmd == "add" || cmd == "reprocess" {
		if m.TokenCounter != nil {
			deps.Processor.TokenCounter = m.TokenCounter
		} else if tokenCounter, err := gemini.NewTokenCounter(cli.Model); err != nil {
			logger.Info("token counter unavailable", "model", cli.Model, "err", err)
		} else {
			deps.Processor.TokenCounter = tokenCounter
		}
	}

	if needsGenerator(command) {
		generator := m.Generator
		if generator == nil {
			apiKey := m.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}

			generator = gemini.NewGenerator(client.Models, cli.Model, cli.Rate)
		}
		if cli.Debug {
			generator = sdslog.NewLoggingGenerator(generator, logger)
		}
		deps.Tutor.Generator = generator
	}

	return kongCtx.Run(deps)
}

// needsGenerator reports whether a kong command path calls the model.
func needsGenerator(command string) bool {
	fields := strings.Fields(command)
	switch fields[0] {
	case "ask", "explain", "summary":
		return true
	case "flashcards", "quiz":
		return len(fields) > 1 && fields[1] == "generate"
	}
	return false
}

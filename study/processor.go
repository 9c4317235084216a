// Package study orchestrates document import and study sessions.
// It coordinates file storage, text extraction, chunking, retrieval and
// generation over the services defined in the root package.
package study

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vvduth/studydoc"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files ImportAll processes at once.
const DefaultConcurrency = 4

// Processor imports document files and turns them into stored chunks.
type Processor struct {
	Documents    studydoc.DocumentService
	Chunks       studydoc.ChunkService
	Files        studydoc.FileStore
	Extractor    studydoc.Extractor
	TokenCounter studydoc.TokenCounter

	// Fetcher downloads http and https sources. Nil disables URL import.
	Fetcher studydoc.Fetcher

	// Options configures chunking. Nil means DefaultChunkOptions; a non-nil
	// value is validated as given.
	Options     *studydoc.ChunkOptions
	Concurrency int
}

// File names a file to import.
type File struct {
	// Path is the location of the file on disk, or an http(s) URL.
	Path string

	// Title is the document title. When empty, the title found in the file
	// is used, falling back to the file name.
	Title string
}

// Result holds the outcome of importing or processing one file.
type Result struct {
	Path     string
	Document *studydoc.Document
	Chunks   int
	Tokens   int
	Err      error
}

// ProgressEvent reports progress during ImportAll.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting import progress.
type ProgressFunc func(event ProgressEvent)

func (p *Processor) chunkOptions() studydoc.ChunkOptions {
	if p.Options == nil {
		return studydoc.DefaultChunkOptions()
	}
	return *p.Options
}

// Import copies the file into storage, records a document for it, and
// processes it. The returned result carries the document even when
// processing failed, in which case the document is marked failed.
func (p *Processor) Import(ctx context.Context, file File) (*Result, error) {
	if err := p.chunkOptions().Validate(); err != nil {
		return nil, err
	}

	src, name, err := p.open(ctx, file.Path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	stored, err := p.Files.Save(ctx, name, src)
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", name, err)
	}

	if p.Extractor == nil || !supported(p.Extractor, stored.ContentType) {
		_ = p.Files.Remove(stored.Path)
		return nil, studydoc.Errorf(studydoc.EINVALID,
			"unsupported file type %q: only PDF, Markdown, HTML and text files are allowed", stored.ContentType)
	}

	title := strings.TrimSpace(file.Title)
	if title == "" {
		title = strings.TrimSuffix(name, filepath.Ext(name))
	}

	doc := &studydoc.Document{
		Title:       title,
		FileName:    name,
		FilePath:    stored.Path,
		ContentType: stored.ContentType,
		FileSize:    stored.Size,
		Status:      studydoc.StatusProcessing,
	}
	if err := p.Documents.CreateDocument(ctx, doc); err != nil {
		_ = p.Files.Remove(stored.Path)
		return nil, err
	}

	result, err := p.process(ctx, doc, strings.TrimSpace(file.Title) == "")
	result.Path = file.Path
	return result, err
}

// open returns the content to import and the file name to record for it.
func (p *Processor) open(ctx context.Context, source string) (io.ReadCloser, string, error) {
	if !IsURL(source) {
		f, err := os.Open(source)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, "", studydoc.Errorf(studydoc.ENOTFOUND, "file %s not found", source)
			}
			return nil, "", err
		}
		return f, filepath.Base(source), nil
	}

	if p.Fetcher == nil {
		return nil, "", studydoc.Errorf(studydoc.EINVALID, "cannot import %s: URL import is not configured", source)
	}
	body, err := p.Fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, "", err
	}
	return io.NopCloser(strings.NewReader(body)), URLFileName(source), nil
}

// IsURL reports whether source is an http or https URL.
func IsURL(source string) bool {
	u, err := url.Parse(source)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// URLFileName derives a file name for a downloaded document from the last
// path segment of its URL, or its host. Names without an extension are
// treated as web pages.
func URLFileName(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "page.html"
	}
	if u.Path == "" || strings.HasSuffix(u.Path, "/") {
		return u.Hostname() + ".html"
	}
	name := path.Base(u.Path)
	if path.Ext(name) == "" {
		name += ".html"
	}
	return name
}

// supported asks a routing extractor whether it handles contentType.
// Other extractors are assumed to handle the content types they are given.
func supported(e studydoc.Extractor, contentType string) bool {
	if s, ok := e.(interface{ Supports(string) bool }); ok {
		return s.Supports(contentType)
	}
	switch contentType {
	case studydoc.ContentTypePDF, studydoc.ContentTypeMarkdown,
		studydoc.ContentTypeHTML, studydoc.ContentTypeText:
		return true
	}
	return false
}

// Reprocess extracts and chunks an existing document again, replacing its
// chunks.
func (p *Processor) Reprocess(ctx context.Context, id string) (*Result, error) {
	if err := p.chunkOptions().Validate(); err != nil {
		return nil, err
	}

	status := studydoc.StatusProcessing
	empty := ""
	doc, err := p.Documents.UpdateDocument(ctx, id, studydoc.DocumentUpdate{
		Status: &status,
		Error:  &empty,
	})
	if err != nil {
		return nil, err
	}

	return p.process(ctx, doc, false)
}

// process extracts, chunks and stores a document's text. The document only
// becomes ready after its chunks are stored. Any failure marks it failed.
func (p *Processor) process(ctx context.Context, doc *studydoc.Document, useExtractedTitle bool) (*Result, error) {
	result := &Result{Document: doc}

	fail := func(err error) (*Result, error) {
		status := studydoc.StatusFailed
		msg := studydoc.ErrorMessage(err)
		if studydoc.ErrorCode(err) == studydoc.EINTERNAL {
			msg = err.Error()
		}
		// Record the failure even if ctx was cancelled.
		if updated, uerr := p.Documents.UpdateDocument(context.WithoutCancel(ctx), doc.ID, studydoc.DocumentUpdate{
			Status: &status,
			Error:  &msg,
		}); uerr == nil {
			result.Document = updated
		}
		result.Err = err
		return result, err
	}

	extraction, err := p.Extractor.Extract(ctx, doc.FilePath, doc.ContentType)
	if err != nil {
		return fail(fmt.Errorf("extract: %w", err))
	}

	if strings.TrimSpace(extraction.Text) == "" {
		return fail(studydoc.Errorf(studydoc.EINVALID, "no text could be extracted from %s", doc.FileName))
	}

	chunks, err := studydoc.ChunkText(extraction.Text, p.chunkOptions())
	if err != nil {
		return fail(err)
	}

	if err := p.Chunks.ReplaceChunks(ctx, doc.ID, chunks); err != nil {
		return fail(fmt.Errorf("store chunks: %w", err))
	}

	upd := studydoc.DocumentUpdate{
		ExtractedText: &extraction.Text,
	}
	if title := strings.TrimSpace(extraction.Title); useExtractedTitle && title != "" {
		upd.Title = &title
	}
	status := studydoc.StatusReady
	empty := ""
	upd.Status = &status
	upd.Error = &empty

	updated, err := p.Documents.UpdateDocument(ctx, doc.ID, upd)
	if err != nil {
		return fail(fmt.Errorf("update document: %w", err))
	}

	result.Document = updated
	result.Chunks = len(chunks)
	if p.TokenCounter != nil {
		if tokens, err := p.TokenCounter.CountTokens(ctx, extraction.Text); err == nil {
			result.Tokens = tokens
		}
	}

	return result, nil
}

// ImportAll imports files concurrently. Results are returned in input
// order; per-file failures are reported in Result.Err and do not stop the
// other imports. The progress callback, if provided, is never called
// concurrently.
func (p *Processor) ImportAll(ctx context.Context, files []File, progress ProgressFunc) []Result {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(files))
	total := len(files)

	var mu sync.Mutex
	completed := 0
	report := func(event ProgressEvent) {
		if progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if event.Type == ProgressCompleted || event.Type == ProgressFailed {
			completed++
		}
		event.Completed = completed
		event.Total = total
		progress(event)
	}

	report(ProgressEvent{Type: ProgressStarted})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, file := range files {
		g.Go(func() error {
			result, err := p.Import(gctx, file)
			if result == nil {
				result = &Result{}
			}
			result.Path = file.Path
			result.Err = err
			results[i] = *result

			if err != nil {
				report(ProgressEvent{Type: ProgressFailed, Path: file.Path, Error: err})
			} else {
				report(ProgressEvent{Type: ProgressCompleted, Path: file.Path})
			}
			return nil
		})
	}
	_ = g.Wait()

	report(ProgressEvent{Type: ProgressFinished})

	return results
}

// Delete removes a document with everything derived from it and deletes
// its stored file.
func (p *Processor) Delete(ctx context.Context, id string) error {
	doc, err := p.Documents.FindDocumentByID(ctx, id)
	if err != nil {
		return err
	}
	if err := p.Documents.DeleteDocument(ctx, id); err != nil {
		return err
	}
	return p.Files.Remove(doc.FilePath)
}

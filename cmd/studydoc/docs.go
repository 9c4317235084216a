package main

import (
	"fmt"

	"github.com/vvduth/studydoc"
	"github.com/vvduth/studydoc/study"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	if len(c.Files) > 1 && c.Title != "" {
		fmt.Fprintf(deps.Stderr, "error: --title can only be used with a single file\n")
		return studydoc.Errorf(studydoc.EINVALID, "--title can only be used with a single file")
	}

	files := make([]study.File, len(c.Files))
	for i, path := range c.Files {
		files[i] = study.File{Path: path, Title: c.Title}
	}

	if c.Concurrency > 0 {
		deps.Processor.Concurrency = c.Concurrency
	}

	progress := func(event study.ProgressEvent) {
		if event.Type == study.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Path, studydoc.ErrorMessage(event.Error))
		}
	}

	results := deps.Processor.ImportAll(deps.Ctx, files, progress)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		doc := r.Document
		fmt.Fprintf(deps.Stdout, "Added %q (%s): %d chunks, %s, %s\n",
			doc.Title, doc.ID, r.Chunks, FormatBytes(doc.FileSize), FormatTokens(r.Tokens))
		reportDuplicates(deps, doc)
	}

	if failed > 0 {
		return studydoc.Errorf(studydoc.EINVALID, "%d of %d files could not be imported", failed, len(results))
	}
	return nil
}

// reportDuplicates notes other documents with the same extracted text.
func reportDuplicates(deps *Dependencies, doc *studydoc.Document) {
	if doc.ContentHash == "" {
		return
	}
	same, err := deps.Documents.FindDocuments(deps.Ctx, studydoc.DocumentFilter{ContentHash: &doc.ContentHash})
	if err != nil {
		return
	}
	for _, other := range same {
		if other.ID != doc.ID {
			fmt.Fprintf(deps.Stdout, "  note: same content as %q (%s)\n", other.Title, other.ID)
		}
	}
}

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter studydoc.DocumentFilter
	if c.Status != "" {
		status := studydoc.DocumentStatus(c.Status)
		switch status {
		case studydoc.StatusProcessing, studydoc.StatusReady, studydoc.StatusFailed:
		default:
			fmt.Fprintf(deps.Stderr, "error: unknown status %q\n", c.Status)
			return studydoc.Errorf(studydoc.EINVALID, "unknown status %q", c.Status)
		}
		filter.Status = &status
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'studydoc add' to import one.")
		return nil
	}

	for _, d := range docs {
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %s  (%d chunks)\n", d.ID, d.Status, d.Title, d.ChunkCount)
	}

	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	w := deps.Stdout
	fmt.Fprintf(w, "ID:        %s\n", doc.ID)
	fmt.Fprintf(w, "Title:     %s\n", doc.Title)
	fmt.Fprintf(w, "File:      %s (%s, %s)\n", doc.FileName, doc.ContentType, FormatBytes(doc.FileSize))
	fmt.Fprintf(w, "Status:    %s\n", doc.Status)
	if doc.Error != "" {
		fmt.Fprintf(w, "Error:     %s\n", doc.Error)
	}
	fmt.Fprintf(w, "Chunks:    %d\n", doc.ChunkCount)
	fmt.Fprintf(w, "Words:     %d\n", studydoc.CountWords(doc.ExtractedText))
	fmt.Fprintf(w, "Uploaded:  %s\n", doc.UploadedAt.Local().Format(timeFormat))
	fmt.Fprintf(w, "Accessed:  %s\n", doc.LastAccessedAt.Local().Format(timeFormat))

	if c.Text && doc.ExtractedText != "" {
		fmt.Fprintf(w, "\n%s\n", doc.ExtractedText)
	}

	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return studydoc.Errorf(studydoc.EINVALID, "use --force to confirm deletion")
	}

	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s. Use 'studydoc list' to see available documents.\n", studydoc.ErrorMessage(err))
		return err
	}

	if err := deps.Processor.Delete(deps.Ctx, doc.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %q\n", doc.Title)
	return nil
}

// Run executes the reprocess command.
func (c *ReprocessCmd) Run(deps *Dependencies) error {
	result, err := deps.Processor.Reprocess(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Reprocessed %q: %d chunks, %s\n",
		result.Document.Title, result.Chunks, FormatTokens(result.Tokens))
	return nil
}

// Run executes the chunks command.
func (c *ChunksCmd) Run(deps *Dependencies) error {
	if _, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	chunks, err := deps.Chunks.FindChunks(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	if len(chunks) == 0 {
		fmt.Fprintln(deps.Stdout, "No chunks stored for this document.")
		return nil
	}

	for i, chunk := range chunks {
		words := studydoc.CountWords(chunk.Content)
		if c.Full {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprintf(deps.Stdout, "--- chunk %d (%d words) ---\n%s\n", chunk.ChunkIndex, words, chunk.Content)
			continue
		}
		fmt.Fprintf(deps.Stdout, "%4d  %4d words  %s\n", chunk.ChunkIndex, words, Preview(chunk.Content, 60))
	}

	return nil
}

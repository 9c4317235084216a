package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vvduth/studydoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Tutor.Search(deps.Ctx, c.ID, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching chunks.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "chunk %d  score %.2f  %s\n", r.Chunk.ChunkIndex, r.Score, Preview(r.Chunk.Content, 70))
	}
	return nil
}

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	result, err := deps.Tutor.Chat(deps.Ctx, c.ID, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Answer)
	printSources(deps, result.RelevantChunks)
	return nil
}

// Run executes the explain command.
func (c *ExplainCmd) Run(deps *Dependencies) error {
	result, err := deps.Tutor.Explain(deps.Ctx, c.ID, c.Concept)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Answer)
	printSources(deps, result.RelevantChunks)
	return nil
}

func printSources(deps *Dependencies, chunks []studydoc.ScoredChunk) {
	if len(chunks) == 0 {
		return
	}
	indices := studydoc.ChunkIndices(chunks)
	labels := make([]string, len(indices))
	for i, idx := range indices {
		labels[i] = strconv.Itoa(idx)
	}
	fmt.Fprintf(deps.Stdout, "\nSources: chunks %s\n", strings.Join(labels, ", "))
}

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	history, err := deps.Chats.FindChatHistory(deps.Ctx, c.ID)
	if studydoc.ErrorCode(err) == studydoc.ENOTFOUND {
		fmt.Fprintln(deps.Stdout, "No messages yet. Use 'studydoc ask' to start a conversation.")
		return nil
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	if len(history.Messages) == 0 {
		fmt.Fprintln(deps.Stdout, "No messages yet. Use 'studydoc ask' to start a conversation.")
		return nil
	}

	for i, msg := range history.Messages {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "[%s] %s:\n%s\n", msg.Timestamp.Local().Format(timeFormat), msg.Role, msg.Content)
	}
	return nil
}

// Run executes the summary command.
func (c *SummaryCmd) Run(deps *Dependencies) error {
	summary, err := deps.Tutor.Summarize(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", studydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}

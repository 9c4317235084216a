package studydoc

import "context"

// TokenCounter reports how many model tokens a document's text uses.
type TokenCounter interface {
	// CountTokens returns the token count of text. Empty text counts as 0.
	CountTokens(ctx context.Context, text string) (int, error)
}

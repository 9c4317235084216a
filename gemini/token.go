package gemini

import (
	"context"
	"fmt"

	"github.com/vvduth/studydoc"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

// TokenizerFallbackModel is used when the local tokenizer has no vocabulary
// for the configured generation model.
const TokenizerFallbackModel = "gemini-2.0-flash"

var _ studydoc.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens offline using the Gemini tokenizer.
type TokenCounter struct {
	tok   *tokenizer.LocalTokenizer
	model string
}

// NewTokenCounter creates a TokenCounter for model, falling back to
// TokenizerFallbackModel if model is not known to the local tokenizer.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err == nil {
		return &TokenCounter{tok: tok, model: model}, nil
	}
	if model == TokenizerFallbackModel {
		return nil, err
	}

	tok, fallbackErr := tokenizer.NewLocalTokenizer(TokenizerFallbackModel)
	if fallbackErr != nil {
		return nil, fmt.Errorf("tokenizer for %s: %w", model, err)
	}
	return &TokenCounter{tok: tok, model: TokenizerFallbackModel}, nil
}

// Model returns the model whose vocabulary is used for counting.
func (tc *TokenCounter) Model() string {
	return tc.model
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, "user")}, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}

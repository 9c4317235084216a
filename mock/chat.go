package mock

import (
	"context"

	"github.com/vvduth/studydoc"
)

var _ studydoc.ChatService = (*ChatService)(nil)

// ChatService is a mock implementation of studydoc.ChatService.
type ChatService struct {
	FindChatHistoryFn func(ctx context.Context, documentID string) (*studydoc.ChatHistory, error)
	AppendMessagesFn  func(ctx context.Context, documentID string, msgs ...studydoc.ChatMessage) (*studydoc.ChatHistory, error)
}

func (s *ChatService) FindChatHistory(ctx context.Context, documentID string) (*studydoc.ChatHistory, error) {
	return s.FindChatHistoryFn(ctx, documentID)
}

func (s *ChatService) AppendMessages(ctx context.Context, documentID string, msgs ...studydoc.ChatMessage) (*studydoc.ChatHistory, error) {
	return s.AppendMessagesFn(ctx, documentID, msgs...)
}

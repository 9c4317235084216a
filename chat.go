package studydoc

import (
	"context"
	"time"
)

// Role identifies the author of a chat message.
type Role string

// Role values.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatMessage is one turn of a conversation about a document.
type ChatMessage struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	// RelevantChunks lists the chunk indices used to answer.
	// Empty for user messages.
	RelevantChunks []int `json:"relevantChunks"`
}

// Validate returns an error if the message contains invalid fields.
func (m *ChatMessage) Validate() error {
	switch m.Role {
	case RoleUser, RoleAssistant, RoleSystem:
	default:
		return Errorf(EINVALID, "invalid chat role %q", m.Role)
	}
	if m.Content == "" {
		return Errorf(EINVALID, "chat message content required")
	}
	return nil
}

// ChatHistory holds the conversation about one document.
type ChatHistory struct {
	ID         string        `json:"id"`
	DocumentID string        `json:"documentId"`
	Messages   []ChatMessage `json:"messages"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// ChatService represents a service for managing chat histories.
type ChatService interface {
	// FindChatHistory retrieves the chat history of a document.
	// Returns ENOTFOUND if the document has no history yet.
	FindChatHistory(ctx context.Context, documentID string) (*ChatHistory, error)

	// AppendMessages appends messages to a document's chat history,
	// creating the history if needed.
	AppendMessages(ctx context.Context, documentID string, msgs ...ChatMessage) (*ChatHistory, error)
}

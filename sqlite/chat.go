package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/vvduth/studydoc"
)

var _ studydoc.ChatService = (*ChatService)(nil)

// ChatService implements studydoc.ChatService using SQLite.
// Each document has at most one history; messages are a JSON column.
type ChatService struct {
	db *DB
}

// NewChatService creates a new ChatService.
func NewChatService(db *DB) *ChatService {
	return &ChatService{db: db}
}

// FindChatHistory retrieves the chat history of a document.
func (s *ChatService) FindChatHistory(ctx context.Context, documentID string) (*studydoc.ChatHistory, error) {
	var h studydoc.ChatHistory
	var messages, createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, document_id, messages, created_at, updated_at
		FROM chat_histories
		WHERE document_id = ?
	`, documentID).Scan(&h.ID, &h.DocumentID, &messages, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, studydoc.Errorf(studydoc.ENOTFOUND, "chat history not found")
	}
	if err != nil {
		return nil, err
	}

	if err := decodeJSON(messages, "messages", &h.Messages); err != nil {
		return nil, err
	}
	if h.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if h.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &h, nil
}

// AppendMessages appends messages to a document's history, creating the
// history on first use. Messages without a timestamp are stamped now.
func (s *ChatService) AppendMessages(ctx context.Context, documentID string, msgs ...studydoc.ChatMessage) (*studydoc.ChatHistory, error) {
	t := now()
	for i := range msgs {
		if err := msgs[i].Validate(); err != nil {
			return nil, err
		}
		if msgs[i].Timestamp.IsZero() {
			msgs[i].Timestamp = t
		}
	}

	h, err := s.FindChatHistory(ctx, documentID)
	switch {
	case studydoc.ErrorCode(err) == studydoc.ENOTFOUND:
		h = &studydoc.ChatHistory{
			ID:         uuid.New().String(),
			DocumentID: documentID,
			CreatedAt:  t,
		}
	case err != nil:
		return nil, err
	}

	h.Messages = append(h.Messages, msgs...)
	h.UpdatedAt = t

	messages, err := encodeJSON(h.Messages, "messages")
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO chat_histories (id, document_id, messages, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (document_id) DO UPDATE SET messages = excluded.messages, updated_at = excluded.updated_at
	`, h.ID, h.DocumentID, messages, h.CreatedAt.Format(time.RFC3339), h.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return h, nil
}

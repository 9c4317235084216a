package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvduth/studydoc"
	"github.com/vvduth/studydoc/sqlite"
)

func TestChatService_AppendMessages(t *testing.T) {
	t.Parallel()

	t.Run("creates history on first append", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		doc := createTestDocument(t, db)
		svc := sqlite.NewChatService(db)
		ctx := context.Background()

		h, err := svc.AppendMessages(ctx, doc.ID,
			studydoc.ChatMessage{Role: studydoc.RoleUser, Content: "What is ATP?"},
			studydoc.ChatMessage{Role: studydoc.RoleAssistant, Content: "Energy currency.", RelevantChunks: []int{2, 0}},
		)
		require.NoError(t, err)
		assert.NotEmpty(t, h.ID)
		require.Len(t, h.Messages, 2)
		assert.False(t, h.Messages[0].Timestamp.IsZero())

		found, err := svc.FindChatHistory(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, h.ID, found.ID)
		require.Len(t, found.Messages, 2)
		assert.Equal(t, studydoc.RoleUser, found.Messages[0].Role)
		assert.Equal(t, "Energy currency.", found.Messages[1].Content)
		assert.Equal(t, []int{2, 0}, found.Messages[1].RelevantChunks)
	})

	t.Run("appends to existing history", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		doc := createTestDocument(t, db)
		svc := sqlite.NewChatService(db)
		ctx := context.Background()

		first, err := svc.AppendMessages(ctx, doc.ID, studydoc.ChatMessage{Role: studydoc.RoleUser, Content: "one"})
		require.NoError(t, err)
		second, err := svc.AppendMessages(ctx, doc.ID, studydoc.ChatMessage{Role: studydoc.RoleUser, Content: "two"})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		require.Len(t, second.Messages, 2)
		assert.Equal(t, "one", second.Messages[0].Content)
		assert.Equal(t, "two", second.Messages[1].Content)
	})

	t.Run("rejects invalid message", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		doc := createTestDocument(t, db)

		_, err := sqlite.NewChatService(db).AppendMessages(context.Background(), doc.ID, studydoc.ChatMessage{Role: studydoc.RoleUser})
		assert.Equal(t, studydoc.EINVALID, studydoc.ErrorCode(err))
	})
}

func TestChatService_FindChatHistory(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND without history", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		doc := createTestDocument(t, db)

		_, err := sqlite.NewChatService(db).FindChatHistory(context.Background(), doc.ID)
		assert.Equal(t, studydoc.ENOTFOUND, studydoc.ErrorCode(err))
	})
}

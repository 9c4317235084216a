package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/vvduth/studydoc"
)

var _ studydoc.ChunkService = (*ChunkService)(nil)

// ChunkService implements studydoc.ChunkService using SQLite.
type ChunkService struct {
	db *DB
}

// NewChunkService creates a new ChunkService.
func NewChunkService(db *DB) *ChunkService {
	return &ChunkService{db: db}
}

// ReplaceChunks stores chunks for a document in one transaction, replacing
// any previously stored set. Chunk IDs and document IDs are assigned here;
// content and indices are stored as given.
func (s *ChunkService) ReplaceChunks(ctx context.Context, documentID string, chunks []*studydoc.Chunk) error {
	var exists int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents WHERE id = ?", documentID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return studydoc.Errorf(studydoc.ENOTFOUND, "document not found")
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM chunks WHERE document_id = ?", documentID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, document_id, chunk_index, page_number, content)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range chunks {
		c.ID = uuid.New().String()
		c.DocumentID = documentID
		if _, err := stmt.ExecContext(ctx, c.ID, c.DocumentID, c.ChunkIndex, c.PageNumber, c.Content); err != nil {
			return fmt.Errorf("failed to insert chunk %d: %w", c.ChunkIndex, err)
		}
	}

	return tx.Commit()
}

// FindChunks returns a document's chunks ordered by chunk index.
func (s *ChunkService) FindChunks(ctx context.Context, documentID string) ([]*studydoc.Chunk, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, chunk_index, page_number, content
		FROM chunks
		WHERE document_id = ?
		ORDER BY chunk_index ASC
	`, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chunks []*studydoc.Chunk
	for rows.Next() {
		var c studydoc.Chunk
		if err := rows.Scan(&c.ID, &c.DocumentID, &c.ChunkIndex, &c.PageNumber, &c.Content); err != nil {
			return nil, err
		}
		chunks = append(chunks, &c)
	}

	return chunks, rows.Err()
}

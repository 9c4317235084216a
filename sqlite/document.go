package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/vvduth/studydoc"
)

// Compile-time interface verification.
var _ studydoc.DocumentService = (*DocumentService)(nil)

// DocumentService implements studydoc.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// HashContent computes the xxHash of content as a hex string.
// Documents with identical extracted text share a hash.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

const documentColumns = `d.id, d.title, d.file_name, d.file_path, d.content_type, d.file_size,
	d.extracted_text, d.content_hash, d.status, d.error, d.uploaded_at, d.last_accessed_at,
	(SELECT COUNT(*) FROM chunks c WHERE c.document_id = d.id)`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*studydoc.Document, error) {
	var doc studydoc.Document
	var uploadedAt, lastAccessedAt string

	if err := row.Scan(&doc.ID, &doc.Title, &doc.FileName, &doc.FilePath, &doc.ContentType,
		&doc.FileSize, &doc.ExtractedText, &doc.ContentHash, &doc.Status, &doc.Error,
		&uploadedAt, &lastAccessedAt, &doc.ChunkCount); err != nil {
		return nil, err
	}

	var err error
	if doc.UploadedAt, err = parseRFC3339(uploadedAt, "uploaded_at"); err != nil {
		return nil, err
	}
	if doc.LastAccessedAt, err = parseRFC3339(lastAccessedAt, "last_accessed_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}

// CreateDocument creates a new document. Status defaults to processing.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *studydoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.UploadedAt = now()
	doc.LastAccessedAt = doc.UploadedAt
	if doc.Status == "" {
		doc.Status = studydoc.StatusProcessing
	}
	if doc.ExtractedText != "" {
		doc.ContentHash = HashContent(doc.ExtractedText)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, file_name, file_path, content_type, file_size,
			extracted_text, content_hash, status, error, uploaded_at, last_accessed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Title, doc.FileName, doc.FilePath, doc.ContentType, doc.FileSize,
		doc.ExtractedText, doc.ContentHash, string(doc.Status), doc.Error,
		doc.UploadedAt.Format(time.RFC3339), doc.LastAccessedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*studydoc.Document, error) {
	doc, err := scanDocument(s.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM documents d WHERE d.id = ?", id))
	if err == sql.ErrNoRows {
		return nil, studydoc.Errorf(studydoc.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter, newest first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter studydoc.DocumentFilter) ([]*studydoc.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents d WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND d.id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Title != nil {
		query.WriteString(" AND d.title = ?")
		args = append(args, *filter.Title)
	}
	if filter.Status != nil {
		query.WriteString(" AND d.status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND d.content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY d.uploaded_at DESC, d.rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*studydoc.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// UpdateDocument updates an existing document. Updating the extracted text
// recomputes the content hash.
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd studydoc.DocumentUpdate) (*studydoc.Document, error) {
	doc, err := s.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		doc.Title = *upd.Title
	}
	if upd.ExtractedText != nil {
		doc.ExtractedText = *upd.ExtractedText
		doc.ContentHash = HashContent(doc.ExtractedText)
	}
	if upd.Status != nil {
		doc.Status = *upd.Status
	}
	if upd.Error != nil {
		doc.Error = *upd.Error
	}
	if upd.LastAccessedAt != nil {
		doc.LastAccessedAt = upd.LastAccessedAt.UTC().Truncate(time.Second)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET title = ?, extracted_text = ?, content_hash = ?, status = ?, error = ?, last_accessed_at = ?
		WHERE id = ?
	`, doc.Title, doc.ExtractedText, doc.ContentHash, string(doc.Status), doc.Error,
		doc.LastAccessedAt.Format(time.RFC3339), id)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument permanently removes a document. Chunks, chat history,
// flashcard sets and quizzes are removed by cascade.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return studydoc.Errorf(studydoc.ENOTFOUND, "document not found")
	}

	return nil
}

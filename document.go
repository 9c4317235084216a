package studydoc

import (
	"context"
	"time"
)

// DocumentStatus is the processing state of an imported document.
type DocumentStatus string

// DocumentStatus values.
const (
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

// Document represents an imported study document.
type Document struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	FileName    string `json:"fileName"`
	FilePath    string `json:"filePath"`
	ContentType string `json:"contentType"`
	FileSize    int64  `json:"fileSize"`

	// ExtractedText is the raw text handed to the chunker and generator.
	ExtractedText string `json:"extractedText,omitempty"`
	ContentHash   string `json:"contentHash"`

	Status DocumentStatus `json:"status"`

	// Error holds the failure reason when Status is StatusFailed.
	Error string `json:"error,omitempty"`

	// ChunkCount is computed by storage on read.
	ChunkCount int `json:"chunkCount"`

	UploadedAt     time.Time `json:"uploadedAt"`
	LastAccessedAt time.Time `json:"lastAccessedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.FileName == "" {
		return Errorf(EINVALID, "document file name required")
	}
	if d.FilePath == "" {
		return Errorf(EINVALID, "document file path required")
	}
	switch d.Status {
	case "", StatusProcessing, StatusReady, StatusFailed:
	default:
		return Errorf(EINVALID, "invalid document status %q", d.Status)
	}
	return nil
}

// IsReady reports whether the document's chunks are stored and usable.
func (d *Document) IsReady() bool {
	return d.Status == StatusReady
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter, newest first.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// UpdateDocument updates an existing document.
	// Returns ENOTFOUND if document does not exist.
	UpdateDocument(ctx context.Context, id string, upd DocumentUpdate) (*Document, error)

	// DeleteDocument permanently removes a document with its chunks, chat
	// history, flashcards and quizzes.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID          *string         `json:"id"`
	Title       *string         `json:"title"`
	Status      *DocumentStatus `json:"status"`
	ContentHash *string         `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// DocumentUpdate represents fields that can be updated on a document.
type DocumentUpdate struct {
	Title          *string         `json:"title"`
	ExtractedText  *string         `json:"extractedText"`
	Status         *DocumentStatus `json:"status"`
	Error          *string         `json:"error"`
	LastAccessedAt *time.Time      `json:"lastAccessedAt"`
}

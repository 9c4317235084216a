package mock

import (
	"context"

	"github.com/vvduth/studydoc"
)

var _ studydoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of studydoc.DocumentService.
type DocumentService struct {
	CreateDocumentFn   func(ctx context.Context, doc *studydoc.Document) error
	FindDocumentByIDFn func(ctx context.Context, id string) (*studydoc.Document, error)
	FindDocumentsFn    func(ctx context.Context, filter studydoc.DocumentFilter) ([]*studydoc.Document, error)
	UpdateDocumentFn   func(ctx context.Context, id string, upd studydoc.DocumentUpdate) (*studydoc.Document, error)
	DeleteDocumentFn   func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *studydoc.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*studydoc.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter studydoc.DocumentFilter) ([]*studydoc.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd studydoc.DocumentUpdate) (*studydoc.Document, error) {
	return s.UpdateDocumentFn(ctx, id, upd)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

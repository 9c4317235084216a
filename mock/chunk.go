package mock

import (
	"context"

	"github.com/vvduth/studydoc"
)

var _ studydoc.ChunkService = (*ChunkService)(nil)

// ChunkService is a mock implementation of studydoc.ChunkService.
type ChunkService struct {
	ReplaceChunksFn func(ctx context.Context, documentID string, chunks []*studydoc.Chunk) error
	FindChunksFn    func(ctx context.Context, documentID string) ([]*studydoc.Chunk, error)
}

func (s *ChunkService) ReplaceChunks(ctx context.Context, documentID string, chunks []*studydoc.Chunk) error {
	return s.ReplaceChunksFn(ctx, documentID, chunks)
}

func (s *ChunkService) FindChunks(ctx context.Context, documentID string) ([]*studydoc.Chunk, error) {
	return s.FindChunksFn(ctx, documentID)
}

package mock

import (
	"context"
	"io"

	"github.com/vvduth/studydoc"
)

var _ studydoc.FileStore = (*FileStore)(nil)

// FileStore is a mock implementation of studydoc.FileStore.
type FileStore struct {
	SaveFn   func(ctx context.Context, name string, r io.Reader) (*studydoc.StoredFile, error)
	RemoveFn func(path string) error
}

func (s *FileStore) Save(ctx context.Context, name string, r io.Reader) (*studydoc.StoredFile, error) {
	return s.SaveFn(ctx, name, r)
}

func (s *FileStore) Remove(path string) error {
	return s.RemoveFn(path)
}

package studydoc

import (
	"context"
	"io"
)

// StoredFile describes an uploaded file copied into storage.
type StoredFile struct {
	Path        string
	Size        int64
	ContentType string
}

// FileStore keeps the original files of imported documents.
type FileStore interface {
	// Save copies r into storage under a unique name derived from name.
	Save(ctx context.Context, name string, r io.Reader) (*StoredFile, error)

	// Remove deletes a stored file. Removing a missing file is not an error.
	Remove(path string) error
}

// Package fs provides file-based storage for uploaded documents.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/vvduth/studydoc"
)

// Ensure FileStore implements studydoc.FileStore at compile time.
var _ studydoc.FileStore = (*FileStore)(nil)

// FileStore implements studydoc.FileStore on a local directory.
// Files are written to a temporary file first and renamed into place,
// so a stored path never refers to a partially written file.
type FileStore struct {
	dir      string
	detector *Detector
}

// NewFileStore creates a new FileStore rooted at dir.
// The directory is created on the first Save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir:      dir,
		detector: NewDetector(),
	}
}

// Dir returns the storage directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save copies r into the storage directory as <uuid><ext>, where ext is the
// lowercased extension of name.
func (s *FileStore) Save(ctx context.Context, name string, r io.Reader) (*studydoc.StoredFile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, studydoc.Errorf(studydoc.EINVALID, "file name required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	size, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("write %s: %w", name, err)
	}

	ext := strings.ToLower(filepath.Ext(name))
	finalPath := filepath.Join(s.dir, uuid.New().String()+ext)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("store %s: %w", name, err)
	}

	contentType, err := s.detector.Detect(finalPath)
	if err != nil {
		_ = os.Remove(finalPath)
		return nil, err
	}

	return &studydoc.StoredFile{
		Path:        finalPath,
		Size:        size,
		ContentType: contentType,
	}, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *FileStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

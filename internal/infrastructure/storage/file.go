package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sozialtools/fristenwaechter/pkg/errors"
)

// FileStore persists the blob as a single file on the local filesystem.
// Writes go through a temp file followed by rename so a crash mid-write never
// leaves a truncated blob behind.
type FileStore struct {
	path string
}

// NewFileStore constructs a FileStore rooted at path.  Parent directories are
// created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load implements BlobStore.
func (s *FileStore) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, errors.Wrap(err, errors.ErrCodeStorage, "failed to read blob file")
	}
	return data, nil
}

// Save implements BlobStore.
func (s *FileStore) Save(_ context.Context, data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, errors.ErrCodeStorage, "failed to create blob directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStorage, "failed to create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrCodeStorage, "failed to write blob")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrCodeStorage, "failed to close temp file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrCodeStorage, "failed to replace blob file")
	}
	return nil
}

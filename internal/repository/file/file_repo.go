// Package file keeps blobs as files on the local disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"alcyxob/workout-tracker/internal/repository"
)

type fileBlobRepository struct {
	path string
}

// NewFileBlobRepository stores blobs next to path. The key is part of the file
// name unless path already points at a file (has an extension), in which case
// path is used as is.
func NewFileBlobRepository(path string) repository.BlobRepository {
	return &fileBlobRepository{path: path}
}

func (r *fileBlobRepository) fileFor(key string) string {
	if filepath.Ext(r.path) != "" {
		return r.path
	}
	return filepath.Join(r.path, sanitize(key)+".json")
}

func (r *fileBlobRepository) Load(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(r.fileFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("read blob %q: %w", key, err)
	}
	return data, nil
}

// Save writes to a temp file in the same directory and renames it over the
// target, so readers never observe a partial blob.
func (r *fileBlobRepository) Save(_ context.Context, key string, data []byte) error {
	target := r.fileFor(key)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".blob-*")
	if err != nil {
		return fmt.Errorf("create temp blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp blob: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrSaveFailed, err)
	}
	return nil
}

func (r *fileBlobRepository) Close(context.Context) error { return nil }

func sanitize(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, key)
}

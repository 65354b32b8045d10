package repository

import (
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound   = RepositoryError("not found")
	ErrSaveFailed = RepositoryError("save failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// BlobRepository persists opaque blobs under a fixed key. Writes replace the
// whole blob; Load returns ErrNotFound when nothing was saved under key yet.
type BlobRepository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Close(ctx context.Context) error
}

// Package memory keeps blobs in process memory.
package memory

import (
	"context"
	"sync"

	"alcyxob/workout-tracker/internal/repository"
)

var _ repository.BlobRepository = (*BlobRepository)(nil)

type BlobRepository struct {
	mu    sync.Mutex
	blobs map[string][]byte

	// SaveErr, when set, is returned by every Save.
	SaveErr error
}

func NewBlobRepository() *BlobRepository {
	return &BlobRepository{blobs: make(map[string][]byte)}
}

func (r *BlobRepository) Load(_ context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.blobs[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

func (r *BlobRepository) Save(_ context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (r *BlobRepository) Close(context.Context) error { return nil }

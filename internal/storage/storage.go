package storage

import (
	"context"
	"fmt"

	"alcyxob/workout-tracker/internal/config"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/repository/file"
	"alcyxob/workout-tracker/internal/repository/memory"
	"alcyxob/workout-tracker/internal/repository/mongo"
)

// Supported blob backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendMongo  = "mongo"
	BackendS3     = "s3"
)

// Open returns the blob repository selected by cfg.Storage.Backend.
func Open(ctx context.Context, cfg config.Config) (repository.BlobRepository, error) {
	switch cfg.Storage.Backend {
	case BackendFile, "":
		return file.NewFileBlobRepository(cfg.Storage.Path), nil
	case BackendMemory:
		return memory.NewBlobRepository(), nil
	case BackendMongo:
		client, db, err := mongo.Open(ctx, cfg.Database.URI, cfg.Database.Name)
		if err != nil {
			return nil, fmt.Errorf("connect to MongoDB: %w", err)
		}
		return mongo.NewMongoBlobRepository(client, db), nil
	case BackendS3:
		return NewS3BlobRepository(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

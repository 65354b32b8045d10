// internal/repository/mongo/blob_repo.go
package mongo

import (
	"alcyxob/workout-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const blobCollectionName = "blobs"

// blobDocument is one persisted blob. The key is the document _id, so a save
// is a single-document upsert and never a partial write.
type blobDocument struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoBlobRepository implements repository.BlobRepository
type mongoBlobRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoBlobRepository creates a blob repository backed by the "blobs" collection.
// The client is disconnected on Close.
func NewMongoBlobRepository(client *mongo.Client, db *mongo.Database) repository.BlobRepository {
	return &mongoBlobRepository{
		client:     client,
		collection: db.Collection(blobCollectionName),
	}
}

// Load fetches the blob stored under key.
func (r *mongoBlobRepository) Load(ctx context.Context, key string) ([]byte, error) {
	var doc blobDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.Data, nil
}

// Save replaces the blob stored under key, creating it if needed.
func (r *mongoBlobRepository) Save(ctx context.Context, key string, data []byte) error {
	doc := blobDocument{Key: key, Data: data, UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrSaveFailed, err)
	}
	if result.MatchedCount == 0 && result.UpsertedCount == 0 {
		return repository.ErrSaveFailed
	}
	logrus.Debugf("mongo blob %q saved (%d bytes)", key, len(data))
	return nil
}

func (r *mongoBlobRepository) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Disconnect(ctx)
}

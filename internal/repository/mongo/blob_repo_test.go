package mongo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alcyxob/workout-tracker/internal/repository"
	blobmongo "alcyxob/workout-tracker/internal/repository/mongo"
)

func TestBlobRepository_CloseWithoutClient(t *testing.T) {
	// Connect does not dial, so no server is needed for a database handle.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)
	db := client.Database("workout_tracker_unit")
	require.NoError(t, client.Disconnect(context.Background()))

	repo := blobmongo.NewMongoBlobRepository(nil, db)
	assert.NoError(t, repo.Close(context.Background()))
}

func TestBlobRepository_CloseDisconnects(t *testing.T) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	require.NoError(t, err)

	repo := blobmongo.NewMongoBlobRepository(client, client.Database("workout_tracker_unit"))
	require.NoError(t, repo.Close(context.Background()))
	// A second disconnect fails once the repository has closed the client.
	assert.Error(t, client.Disconnect(context.Background()))
}

func TestBlobRepository_RoundTrip(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	dbName := "workout_tracker_test_" + uuid.NewString()[:8]
	client, db, err := blobmongo.Open(ctx, uri, dbName)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Drop(context.Background()) })

	repo := blobmongo.NewMongoBlobRepository(client, db)
	defer func() { assert.NoError(t, repo.Close(context.Background())) }()

	_, err = repo.Load(ctx, "workoutTrackerData")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Save(ctx, "workoutTrackerData", []byte(`[{"id":1}]`)))
	require.NoError(t, repo.Save(ctx, "workoutTrackerData", []byte(`[{"id":2}]`)))

	data, err := repo.Load(ctx, "workoutTrackerData")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":2}]`, string(data))
}

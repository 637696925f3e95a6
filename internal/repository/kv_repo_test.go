package repository

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
)

// Requires a reachable MongoDB, e.g. CHATFUTURE_TEST_MONGO_URI=mongodb://localhost:27017
func newTestKVRepo(t *testing.T) KVRepo {
	t.Helper()
	uri := os.Getenv("CHATFUTURE_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("CHATFUTURE_TEST_MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)
	require.NoError(t, client.Ping(ctx, nil))

	db := client.Database("chatfuture_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		db.Drop(context.Background())
		client.Disconnect(context.Background())
	})
	return NewKVRepo(db)
}

func TestKVRepo_UpsertAndDelete(t *testing.T) {
	ctx := context.Background()
	r := newTestKVRepo(t)

	v, err := r.Load(ctx, "questionnaire_session_u1")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, r.Save(ctx, "questionnaire_session_u1", []byte(`{"v":1}`)))
	require.NoError(t, r.Save(ctx, "questionnaire_session_u1", []byte(`{"v":2}`)))

	v, err = r.Load(ctx, "questionnaire_session_u1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":2}`), v)

	require.NoError(t, r.Delete(ctx, "questionnaire_session_u1"))
	v, err = r.Load(ctx, "questionnaire_session_u1")
	require.NoError(t, err)
	assert.Nil(t, v)
}

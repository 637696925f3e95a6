package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// KVRepo stores scoped user data as MongoDB documents keyed by the scoped key
type KVRepo interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type kvRepo struct {
	coll *mongo.Collection
}

// NewKVRepo creates a MongoDB store on the user_data collection
func NewKVRepo(db *mongo.Database) KVRepo {
	return &kvRepo{
		coll: db.Collection("user_data"),
	}
}

func (r *kvRepo) Save(ctx context.Context, key string, value []byte) error {
	doc := kvDocument{Key: key, Value: value, UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts)
	return err
}

func (r *kvRepo) Load(ctx context.Context, key string) ([]byte, error) {
	var doc kvDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Value == nil {
		return []byte{}, nil
	}
	return doc.Value, nil
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

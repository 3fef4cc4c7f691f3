package store

import (
	"context"
	"errors"
	"time"

	"github.com/ebashirli/elvinbashirlisportfolio/internal/shortlink"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultMongoCollection is the collection short links are stored in.
const DefaultMongoCollection = "shortlinks"

type mongoDocument struct {
	Code        string    `bson:"code"`
	OriginalURL string    `bson:"original_url"`
	CreatedAt   time.Time `bson:"created_at"`
}

// MongoStore is a MongoDB implementation of shortlink.Repository.
type MongoStore struct {
	collection *mongo.Collection
}

// NewMongoStore creates a store over the given collection.
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

// EnsureIndexes creates the unique index on code that backs ErrCodeConflict.
func (m *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := m.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("code_unique"),
	})

	return err
}

func (m *MongoStore) Save(ctx context.Context, link *shortlink.ShortLink) error {
	_, err := m.collection.InsertOne(ctx, mongoDocument{
		Code:        string(link.Code),
		OriginalURL: link.OriginalURL,
		CreatedAt:   link.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return shortlink.ErrCodeConflict
		}

		return err
	}

	return nil
}

func (m *MongoStore) GetByCode(ctx context.Context, code shortlink.Code) (*shortlink.ShortLink, error) {
	var doc mongoDocument

	err := m.collection.FindOne(ctx, bson.M{"code": string(code)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, shortlink.ErrNotFound
		}

		return nil, err
	}

	return &shortlink.ShortLink{
		Code:        shortlink.Code(doc.Code),
		OriginalURL: doc.OriginalURL,
		CreatedAt:   doc.CreatedAt,
	}, nil
}

// Ping checks MongoDB connectivity.
func (m *MongoStore) Ping(ctx context.Context) error {
	return m.collection.Database().Client().Ping(ctx, nil)
}

var _ shortlink.Repository = (*MongoStore)(nil)

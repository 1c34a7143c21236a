// Package mongo provides a MongoDB implementation of driven.StoreRegistry.
//
// Each department maps to its own database named after the department, and
// each collection to a MongoDB collection of the same name. Documents are
// written with ReplaceOne and upsert, keyed by _id.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
	"github.com/custodia-labs/lakeseed/internal/core/ports/driven"
	"github.com/custodia-labs/lakeseed/internal/logger"
)

// Ensure Store implements the registry interface.
var _ driven.StoreRegistry = (*Store)(nil)

const connectTimeout = 5 * time.Second

// Store is a MongoDB-backed store registry.
type Store struct {
	client *mongo.Client
}

// NewStore connects to the server at uri and verifies it with a ping.
func NewStore(ctx context.Context, uri string) (*Store, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Debug("Connected to MongoDB")
	return &Store{client: client}, nil
}

// Store returns the department's database.
func (s *Store) Store(dept domain.Department) (driven.DocumentStore, error) {
	if !dept.IsValid() {
		return nil, domain.ErrUnknownDepartment
	}
	return &documentStore{db: s.client.Database(DatabaseName(dept))}, nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// DatabaseName returns the database holding a department's collections.
func DatabaseName(dept domain.Department) string {
	return string(dept)
}

type documentStore struct {
	db *mongo.Database
}

func (s *documentStore) Upsert(ctx context.Context, collection domain.Collection, key string, fields domain.Fields) error {
	body := make(bson.M, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body[domain.IDField] = key

	_, err := s.db.Collection(string(collection)).ReplaceOne(
		ctx,
		bson.M{domain.IDField: key},
		body,
		options.Replace().SetUpsert(true),
	)
	return err
}

func (s *documentStore) Drop(ctx context.Context, collection domain.Collection) error {
	return s.db.Collection(string(collection)).Drop(ctx)
}

func (s *documentStore) Count(ctx context.Context, collection domain.Collection) (int, error) {
	n, err := s.db.Collection(string(collection)).CountDocuments(ctx, bson.D{})
	return int(n), err
}

func (s *documentStore) Get(ctx context.Context, collection domain.Collection, key string) (domain.Fields, error) {
	var doc bson.M
	err := s.db.Collection(string(collection)).FindOne(ctx, bson.M{domain.IDField: key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return normalise(doc).(domain.Fields), nil
}

func (s *documentStore) Keys(ctx context.Context, collection domain.Collection) ([]string, error) {
	ids, err := s.db.Collection(string(collection)).Distinct(ctx, domain.IDField, bson.D{})
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		if k, ok := id.(string); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// normalise converts decoded BSON containers into plain maps and slices.
func normalise(v any) any {
	switch val := v.(type) {
	case bson.M:
		out := make(domain.Fields, len(val))
		for k, item := range val {
			out[k] = normalise(item)
		}
		return out
	case bson.D:
		out := make(domain.Fields, len(val))
		for _, e := range val {
			out[e.Key] = normalise(e.Value)
		}
		return out
	case bson.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalise(item)
		}
		return out
	default:
		return val
	}
}

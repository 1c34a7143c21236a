// Package redis provides a Redis implementation of driven.StoreRegistry.
//
// Each department collection is one hash at {prefix}:{department}:{collection}.
// Hash fields are document keys; values are the JSON-encoded documents.
// Dropping a collection deletes its hash.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
	"github.com/custodia-labs/lakeseed/internal/core/ports/driven"
	"github.com/custodia-labs/lakeseed/internal/logger"
)

// Ensure Store implements the registry interface.
var _ driven.StoreRegistry = (*Store)(nil)

// Store is a Redis-backed store registry.
type Store struct {
	rdb    *goredis.Client
	prefix string
}

// NewStore connects to addr and verifies the connection with a ping.
func NewStore(ctx context.Context, addr, prefix string) (*Store, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.Debug("Connected to Redis at %s", addr)
	return &Store{rdb: rdb, prefix: prefix}, nil
}

// Store returns the department's hashes.
func (s *Store) Store(dept domain.Department) (driven.DocumentStore, error) {
	if !dept.IsValid() {
		return nil, domain.ErrUnknownDepartment
	}
	return &documentStore{rdb: s.rdb, prefix: s.prefix, department: string(dept)}, nil
}

// Close closes the client.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// HashKey returns the Redis key holding one department collection.
func HashKey(prefix string, dept domain.Department, collection domain.Collection) string {
	return prefix + ":" + string(dept) + ":" + string(collection)
}

type documentStore struct {
	rdb        *goredis.Client
	prefix     string
	department string
}

func (s *documentStore) hash(collection domain.Collection) string {
	return HashKey(s.prefix, domain.Department(s.department), collection)
}

func (s *documentStore) Upsert(ctx context.Context, collection domain.Collection, key string, fields domain.Fields) error {
	body := make(domain.Fields, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body[domain.IDField] = key

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding document %s: %w", key, err)
	}
	return s.rdb.HSet(ctx, s.hash(collection), key, data).Err()
}

func (s *documentStore) Drop(ctx context.Context, collection domain.Collection) error {
	return s.rdb.Del(ctx, s.hash(collection)).Err()
}

func (s *documentStore) Count(ctx context.Context, collection domain.Collection) (int, error) {
	n, err := s.rdb.HLen(ctx, s.hash(collection)).Result()
	return int(n), err
}

func (s *documentStore) Get(ctx context.Context, collection domain.Collection, key string) (domain.Fields, error) {
	data, err := s.rdb.HGet(ctx, s.hash(collection), key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var fields domain.Fields
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decoding document %s: %w", key, err)
	}
	return fields, nil
}

func (s *documentStore) Keys(ctx context.Context, collection domain.Collection) ([]string, error) {
	keys, err := s.rdb.HKeys(ctx, s.hash(collection)).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

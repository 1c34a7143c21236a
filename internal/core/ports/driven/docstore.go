package driven

import (
	"context"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
)

// DocumentStore is one department's logical store: a keyed document
// collection per domain.Collection.
type DocumentStore interface {
	// Upsert creates or fully replaces the document stored under key.
	// The stored body is fields plus the identity field set to key; nothing
	// from a previous version survives. Calling it repeatedly with the same
	// arguments leaves the store unchanged.
	Upsert(ctx context.Context, collection domain.Collection, key string, fields domain.Fields) error

	// Drop removes every document in the collection.
	Drop(ctx context.Context, collection domain.Collection) error

	// Count returns the number of documents in the collection.
	Count(ctx context.Context, collection domain.Collection) (int, error)

	// Get retrieves a document by key.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, collection domain.Collection, key string) (domain.Fields, error)

	// Keys returns every key in the collection, sorted.
	Keys(ctx context.Context, collection domain.Collection) ([]string, error)
}

// StoreRegistry owns one isolated DocumentStore per department.
// Operations on one department's store never touch another's.
type StoreRegistry interface {
	// Store returns the logical store for a department.
	// Returns domain.ErrUnknownDepartment for departments outside the closed set.
	Store(dept domain.Department) (DocumentStore, error)

	// Close releases the underlying connection.
	Close() error
}

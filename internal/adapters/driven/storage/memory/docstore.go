package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
	"github.com/custodia-labs/lakeseed/internal/core/ports/driven"
)

// Ensure the memory types implement the interfaces.
var (
	_ driven.StoreRegistry = (*Registry)(nil)
	_ driven.DocumentStore = (*DocumentStore)(nil)
)

// Registry is an in-memory implementation of driven.StoreRegistry.
// Nothing survives the process.
type Registry struct {
	mu     sync.Mutex
	stores map[domain.Department]*DocumentStore
	closed bool
}

// NewRegistry creates an empty in-memory registry.
func NewRegistry() *Registry {
	return &Registry{
		stores: make(map[domain.Department]*DocumentStore),
	}
}

// Store returns the department's store, creating it on first use.
func (r *Registry) Store(dept domain.Department) (driven.DocumentStore, error) {
	if !dept.IsValid() {
		return nil, domain.ErrUnknownDepartment
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, domain.ErrStoreClosed
	}
	store, ok := r.stores[dept]
	if !ok {
		store = NewDocumentStore()
		r.stores[dept] = store
	}
	return store, nil
}

// Close marks the registry closed. Stored documents are discarded.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.stores = nil
	return nil
}

// DocumentStore is an in-memory implementation of driven.DocumentStore for
// one department.
type DocumentStore struct {
	mu          sync.RWMutex
	collections map[domain.Collection]map[string]domain.Fields
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		collections: make(map[domain.Collection]map[string]domain.Fields),
	}
}

// Upsert stores a copy of fields under key, replacing any previous body.
func (s *DocumentStore) Upsert(_ context.Context, collection domain.Collection, key string, fields domain.Fields) error {
	body := copyFields(fields)
	body[domain.IDField] = key

	s.mu.Lock()
	defer s.mu.Unlock()
	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]domain.Fields)
		s.collections[collection] = docs
	}
	docs[key] = body
	return nil
}

// Drop removes every document in the collection.
func (s *DocumentStore) Drop(_ context.Context, collection domain.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, collection)
	return nil
}

// Count returns the number of documents in the collection.
func (s *DocumentStore) Count(_ context.Context, collection domain.Collection) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection]), nil
}

// Get retrieves a copy of the document stored under key.
func (s *DocumentStore) Get(_ context.Context, collection domain.Collection, key string) (domain.Fields, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.collections[collection][key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyFields(doc), nil
}

// Keys returns every key in the collection, sorted.
func (s *DocumentStore) Keys(_ context.Context, collection domain.Collection) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.collections[collection]))
	for k := range s.collections[collection] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// copyFields deep-copies nested maps and slices so stored documents never
// alias caller data. Scalar values keep their dynamic type.
func copyFields(fields domain.Fields) domain.Fields {
	out := make(domain.Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyFields(val)
	case []domain.Fields:
		out := make([]domain.Fields, len(val))
		for i, f := range val {
			out[i] = copyFields(f)
		}
		return out
	case map[string]domain.Fields:
		out := make(map[string]domain.Fields, len(val))
		for k, f := range val {
			out[k] = copyFields(f)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	case []string:
		return append([]string{}, val...)
	default:
		return val
	}
}

package domain

import "fmt"

// Collection names one of the three document groupings inside a
// department store.
type Collection string

// Available collections.
const (
	// CollectionCentralMemory holds department-level documents that are not
	// time indexed.
	CollectionCentralMemory Collection = "central_memory"

	// CollectionDailySnapshots holds documents indexed by date, loop and episode.
	CollectionDailySnapshots Collection = "daily_snapshots"

	// CollectionEpisodesMeta holds documents indexed by loop and episode.
	CollectionEpisodesMeta Collection = "episodes_meta"
)

// Collections returns all collections in reporting order.
func Collections() []Collection {
	return []Collection{
		CollectionCentralMemory,
		CollectionDailySnapshots,
		CollectionEpisodesMeta,
	}
}

// ParseCollection converts a collection name into a Collection.
func ParseCollection(name string) (Collection, error) {
	c := Collection(name)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return c, nil
}

// IsValid returns true if the collection is recognised.
func (c Collection) IsValid() bool {
	switch c {
	case CollectionCentralMemory, CollectionDailySnapshots, CollectionEpisodesMeta:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Collection) String() string {
	return string(c)
}

// Arity is the number of path segments every key in the collection is built
// from. The last segment is always the artifact name.
func (c Collection) Arity() int {
	switch c {
	case CollectionCentralMemory:
		return 1
	case CollectionDailySnapshots:
		return 4
	case CollectionEpisodesMeta:
		return 3
	default:
		return 0
	}
}

// Key encodes path as a document key for this collection.
func (c Collection) Key(path Path) (string, error) {
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCollection, string(c))
	}
	if len(path) != c.Arity() {
		return "", fmt.Errorf("%w: %s expects %d segments, got %d", ErrPathArity, c, c.Arity(), len(path))
	}
	return EncodeKey(path...)
}

// Package sqlite provides a SQLite-based implementation of driven.StoreRegistry.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. All five department stores live in a single documents table keyed by
// (department, collection, key); a department's DocumentStore only ever reads
// and writes rows carrying its own department value.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.lakeseed/data/lakeseed.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite

// Package domain defines the core business entities for lakeseed.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Department: One of the five research desks, each with its own store
//   - Collection: central_memory, daily_snapshots or episodes_meta
//   - Path / EncodeKey: The hierarchical document key encoding
//   - Document: A key, its shared context fields and a generator payload
//   - SeedSettings: Run, storage and market configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

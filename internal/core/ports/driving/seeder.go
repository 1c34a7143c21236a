package driving

import (
	"context"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
)

// Seeder populates the department stores with synthetic documents.
type Seeder interface {
	// Seed resets and regenerates every department, then reports counts.
	Seed(ctx context.Context) (*domain.SeedReport, error)

	// SeedDepartment resets and regenerates a single department.
	SeedDepartment(ctx context.Context, dept domain.Department) error

	// Clear empties every department store.
	Clear(ctx context.Context) error

	// Counts reports current document counts without writing.
	Counts(ctx context.Context) (*domain.SeedReport, error)

	// Get retrieves one stored document.
	Get(ctx context.Context, dept domain.Department, collection domain.Collection, key string) (domain.Fields, error)
}

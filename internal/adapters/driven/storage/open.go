// Package storage selects and opens the configured document store backend.
package storage

import (
	"context"
	"fmt"

	"github.com/custodia-labs/lakeseed/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lakeseed/internal/adapters/driven/storage/mongo"
	"github.com/custodia-labs/lakeseed/internal/adapters/driven/storage/redis"
	"github.com/custodia-labs/lakeseed/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/lakeseed/internal/core/domain"
	"github.com/custodia-labs/lakeseed/internal/core/ports/driven"
	"github.com/custodia-labs/lakeseed/internal/logger"
)

// Open returns the store registry for the configured backend.
func Open(ctx context.Context, cfg domain.StorageSettings) (driven.StoreRegistry, error) {
	logger.Debug("Opening %s backend", cfg.Backend)

	switch cfg.Backend {
	case domain.BackendMemory:
		return memory.NewRegistry(), nil
	case domain.BackendSQLite:
		return opened(sqlite.NewStore(cfg.SQLiteDir))
	case domain.BackendMongo:
		return opened(mongo.NewStore(ctx, cfg.MongoURI))
	case domain.BackendRedis:
		return opened(redis.NewStore(ctx, cfg.RedisAddr, cfg.RedisPrefix))
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", domain.ErrInvalidSettings, cfg.Backend)
	}
}

// opened keeps a failed constructor's typed nil out of the interface.
func opened[S driven.StoreRegistry](store S, err error) (driven.StoreRegistry, error) {
	if err != nil {
		return nil, err
	}
	return store, nil
}

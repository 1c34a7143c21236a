package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// Backend identifies the document store implementation.
type Backend string

// Available storage backends.
const (
	// BackendMemory keeps documents in process memory; nothing survives exit.
	BackendMemory Backend = "memory"

	// BackendSQLite stores documents in a local SQLite database.
	BackendSQLite Backend = "sqlite"

	// BackendMongo stores each department in its own MongoDB database.
	BackendMongo Backend = "mongo"

	// BackendRedis stores each department collection as a Redis hash.
	BackendRedis Backend = "redis"
)

// IsValid returns true if the backend is recognised.
func (b Backend) IsValid() bool {
	switch b {
	case BackendMemory, BackendSQLite, BackendMongo, BackendRedis:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b Backend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b Backend) Description() string {
	switch b {
	case BackendMemory:
		return "Memory (ephemeral)"
	case BackendSQLite:
		return "SQLite (local file)"
	case BackendMongo:
		return "MongoDB (database per department)"
	case BackendRedis:
		return "Redis (hash per collection)"
	default:
		return unknownDescription
	}
}

// StorageSettings holds document store configuration.
type StorageSettings struct {
	// Backend is the store implementation.
	Backend Backend

	// SQLiteDir is the directory holding the SQLite database.
	// Empty means ~/.lakeseed/data.
	SQLiteDir string

	// MongoURI is the MongoDB connection string.
	MongoURI string

	// RedisAddr is the Redis host:port.
	RedisAddr string

	// RedisPrefix namespaces all Redis keys.
	RedisPrefix string
}

// RunSettings holds the seeding run parameters.
type RunSettings struct {
	// Episode is the date/loop/episode the run seeds.
	Episode Episode

	// RandomSeed seeds every randomised generator field.
	RandomSeed uint64

	// WallClock stamps documents with the current time instead of AsOf.
	WallClock bool

	// Parallel seeds departments concurrently.
	Parallel bool
}

// AsOf is the deterministic timestamp used when WallClock is off: the last
// second of the snapshot date, in UTC.
func (r RunSettings) AsOf() time.Time {
	d := r.Episode.Date
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, time.UTC)
}

// MarketSettings holds market snapshot configuration.
type MarketSettings struct {
	// Mode selects dummy or adapter snapshots.
	Mode MarketMode

	// DataFile is the adapter input JSON. Required in adapter mode.
	DataFile string
}

// SeedSettings holds all configuration for a seeding run.
type SeedSettings struct {
	Storage StorageSettings
	Run     RunSettings
	Market  MarketSettings
}

// DefaultSeedSettings returns the settings used when nothing is configured.
func DefaultSeedSettings() SeedSettings {
	return SeedSettings{
		Storage: StorageSettings{
			Backend:     BackendSQLite,
			MongoURI:    "mongodb://localhost:27017/",
			RedisAddr:   "localhost:6379",
			RedisPrefix: "lakeseed",
		},
		Run: RunSettings{
			Episode: Episode{
				Date:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
				Loop:    12,
				Episode: 5,
			},
			RandomSeed: 42,
		},
		Market: MarketSettings{
			Mode: MarketModeDummy,
		},
	}
}

// Validate checks the settings are usable for a run.
func (s SeedSettings) Validate() error {
	if !s.Storage.Backend.IsValid() {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSettings, s.Storage.Backend)
	}
	if !s.Market.Mode.IsValid() {
		return fmt.Errorf("%w: unknown market mode %q", ErrInvalidSettings, s.Market.Mode)
	}
	if s.Market.Mode == MarketModeAdapter && s.Market.DataFile == "" {
		return fmt.Errorf("%w: market mode %q requires a data file", ErrInvalidSettings, s.Market.Mode)
	}
	if s.Run.Episode.Date.IsZero() {
		return fmt.Errorf("%w: snapshot date not set", ErrInvalidSettings)
	}
	if s.Run.Episode.Loop < 0 || s.Run.Episode.Episode < 0 {
		return fmt.Errorf("%w: loop and episode must not be negative", ErrInvalidSettings)
	}
	return nil
}

package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/lakeseed/internal/core/domain"
	"github.com/custodia-labs/lakeseed/internal/core/ports/driven"
	"github.com/custodia-labs/lakeseed/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyBackend     = "storage.backend"
	KeySQLiteDir   = "storage.sqlite_dir"
	KeyMongoURI    = "storage.mongo_uri"
	KeyRedisAddr   = "storage.redis_addr"
	KeyRedisPrefix = "storage.redis_prefix"
	KeyDate        = "seed.date"
	KeyLoop        = "seed.loop"
	KeyEpisode     = "seed.episode"
	KeyRandomSeed  = "seed.random_seed"
	KeyWallClock   = "seed.wall_clock"
	KeyParallel    = "seed.parallel"
	KeyMarketMode  = "market.mode"
	KeyMarketData  = "market.data_file"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindBool
	kindDate
	kindBackend
	kindMarketMode
)

var settingKinds = map[string]valueKind{
	KeyBackend:     kindBackend,
	KeySQLiteDir:   kindString,
	KeyMongoURI:    kindString,
	KeyRedisAddr:   kindString,
	KeyRedisPrefix: kindString,
	KeyDate:        kindDate,
	KeyLoop:        kindInt,
	KeyEpisode:     kindInt,
	KeyRandomSeed:  kindInt,
	KeyWallClock:   kindBool,
	KeyParallel:    kindBool,
	KeyMarketMode:  kindMarketMode,
	KeyMarketData:  kindString,
}

// SettingsService maps configuration keys onto seeding settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings. Missing values fall back to the defaults;
// a value of the wrong type or format is reported as ErrInvalidSettings.
func (s *SettingsService) Get() (*domain.SeedSettings, error) {
	defaults := domain.DefaultSeedSettings()
	r := &settingsReader{store: s.configStore}

	settings := &domain.SeedSettings{
		Storage: domain.StorageSettings{
			Backend:     domain.Backend(r.enum(KeyBackend, string(defaults.Storage.Backend), isBackend)),
			SQLiteDir:   r.str(KeySQLiteDir, ""), // empty means the home default
			MongoURI:    r.str(KeyMongoURI, defaults.Storage.MongoURI),
			RedisAddr:   r.str(KeyRedisAddr, defaults.Storage.RedisAddr),
			RedisPrefix: r.str(KeyRedisPrefix, defaults.Storage.RedisPrefix),
		},
		Run: domain.RunSettings{
			Episode: domain.Episode{
				Date:    r.date(KeyDate, defaults.Run.Episode.Date),
				Loop:    r.integer(KeyLoop, defaults.Run.Episode.Loop),
				Episode: r.integer(KeyEpisode, defaults.Run.Episode.Episode),
			},
			RandomSeed: uint64(r.integer(KeyRandomSeed, int(defaults.Run.RandomSeed))),
			WallClock:  r.boolean(KeyWallClock, defaults.Run.WallClock),
			Parallel:   r.boolean(KeyParallel, defaults.Run.Parallel),
		},
		Market: domain.MarketSettings{
			Mode:     domain.MarketMode(r.enum(KeyMarketMode, string(defaults.Market.Mode), isMarketMode)),
			DataFile: r.str(KeyMarketData, ""),
		},
	}

	if err := errors.Join(r.errs...); err != nil {
		return nil, err
	}
	return settings, nil
}

// Set validates and stores a single configuration key.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: unknown key %q", domain.ErrInvalidSettings, key)
	}

	var stored any
	switch kind {
	case kindString:
		stored = value
	case kindInt:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidSettings, key)
		}
		stored = n
	case kindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidSettings, key)
		}
		stored = b
	case kindDate:
		if _, err := time.Parse(domain.DateLayout, value); err != nil {
			return fmt.Errorf("%w: %s must be YYYY-MM-DD", domain.ErrInvalidSettings, key)
		}
		stored = value
	case kindBackend:
		if !domain.Backend(value).IsValid() {
			return fmt.Errorf("%w: unknown backend %q", domain.ErrInvalidSettings, value)
		}
		stored = value
	case kindMarketMode:
		if !domain.MarketMode(value).IsValid() {
			return fmt.Errorf("%w: unknown market mode %q", domain.ErrInvalidSettings, value)
		}
		stored = value
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the recognised configuration keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.SeedSettings {
	return domain.DefaultSeedSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// settingsReader reads typed values from a ConfigStore, collecting one
// error per malformed key.
type settingsReader struct {
	store driven.ConfigStore
	errs  []error
}

// localDate is satisfied by TOML local date and date-time values.
type localDate interface {
	AsTime(zone *time.Location) time.Time
}

func (r *settingsReader) invalid(key string, raw any, want string) {
	r.errs = append(r.errs, fmt.Errorf("%w: %s = %v: want %s", domain.ErrInvalidSettings, key, raw, want))
}

func (r *settingsReader) str(key, defaultVal string) string {
	raw, ok := r.store.Get(key)
	if !ok {
		return defaultVal
	}
	val, ok := raw.(string)
	if !ok {
		r.invalid(key, raw, "a string")
		return defaultVal
	}
	if val == "" {
		return defaultVal
	}
	return val
}

func (r *settingsReader) enum(key, defaultVal string, valid func(string) bool) string {
	val := r.str(key, defaultVal)
	if !valid(val) {
		r.invalid(key, val, "one of the documented values")
		return defaultVal
	}
	return val
}

func (r *settingsReader) integer(key string, defaultVal int) int {
	raw, ok := r.store.Get(key)
	if !ok {
		return defaultVal
	}

	// TOML integers decode as int64; values set at runtime are int.
	var n int
	switch v := raw.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	default:
		r.invalid(key, raw, "an integer")
		return defaultVal
	}
	if n < 0 {
		r.invalid(key, raw, "a non-negative integer")
		return defaultVal
	}
	return n
}

func (r *settingsReader) boolean(key string, defaultVal bool) bool {
	raw, ok := r.store.Get(key)
	if !ok {
		return defaultVal
	}
	b, ok := raw.(bool)
	if !ok {
		r.invalid(key, raw, "true or false")
		return defaultVal
	}
	return b
}

func (r *settingsReader) date(key string, defaultVal time.Time) time.Time {
	raw, ok := r.store.Get(key)
	if !ok {
		return defaultVal
	}

	switch v := raw.(type) {
	case string:
		d, err := time.Parse(domain.DateLayout, v)
		if err != nil {
			r.invalid(key, raw, "a YYYY-MM-DD date")
			return defaultVal
		}
		return d
	case time.Time:
		return dateOnly(v)
	case localDate:
		return dateOnly(v.AsTime(time.UTC))
	default:
		r.invalid(key, raw, "a YYYY-MM-DD date")
		return defaultVal
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isBackend(v string) bool {
	return domain.Backend(v).IsValid()
}

func isMarketMode(v string) bool {
	return domain.MarketMode(v).IsValid()
}

package driving

import "github.com/custodia-labs/lakeseed/internal/core/domain"

// SettingsService manages seeding configuration.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults.
	Get() (*domain.SeedSettings, error)

	// Set stores a single configuration key.
	// Returns domain.ErrInvalidSettings for unknown keys or bad values.
	Set(key, value string) error

	// Keys returns the recognised configuration keys, sorted.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.SeedSettings

	// Path returns the configuration file path.
	Path() string
}

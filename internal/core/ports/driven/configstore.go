package driven

// ConfigStore provides access to flat, dot-addressed configuration values
// ("seed.loop"). Values keep the type their source produced; interpreting
// them is left to the caller.
type ConfigStore interface {
	// Get returns the value stored under key and whether it exists.
	Get(key string) (any, bool)

	// Set stores a value. File-backed stores write through before returning.
	Set(key string, value any) error

	// Path describes where values live, for display.
	Path() string
}

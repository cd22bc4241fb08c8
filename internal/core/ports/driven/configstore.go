package driven

// ConfigStore provides read and write access to previewd configuration.
// Implementations own persistence and type coercion; callers read the
// preview keys (enable_previews, enabledPreviewProviders, ...) through
// the typed getters.
type ConfigStore interface {
	// Get returns the raw value for key and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns the string value for key, or "" when the key is
	// unset or holds another type.
	GetString(key string) string

	// GetInt returns the integer value for key, or 0 when the key is
	// unset or holds another type.
	GetInt(key string) int

	// GetStringSlice returns the string slice value for key, or nil when
	// the key is unset or holds another type.
	GetStringSlice(key string) []string

	// Set stores a value under key and persists it immediately.
	Set(key string, value any) error

	// Load re-reads configuration from the backing store, replacing the
	// in-memory state.
	Load() error
}

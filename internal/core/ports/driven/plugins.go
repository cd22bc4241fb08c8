package driven

// PluginProvider is one provider contribution from another module:
// a mime type pattern and the identifier to resolve the provider by.
type PluginProvider struct {
	Pattern    string
	ProviderID string
}

// PluginContext exposes provider registrations contributed by other modules.
type PluginContext interface {
	// PreviewProviders returns all contributed registrations.
	PreviewProviders() []PluginProvider
}

// PluginContextSource yields the plugin context once the host application
// has finished bootstrapping. Callers may run before that point; a false
// return means "not yet initialised" and is treated as no additional
// providers, never as an error.
type PluginContextSource func() (PluginContext, bool)

// ProviderResolver looks up a plugin-contributed provider by identifier.
type ProviderResolver interface {
	// Resolve returns the provider registered under id.
	// Returns an error wrapping domain.ErrNotFound if the id is unknown.
	Resolve(id string) (Provider, error)
}

// Package plugins provides the in-process plugin registration context and
// the provider resolver for plugin-contributed providers.
//
// Host applications embed a Context, register {pattern, providerID}
// contributions during bootstrap, and hand the context to the preview
// service. Until the context exists, the service treats the source as
// "no additional providers".
package plugins

import (
	"fmt"
	"sync"

	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
)

// Ensure Context implements the interface.
var _ driven.PluginContext = (*Context)(nil)

// Context collects provider contributions from other modules.
type Context struct {
	mu      sync.RWMutex
	entries []driven.PluginProvider
}

// NewContext creates an empty registration context.
func NewContext() *Context {
	return &Context{}
}

// RegisterProvider contributes a provider registration.
func (c *Context) RegisterProvider(pattern, providerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, driven.PluginProvider{
		Pattern:    pattern,
		ProviderID: providerID,
	})
}

// PreviewProviders returns all contributed registrations.
func (c *Context) PreviewProviders() []driven.PluginProvider {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]driven.PluginProvider, len(c.entries))
	copy(out, c.entries)
	return out
}

// Ensure Resolver implements the interface.
var _ driven.ProviderResolver = (*Resolver)(nil)

// Resolver is a name-keyed registry of plugin provider constructors,
// implementing the dependency lookup the external registrar defers to.
type Resolver struct {
	mu       sync.RWMutex
	builders map[string]func() (driven.Provider, error)
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{
		builders: make(map[string]func() (driven.Provider, error)),
	}
}

// Register adds a provider constructor under an identifier.
func (r *Resolver) Register(id string, build func() (driven.Provider, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builders[id] = build
}

// Resolve constructs the provider registered under id.
func (r *Resolver) Resolve(id string) (driven.Provider, error) {
	r.mu.RLock()
	build, ok := r.builders[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: provider %q", domain.ErrNotFound, id)
	}
	return build()
}

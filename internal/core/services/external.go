package services

import (
	"fmt"

	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
	"github.com/previewlab/previewd/internal/logger"
)

// externalRegistrar pulls provider registrations contributed through the
// plugin context and inserts them into the pattern table. It runs on every
// resolution request but registers each (pattern, providerID) contribution
// only once, so repeated queries never duplicate entries.
type externalRegistrar struct {
	source   driven.PluginContextSource
	resolver driven.ProviderResolver
	seen     map[string]struct{}
}

func newExternalRegistrar(source driven.PluginContextSource, resolver driven.ProviderResolver) *externalRegistrar {
	return &externalRegistrar{
		source:   source,
		resolver: resolver,
		seen:     make(map[string]struct{}),
	}
}

// registerAll queries the plugin context and registers any new
// contributions. An uninitialised context is a silent no-op: callers may
// run before the host application finishes bootstrapping.
func (r *externalRegistrar) registerAll(table *PatternTable) {
	if r.source == nil {
		return
	}
	pluginCtx, ok := r.source()
	if !ok || pluginCtx == nil {
		return
	}

	for _, contrib := range pluginCtx.PreviewProviders() {
		key := contrib.Pattern + "\x00" + contrib.ProviderID
		if _, dup := r.seen[key]; dup {
			continue
		}
		r.seen[key] = struct{}{}

		if err := table.Register(contrib.Pattern, r.factoryFor(contrib.ProviderID)); err != nil {
			// A single misconfigured plugin must not break resolution.
			logger.Warn("skipping plugin provider %s: %v", contrib.ProviderID, err)
		}
	}
}

// factoryFor builds a deferred lookup through the dependency resolver.
// Lookup failure at materialisation time yields "no provider", keeping
// resolution resilient to a misconfigured plugin.
func (r *externalRegistrar) factoryFor(providerID string) driven.ProviderFactory {
	return func() (driven.Provider, error) {
		if r.resolver == nil {
			return nil, fmt.Errorf("%w: no resolver for plugin provider %s", domain.ErrProviderUnavailable, providerID)
		}
		provider, err := r.resolver.Resolve(providerID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrProviderUnavailable, providerID, err)
		}
		return provider, nil
	}
}

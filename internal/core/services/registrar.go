package services

import (
	"fmt"

	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
	"github.com/previewlab/previewd/internal/logger"
)

// coreRegistrar registers the built-in providers into the pattern table,
// gated by capability facts and the enabled-provider configuration.
// It runs at most once per registry lifetime.
type coreRegistrar struct {
	config   driven.ConfigStore
	caps     driven.CapabilityFacts
	builtins []driven.BuiltinRegistration
	done     bool
}

// registerAll populates the table with the enabled built-in providers.
// A second invocation is a no-op. Missing capabilities silently skip the
// dependent provider; malformed configuration is a fatal error.
func (r *coreRegistrar) registerAll(table *PatternTable) error {
	if r.done {
		return nil
	}

	enabled, err := r.enabledSet()
	if err != nil {
		return err
	}

	for _, reg := range r.builtins {
		if _, ok := enabled[reg.ID]; !ok {
			continue
		}
		factory, ok := reg.Gate(r.caps, r.config)
		if !ok {
			logger.Debug("provider %s skipped: capability absent", reg.ID)
			continue
		}
		if err := table.Register(reg.Pattern, factory); err != nil {
			return err
		}
		logger.Debug("registered provider %s for pattern %q", reg.ID, reg.Pattern)
	}

	r.done = true
	return nil
}

// enabledSet computes the enabled provider identifiers from configuration.
// An unset key falls back to the default set. The generic image marker
// expands to the full default image provider set. Unknown identifiers are
// a configuration error.
func (r *coreRegistrar) enabledSet() (map[domain.ProviderID]struct{}, error) {
	configured := r.config.GetStringSlice(keyEnabledProviders)

	enabled := make(map[domain.ProviderID]struct{})
	if configured == nil {
		for _, id := range domain.DefaultProviderIDs() {
			enabled[id] = struct{}{}
		}
		return enabled, nil
	}

	for _, raw := range configured {
		id := domain.ProviderID(raw)
		if !id.Known() {
			return nil, fmt.Errorf("%w: unknown preview provider %q", domain.ErrInvalidConfig, raw)
		}
		if id == domain.ProviderImageMarker {
			for _, img := range domain.ImageProviderIDs() {
				enabled[img] = struct{}{}
			}
			continue
		}
		enabled[id] = struct{}{}
	}
	return enabled, nil
}

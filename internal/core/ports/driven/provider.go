package driven

import (
	"context"

	"github.com/previewlab/previewd/internal/core/domain"
)

// Provider is an opaque preview capability object. Which mime types it
// serves is implicit in the pattern it was registered under.
type Provider interface {
	// ID returns the provider's identifier.
	ID() domain.ProviderID
}

// AvailabilityChecker is the optional per-file probing capability.
// Legacy providers do not implement it; they are never consulted for
// fine-grained availability and are skipped during availability checks.
type AvailabilityChecker interface {
	// IsAvailable reports whether the provider can produce a preview
	// for this concrete file.
	IsAvailable(file domain.FileInfo) bool
}

// Renderer is the optional rendering capability consumed by the generator.
type Renderer interface {
	// Render produces the preview image bytes (PNG encoded) for the file
	// at the requested rendition.
	Render(ctx context.Context, file domain.FileInfo, spec domain.PreviewSpec) ([]byte, error)
}

// ProviderFactory is a deferred provider constructor. It is never invoked
// at registration time - only when a pattern is actually consulted.
// A failing factory downgrades to "this provider unavailable".
type ProviderFactory func() (Provider, error)

// BuiltinRegistration describes one built-in provider: its identifier, the
// mime type pattern it registers under, and the environment gate deciding
// whether it can run at all. Gate binds any discovered resources (converter
// binaries, capability handles) into the returned factory closure.
type BuiltinRegistration struct {
	ID      domain.ProviderID
	Pattern string

	// Gate reports whether the provider can be registered in this
	// environment. Absence of a capability is a silent skip, never an error.
	Gate func(caps CapabilityFacts, cfg ConfigStore) (ProviderFactory, bool)
}

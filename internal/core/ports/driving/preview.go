package driving

import (
	"context"

	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
)

// PatternProviders is one entry of the resolved provider table: a mime type
// pattern and the factories registered under it, in registration order.
type PatternProviders struct {
	Pattern   string
	Factories []driven.ProviderFactory
}

// ProviderSource exposes the resolved factories for a mime type in table
// order. The generator consumes it so that generation sees identical
// provider availability as upstream checks.
type ProviderSource interface {
	// ProvidersFor returns the factories of all patterns matching the
	// mime type, most specific pattern first.
	ProvidersFor(mimeType string) []driven.ProviderFactory
}

// PreviewService resolves preview providers for media types and concrete
// files, and delegates generation.
type PreviewService interface {
	ProviderSource

	// Providers returns the full provider table, sorted most specific
	// pattern first. Empty when previews are disabled.
	// Configuration errors are fatal and returned.
	Providers() ([]PatternProviders, error)

	// HasProviders reports whether any provider is registered.
	HasProviders() bool

	// IsMimeSupported reports whether any registered pattern matches the
	// mime type. Pass domain.WildcardMimeType to ask whether anything is
	// supported at all. Always false while previews are disabled.
	IsMimeSupported(mimeType string) bool

	// IsAvailable reports whether some provider can produce a preview for
	// this concrete file.
	IsAvailable(file domain.FileInfo) bool

	// GetPreview delegates to the generator.
	GetPreview(ctx context.Context, file domain.FileInfo, spec domain.PreviewSpec, mimeOverride string) (*domain.Preview, error)

	// GeneratePreviews delegates to the generator and returns the largest
	// rendition.
	GeneratePreviews(ctx context.Context, file domain.FileInfo, specs []domain.PreviewSpec, mimeOverride string) (*domain.Preview, error)
}

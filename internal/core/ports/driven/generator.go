package driven

import (
	"context"

	"github.com/previewlab/previewd/internal/core/domain"
)

// Generator renders and caches preview files. The preview service delegates
// generation to it after resolution; it owns the NotFound / InvalidArgument
// failure modes.
type Generator interface {
	// GetPreview returns a preview for the file at the requested rendition,
	// rendering and caching it if necessary. mimeOverride, when non-empty,
	// replaces the file's detected mime type for provider matching.
	//
	// Returns an error wrapping domain.ErrNotFound when no provider can
	// render the file, and domain.ErrInvalidArgument for bad dimensions.
	GetPreview(ctx context.Context, file domain.FileInfo, spec domain.PreviewSpec, mimeOverride string) (*domain.Preview, error)

	// GeneratePreviews renders all requested renditions and returns the
	// largest one. Failure modes match GetPreview.
	GeneratePreviews(ctx context.Context, file domain.FileInfo, specs []domain.PreviewSpec, mimeOverride string) (*domain.Preview, error)
}

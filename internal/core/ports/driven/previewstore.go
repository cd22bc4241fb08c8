package driven

import (
	"context"

	"github.com/previewlab/previewd/internal/core/domain"
)

// PreviewStore indexes rendered previews for the local generator's
// on-disk cache.
type PreviewStore interface {
	// Put records a rendered preview, replacing any existing entry for
	// the same file and rendition.
	Put(ctx context.Context, p *domain.Preview) error

	// Get returns the recorded preview for a file and rendition.
	// Returns an error wrapping domain.ErrNotFound if none exists.
	Get(ctx context.Context, fileID string, spec domain.PreviewSpec) (*domain.Preview, error)

	// DeleteForFile removes all recorded previews for a file.
	DeleteForFile(ctx context.Context, fileID string) error
}

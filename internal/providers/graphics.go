package providers

import (
	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
)

// graphicsProvider covers formats rendered through the external graphics
// capability: vector graphics, scanned documents, high-efficiency images
// and fonts. The capability handle is bound in at registration time.
type graphicsProvider struct {
	id     domain.ProviderID
	format string
	caps   driven.CapabilityFacts
}

func (p *graphicsProvider) ID() domain.ProviderID { return p.id }

func (p *graphicsProvider) IsAvailable(file domain.FileInfo) bool {
	if file.Size == 0 {
		return false
	}
	return p.caps.GraphicsLoaded() && p.caps.GraphicsSupports(p.format)
}

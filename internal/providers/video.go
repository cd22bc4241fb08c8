package providers

import (
	"github.com/previewlab/previewd/internal/core/domain"
)

// Transcoder binaries probed on the search path, in preference order.
var videoTranscoders = []string{"ffmpeg", "avconv"}

// movieProvider previews video files by extracting a frame with an external
// transcoder. The discovered binary path is injected through the factory
// closure.
type movieProvider struct {
	binary string
}

func (p *movieProvider) ID() domain.ProviderID { return domain.ProviderMovie }

func (p *movieProvider) IsAvailable(file domain.FileInfo) bool {
	return file.Size > 0 && p.binary != ""
}

package providers

import (
	"github.com/previewlab/previewd/internal/core/domain"
)

// mp3Provider previews cover art embedded in MP3 files. Availability only
// requires a non-empty file; whether a cover is actually present is decided
// at render time by the generator's provider.
type mp3Provider struct{}

func (p *mp3Provider) ID() domain.ProviderID { return domain.ProviderMP3 }

func (p *mp3Provider) IsAvailable(file domain.FileInfo) bool {
	return file.Size > 0
}

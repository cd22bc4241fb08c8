package providers

import (
	"github.com/previewlab/previewd/internal/core/domain"
)

// txtProvider handles plain text files. It probes per-file availability:
// empty files have nothing to preview.
type txtProvider struct{}

func (p *txtProvider) ID() domain.ProviderID { return domain.ProviderTXT }

func (p *txtProvider) IsAvailable(file domain.FileInfo) bool {
	return file.Size > 0
}

// markdownProvider handles markdown files.
type markdownProvider struct{}

func (p *markdownProvider) ID() domain.ProviderID { return domain.ProviderMarkdown }

func (p *markdownProvider) IsAvailable(file domain.FileInfo) bool {
	return file.Size > 0
}

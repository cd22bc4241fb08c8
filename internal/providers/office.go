package providers

import (
	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
)

// Config key for an explicitly configured office converter binary.
const keyLibreOfficePath = "preview_libreoffice_path"

// Converter binaries probed on the search path when no path is configured.
var officeConverters = []string{"libreoffice", "soffice"}

// officeProvider previews office documents by converting them to PDF with
// an external converter. The resolved converter path is injected through
// the factory closure, never through shared static state.
type officeProvider struct {
	id        domain.ProviderID
	converter string
}

func (p *officeProvider) ID() domain.ProviderID { return p.id }

func (p *officeProvider) IsAvailable(file domain.FileInfo) bool {
	return file.Size > 0 && p.converter != ""
}

// officeConverterPath resolves the converter binary: the configured path
// wins, otherwise the first converter discoverable on the search path.
func officeConverterPath(caps driven.CapabilityFacts, cfg driven.ConfigStore) string {
	if configured := cfg.GetString(keyLibreOfficePath); configured != "" {
		return configured
	}
	for _, name := range officeConverters {
		if path, ok := caps.LookPath(name); ok {
			return path
		}
	}
	return ""
}

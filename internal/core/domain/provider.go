package domain

// ProviderID identifies a preview provider.
type ProviderID string

// Built-in provider identifiers.
const (
	ProviderPNG          ProviderID = "PNG"
	ProviderJPEG         ProviderID = "JPEG"
	ProviderGIF          ProviderID = "GIF"
	ProviderBMP          ProviderID = "BMP"
	ProviderTXT          ProviderID = "TXT"
	ProviderMarkdown     ProviderID = "Markdown"
	ProviderMP3          ProviderID = "MP3"
	ProviderSVG          ProviderID = "SVG"
	ProviderTIFF         ProviderID = "TIFF"
	ProviderHEIC         ProviderID = "HEIC"
	ProviderFont         ProviderID = "Font"
	ProviderPDF          ProviderID = "PDF"
	ProviderPostscript   ProviderID = "Postscript"
	ProviderOpenDocument ProviderID = "OpenDocument"
	ProviderMSOfficeDoc  ProviderID = "MSOfficeDoc"
	ProviderMovie        ProviderID = "Movie"
)

// ProviderImageMarker is the generic marker accepted in the enabled-provider
// configuration. It expands to the full default image provider set.
const ProviderImageMarker ProviderID = "Image"

// builtinProviders is the set of identifiers the core registrar knows about.
var builtinProviders = map[ProviderID]struct{}{
	ProviderPNG:          {},
	ProviderJPEG:         {},
	ProviderGIF:          {},
	ProviderBMP:          {},
	ProviderTXT:          {},
	ProviderMarkdown:     {},
	ProviderMP3:          {},
	ProviderSVG:          {},
	ProviderTIFF:         {},
	ProviderHEIC:         {},
	ProviderFont:         {},
	ProviderPDF:          {},
	ProviderPostscript:   {},
	ProviderOpenDocument: {},
	ProviderMSOfficeDoc:  {},
	ProviderMovie:        {},
}

// Known returns true if the identifier names a built-in provider or the
// generic image marker.
func (id ProviderID) Known() bool {
	if id == ProviderImageMarker {
		return true
	}
	_, ok := builtinProviders[id]
	return ok
}

// String returns the identifier as a plain string.
func (id ProviderID) String() string {
	return string(id)
}

// DefaultProviderIDs returns the providers enabled when no
// enabledPreviewProviders configuration is present.
func DefaultProviderIDs() []ProviderID {
	return []ProviderID{
		ProviderPNG,
		ProviderJPEG,
		ProviderGIF,
		ProviderBMP,
		ProviderTXT,
		ProviderMarkdown,
		ProviderMP3,
	}
}

// ImageProviderIDs returns the providers the generic image marker expands to.
func ImageProviderIDs() []ProviderID {
	return []ProviderID{
		ProviderPNG,
		ProviderJPEG,
		ProviderGIF,
		ProviderBMP,
	}
}

package providers

import (
	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
)

// Mime type patterns for the built-in providers. Patterns are regexes over
// mime type strings; longer patterns sort before broad catch-alls.
const (
	patternPNG          = `image/png`
	patternJPEG         = `image/jpe?g`
	patternGIF          = `image/gif`
	patternBMP          = `image/bmp`
	patternTXT          = `text/plain`
	patternMarkdown     = `text/(x-)?markdown`
	patternMP3          = `audio/mpeg`
	patternSVG          = `image/svg\+xml`
	patternTIFF         = `image/tiff`
	patternHEIC         = `image/hei(f|c)`
	patternFont         = `application/(x-font-.*|font-sfnt)|font/.*`
	patternPDF          = `application/pdf`
	patternPostscript   = `application/postscript`
	patternOpenDocument = `application/vnd\.oasis\.opendocument\..*`
	patternMSOffice     = `application/(msword|vnd\.ms-.*|vnd\.openxmlformats-officedocument\..*)`
	patternMovie        = `video/.*`
)

// Graphics capability format tokens.
const (
	formatSVG  = "SVG"
	formatTIFF = "TIFF"
	formatHEIC = "HEIC"
	formatTTF  = "TTF"
	formatPDF  = "PDF"
	formatPS   = "PS"
)

// Builtins returns the registration table for all built-in providers.
// The core registrar filters it by the enabled-provider configuration and
// each registration's environment gate.
func Builtins() []driven.BuiltinRegistration {
	regs := []driven.BuiltinRegistration{
		// Always-on providers.
		always(domain.ProviderPNG, patternPNG, func() driven.Provider { return &pngProvider{} }),
		always(domain.ProviderJPEG, patternJPEG, func() driven.Provider { return &jpegProvider{} }),
		always(domain.ProviderGIF, patternGIF, func() driven.Provider { return &gifProvider{} }),
		always(domain.ProviderBMP, patternBMP, func() driven.Provider { return &bmpProvider{} }),
		always(domain.ProviderTXT, patternTXT, func() driven.Provider { return &txtProvider{} }),
		always(domain.ProviderMarkdown, patternMarkdown, func() driven.Provider { return &markdownProvider{} }),
		always(domain.ProviderMP3, patternMP3, func() driven.Provider { return &mp3Provider{} }),

		// Providers requiring the external graphics capability.
		graphics(domain.ProviderSVG, patternSVG, formatSVG),
		graphics(domain.ProviderTIFF, patternTIFF, formatTIFF),
		graphics(domain.ProviderHEIC, patternHEIC, formatHEIC),
		graphics(domain.ProviderFont, patternFont, formatTTF),
		graphics(domain.ProviderPDF, patternPDF, formatPDF),
		graphics(domain.ProviderPostscript, patternPostscript, formatPS),

		// Office documents need a converter on top of PDF support.
		office(domain.ProviderOpenDocument, patternOpenDocument),
		office(domain.ProviderMSOfficeDoc, patternMSOffice),

		// Video needs a transcoder binary.
		movie(),
	}
	return regs
}

// always builds a registration whose gate is unconditional.
func always(id domain.ProviderID, pattern string, build func() driven.Provider) driven.BuiltinRegistration {
	return driven.BuiltinRegistration{
		ID:      id,
		Pattern: pattern,
		Gate: func(_ driven.CapabilityFacts, _ driven.ConfigStore) (driven.ProviderFactory, bool) {
			return func() (driven.Provider, error) {
				return build(), nil
			}, true
		},
	}
}

// graphics builds a registration gated on the graphics capability
// supporting the format token.
func graphics(id domain.ProviderID, pattern, format string) driven.BuiltinRegistration {
	return driven.BuiltinRegistration{
		ID:      id,
		Pattern: pattern,
		Gate: func(caps driven.CapabilityFacts, _ driven.ConfigStore) (driven.ProviderFactory, bool) {
			if !caps.GraphicsLoaded() || !caps.GraphicsSupports(format) {
				return nil, false
			}
			return func() (driven.Provider, error) {
				return &graphicsProvider{id: id, format: format, caps: caps}, nil
			}, true
		},
	}
}

// office builds a registration gated on PDF conversion support, exec
// permission and a resolvable converter binary.
func office(id domain.ProviderID, pattern string) driven.BuiltinRegistration {
	return driven.BuiltinRegistration{
		ID:      id,
		Pattern: pattern,
		Gate: func(caps driven.CapabilityFacts, cfg driven.ConfigStore) (driven.ProviderFactory, bool) {
			if !caps.GraphicsLoaded() || !caps.GraphicsSupports(formatPDF) {
				return nil, false
			}
			if !caps.ExecAllowed() {
				return nil, false
			}
			converter := officeConverterPath(caps, cfg)
			if converter == "" {
				return nil, false
			}
			return func() (driven.Provider, error) {
				return &officeProvider{id: id, converter: converter}, nil
			}, true
		},
	}
}

// movie builds the video registration gated on a discoverable transcoder.
func movie() driven.BuiltinRegistration {
	return driven.BuiltinRegistration{
		ID:      domain.ProviderMovie,
		Pattern: patternMovie,
		Gate: func(caps driven.CapabilityFacts, _ driven.ConfigStore) (driven.ProviderFactory, bool) {
			for _, name := range videoTranscoders {
				if path, ok := caps.LookPath(name); ok {
					return func() (driven.Provider, error) {
						return &movieProvider{binary: path}, nil
					}, true
				}
			}
			return nil, false
		},
	}
}

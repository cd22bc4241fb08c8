package providers

import (
	"context"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/previewlab/previewd/internal/core/domain"
)

// Bitmap providers are legacy providers: they can render but expose no
// per-file availability probing, so availability checks skip them.

type pngProvider struct{}

func (p *pngProvider) ID() domain.ProviderID { return domain.ProviderPNG }

func (p *pngProvider) Render(_ context.Context, file domain.FileInfo, spec domain.PreviewSpec) ([]byte, error) {
	return renderBitmap(file.Path, spec, png.Decode)
}

type jpegProvider struct{}

func (p *jpegProvider) ID() domain.ProviderID { return domain.ProviderJPEG }

func (p *jpegProvider) Render(_ context.Context, file domain.FileInfo, spec domain.PreviewSpec) ([]byte, error) {
	return renderBitmap(file.Path, spec, func(r io.Reader) (image.Image, error) {
		return jpeg.Decode(r)
	})
}

type gifProvider struct{}

func (p *gifProvider) ID() domain.ProviderID { return domain.ProviderGIF }

func (p *gifProvider) Render(_ context.Context, file domain.FileInfo, spec domain.PreviewSpec) ([]byte, error) {
	return renderBitmap(file.Path, spec, func(r io.Reader) (image.Image, error) {
		return gif.Decode(r)
	})
}

// bmpProvider has no stdlib decoder, so it carries no render capability
// either. It still registers so that mime support checks answer true.
type bmpProvider struct{}

func (p *bmpProvider) ID() domain.ProviderID { return domain.ProviderBMP }

package providers

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/previewlab/previewd/internal/core/domain"
)

// renderBitmap decodes the file, scales it into the requested box and
// returns the PNG-encoded result.
func renderBitmap(path string, spec domain.PreviewSpec, decode func(io.Reader) (image.Image, error)) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source image: %w", err)
	}
	defer f.Close()

	src, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode source image: %w", err)
	}

	out := scaleInto(src, spec)

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}
	return buf.Bytes(), nil
}

// scaleInto fits the image into the spec's box. Fill mode preserves aspect
// ratio within the box; cover (or crop) mode fills the box completely and
// crops the overflow centred.
func scaleInto(src image.Image, spec domain.PreviewSpec) image.Image {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return src
	}

	cover := spec.Crop || spec.Mode == domain.ModeCover

	var targetW, targetH int
	if cover {
		targetW, targetH = spec.Width, spec.Height
	} else {
		targetW, targetH = fitDims(srcW, srcH, spec.Width, spec.Height)
	}

	if cover {
		coverW, coverH := coverDims(srcW, srcH, targetW, targetH)
		scaled := resample(src, coverW, coverH)
		return centerCrop(scaled, targetW, targetH)
	}
	return resample(src, targetW, targetH)
}

// fitDims scales (srcW, srcH) down to fit within (maxW, maxH),
// preserving aspect ratio. Images smaller than the box keep their size.
func fitDims(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= maxW && srcH <= maxH {
		return srcW, srcH
	}
	ratioW := float64(maxW) / float64(srcW)
	ratioH := float64(maxH) / float64(srcH)
	ratio := ratioW
	if ratioH < ratio {
		ratio = ratioH
	}
	w := int(float64(srcW) * ratio)
	h := int(float64(srcH) * ratio)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// coverDims scales (srcW, srcH) so the result covers (boxW, boxH).
func coverDims(srcW, srcH, boxW, boxH int) (int, int) {
	ratioW := float64(boxW) / float64(srcW)
	ratioH := float64(boxH) / float64(srcH)
	ratio := ratioW
	if ratioH > ratio {
		ratio = ratioH
	}
	w := int(float64(srcW)*ratio + 0.5)
	h := int(float64(srcH)*ratio + 0.5)
	if w < boxW {
		w = boxW
	}
	if h < boxH {
		h = boxH
	}
	return w, h
}

// resample performs nearest-neighbour scaling.
func resample(src image.Image, w, h int) *image.RGBA {
	bounds := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcY := bounds.Min.Y + y*bounds.Dy()/h
		for x := 0; x < w; x++ {
			srcX := bounds.Min.X + x*bounds.Dx()/w
			out.Set(x, y, src.At(srcX, srcY))
		}
	}
	return out
}

// centerCrop cuts a centred (w, h) window out of the image.
func centerCrop(src *image.RGBA, w, h int) image.Image {
	bounds := src.Bounds()
	x0 := (bounds.Dx() - w) / 2
	y0 := (bounds.Dy() - h) / 2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	return src.SubImage(image.Rect(x0, y0, x0+w, y0+h))
}

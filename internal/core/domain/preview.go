package domain

import (
	"fmt"
	"time"
)

// PreviewMode controls how a preview is fitted into the requested box.
type PreviewMode string

const (
	// ModeFill scales the image to fit entirely within the box.
	ModeFill PreviewMode = "fill"

	// ModeCover scales the image to cover the box, cropping overflow.
	ModeCover PreviewMode = "cover"
)

// Validate checks that the mode is a known value.
func (m PreviewMode) Validate() error {
	switch m {
	case ModeFill, ModeCover:
		return nil
	default:
		return fmt.Errorf("%w: unknown preview mode %q", ErrInvalidArgument, string(m))
	}
}

// PreviewSpec describes a requested preview rendition.
type PreviewSpec struct {
	Width  int
	Height int
	Crop   bool
	Mode   PreviewMode
}

// Validate checks dimensions and mode. Dimensions must be positive.
func (s PreviewSpec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: preview dimensions %dx%d", ErrInvalidArgument, s.Width, s.Height)
	}
	if s.Mode != "" {
		return s.Mode.Validate()
	}
	return nil
}

// Area returns the pixel area of the requested box. Used to pick the
// largest rendition out of a batch.
func (s PreviewSpec) Area() int {
	return s.Width * s.Height
}

// Preview is a handle to a rendered preview file.
type Preview struct {
	// FileID is the source file's identifier.
	FileID string

	// Path is the rendered file's location in the preview cache.
	Path string

	// MimeType is the rendered file's media type.
	MimeType string

	// Width and Height are the rendered dimensions.
	Width  int
	Height int

	// Spec is the rendition this preview was generated for.
	Spec PreviewSpec

	// CreatedAt is when the preview was rendered.
	CreatedAt time.Time
}

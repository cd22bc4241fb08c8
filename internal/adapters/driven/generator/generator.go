// Package generator provides the local preview generator: it renders
// previews through providers exposing the render capability, caches the
// results on disk and indexes them in a PreviewStore.
package generator

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
	"github.com/previewlab/previewd/internal/core/ports/driving"
	"github.com/previewlab/previewd/internal/logger"
)

// Ensure Local implements the interface.
var _ driven.Generator = (*Local)(nil)

// Config keys consulted by the local generator.
const (
	keyCacheDir     = "preview_cache_dir"
	keyMaxDimension = "preview_max_dimension"
)

// defaultMaxDimension caps requested preview dimensions.
const defaultMaxDimension = 4096

// Local renders previews through the registry's providers and keeps a
// two-level cache: rendered files on disk, indexed by a PreviewStore.
type Local struct {
	source   driving.ProviderSource
	store    driven.PreviewStore
	cacheDir string
	maxDim   int
}

// NewLocal creates a local generator. The provider source must be the same
// registry instance answering support and availability queries, so
// generation sees identical provider availability.
func NewLocal(source driving.ProviderSource, store driven.PreviewStore, cfg driven.ConfigStore) (*Local, error) {
	cacheDir := cfg.GetString(keyCacheDir)
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		cacheDir = filepath.Join(home, ".previewd", "cache")
	}
	if err := os.MkdirAll(cacheDir, 0700); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	maxDim := cfg.GetInt(keyMaxDimension)
	if maxDim <= 0 {
		maxDim = defaultMaxDimension
	}

	return &Local{
		source:   source,
		store:    store,
		cacheDir: cacheDir,
		maxDim:   maxDim,
	}, nil
}

// GetPreview returns a preview for the file at the requested rendition,
// rendering and caching it if necessary.
func (g *Local) GetPreview(ctx context.Context, file domain.FileInfo, spec domain.PreviewSpec, mimeOverride string) (*domain.Preview, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec = g.clamp(spec)

	if cached, err := g.store.Get(ctx, file.ID, spec); err == nil {
		if _, statErr := os.Stat(cached.Path); statErr == nil {
			return cached, nil
		}
		// Index entry without a file: drop it and re-render.
		_ = g.store.DeleteForFile(ctx, file.ID)
	}

	mimeType := file.MimeType
	if mimeOverride != "" {
		mimeType = mimeOverride
	}

	for _, factory := range g.source.ProvidersFor(mimeType) {
		provider, err := factory()
		if err != nil {
			logger.Debug("generator: provider unavailable: %v", err)
			continue
		}
		renderer, ok := provider.(driven.Renderer)
		if !ok {
			continue
		}

		data, err := renderer.Render(ctx, file, spec)
		if err != nil {
			logger.Debug("generator: provider %s failed to render: %v", provider.ID(), err)
			continue
		}
		return g.cache(ctx, file, spec, data)
	}

	return nil, fmt.Errorf("%w: no provider could render %s", domain.ErrNotFound, mimeType)
}

// GeneratePreviews renders all requested renditions and returns the
// largest one.
func (g *Local) GeneratePreviews(ctx context.Context, file domain.FileInfo, specs []domain.PreviewSpec, mimeOverride string) (*domain.Preview, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no preview specs", domain.ErrInvalidArgument)
	}

	var largest *domain.Preview
	for _, spec := range specs {
		preview, err := g.GetPreview(ctx, file, spec, mimeOverride)
		if err != nil {
			return nil, err
		}
		if largest == nil || preview.Spec.Area() > largest.Spec.Area() {
			largest = preview
		}
	}
	return largest, nil
}

// clamp limits the requested box to the configured maximum dimension.
func (g *Local) clamp(spec domain.PreviewSpec) domain.PreviewSpec {
	if spec.Width > g.maxDim {
		spec.Width = g.maxDim
	}
	if spec.Height > g.maxDim {
		spec.Height = g.maxDim
	}
	return spec
}

// cache writes rendered bytes into the cache directory and indexes them.
func (g *Local) cache(ctx context.Context, file domain.FileInfo, spec domain.PreviewSpec, data []byte) (*domain.Preview, error) {
	path := filepath.Join(g.cacheDir, uuid.NewString()+".png")
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("writing preview file: %w", err)
	}

	width, height := spec.Width, spec.Height
	if img, err := png.Decode(bytes.NewReader(data)); err == nil {
		width = img.Bounds().Dx()
		height = img.Bounds().Dy()
	}

	preview := &domain.Preview{
		FileID:    file.ID,
		Path:      path,
		MimeType:  "image/png",
		Width:     width,
		Height:    height,
		Spec:      spec,
		CreatedAt: time.Now(),
	}
	if err := g.store.Put(ctx, preview); err != nil {
		return nil, fmt.Errorf("indexing preview: %w", err)
	}
	return preview, nil
}

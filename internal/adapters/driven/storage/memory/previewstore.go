package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
)

// Ensure PreviewStore implements the interface.
var _ driven.PreviewStore = (*PreviewStore)(nil)

// PreviewStore is an in-memory implementation of driven.PreviewStore
// for testing.
type PreviewStore struct {
	mu       sync.RWMutex
	previews map[string]*domain.Preview
}

// NewPreviewStore creates a new in-memory preview store.
func NewPreviewStore() *PreviewStore {
	return &PreviewStore{
		previews: make(map[string]*domain.Preview),
	}
}

func previewKey(fileID string, spec domain.PreviewSpec) string {
	return fmt.Sprintf("%s|%dx%d|%t|%s", fileID, spec.Width, spec.Height, spec.Crop, spec.Mode)
}

// Put records a rendered preview.
func (s *PreviewStore) Put(_ context.Context, p *domain.Preview) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.previews[previewKey(p.FileID, p.Spec)] = &cp
	return nil
}

// Get returns the recorded preview for a file and rendition.
func (s *PreviewStore) Get(_ context.Context, fileID string, spec domain.PreviewSpec) (*domain.Preview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.previews[previewKey(fileID, spec)]
	if !ok {
		return nil, fmt.Errorf("%w: preview for file %s", domain.ErrNotFound, fileID)
	}
	cp := *p
	return &cp, nil
}

// DeleteForFile removes all recorded previews for a file.
func (s *PreviewStore) DeleteForFile(_ context.Context, fileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, p := range s.previews {
		if p.FileID == fileID {
			delete(s.previews, key)
		}
	}
	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/previewlab/previewd/internal/core/domain"
	"github.com/previewlab/previewd/internal/core/ports/driven"
)

// Ensure previewStore implements the interface.
var _ driven.PreviewStore = (*previewStore)(nil)

// previewStore implements driven.PreviewStore on the shared Store.
type previewStore struct {
	store *Store
}

// Put records a rendered preview, replacing any existing entry for the
// same file and rendition.
func (p *previewStore) Put(ctx context.Context, preview *domain.Preview) error {
	_, err := p.store.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO previews
			(file_id, spec_width, spec_height, spec_crop, spec_mode,
			 path, mime_type, width, height, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		preview.FileID,
		preview.Spec.Width,
		preview.Spec.Height,
		preview.Spec.Crop,
		string(preview.Spec.Mode),
		preview.Path,
		preview.MimeType,
		preview.Width,
		preview.Height,
		preview.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storing preview: %w", err)
	}
	return nil
}

// Get returns the recorded preview for a file and rendition.
func (p *previewStore) Get(ctx context.Context, fileID string, spec domain.PreviewSpec) (*domain.Preview, error) {
	row := p.store.db.QueryRowContext(ctx, `
		SELECT path, mime_type, width, height, created_at
		FROM previews
		WHERE file_id = ? AND spec_width = ? AND spec_height = ?
			AND spec_crop = ? AND spec_mode = ?`,
		fileID, spec.Width, spec.Height, spec.Crop, string(spec.Mode),
	)

	var (
		preview   domain.Preview
		createdAt string
	)
	err := row.Scan(&preview.Path, &preview.MimeType, &preview.Width, &preview.Height, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: preview for file %s", domain.ErrNotFound, fileID)
	}
	if err != nil {
		return nil, fmt.Errorf("loading preview: %w", err)
	}

	preview.FileID = fileID
	preview.Spec = spec
	if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		preview.CreatedAt = ts
	}
	return &preview, nil
}

// DeleteForFile removes all recorded previews for a file.
func (p *previewStore) DeleteForFile(ctx context.Context, fileID string) error {
	if _, err := p.store.db.ExecContext(ctx, "DELETE FROM previews WHERE file_id = ?", fileID); err != nil {
		return fmt.Errorf("deleting previews: %w", err)
	}
	return nil
}

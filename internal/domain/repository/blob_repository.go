package repository

import (
	"context"

	"github.com/tensora-ai/cc-backend/internal/domain"
)

// BlobRepository serves binary assets (heatmaps, density renderings).
type BlobRepository interface {
	// GetBlob returns a blob by container and name, or nil when absent.
	GetBlob(ctx context.Context, container domain.Container, name string) (*domain.Blob, error)

	// PutBlob stores or replaces a blob.
	PutBlob(ctx context.Context, blob *domain.Blob) error

	// FindNamesByPrefixes returns the names of stored blobs matching any
	// of the given name prefixes, ordered by name.
	FindNamesByPrefixes(ctx context.Context, container domain.Container, prefixes []string) ([]string, error)
}

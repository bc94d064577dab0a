package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/tensora-ai/cc-backend/internal/domain"
	"github.com/tensora-ai/cc-backend/internal/domain/repository"
	"go.uber.org/zap"
)

type blobRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewBlobRepository(db *DB, logger *zap.Logger) repository.BlobRepository {
	return &blobRepository{
		db:     db,
		logger: logger,
	}
}

func (r *blobRepository) GetBlob(ctx context.Context, container domain.Container, name string) (*domain.Blob, error) {
	var blob domain.Blob
	err := r.db.QueryRowxContext(ctx, `
		SELECT container, name, content_type, data
		FROM blobs
		WHERE container = $1 AND name = $2`,
		container, name,
	).Scan(&blob.Container, &blob.Name, &blob.ContentType, &blob.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get blob",
			zap.String("container", string(container)),
			zap.String("name", name),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get blob: %w", err)
	}
	return &blob, nil
}

func (r *blobRepository) PutBlob(ctx context.Context, blob *domain.Blob) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO blobs (container, name, content_type, data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (container, name)
		DO UPDATE SET content_type = EXCLUDED.content_type, data = EXCLUDED.data`,
		blob.Container, blob.Name, blob.ContentType, blob.Data,
	)
	if err != nil {
		r.logger.Error("failed to put blob",
			zap.String("container", string(blob.Container)),
			zap.String("name", blob.Name),
			zap.Error(err),
		)
		return fmt.Errorf("put blob: %w", err)
	}
	return nil
}

// FindNamesByPrefixes matches stored blob names against a batch of
// prefixes in one round trip via LIKE ANY over a text array.
func (r *blobRepository) FindNamesByPrefixes(ctx context.Context, container domain.Container, prefixes []string) ([]string, error) {
	if len(prefixes) == 0 {
		return nil, nil
	}

	patterns := make([]string, len(prefixes))
	for i, p := range prefixes {
		patterns[i] = p + "%"
	}

	var names []string
	err := r.db.SelectContext(ctx, &names, `
		SELECT name
		FROM blobs
		WHERE container = $1 AND name LIKE ANY($2)
		ORDER BY name`,
		container, pq.Array(patterns),
	)
	if err != nil {
		r.logger.Error("failed to find blobs by prefixes",
			zap.String("container", string(container)),
			zap.Int("prefixes", len(prefixes)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("find blobs by prefixes: %w", err)
	}
	return names, nil
}

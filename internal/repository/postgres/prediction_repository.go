package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tensora-ai/cc-backend/internal/domain"
	"github.com/tensora-ai/cc-backend/internal/domain/repository"
	"go.uber.org/zap"
)

type predictionRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewPredictionRepository(db *DB, logger *zap.Logger) repository.PredictionRepository {
	return &predictionRepository{
		db:     db,
		logger: logger,
	}
}

type predictionRow struct {
	Timestamp time.Time `db:"ts"`
	Counts    []byte    `db:"counts"`
}

// FetchWindow returns one camera position's samples inside [start, end]
// ordered by ascending timestamp, selecting the count field according
// to the masking flag.
func (r *predictionRepository) FetchWindow(
	ctx context.Context,
	projectID, areaID string,
	camera domain.CameraPosition,
	start, end time.Time,
) (*domain.PredictionData, error) {
	var rows []predictionRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT ts, counts
		FROM predictions
		WHERE project = $1
		  AND camera = $2
		  AND position = $3
		  AND ts >= $4
		  AND ts <= $5
		ORDER BY ts ASC`,
		projectID, camera.CameraID, camera.Position, start, end,
	)
	if err != nil {
		r.logger.Error("failed to fetch predictions",
			zap.String("project_id", projectID),
			zap.String("camera", camera.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("fetch predictions: %w", err)
	}

	countKey := domain.CountTotalKey
	if camera.EnableMasking {
		countKey = areaID
	}

	data := &domain.PredictionData{
		CameraID: camera.CameraID,
		Position: camera.Position,
	}
	for _, row := range rows {
		var counts map[string]float64
		if err := json.Unmarshal(row.Counts, &counts); err != nil {
			r.logger.Warn("skipping prediction with malformed counts",
				zap.String("camera", camera.String()),
				zap.Time("timestamp", row.Timestamp),
				zap.Error(err),
			)
			continue
		}

		count, ok := counts[countKey]
		if !ok {
			r.logger.Warn("skipping prediction missing expected count field",
				zap.String("camera", camera.String()),
				zap.String("count_key", countKey),
				zap.Time("timestamp", row.Timestamp),
			)
			continue
		}

		// Keep timestamps strictly increasing; collapse duplicates onto
		// the first sample seen.
		if n := len(data.Timestamps); n > 0 && !row.Timestamp.After(data.Timestamps[n-1]) {
			continue
		}

		data.Timestamps = append(data.Timestamps, row.Timestamp)
		data.Counts = append(data.Counts, count)
	}

	r.logger.Debug("fetched predictions",
		zap.String("camera", camera.String()),
		zap.Int("samples", len(data.Counts)),
		zap.Bool("masking", camera.EnableMasking),
	)

	return data, nil
}

func (r *predictionRepository) Insert(ctx context.Context, record *domain.PredictionRecord) error {
	counts, err := json.Marshal(record.Counts)
	if err != nil {
		return fmt.Errorf("marshal counts: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO predictions (id, project, camera, position, ts, counts)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID, record.Project, record.Camera, record.Position,
		record.Timestamp, counts,
	)
	if err != nil {
		r.logger.Error("failed to insert prediction",
			zap.String("project_id", record.Project),
			zap.String("camera", record.Camera),
			zap.Error(err),
		)
		return fmt.Errorf("insert prediction: %w", err)
	}
	return nil
}

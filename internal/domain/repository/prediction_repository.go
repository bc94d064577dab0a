package repository

import (
	"context"
	"time"

	"github.com/tensora-ai/cc-backend/internal/domain"
)

// PredictionRepository is the sample-store boundary. The aggregation
// engine never constructs query text itself; it asks for one camera
// position's samples over a window through this parameterized contract.
type PredictionRepository interface {
	// FetchWindow returns the samples for one camera position inside
	// [start, end], ordered by ascending timestamp. The count per sample
	// is selected according to camera.EnableMasking: the area-specific
	// sub-count when masking is enabled, the total otherwise. Samples
	// missing the expected breakdown field are skipped.
	FetchWindow(
		ctx context.Context,
		projectID, areaID string,
		camera domain.CameraPosition,
		start, end time.Time,
	) (*domain.PredictionData, error)

	// Insert stores one raw sample.
	Insert(ctx context.Context, record *domain.PredictionRecord) error
}

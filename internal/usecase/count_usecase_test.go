package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tensora-ai/cc-backend/internal/domain"
	"github.com/tensora-ai/cc-backend/internal/usecase"
	"github.com/tensora-ai/cc-backend/internal/usecase/dto"
)

func TestCountUseCase_SumPredictions(t *testing.T) {
	ctx := context.Background()
	end := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	start := end.Add(-30 * time.Minute)

	camA := domain.CameraPosition{CameraID: "cam_a", Position: "north", EnableMasking: true}
	camB := domain.CameraPosition{CameraID: "cam_b", Position: "south"}

	predictionUC, predictionRepo := newPredictionUseCase(t)
	uc := usecase.NewCountUseCase(predictionUC, zap.NewNop())

	predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camA, start, end).
		Return(&domain.PredictionData{
			CameraID: "cam_a", Position: "north",
			Timestamps: []time.Time{start, end}, Counts: []float64{10, 20},
		}, nil)
	predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camB, start, end).
		Return(&domain.PredictionData{
			CameraID: "cam_b", Position: "south",
			Timestamps: []time.Time{start.Add(15 * time.Minute)}, Counts: []float64{5},
		}, nil)

	res, err := uc.SumPredictions(ctx, dto.SumPredictionsRequest{
		Project:       "city_festival",
		Area:          "main_stage",
		EndDate:       end,
		LookbackHours: ptrFloat64(0.5),
	})
	require.NoError(t, err)

	// Same aggregation engine as the area endpoint, legacy shape out.
	require.Len(t, res.PredictionsSum, 60)
	assert.Equal(t, 15, res.PredictionsSum[0].Prediction)
	assert.Equal(t, 25, res.PredictionsSum[len(res.PredictionsSum)-1].Prediction)
	assert.True(t, res.PredictionsSum[0].Timestamp.Equal(start))
}

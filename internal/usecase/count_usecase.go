package usecase

import (
	"context"

	"github.com/tensora-ai/cc-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// CountUseCase keeps the legacy count API alive: same aggregation
// engine, older request/response shape with project and area in the
// body and a bare predictions_sum list.
type CountUseCase struct {
	predictionUC *PredictionUseCase
	logger       *zap.Logger
}

func NewCountUseCase(predictionUC *PredictionUseCase, logger *zap.Logger) *CountUseCase {
	return &CountUseCase{
		predictionUC: predictionUC,
		logger:       logger,
	}
}

func (uc *CountUseCase) SumPredictions(
	ctx context.Context,
	req dto.SumPredictionsRequest,
) (*dto.SumPredictionsResponse, error) {
	result, err := uc.predictionUC.AggregateTimeSeries(ctx, req.Project, req.Area,
		dto.AggregateTimeSeriesRequest{
			EndDate:           req.EndDate,
			LookbackHours:     req.LookbackHours,
			HalfMovingAvgSize: req.HalfMovingAvgSize,
		})
	if err != nil {
		return nil, err
	}

	sums := make([]dto.PredictionSum, len(result.TimeSeries))
	for i, point := range result.TimeSeries {
		sums[i] = dto.PredictionSum{
			Timestamp:  point.Timestamp,
			Prediction: point.Value,
		}
	}
	return &dto.SumPredictionsResponse{PredictionsSum: sums}, nil
}

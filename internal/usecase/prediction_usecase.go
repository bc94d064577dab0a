package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tensora-ai/cc-backend/internal/domain"
	"github.com/tensora-ai/cc-backend/internal/domain/repository"
	"github.com/tensora-ai/cc-backend/internal/pkg/errors"
	"github.com/tensora-ai/cc-backend/internal/pkg/timeseries"
	"github.com/tensora-ai/cc-backend/internal/usecase/dto"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Grid density of the aggregated series: 120 points per lookback hour,
// roughly one sample every 30 seconds regardless of camera count.
const gridPointsPerHour = 120

// PredictionUseCase aggregates per-camera occupancy samples into one
// continuous estimate for an area.
type PredictionUseCase struct {
	predictionRepo repository.PredictionRepository
	mappingUC      *MappingUseCase
	logger         *zap.Logger
}

func NewPredictionUseCase(
	predictionRepo repository.PredictionRepository,
	mappingUC *MappingUseCase,
	logger *zap.Logger,
) *PredictionUseCase {
	return &PredictionUseCase{
		predictionRepo: predictionRepo,
		mappingUC:      mappingUC,
		logger:         logger,
	}
}

// AggregateTimeSeries reconstructs the combined occupancy curve of an
// area over [end_date - lookback, end_date]:
//
//  1. resolve the area's camera positions
//  2. fetch every camera's samples concurrently
//  3. classify data availability (all empty / partial / complete)
//  4. build one interpolator per camera
//  5. evaluate and sum on a uniform grid over the observed span
//  6. smooth with a centered moving average
//  7. map grid offsets back to absolute timestamps
//
// All cameras empty is a valid outcome and yields an empty series.
// A mix of cameras with and without data is refused: summing a subset
// would misrepresent true occupancy.
func (uc *PredictionUseCase) AggregateTimeSeries(
	ctx context.Context,
	projectID, areaID string,
	req dto.AggregateTimeSeriesRequest,
) (*dto.AggregateTimeSeriesResponse, error) {
	lookback := req.Lookback()
	halfWindow := req.HalfWindow()

	// Rejected before any store access
	if lookback <= 0 {
		return nil, errors.ErrInvalidRequest.WithMessage("lookback_hours must be greater than 0")
	}
	if halfWindow < 0 {
		return nil, errors.ErrInvalidRequest.WithMessage("half_moving_avg_size must not be negative")
	}

	area, err := uc.mappingUC.Resolve(projectID, areaID)
	if err != nil {
		return nil, err
	}

	end := req.EndDate.UTC()
	start := end.Add(-time.Duration(lookback * float64(time.Hour)))

	predictions, err := uc.fetchAll(ctx, projectID, areaID, area.Cameras, start, end)
	if err != nil {
		uc.logger.Error("Failed to fetch prediction data",
			zap.String("project_id", projectID),
			zap.String("area_id", areaID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	var withData, withoutData []*domain.PredictionData
	for _, pred := range predictions {
		if pred.HasData() {
			withData = append(withData, pred)
		} else {
			withoutData = append(withoutData, pred)
		}
	}

	// No camera reported anything: a valid, empty result. Confirmed
	// absence of data is not an error.
	if len(withData) == 0 {
		return &dto.AggregateTimeSeriesResponse{
			TimeSeries:       []domain.TimeSeriesPoint{},
			CameraTimestamps: []domain.CameraTimestamp{},
		}, nil
	}

	// Some cameras have data, others none: refuse rather than silently
	// summing a subset of the area.
	if len(withoutData) > 0 {
		missing := make([]string, len(withoutData))
		for i, pred := range withoutData {
			missing[i] = fmt.Sprintf("%s@%s", pred.CameraID, pred.Position)
		}
		return nil, errors.ErrPartialPredictionData.WithMessage(
			fmt.Sprintf(
				"Partial prediction data found. Missing data for cameras: %s. "+
					"Cannot aggregate when some cameras have data but others don't in the requested timespan.",
				strings.Join(missing, ", "),
			),
		).WithDetails(map[string]interface{}{
			"missing_cameras": missing,
		})
	}

	cameraTimestamps := collectCameraTimestamps(withData)

	interpolators, minTS, maxTS, err := buildInterpolators(withData, start)
	if err != nil {
		uc.logger.Error("Failed to build interpolators",
			zap.String("project_id", projectID),
			zap.String("area_id", areaID),
			zap.Error(err),
		)
		return nil, errors.ErrInternalServer
	}

	// Uniform grid over the observed span, not the nominal window, so
	// data-free stretches at the edges are not extrapolated across.
	// Offsets are seconds elapsed since window start.
	gridPoints := int(lookback * gridPointsPerHour)
	grid := timeseries.Grid(minTS.Sub(start).Seconds(), maxTS.Sub(start).Seconds(), gridPoints)

	sum := make([]float64, len(grid))
	for _, interp := range interpolators {
		floats.Add(sum, interp.Evaluate(grid))
	}

	smoothed := timeseries.MovingAverage(sum, halfWindow)

	series := make([]domain.TimeSeriesPoint, len(grid))
	for i, offset := range grid {
		value := int(smoothed[i]) // truncation toward zero, matches the stored-count semantics
		if value < 0 {
			value = 0
		}
		series[i] = domain.TimeSeriesPoint{
			Timestamp: start.Add(time.Duration(offset * float64(time.Second))),
			Value:     value,
		}
	}

	uc.logger.Debug("Aggregated time series",
		zap.String("project_id", projectID),
		zap.String("area_id", areaID),
		zap.Int("cameras", len(withData)),
		zap.Int("points", len(series)),
	)

	return &dto.AggregateTimeSeriesResponse{
		TimeSeries:       series,
		CameraTimestamps: cameraTimestamps,
	}, nil
}

// fetchAll retrieves every camera's samples concurrently. Results keep
// the camera order of the area mapping. Any fetch failure is fatal for
// the request; a failed camera is not the same as a camera with no data.
func (uc *PredictionUseCase) fetchAll(
	ctx context.Context,
	projectID, areaID string,
	cameras []domain.CameraPosition,
	start, end time.Time,
) ([]*domain.PredictionData, error) {
	type indexedResult struct {
		index int
		data  *domain.PredictionData
		err   error
	}

	resultsChan := make(chan indexedResult, len(cameras))

	for i, camera := range cameras {
		go func(idx int, cam domain.CameraPosition) {
			data, err := uc.predictionRepo.FetchWindow(ctx, projectID, areaID, cam, start, end)
			resultsChan <- indexedResult{index: idx, data: data, err: err}
		}(i, camera)
	}

	results := make([]*domain.PredictionData, len(cameras))
	var firstErr error
	for range cameras {
		res := <-resultsChan
		if res.err != nil && firstErr == nil {
			firstErr = res.err
		}
		results[res.index] = res.data
	}
	close(resultsChan)

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// buildInterpolators converts each camera's samples into an evaluable
// function of elapsed seconds since start, and reports the earliest and
// latest observed sample across all cameras. Cameras with one sample
// get a constant interpolator; everything else interpolates linearly
// with linear extrapolation beyond the observed range.
func buildInterpolators(
	predictions []*domain.PredictionData,
	start time.Time,
) ([]timeseries.Interpolator, time.Time, time.Time, error) {
	interpolators := make([]timeseries.Interpolator, 0, len(predictions))
	var minTS, maxTS time.Time

	for _, pred := range predictions {
		first := pred.Timestamps[0]
		last := pred.Timestamps[len(pred.Timestamps)-1]
		if minTS.IsZero() || first.Before(minTS) {
			minTS = first
		}
		if maxTS.IsZero() || last.After(maxTS) {
			maxTS = last
		}

		if len(pred.Timestamps) == 1 {
			interpolators = append(interpolators, timeseries.Constant{Value: pred.Counts[0]})
			continue
		}

		offsets := make([]float64, len(pred.Timestamps))
		for i, ts := range pred.Timestamps {
			offsets[i] = ts.Sub(start).Seconds()
		}
		linear, err := timeseries.NewLinear(offsets, pred.Counts)
		if err != nil {
			return nil, time.Time{}, time.Time{}, fmt.Errorf(
				"interpolator for %s@%s: %w", pred.CameraID, pred.Position, err)
		}
		interpolators = append(interpolators, linear)
	}

	return interpolators, minTS, maxTS, nil
}

// collectCameraTimestamps lists every raw sample actually consumed, in
// camera order, for traceability.
func collectCameraTimestamps(predictions []*domain.PredictionData) []domain.CameraTimestamp {
	out := make([]domain.CameraTimestamp, 0)
	for _, pred := range predictions {
		for _, ts := range pred.Timestamps {
			out = append(out, domain.CameraTimestamp{
				CameraID:  pred.CameraID,
				Position:  pred.Position,
				Timestamp: ts,
			})
		}
	}
	return out
}

// InsertPrediction stores one raw sample, assigning it a fresh id.
func (uc *PredictionUseCase) InsertPrediction(
	ctx context.Context,
	req dto.InsertPredictionRequest,
) (*dto.InsertPredictionResponse, error) {
	record := &domain.PredictionRecord{
		ID:        uuid.NewString(),
		Project:   req.Project,
		Camera:    req.Camera,
		Position:  req.Position,
		Timestamp: req.Timestamp.UTC(),
		Counts:    req.Counts,
	}

	if err := uc.predictionRepo.Insert(ctx, record); err != nil {
		uc.logger.Error("Failed to insert prediction",
			zap.String("project_id", req.Project),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return &dto.InsertPredictionResponse{ID: record.ID}, nil
}

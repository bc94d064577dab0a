package dto

import (
	"time"

	"github.com/tensora-ai/cc-backend/internal/domain"
)

// Default lookback window in hours when the request omits it.
const DefaultLookbackHours = 3.0

// AggregateTimeSeriesRequest asks for the combined occupancy estimate
// of one area over [end_date - lookback_hours, end_date].
type AggregateTimeSeriesRequest struct {
	EndDate           time.Time `json:"end_date" validate:"required"`
	LookbackHours     *float64  `json:"lookback_hours" validate:"omitempty,gt=0"`
	HalfMovingAvgSize *int      `json:"half_moving_avg_size" validate:"omitempty,gte=0"`
}

// Lookback returns the requested lookback hours, applying the default.
func (r *AggregateTimeSeriesRequest) Lookback() float64 {
	if r.LookbackHours == nil {
		return DefaultLookbackHours
	}
	return *r.LookbackHours
}

// HalfWindow returns the requested smoothing half window, 0 by default.
func (r *AggregateTimeSeriesRequest) HalfWindow() int {
	if r.HalfMovingAvgSize == nil {
		return 0
	}
	return *r.HalfMovingAvgSize
}

// AggregateTimeSeriesResponse carries the regularly sampled series plus
// the raw per-camera timestamps that went into it.
type AggregateTimeSeriesResponse struct {
	TimeSeries       []domain.TimeSeriesPoint `json:"time_series"`
	CameraTimestamps []domain.CameraTimestamp `json:"camera_timestamps"`
}

// InsertPredictionRequest stores one raw sample for a camera position.
type InsertPredictionRequest struct {
	Project   string             `json:"project" validate:"required"`
	Camera    string             `json:"camera" validate:"required"`
	Position  string             `json:"position" validate:"required"`
	Timestamp time.Time          `json:"timestamp" validate:"required"`
	Counts    map[string]float64 `json:"counts" validate:"required,min=1"`
}

// InsertPredictionResponse returns the id assigned to the stored sample.
type InsertPredictionResponse struct {
	ID string `json:"id"`
}

package dto

import "time"

// SumPredictionsRequest is the legacy request shape of the count API.
// Project and area travel in the body instead of the path.
type SumPredictionsRequest struct {
	Project           string    `json:"project" validate:"required"`
	Area              string    `json:"area" validate:"required"`
	EndDate           time.Time `json:"end_date" validate:"required"`
	LookbackHours     *float64  `json:"lookback_hours" validate:"omitempty,gt=0"`
	HalfMovingAvgSize *int      `json:"half_moving_avg_size" validate:"omitempty,gte=0"`
}

// PredictionSum is one point of the legacy response shape.
type PredictionSum struct {
	Timestamp  time.Time `json:"timestamp"`
	Prediction int       `json:"prediction"`
}

type SumPredictionsResponse struct {
	PredictionsSum []PredictionSum `json:"predictions_sum"`
}

package dto

import "github.com/tensora-ai/cc-backend/internal/domain"

// HeatmapLookupRequest resolves which heatmap blobs exist for a batch
// of camera timestamps, typically the camera_timestamps list of an
// aggregation response.
type HeatmapLookupRequest struct {
	CameraTimestamps []domain.CameraTimestamp `json:"camera_timestamps" validate:"required,min=1"`
}

type HeatmapLookupResponse struct {
	Names []string `json:"names"`
}

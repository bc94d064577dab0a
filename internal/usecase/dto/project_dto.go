package dto

import "github.com/tensora-ai/cc-backend/internal/domain"

type CreateProjectRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type UpdateProjectRequest struct {
	Name string `json:"name" validate:"required"`
}

type ProjectListResponse struct {
	Projects []*domain.Project `json:"projects"`
}

type CreateCameraRequest struct {
	ID             string                 `json:"id" validate:"required"`
	Name           string                 `json:"name" validate:"required"`
	Resolution     [2]int                 `json:"resolution" validate:"required"`
	SensorSize     *[2]float64            `json:"sensor_size,omitempty"`
	Coordinates3D  *[3]float64            `json:"coordinates_3d,omitempty"`
	DefaultModel   domain.CountingModel   `json:"default_model,omitempty"`
	ModelSchedules []domain.ModelSchedule `json:"model_schedules,omitempty"`
}

func (r *CreateCameraRequest) ToDomain() domain.Camera {
	return domain.Camera{
		ID:             r.ID,
		Name:           r.Name,
		Resolution:     r.Resolution,
		SensorSize:     r.SensorSize,
		Coordinates3D:  r.Coordinates3D,
		DefaultModel:   r.DefaultModel,
		ModelSchedules: r.ModelSchedules,
	}
}

type UpdateCameraRequest struct {
	Name           string                 `json:"name" validate:"required"`
	Resolution     [2]int                 `json:"resolution" validate:"required"`
	SensorSize     *[2]float64            `json:"sensor_size,omitempty"`
	Coordinates3D  *[3]float64            `json:"coordinates_3d,omitempty"`
	DefaultModel   domain.CountingModel   `json:"default_model,omitempty"`
	ModelSchedules []domain.ModelSchedule `json:"model_schedules,omitempty"`
}

type CreateAreaRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type UpdateAreaRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateCameraConfigRequest struct {
	ID                  string                `json:"id" validate:"required"`
	Name                string                `json:"name" validate:"required"`
	CameraID            string                `json:"camera_id" validate:"required"`
	Position            domain.Position       `json:"position" validate:"required"`
	EnableHeatmap       bool                  `json:"enable_heatmap"`
	HeatmapConfig       *[4]int               `json:"heatmap_config,omitempty"`
	EnableInterpolation bool                  `json:"enable_interpolation"`
	EnableMasking       bool                  `json:"enable_masking"`
	MaskingConfig       *domain.MaskingConfig `json:"masking_config,omitempty"`
}

func (r *CreateCameraConfigRequest) ToDomain() domain.CameraConfig {
	return domain.CameraConfig{
		ID:                  r.ID,
		Name:                r.Name,
		CameraID:            r.CameraID,
		Position:            r.Position,
		EnableHeatmap:       r.EnableHeatmap,
		HeatmapConfig:       r.HeatmapConfig,
		EnableInterpolation: r.EnableInterpolation,
		EnableMasking:       r.EnableMasking,
		MaskingConfig:       r.MaskingConfig,
	}
}

type UpdateCameraConfigRequest struct {
	Name                string                `json:"name" validate:"required"`
	CameraID            string                `json:"camera_id" validate:"required"`
	Position            domain.Position       `json:"position" validate:"required"`
	EnableHeatmap       bool                  `json:"enable_heatmap"`
	HeatmapConfig       *[4]int               `json:"heatmap_config,omitempty"`
	EnableInterpolation bool                  `json:"enable_interpolation"`
	EnableMasking       bool                  `json:"enable_masking"`
	MaskingConfig       *domain.MaskingConfig `json:"masking_config,omitempty"`
}

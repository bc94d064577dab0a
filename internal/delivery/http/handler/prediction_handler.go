package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tensora-ai/cc-backend/internal/pkg/utils"
	"github.com/tensora-ai/cc-backend/internal/pkg/validator"
	"github.com/tensora-ai/cc-backend/internal/usecase"
	"github.com/tensora-ai/cc-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// PredictionHandler serves the aggregation endpoint and sample ingest.
type PredictionHandler struct {
	predictionUC *usecase.PredictionUseCase
	logger       *zap.Logger
}

func NewPredictionHandler(predictionUC *usecase.PredictionUseCase, logger *zap.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictionUC: predictionUC,
		logger:       logger,
	}
}

// AggregateTimeSeries godoc
// @Summary Aggregate occupancy time series for an area
// @Description Combines all camera streams of an area into one smoothed occupancy series over the requested lookback window
// @Tags Predictions
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param area_id path string true "Area ID"
// @Param request body dto.AggregateTimeSeriesRequest true "Aggregation window"
// @Success 200 {object} utils.SuccessResponse{data=dto.AggregateTimeSeriesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse "Some cameras have data, others none"
// @Failure 500 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id}/areas/{area_id}/predictions/aggregate [post]
func (h *PredictionHandler) AggregateTimeSeries(c *fiber.Ctx) error {
	projectID := c.Params("project_id")
	areaID := c.Params("area_id")

	var req dto.AggregateTimeSeriesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	started := time.Now()
	result, err := h.predictionUC.AggregateTimeSeries(c.Context(), projectID, areaID, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    len(result.TimeSeries),
		TimeMSec: float64(time.Since(started).Microseconds()) / 1000.0,
	})
}

// InsertPrediction godoc
// @Summary Store one raw prediction sample
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body dto.InsertPredictionRequest true "Sample with count breakdown"
// @Success 201 {object} utils.SuccessResponse{data=dto.InsertPredictionResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/predictions [post]
func (h *PredictionHandler) InsertPrediction(c *fiber.Ctx) error {
	var req dto.InsertPredictionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.predictionUC.InsertPrediction(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: result})
}

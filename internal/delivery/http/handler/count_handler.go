package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tensora-ai/cc-backend/internal/pkg/utils"
	"github.com/tensora-ai/cc-backend/internal/pkg/validator"
	"github.com/tensora-ai/cc-backend/internal/usecase"
	"github.com/tensora-ai/cc-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// CountHandler serves the legacy count API consumed by older dashboards.
type CountHandler struct {
	countUC *usecase.CountUseCase
	logger  *zap.Logger
}

func NewCountHandler(countUC *usecase.CountUseCase, logger *zap.Logger) *CountHandler {
	return &CountHandler{
		countUC: countUC,
		logger:  logger,
	}
}

// SumPredictions godoc
// @Summary Aggregate occupancy series (legacy shape)
// @Description Same aggregation as the area endpoint, with project and area in the body and a bare predictions_sum list out
// @Tags Count
// @Accept json
// @Produce json
// @Param request body dto.SumPredictionsRequest true "Project, area and window"
// @Success 200 {object} utils.SuccessResponse{data=dto.SumPredictionsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/count/sum_predictions [post]
func (h *CountHandler) SumPredictions(c *fiber.Ctx) error {
	var req dto.SumPredictionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.countUC.SumPredictions(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.PredictionsSum),
	})
}

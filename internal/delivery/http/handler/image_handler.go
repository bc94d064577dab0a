package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tensora-ai/cc-backend/internal/domain"
	"github.com/tensora-ai/cc-backend/internal/pkg/utils"
	"github.com/tensora-ai/cc-backend/internal/pkg/validator"
	"github.com/tensora-ai/cc-backend/internal/usecase"
	"github.com/tensora-ai/cc-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// ImageHandler serves heatmap images and raw blobs.
type ImageHandler struct {
	imageUC *usecase.ImageUseCase
	logger  *zap.Logger
}

func NewImageHandler(imageUC *usecase.ImageUseCase, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		imageUC: imageUC,
		logger:  logger,
	}
}

// GetImage godoc
// @Summary Get an image blob
// @Tags Images
// @Produce octet-stream
// @Param name path string true "Blob name"
// @Success 200 {file} binary
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/images/{name} [get]
func (h *ImageHandler) GetImage(c *fiber.Ctx) error {
	blob, err := h.imageUC.GetImage(c.Context(), c.Params("name"))
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, blob.ContentType)
	return c.Send(blob.Data)
}

// GetBlob godoc
// @Summary Get a blob from a container
// @Tags Images
// @Produce octet-stream
// @Param container path string true "Container name" Enums(images, predictions)
// @Param name path string true "Blob name"
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/blobs/{container}/{name} [get]
func (h *ImageHandler) GetBlob(c *fiber.Ctx) error {
	container := domain.Container(c.Params("container"))
	name := c.Params("name")

	blob, err := h.imageUC.GetBlob(c.Context(), container, name)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, blob.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name))
	return c.Send(blob.Data)
}

// LookupHeatmaps godoc
// @Summary Resolve available heatmap blobs for camera timestamps
// @Tags Images
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param request body dto.HeatmapLookupRequest true "Camera timestamps from an aggregation response"
// @Success 200 {object} utils.SuccessResponse{data=dto.HeatmapLookupResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id}/images/lookup [post]
func (h *ImageHandler) LookupHeatmaps(c *fiber.Ctx) error {
	var req dto.HeatmapLookupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.imageUC.FindHeatmaps(c.Context(), c.Params("project_id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Names),
	})
}

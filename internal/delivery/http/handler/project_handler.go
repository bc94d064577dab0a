package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tensora-ai/cc-backend/internal/pkg/utils"
	"github.com/tensora-ai/cc-backend/internal/pkg/validator"
	"github.com/tensora-ai/cc-backend/internal/usecase"
	"github.com/tensora-ai/cc-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// ProjectHandler serves project configuration CRUD.
type ProjectHandler struct {
	projectUC *usecase.ProjectUseCase
	logger    *zap.Logger
}

func NewProjectHandler(projectUC *usecase.ProjectUseCase, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectUC: projectUC,
		logger:    logger,
	}
}

// GetProject godoc
// @Summary Get a project
// @Tags Projects
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Project}
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	project, err := h.projectUC.GetProject(c.Context(), c.Params("project_id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, project, nil)
}

// ListProjects godoc
// @Summary List all projects
// @Tags Projects
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ProjectListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	result, err := h.projectUC.ListProjects(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Projects),
	})
}

// CreateProject godoc
// @Summary Create a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param request body dto.CreateProjectRequest true "Project"
// @Success 201 {object} utils.SuccessResponse{data=domain.Project}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	project, err := h.projectUC.CreateProject(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: project})
}

// UpdateProject godoc
// @Summary Rename a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param request body dto.UpdateProjectRequest true "New name"
// @Success 200 {object} utils.SuccessResponse{data=domain.Project}
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	project, err := h.projectUC.UpdateProject(c.Context(), c.Params("project_id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, project, nil)
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags Projects
// @Param project_id path string true "Project ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	if err := h.projectUC.DeleteProject(c.Context(), c.Params("project_id")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cameras

// AddCamera godoc
// @Summary Add a camera to a project
// @Tags Cameras
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param request body dto.CreateCameraRequest true "Camera"
// @Success 201 {object} utils.SuccessResponse{data=domain.Project}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id}/cameras [post]
func (h *ProjectHandler) AddCamera(c *fiber.Ctx) error {
	var req dto.CreateCameraRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	project, err := h.projectUC.AddCamera(c.Context(), c.Params("project_id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: project})
}

// UpdateCamera godoc
// @Summary Update a camera
// @Tags Cameras
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param camera_id path string true "Camera ID"
// @Param request body dto.UpdateCameraRequest true "Camera"
// @Success 200 {object} utils.SuccessResponse{data=domain.Project}
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id}/cameras/{camera_id} [put]
func (h *ProjectHandler) UpdateCamera(c *fiber.Ctx) error {
	var req dto.UpdateCameraRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	project, err := h.projectUC.UpdateCamera(
		c.Context(), c.Params("project_id"), c.Params("camera_id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, project, nil)
}

// DeleteCamera godoc
// @Summary Remove a camera from a project
// @Tags Cameras
// @Produce json
// @Param project_id path string true "Project ID"
// @Param camera_id path string true "Camera ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Project}
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id}/cameras/{camera_id} [delete]
func (h *ProjectHandler) DeleteCamera(c *fiber.Ctx) error {
	project, err := h.projectUC.DeleteCamera(
		c.Context(), c.Params("project_id"), c.Params("camera_id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, project, nil)
}

// Areas

// AddArea godoc
// @Summary Add an area to a project
// @Tags Areas
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param request body dto.CreateAreaRequest true "Area"
// @Success 201 {object} utils.SuccessResponse{data=domain.Project}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id}/areas [post]
func (h *ProjectHandler) AddArea(c *fiber.Ctx) error {
	var req dto.CreateAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	project, err := h.projectUC.AddArea(c.Context(), c.Params("project_id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: project})
}

// UpdateArea godoc
// @Summary Rename an area
// @Tags Areas
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param area_id path string true "Area ID"
// @Param request body dto.UpdateAreaRequest true "New name"
// @Success 200 {object} utils.SuccessResponse{data=domain.Project}
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id}/areas/{area_id} [put]
func (h *ProjectHandler) UpdateArea(c *fiber.Ctx) error {
	var req dto.UpdateAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	project, err := h.projectUC.UpdateArea(
		c.Context(), c.Params("project_id"), c.Params("area_id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, project, nil)
}

// DeleteArea godoc
// @Summary Remove an area from a project
// @Tags Areas
// @Produce json
// @Param project_id path string true "Project ID"
// @Param area_id path string true "Area ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Project}
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id}/areas/{area_id} [delete]
func (h *ProjectHandler) DeleteArea(c *fiber.Ctx) error {
	project, err := h.projectUC.DeleteArea(
		c.Context(), c.Params("project_id"), c.Params("area_id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, project, nil)
}

// Camera configs

// AddCameraConfig godoc
// @Summary Bind a camera position to an area
// @Tags Camera configs
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param area_id path string true "Area ID"
// @Param request body dto.CreateCameraConfigRequest true "Camera config"
// @Success 201 {object} utils.SuccessResponse{data=domain.Project}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id}/areas/{area_id}/camera_configs [post]
func (h *ProjectHandler) AddCameraConfig(c *fiber.Ctx) error {
	var req dto.CreateCameraConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	project, err := h.projectUC.AddCameraConfig(
		c.Context(), c.Params("project_id"), c.Params("area_id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: project})
}

// UpdateCameraConfig godoc
// @Summary Update a camera config
// @Tags Camera configs
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param area_id path string true "Area ID"
// @Param config_id path string true "Camera config ID"
// @Param request body dto.UpdateCameraConfigRequest true "Camera config"
// @Success 200 {object} utils.SuccessResponse{data=domain.Project}
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id}/areas/{area_id}/camera_configs/{config_id} [put]
func (h *ProjectHandler) UpdateCameraConfig(c *fiber.Ctx) error {
	var req dto.UpdateCameraConfigRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	project, err := h.projectUC.UpdateCameraConfig(
		c.Context(), c.Params("project_id"), c.Params("area_id"), c.Params("config_id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, project, nil)
}

// DeleteCameraConfig godoc
// @Summary Remove a camera config from an area
// @Tags Camera configs
// @Produce json
// @Param project_id path string true "Project ID"
// @Param area_id path string true "Area ID"
// @Param config_id path string true "Camera config ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Project}
// @Failure 404 {object} utils.ErrorResponse
// @Security api_key
// @Router /api/v1/projects/{project_id}/areas/{area_id}/camera_configs/{config_id} [delete]
func (h *ProjectHandler) DeleteCameraConfig(c *fiber.Ctx) error {
	project, err := h.projectUC.DeleteCameraConfig(
		c.Context(), c.Params("project_id"), c.Params("area_id"), c.Params("config_id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, project, nil)
}

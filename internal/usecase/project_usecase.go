package usecase

import (
	"context"
	"fmt"

	"github.com/tensora-ai/cc-backend/internal/domain"
	"github.com/tensora-ai/cc-backend/internal/domain/repository"
	"github.com/tensora-ai/cc-backend/internal/pkg/errors"
	"github.com/tensora-ai/cc-backend/internal/usecase/dto"
	"go.uber.org/zap"
)

// ProjectUseCase manages project configuration documents: projects,
// their cameras, areas and the camera configs binding the two. Every
// mutation rebuilds the camera-area mapping so aggregation always sees
// current configuration.
type ProjectUseCase struct {
	projectRepo repository.ProjectRepository
	mappingUC   *MappingUseCase
	logger      *zap.Logger
}

func NewProjectUseCase(
	projectRepo repository.ProjectRepository,
	mappingUC *MappingUseCase,
	logger *zap.Logger,
) *ProjectUseCase {
	return &ProjectUseCase{
		projectRepo: projectRepo,
		mappingUC:   mappingUC,
		logger:      logger,
	}
}

func (uc *ProjectUseCase) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	project, err := uc.projectRepo.GetProject(ctx, id)
	if err != nil {
		return nil, errors.ErrDatabaseError
	}
	if project == nil {
		return nil, errors.ErrProjectNotFound.WithMessage(
			fmt.Sprintf("Project '%s' not found", id))
	}
	return project, nil
}

func (uc *ProjectUseCase) ListProjects(ctx context.Context) (*dto.ProjectListResponse, error) {
	projects, err := uc.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, errors.ErrDatabaseError
	}
	return &dto.ProjectListResponse{Projects: projects}, nil
}

func (uc *ProjectUseCase) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	existing, err := uc.projectRepo.GetProject(ctx, req.ID)
	if err != nil {
		return nil, errors.ErrDatabaseError
	}
	if existing != nil {
		return nil, errors.ErrProjectExists.WithMessage(
			fmt.Sprintf("Project '%s' already exists", req.ID))
	}

	project := &domain.Project{
		ID:      req.ID,
		Name:    req.Name,
		Cameras: []domain.Camera{},
		Areas:   []domain.Area{},
	}
	if err := uc.projectRepo.CreateProject(ctx, project); err != nil {
		return nil, errors.ErrDatabaseError
	}

	uc.refreshMapping(ctx, project.ID, "create project")
	return project, nil
}

func (uc *ProjectUseCase) UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	return uc.mutate(ctx, id, "update project", func(p *domain.Project) error {
		p.Name = req.Name
		return nil
	})
}

func (uc *ProjectUseCase) DeleteProject(ctx context.Context, id string) error {
	deleted, err := uc.projectRepo.DeleteProject(ctx, id)
	if err != nil {
		return errors.ErrDatabaseError
	}
	if !deleted {
		return errors.ErrProjectNotFound.WithMessage(
			fmt.Sprintf("Project '%s' not found", id))
	}

	uc.refreshMapping(ctx, id, "delete project")
	return nil
}

// Cameras

func (uc *ProjectUseCase) AddCamera(ctx context.Context, projectID string, req dto.CreateCameraRequest) (*domain.Project, error) {
	camera := req.ToDomain()
	if err := camera.ValidateSchedules(); err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	return uc.mutate(ctx, projectID, "add camera", func(p *domain.Project) error {
		if p.Camera(camera.ID) != nil {
			return errors.ErrInvalidRequest.WithMessage(
				fmt.Sprintf("Camera '%s' already exists in project '%s'", camera.ID, projectID))
		}
		p.Cameras = append(p.Cameras, camera)
		return nil
	})
}

func (uc *ProjectUseCase) UpdateCamera(ctx context.Context, projectID, cameraID string, req dto.UpdateCameraRequest) (*domain.Project, error) {
	updated := domain.Camera{
		ID:             cameraID,
		Name:           req.Name,
		Resolution:     req.Resolution,
		SensorSize:     req.SensorSize,
		Coordinates3D:  req.Coordinates3D,
		DefaultModel:   req.DefaultModel,
		ModelSchedules: req.ModelSchedules,
	}
	if err := updated.ValidateSchedules(); err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	return uc.mutate(ctx, projectID, "update camera", func(p *domain.Project) error {
		camera := p.Camera(cameraID)
		if camera == nil {
			return errors.ErrCameraNotFound.WithMessage(
				fmt.Sprintf("Camera '%s' not found in project '%s'", cameraID, projectID))
		}
		*camera = updated
		return nil
	})
}

func (uc *ProjectUseCase) DeleteCamera(ctx context.Context, projectID, cameraID string) (*domain.Project, error) {
	return uc.mutate(ctx, projectID, "delete camera", func(p *domain.Project) error {
		for i := range p.Cameras {
			if p.Cameras[i].ID == cameraID {
				p.Cameras = append(p.Cameras[:i], p.Cameras[i+1:]...)
				return nil
			}
		}
		return errors.ErrCameraNotFound.WithMessage(
			fmt.Sprintf("Camera '%s' not found in project '%s'", cameraID, projectID))
	})
}

// Areas

func (uc *ProjectUseCase) AddArea(ctx context.Context, projectID string, req dto.CreateAreaRequest) (*domain.Project, error) {
	return uc.mutate(ctx, projectID, "add area", func(p *domain.Project) error {
		if p.Area(req.ID) != nil {
			return errors.ErrInvalidRequest.WithMessage(
				fmt.Sprintf("Area '%s' already exists in project '%s'", req.ID, projectID))
		}
		p.Areas = append(p.Areas, domain.Area{
			ID:            req.ID,
			Name:          req.Name,
			CameraConfigs: []domain.CameraConfig{},
		})
		return nil
	})
}

func (uc *ProjectUseCase) UpdateArea(ctx context.Context, projectID, areaID string, req dto.UpdateAreaRequest) (*domain.Project, error) {
	return uc.mutate(ctx, projectID, "update area", func(p *domain.Project) error {
		area := p.Area(areaID)
		if area == nil {
			return errors.ErrAreaNotFound.WithMessage(
				fmt.Sprintf("Area '%s' not found in project '%s'", areaID, projectID))
		}
		area.Name = req.Name
		return nil
	})
}

func (uc *ProjectUseCase) DeleteArea(ctx context.Context, projectID, areaID string) (*domain.Project, error) {
	return uc.mutate(ctx, projectID, "delete area", func(p *domain.Project) error {
		for i := range p.Areas {
			if p.Areas[i].ID == areaID {
				p.Areas = append(p.Areas[:i], p.Areas[i+1:]...)
				return nil
			}
		}
		return errors.ErrAreaNotFound.WithMessage(
			fmt.Sprintf("Area '%s' not found in project '%s'", areaID, projectID))
	})
}

// Camera configs

func (uc *ProjectUseCase) AddCameraConfig(ctx context.Context, projectID, areaID string, req dto.CreateCameraConfigRequest) (*domain.Project, error) {
	return uc.mutate(ctx, projectID, "add camera config", func(p *domain.Project) error {
		area := p.Area(areaID)
		if area == nil {
			return errors.ErrAreaNotFound.WithMessage(
				fmt.Sprintf("Area '%s' not found in project '%s'", areaID, projectID))
		}
		if p.Camera(req.CameraID) == nil {
			return errors.ErrCameraNotFound.WithMessage(
				fmt.Sprintf("Camera '%s' not found in project '%s'", req.CameraID, projectID))
		}
		for _, cfg := range area.CameraConfigs {
			if cfg.ID == req.ID {
				return errors.ErrInvalidRequest.WithMessage(
					fmt.Sprintf("Camera config '%s' already exists in area '%s'", req.ID, areaID))
			}
		}
		area.CameraConfigs = append(area.CameraConfigs, req.ToDomain())
		return nil
	})
}

func (uc *ProjectUseCase) UpdateCameraConfig(ctx context.Context, projectID, areaID, configID string, req dto.UpdateCameraConfigRequest) (*domain.Project, error) {
	return uc.mutate(ctx, projectID, "update camera config", func(p *domain.Project) error {
		area := p.Area(areaID)
		if area == nil {
			return errors.ErrAreaNotFound.WithMessage(
				fmt.Sprintf("Area '%s' not found in project '%s'", areaID, projectID))
		}
		if p.Camera(req.CameraID) == nil {
			return errors.ErrCameraNotFound.WithMessage(
				fmt.Sprintf("Camera '%s' not found in project '%s'", req.CameraID, projectID))
		}
		for i := range area.CameraConfigs {
			if area.CameraConfigs[i].ID == configID {
				area.CameraConfigs[i] = domain.CameraConfig{
					ID:                  configID,
					Name:                req.Name,
					CameraID:            req.CameraID,
					Position:            req.Position,
					EnableHeatmap:       req.EnableHeatmap,
					HeatmapConfig:       req.HeatmapConfig,
					EnableInterpolation: req.EnableInterpolation,
					EnableMasking:       req.EnableMasking,
					MaskingConfig:       req.MaskingConfig,
				}
				return nil
			}
		}
		return errors.ErrCameraConfigNotFound.WithMessage(
			fmt.Sprintf("Camera config '%s' not found in area '%s'", configID, areaID))
	})
}

func (uc *ProjectUseCase) DeleteCameraConfig(ctx context.Context, projectID, areaID, configID string) (*domain.Project, error) {
	return uc.mutate(ctx, projectID, "delete camera config", func(p *domain.Project) error {
		area := p.Area(areaID)
		if area == nil {
			return errors.ErrAreaNotFound.WithMessage(
				fmt.Sprintf("Area '%s' not found in project '%s'", areaID, projectID))
		}
		for i := range area.CameraConfigs {
			if area.CameraConfigs[i].ID == configID {
				area.CameraConfigs = append(area.CameraConfigs[:i], area.CameraConfigs[i+1:]...)
				return nil
			}
		}
		return errors.ErrCameraConfigNotFound.WithMessage(
			fmt.Sprintf("Camera config '%s' not found in area '%s'", configID, areaID))
	})
}

// mutate loads the project, applies fn to the document, stores it back
// and refreshes the camera-area mapping.
func (uc *ProjectUseCase) mutate(
	ctx context.Context,
	projectID, operation string,
	fn func(*domain.Project) error,
) (*domain.Project, error) {
	project, err := uc.projectRepo.GetProject(ctx, projectID)
	if err != nil {
		return nil, errors.ErrDatabaseError
	}
	if project == nil {
		return nil, errors.ErrProjectNotFound.WithMessage(
			fmt.Sprintf("Project '%s' not found", projectID))
	}

	if err := fn(project); err != nil {
		return nil, err
	}

	if err := uc.projectRepo.UpdateProject(ctx, project); err != nil {
		return nil, errors.ErrDatabaseError
	}

	uc.refreshMapping(ctx, projectID, operation)
	return project, nil
}

func (uc *ProjectUseCase) refreshMapping(ctx context.Context, projectID, operation string) {
	if err := uc.mappingUC.Invalidate(ctx); err != nil {
		// The snapshot stays stale until the next successful rebuild;
		// the stored document is already up to date.
		uc.logger.Warn("Failed to refresh camera-area mapping",
			zap.String("project_id", projectID),
			zap.String("operation", operation),
			zap.Error(err),
		)
	}
}

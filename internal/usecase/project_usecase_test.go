package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tensora-ai/cc-backend/internal/domain"
	apperrors "github.com/tensora-ai/cc-backend/internal/pkg/errors"
	"github.com/tensora-ai/cc-backend/internal/usecase"
	"github.com/tensora-ai/cc-backend/internal/usecase/dto"
)

func newProjectUseCase(projectRepo *MockProjectRepository) *usecase.ProjectUseCase {
	mappingUC := usecase.NewMappingUseCase(projectRepo, nil, zap.NewNop(), time.Minute)
	return usecase.NewProjectUseCase(projectRepo, mappingUC, zap.NewNop())
}

func TestProjectUseCase_CreateProject(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		projectRepo := &MockProjectRepository{}
		projectRepo.On("GetProject", mock.Anything, "new_venue").Return(nil, nil)
		projectRepo.On("CreateProject", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
			return p.ID == "new_venue" && p.Name == "New Venue"
		})).Return(nil)
		projectRepo.On("ListProjects", mock.Anything).Return([]*domain.Project{}, nil)

		uc := newProjectUseCase(projectRepo)
		project, err := uc.CreateProject(ctx, dto.CreateProjectRequest{ID: "new_venue", Name: "New Venue"})
		require.NoError(t, err)
		assert.Equal(t, "new_venue", project.ID)
		assert.NotNil(t, project.Cameras)
		assert.NotNil(t, project.Areas)
		projectRepo.AssertExpectations(t)
	})

	t.Run("duplicate id", func(t *testing.T) {
		projectRepo := &MockProjectRepository{}
		projectRepo.On("GetProject", mock.Anything, "city_festival").Return(testProject(), nil)

		uc := newProjectUseCase(projectRepo)
		_, err := uc.CreateProject(ctx, dto.CreateProjectRequest{ID: "city_festival", Name: "Dup"})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrProjectExists.Code, appErr.Code)
		projectRepo.AssertNotCalled(t, "CreateProject", mock.Anything, mock.Anything)
	})
}

func TestProjectUseCase_DeleteProject(t *testing.T) {
	ctx := context.Background()

	t.Run("missing project", func(t *testing.T) {
		projectRepo := &MockProjectRepository{}
		projectRepo.On("DeleteProject", mock.Anything, "ghost").Return(false, nil)

		uc := newProjectUseCase(projectRepo)
		err := uc.DeleteProject(ctx, "ghost")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrProjectNotFound.Code, appErr.Code)
	})

	t.Run("success refreshes the mapping", func(t *testing.T) {
		projectRepo := &MockProjectRepository{}
		projectRepo.On("DeleteProject", mock.Anything, "city_festival").Return(true, nil)
		projectRepo.On("ListProjects", mock.Anything).Return([]*domain.Project{}, nil)

		uc := newProjectUseCase(projectRepo)
		require.NoError(t, uc.DeleteProject(ctx, "city_festival"))
		projectRepo.AssertCalled(t, "ListProjects", mock.Anything)
	})
}

func TestProjectUseCase_AddCamera(t *testing.T) {
	ctx := context.Background()

	t.Run("overlapping schedules rejected before the store is touched", func(t *testing.T) {
		projectRepo := &MockProjectRepository{}
		uc := newProjectUseCase(projectRepo)

		_, err := uc.AddCamera(ctx, "city_festival", dto.CreateCameraRequest{
			ID:         "cam_c",
			Name:       "West entrance",
			Resolution: [2]int{1920, 1080},
			ModelSchedules: []domain.ModelSchedule{
				{
					ID: "day", Name: "Day",
					Start: domain.TimeOfDay{Hour: 8},
					End:   domain.TimeOfDay{Hour: 20},
					Model: domain.ModelStandard,
				},
				{
					ID: "evening", Name: "Evening",
					Start: domain.TimeOfDay{Hour: 18},
					End:   domain.TimeOfDay{Hour: 23},
					Model: domain.ModelLightshow,
				},
			},
		})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidRequest.Code, appErr.Code)
		projectRepo.AssertNotCalled(t, "GetProject", mock.Anything, mock.Anything)
	})

	t.Run("success persists the document and rebuilds the mapping", func(t *testing.T) {
		projectRepo := &MockProjectRepository{}
		projectRepo.On("GetProject", mock.Anything, "city_festival").Return(testProject(), nil)
		projectRepo.On("UpdateProject", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
			return p.Camera("cam_c") != nil
		})).Return(nil)
		projectRepo.On("ListProjects", mock.Anything).Return([]*domain.Project{}, nil)

		uc := newProjectUseCase(projectRepo)
		project, err := uc.AddCamera(ctx, "city_festival", dto.CreateCameraRequest{
			ID:         "cam_c",
			Name:       "West entrance",
			Resolution: [2]int{1280, 720},
		})
		require.NoError(t, err)
		assert.Len(t, project.Cameras, 3)
		projectRepo.AssertExpectations(t)
	})

	t.Run("duplicate camera id", func(t *testing.T) {
		projectRepo := &MockProjectRepository{}
		projectRepo.On("GetProject", mock.Anything, "city_festival").Return(testProject(), nil)

		uc := newProjectUseCase(projectRepo)
		_, err := uc.AddCamera(ctx, "city_festival", dto.CreateCameraRequest{
			ID:         "cam_a",
			Name:       "Duplicate",
			Resolution: [2]int{1920, 1080},
		})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidRequest.Code, appErr.Code)
		projectRepo.AssertNotCalled(t, "UpdateProject", mock.Anything, mock.Anything)
	})
}

func TestProjectUseCase_UpdateCamera(t *testing.T) {
	projectRepo := &MockProjectRepository{}
	projectRepo.On("GetProject", mock.Anything, "city_festival").Return(testProject(), nil)

	uc := newProjectUseCase(projectRepo)
	_, err := uc.UpdateCamera(context.Background(), "city_festival", "cam_z", dto.UpdateCameraRequest{
		Name:       "Renamed",
		Resolution: [2]int{1920, 1080},
	})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCameraNotFound.Code, appErr.Code)
}

func TestProjectUseCase_CameraConfigs(t *testing.T) {
	ctx := context.Background()

	t.Run("config must reference an existing camera", func(t *testing.T) {
		projectRepo := &MockProjectRepository{}
		projectRepo.On("GetProject", mock.Anything, "city_festival").Return(testProject(), nil)

		uc := newProjectUseCase(projectRepo)
		_, err := uc.AddCameraConfig(ctx, "city_festival", "main_stage", dto.CreateCameraConfigRequest{
			ID:       "cfg_c",
			Name:     "Ghost view",
			CameraID: "cam_ghost",
			Position: domain.Position{Name: "east"},
		})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrCameraNotFound.Code, appErr.Code)
		projectRepo.AssertNotCalled(t, "UpdateProject", mock.Anything, mock.Anything)
	})

	t.Run("delete missing config", func(t *testing.T) {
		projectRepo := &MockProjectRepository{}
		projectRepo.On("GetProject", mock.Anything, "city_festival").Return(testProject(), nil)

		uc := newProjectUseCase(projectRepo)
		_, err := uc.DeleteCameraConfig(ctx, "city_festival", "main_stage", "cfg_ghost")

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrCameraConfigNotFound.Code, appErr.Code)
	})

	t.Run("delete config", func(t *testing.T) {
		projectRepo := &MockProjectRepository{}
		projectRepo.On("GetProject", mock.Anything, "city_festival").Return(testProject(), nil)
		projectRepo.On("UpdateProject", mock.Anything, mock.Anything).Return(nil)
		projectRepo.On("ListProjects", mock.Anything).Return([]*domain.Project{}, nil)

		uc := newProjectUseCase(projectRepo)
		project, err := uc.DeleteCameraConfig(ctx, "city_festival", "main_stage", "cfg_b")
		require.NoError(t, err)
		assert.Len(t, project.Area("main_stage").CameraConfigs, 1)
	})
}

func TestProjectUseCase_Areas(t *testing.T) {
	ctx := context.Background()

	t.Run("add area", func(t *testing.T) {
		projectRepo := &MockProjectRepository{}
		projectRepo.On("GetProject", mock.Anything, "city_festival").Return(testProject(), nil)
		projectRepo.On("UpdateProject", mock.Anything, mock.Anything).Return(nil)
		projectRepo.On("ListProjects", mock.Anything).Return([]*domain.Project{}, nil)

		uc := newProjectUseCase(projectRepo)
		project, err := uc.AddArea(ctx, "city_festival", dto.CreateAreaRequest{ID: "entrance", Name: "Entrance"})
		require.NoError(t, err)
		assert.NotNil(t, project.Area("entrance"))
	})

	t.Run("duplicate area id", func(t *testing.T) {
		projectRepo := &MockProjectRepository{}
		projectRepo.On("GetProject", mock.Anything, "city_festival").Return(testProject(), nil)

		uc := newProjectUseCase(projectRepo)
		_, err := uc.AddArea(ctx, "city_festival", dto.CreateAreaRequest{ID: "main_stage", Name: "Dup"})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidRequest.Code, appErr.Code)
	})
}

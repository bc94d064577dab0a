package usecase_test

import (
	"context"
	"errors"
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

// testProject covers one area with two camera positions, one masked.
func testProject() *domain.Project {
	return &domain.Project{
		ID:   "city_festival",
		Name: "City Festival",
		Cameras: []domain.Camera{
			{ID: "cam_a", Name: "North entrance", Resolution: [2]int{1920, 1080}},
			{ID: "cam_b", Name: "South entrance", Resolution: [2]int{1920, 1080}},
		},
		Areas: []domain.Area{
			{
				ID:   "main_stage",
				Name: "Main Stage",
				CameraConfigs: []domain.CameraConfig{
					{
						ID:            "cfg_a",
						Name:          "North view",
						CameraID:      "cam_a",
						Position:      domain.Position{Name: "north"},
						EnableMasking: true,
					},
					{
						ID:       "cfg_b",
						Name:     "South view",
						CameraID: "cam_b",
						Position: domain.Position{Name: "south"},
					},
				},
			},
		},
	}
}

func newPredictionUseCase(t *testing.T) (*usecase.PredictionUseCase, *MockPredictionRepository) {
	t.Helper()

	projectRepo := &MockProjectRepository{}
	projectRepo.On("ListProjects", mock.Anything).Return([]*domain.Project{testProject()}, nil)

	mappingUC := usecase.NewMappingUseCase(projectRepo, nil, zap.NewNop(), time.Minute)
	require.NoError(t, mappingUC.Refresh(context.Background()))

	predictionRepo := &MockPredictionRepository{}
	return usecase.NewPredictionUseCase(predictionRepo, mappingUC, zap.NewNop()), predictionRepo
}

func TestPredictionUseCase_AggregateTimeSeries(t *testing.T) {
	ctx := context.Background()
	end := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	start := end.Add(-30 * time.Minute)

	camA := domain.CameraPosition{CameraID: "cam_a", Position: "north", EnableMasking: true}
	camB := domain.CameraPosition{CameraID: "cam_b", Position: "south"}

	t.Run("sums two cameras over the observed span", func(t *testing.T) {
		uc, predictionRepo := newPredictionUseCase(t)

		// Camera A climbs from 10 to 20 across the window, camera B
		// reported a single count of 5.
		predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camA, start, end).
			Return(&domain.PredictionData{
				CameraID:   "cam_a",
				Position:   "north",
				Timestamps: []time.Time{start, end},
				Counts:     []float64{10, 20},
			}, nil)
		predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camB, start, end).
			Return(&domain.PredictionData{
				CameraID:   "cam_b",
				Position:   "south",
				Timestamps: []time.Time{start.Add(15 * time.Minute)},
				Counts:     []float64{5},
			}, nil)

		res, err := uc.AggregateTimeSeries(ctx, "city_festival", "main_stage",
			dto.AggregateTimeSeriesRequest{EndDate: end, LookbackHours: ptrFloat64(0.5)})
		require.NoError(t, err)

		// 120 points per hour over half an hour
		require.Len(t, res.TimeSeries, 60)

		first := res.TimeSeries[0]
		last := res.TimeSeries[len(res.TimeSeries)-1]
		assert.True(t, first.Timestamp.Equal(start))
		assert.True(t, last.Timestamp.Equal(end))
		assert.Equal(t, 15, first.Value)
		assert.Equal(t, 25, last.Value)

		for i := 1; i < len(res.TimeSeries); i++ {
			assert.GreaterOrEqual(t, res.TimeSeries[i].Value, res.TimeSeries[i-1].Value)
			assert.True(t, res.TimeSeries[i].Timestamp.After(res.TimeSeries[i-1].Timestamp))
		}

		// Raw samples are reported in camera order
		require.Len(t, res.CameraTimestamps, 3)
		assert.Equal(t, "cam_a", res.CameraTimestamps[0].CameraID)
		assert.Equal(t, "cam_a", res.CameraTimestamps[1].CameraID)
		assert.Equal(t, "cam_b", res.CameraTimestamps[2].CameraID)
	})

	t.Run("single-sample cameras yield a constant series", func(t *testing.T) {
		uc, predictionRepo := newPredictionUseCase(t)

		sampleTS := start.Add(10 * time.Minute)
		predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camA, start, end).
			Return(&domain.PredictionData{
				CameraID: "cam_a", Position: "north",
				Timestamps: []time.Time{sampleTS}, Counts: []float64{3},
			}, nil)
		predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camB, start, end).
			Return(&domain.PredictionData{
				CameraID: "cam_b", Position: "south",
				Timestamps: []time.Time{sampleTS}, Counts: []float64{5},
			}, nil)

		res, err := uc.AggregateTimeSeries(ctx, "city_festival", "main_stage",
			dto.AggregateTimeSeriesRequest{
				EndDate:           end,
				LookbackHours:     ptrFloat64(0.5),
				HalfMovingAvgSize: ptrInt(2),
			})
		require.NoError(t, err)

		require.Len(t, res.TimeSeries, 60)
		for _, point := range res.TimeSeries {
			assert.Equal(t, 8, point.Value)
			assert.True(t, point.Timestamp.Equal(sampleTS))
		}
	})

	t.Run("negative extrapolation clamps to zero", func(t *testing.T) {
		uc, predictionRepo := newPredictionUseCase(t)

		// Camera A's last segment falls steeply; extrapolated to the end
		// of camera B's coverage its value goes well below zero.
		predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camA, start, end).
			Return(&domain.PredictionData{
				CameraID: "cam_a", Position: "north",
				Timestamps: []time.Time{start, start.Add(10 * time.Minute)},
				Counts:     []float64{20, 0},
			}, nil)
		predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camB, start, end).
			Return(&domain.PredictionData{
				CameraID: "cam_b", Position: "south",
				Timestamps: []time.Time{end}, Counts: []float64{0},
			}, nil)

		res, err := uc.AggregateTimeSeries(ctx, "city_festival", "main_stage",
			dto.AggregateTimeSeriesRequest{EndDate: end, LookbackHours: ptrFloat64(0.5)})
		require.NoError(t, err)

		require.Len(t, res.TimeSeries, 60)
		assert.Equal(t, 20, res.TimeSeries[0].Value)
		assert.Equal(t, 0, res.TimeSeries[len(res.TimeSeries)-1].Value)
	})

	t.Run("all cameras empty returns an empty series", func(t *testing.T) {
		uc, predictionRepo := newPredictionUseCase(t)

		predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camA, start, end).
			Return(&domain.PredictionData{CameraID: "cam_a", Position: "north"}, nil)
		predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camB, start, end).
			Return(&domain.PredictionData{CameraID: "cam_b", Position: "south"}, nil)

		res, err := uc.AggregateTimeSeries(ctx, "city_festival", "main_stage",
			dto.AggregateTimeSeriesRequest{EndDate: end, LookbackHours: ptrFloat64(0.5)})
		require.NoError(t, err)

		assert.Empty(t, res.TimeSeries)
		assert.Empty(t, res.CameraTimestamps)
	})

	t.Run("partial data is refused and names the silent cameras", func(t *testing.T) {
		uc, predictionRepo := newPredictionUseCase(t)

		predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camA, start, end).
			Return(&domain.PredictionData{
				CameraID: "cam_a", Position: "north",
				Timestamps: []time.Time{start, end}, Counts: []float64{10, 20},
			}, nil)
		predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camB, start, end).
			Return(&domain.PredictionData{CameraID: "cam_b", Position: "south"}, nil)

		_, err := uc.AggregateTimeSeries(ctx, "city_festival", "main_stage",
			dto.AggregateTimeSeriesRequest{EndDate: end, LookbackHours: ptrFloat64(0.5)})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrPartialPredictionData.Code, appErr.Code)
		assert.Equal(t, 422, appErr.StatusCode)
		assert.Contains(t, appErr.Message, "cam_b@south")
		assert.Equal(t, []string{"cam_b@south"}, appErr.Details["missing_cameras"])
	})

	t.Run("fetch failure is a database error, not missing data", func(t *testing.T) {
		uc, predictionRepo := newPredictionUseCase(t)

		predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camA, start, end).
			Return(nil, errors.New("connection reset"))
		predictionRepo.On("FetchWindow", mock.Anything, "city_festival", "main_stage", camB, start, end).
			Return(&domain.PredictionData{CameraID: "cam_b", Position: "south"}, nil)

		_, err := uc.AggregateTimeSeries(ctx, "city_festival", "main_stage",
			dto.AggregateTimeSeriesRequest{EndDate: end, LookbackHours: ptrFloat64(0.5)})

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrDatabaseError.Code, appErr.Code)
	})

	t.Run("invalid parameters are rejected before any fetch", func(t *testing.T) {
		uc, predictionRepo := newPredictionUseCase(t)

		_, err := uc.AggregateTimeSeries(ctx, "city_festival", "main_stage",
			dto.AggregateTimeSeriesRequest{EndDate: end, LookbackHours: ptrFloat64(0)})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidRequest.Code, appErr.Code)

		_, err = uc.AggregateTimeSeries(ctx, "city_festival", "main_stage",
			dto.AggregateTimeSeriesRequest{EndDate: end, HalfMovingAvgSize: ptrInt(-1)})
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrInvalidRequest.Code, appErr.Code)

		predictionRepo.AssertNotCalled(t, "FetchWindow")
	})

	t.Run("unknown project", func(t *testing.T) {
		uc, _ := newPredictionUseCase(t)

		_, err := uc.AggregateTimeSeries(ctx, "no_such_project", "main_stage",
			dto.AggregateTimeSeriesRequest{EndDate: end})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrProjectNotFound.Code, appErr.Code)
	})

	t.Run("unknown area", func(t *testing.T) {
		uc, _ := newPredictionUseCase(t)

		_, err := uc.AggregateTimeSeries(ctx, "city_festival", "backstage",
			dto.AggregateTimeSeriesRequest{EndDate: end})
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ErrAreaNotFound.Code, appErr.Code)
	})
}

func TestPredictionUseCase_InsertPrediction(t *testing.T) {
	uc, predictionRepo := newPredictionUseCase(t)

	ts := time.Date(2024, 6, 1, 11, 45, 0, 0, time.UTC)
	predictionRepo.On("Insert", mock.Anything, mock.MatchedBy(func(r *domain.PredictionRecord) bool {
		return r.ID != "" &&
			r.Project == "city_festival" &&
			r.Camera == "cam_a" &&
			r.Position == "north" &&
			r.Timestamp.Equal(ts) &&
			r.Counts["total"] == 42
	})).Return(nil)

	res, err := uc.InsertPrediction(context.Background(), dto.InsertPredictionRequest{
		Project:   "city_festival",
		Camera:    "cam_a",
		Position:  "north",
		Timestamp: ts,
		Counts:    map[string]float64{"total": 42},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	predictionRepo.AssertExpectations(t)
}

package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tensora-ai/cc-backend/internal/domain"
)

func TestBuildProjectMapping(t *testing.T) {
	p := &domain.Project{
		ID: "venue",
		Areas: []domain.Area{
			{
				ID: "hall",
				CameraConfigs: []domain.CameraConfig{
					{ID: "c1", CameraID: "cam_1", Position: domain.Position{Name: "wide"}, EnableMasking: true},
					{ID: "c2", CameraID: "cam_2", Position: domain.Position{Name: "close"}},
				},
			},
			{ID: "lobby"},
		},
	}

	pm := domain.BuildProjectMapping(p)
	assert.Equal(t, "venue", pm.ProjectID)

	hall := pm.Area("hall")
	require.NotNil(t, hall)
	require.Len(t, hall.Cameras, 2)
	assert.Equal(t, domain.CameraPosition{CameraID: "cam_1", Position: "wide", EnableMasking: true}, hall.Cameras[0])
	assert.Equal(t, domain.CameraPosition{CameraID: "cam_2", Position: "close"}, hall.Cameras[1])

	lobby := pm.Area("lobby")
	require.NotNil(t, lobby, "areas without camera configs still appear")
	assert.Empty(t, lobby.Cameras)

	assert.Nil(t, pm.Area("roof"))
}

func TestCameraPosition_String(t *testing.T) {
	cp := domain.CameraPosition{CameraID: "cam_1", Position: "wide"}
	assert.Equal(t, "cam_1@wide", cp.String())
}

func TestPredictionData_HasData(t *testing.T) {
	empty := &domain.PredictionData{CameraID: "cam_1", Position: "wide"}
	assert.False(t, empty.HasData())

	withSample := &domain.PredictionData{
		CameraID:   "cam_1",
		Position:   "wide",
		Timestamps: []time.Time{time.Now()},
		Counts:     []float64{3},
	}
	assert.True(t, withSample.HasData())
}

func TestCameraTimestamp_BlobPrefix(t *testing.T) {
	ct := domain.CameraTimestamp{
		CameraID:  "cam_1",
		Position:  "wide",
		Timestamp: time.Date(2024, 6, 1, 13, 5, 9, 0, time.FixedZone("CEST", 2*3600)),
	}

	// Timestamps are normalized to UTC before naming.
	assert.Equal(t, "venue-cam_1-wide-2024_06_01-11_05_09", ct.BlobPrefix("venue"))
}

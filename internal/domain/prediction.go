package domain

import (
	"fmt"
	"time"
)

// CameraPosition identifies one raw data feed contributing to an area.
type CameraPosition struct {
	CameraID      string `json:"camera_id"`
	Position      string `json:"position"`
	EnableMasking bool   `json:"enable_masking"`
}

func (cp CameraPosition) String() string {
	return fmt.Sprintf("%s@%s", cp.CameraID, cp.Position)
}

// AreaMapping lists the camera positions covering one area.
type AreaMapping struct {
	AreaID  string           `json:"area_id"`
	Cameras []CameraPosition `json:"cameras"`
}

// ProjectMapping maps every area of a project to its camera positions.
// Instances are immutable once built; configuration changes produce a
// fresh mapping instead of mutating in place.
type ProjectMapping struct {
	ProjectID string                 `json:"project_id"`
	Areas     map[string]AreaMapping `json:"areas"`
}

// Area returns the mapping for an area id, or nil when the area is not
// covered by any camera config.
func (pm *ProjectMapping) Area(areaID string) *AreaMapping {
	if am, ok := pm.Areas[areaID]; ok {
		return &am
	}
	return nil
}

// BuildProjectMapping derives the camera-area mapping from a project
// document by scanning every area's camera configs.
func BuildProjectMapping(p *Project) *ProjectMapping {
	pm := &ProjectMapping{
		ProjectID: p.ID,
		Areas:     make(map[string]AreaMapping, len(p.Areas)),
	}
	for _, area := range p.Areas {
		am := AreaMapping{
			AreaID:  area.ID,
			Cameras: make([]CameraPosition, 0, len(area.CameraConfigs)),
		}
		for _, cfg := range area.CameraConfigs {
			am.Cameras = append(am.Cameras, CameraPosition{
				CameraID:      cfg.CameraID,
				Position:      cfg.Position.Name,
				EnableMasking: cfg.EnableMasking,
			})
		}
		pm.Areas[area.ID] = am
	}
	return pm
}

// PredictionRecord is one stored sample as written by the upstream
// detector: a timestamp plus the count breakdown keyed by area id, with
// "total" holding the unmasked count.
type PredictionRecord struct {
	ID        string             `json:"id"`
	Project   string             `json:"project"`
	Camera    string             `json:"camera"`
	Position  string             `json:"position"`
	Timestamp time.Time          `json:"timestamp"`
	Counts    map[string]float64 `json:"counts"`
}

// CountTotalKey is the breakdown field used when masking is disabled.
const CountTotalKey = "total"

// PredictionData is one camera's raw data for a query window, with
// timestamps strictly ascending.
type PredictionData struct {
	CameraID   string      `json:"camera_id"`
	Position   string      `json:"position"`
	Timestamps []time.Time `json:"timestamps"`
	Counts     []float64   `json:"counts"`
}

// HasData reports whether any sample fell inside the window.
func (pd *PredictionData) HasData() bool {
	return len(pd.Timestamps) > 0
}

// TimeSeriesPoint is one emitted sample of the aggregated series.
type TimeSeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     int       `json:"value"`
}

// CameraTimestamp records one raw sample actually consumed during
// aggregation, exposed for traceability.
type CameraTimestamp struct {
	CameraID  string    `json:"camera_id"`
	Position  string    `json:"position"`
	Timestamp time.Time `json:"timestamp"`
}

// BlobPrefix returns the naming prefix under which assets captured for
// this camera timestamp are stored.
func (ct CameraTimestamp) BlobPrefix(projectID string) string {
	return fmt.Sprintf("%s-%s-%s-%s",
		projectID, ct.CameraID, ct.Position,
		ct.Timestamp.UTC().Format("2006_01_02-15_04_05"),
	)
}

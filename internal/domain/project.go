package domain

import (
	"fmt"
	"time"
)

// CountingModel names the weights file the upstream detector runs.
type CountingModel string

const (
	ModelStandard  CountingModel = "model_nwpu.pth"
	ModelLightshow CountingModel = "model_0725.pth"
)

// TimeOfDay is a wall-clock instant within a day, independent of date.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// ModelSchedule activates a counting model during a daily time window.
// A window whose start is after its end spans midnight.
type ModelSchedule struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Start TimeOfDay     `json:"start"`
	End   TimeOfDay     `json:"end"`
	Model CountingModel `json:"model"`
}

// IsActive reports whether the schedule covers the wall-clock time of t.
func (s ModelSchedule) IsActive(t time.Time) bool {
	now := t.Hour()*3600 + t.Minute()*60 + t.Second()
	start := s.Start.seconds()
	end := s.End.seconds()

	if start <= end {
		return start <= now && now <= end
	}
	// Window spans midnight
	return now >= start || now <= end
}

func (s ModelSchedule) spansMidnight() bool {
	return s.Start.seconds() > s.End.seconds()
}

// overlaps reports whether two daily windows share at least one instant.
func (s ModelSchedule) overlaps(o ModelSchedule) bool {
	s1, e1 := s.Start.seconds(), s.End.seconds()
	s2, e2 := o.Start.seconds(), o.End.seconds()

	switch {
	case !s.spansMidnight() && !o.spansMidnight():
		return s1 <= e2 && s2 <= e1
	case s.spansMidnight() && !o.spansMidnight():
		// s covers [s1, midnight) and [0, e1]
		return e2 >= s1 || s2 <= e1
	case !s.spansMidnight() && o.spansMidnight():
		return e1 >= s2 || s1 <= e2
	default:
		// Two midnight-spanning windows always share an instant
		return true
	}
}

// Camera is a physical device registered in a project.
type Camera struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Resolution     [2]int          `json:"resolution"`
	SensorSize     *[2]float64     `json:"sensor_size,omitempty"`
	Coordinates3D  *[3]float64     `json:"coordinates_3d,omitempty"`
	DefaultModel   CountingModel   `json:"default_model,omitempty"`
	ModelSchedules []ModelSchedule `json:"model_schedules,omitempty"`
}

// ValidateSchedules rejects cameras whose model schedules overlap.
func (c Camera) ValidateSchedules() error {
	for i := 0; i < len(c.ModelSchedules); i++ {
		for j := i + 1; j < len(c.ModelSchedules); j++ {
			if c.ModelSchedules[i].overlaps(c.ModelSchedules[j]) {
				return fmt.Errorf(
					"schedules %q and %q have overlapping time ranges",
					c.ModelSchedules[i].ID, c.ModelSchedules[j].ID,
				)
			}
		}
	}
	return nil
}

// ActiveModel returns the counting model in effect at t, falling back
// to the camera's default when no schedule is active.
func (c Camera) ActiveModel(t time.Time) CountingModel {
	for _, s := range c.ModelSchedules {
		if s.IsActive(t) {
			return s.Model
		}
	}
	if c.DefaultModel != "" {
		return c.DefaultModel
	}
	return ModelStandard
}

// Position is a named viewing configuration of a camera.
type Position struct {
	Name              string      `json:"name"`
	CenterGroundPlane *[2]float64 `json:"center_ground_plane,omitempty"`
	FocalLength       *float64    `json:"focal_length,omitempty"`
}

// MaskingConfig restricts a camera view to the polygon covering an area.
type MaskingConfig struct {
	Edges [][2]int `json:"edges"`
}

// CameraConfig binds a camera position to an area, with per-feed options.
// EnableMasking decides which field of a raw sample's count breakdown is
// relevant for the area: the area-specific sub-count or the total.
type CameraConfig struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	CameraID            string         `json:"camera_id"`
	Position            Position       `json:"position"`
	EnableHeatmap       bool           `json:"enable_heatmap"`
	HeatmapConfig       *[4]int        `json:"heatmap_config,omitempty"`
	EnableInterpolation bool           `json:"enable_interpolation"`
	EnableMasking       bool           `json:"enable_masking"`
	MaskingConfig       *MaskingConfig `json:"masking_config,omitempty"`
}

// Area is a spatial zone covered by zero or more camera configs.
type Area struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	CameraConfigs []CameraConfig `json:"camera_configs"`
}

// Project is the root configuration document.
type Project struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Cameras []Camera `json:"cameras"`
	Areas   []Area   `json:"areas"`
}

// Camera returns the camera with the given id, or nil.
func (p *Project) Camera(id string) *Camera {
	for i := range p.Cameras {
		if p.Cameras[i].ID == id {
			return &p.Cameras[i]
		}
	}
	return nil
}

// Area returns the area with the given id, or nil.
func (p *Project) Area(id string) *Area {
	for i := range p.Areas {
		if p.Areas[i].ID == id {
			return &p.Areas[i]
		}
	}
	return nil
}

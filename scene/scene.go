package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Elitism/Earth-Population-Map/geo"
	"github.com/Elitism/Earth-Population-Map/heatmap"
)

// SchemeConfig is the color-mapping configuration driven by the UI layer.
// After changing it, the owner calls RecomputeColors on the scene.
type SchemeConfig struct {
	Scheme      heatmap.Scheme
	Logarithmic bool
}

// Scene aggregates everything a frame needs: the static point cloud, the
// derived colors, the camera, and the color configuration. One Scene is
// built at startup and owned by the single UI thread; nothing here locks.
//
// Positions, Populations and Colors are parallel arrays of equal length;
// Positions and Populations never change after construction, Colors is
// replaced wholesale whenever the configuration changes.
type Scene struct {
	Radius      float64
	Positions   []mgl32.Vec3
	Populations []float64
	Colors      []heatmap.Color
	Camera      Camera
	Config      SchemeConfig
}

// New projects the records onto a sphere of the given radius and computes
// the initial colors under cfg.
func New(records []geo.Record, radius float64, cfg SchemeConfig) *Scene {
	s := &Scene{
		Radius:      radius,
		Positions:   geo.ProjectAll(records, radius),
		Populations: make([]float64, len(records)),
		Camera:      NewCamera(),
		Config:      cfg,
	}
	for i, r := range records {
		s.Populations[i] = r.Population
	}
	s.RecomputeColors()
	return s
}

// Len returns the number of points in the cloud.
func (s *Scene) Len() int { return len(s.Positions) }

// RecomputeColors rebuilds the whole color array from the current
// populations and configuration. It is a pure function of those inputs, so
// flipping the configuration away and back restores identical colors. No
// change detection: callers invoke it after every configuration update.
func (s *Scene) RecomputeColors() {
	normalized := heatmap.Normalize(s.Populations, s.Config.Logarithmic)
	s.Colors = heatmap.Colorize(normalized, s.Config.Scheme)
}

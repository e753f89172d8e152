package view

import (
	"github.com/QianfengWen/CSC316/internal/models"
)

// Stage owns the map's overlay layer set. Exactly one variant's layers are
// mounted at any instant: every mount tears down whatever the previous
// variant left behind before adding its own layers, and an empty filtered set
// mounts nothing at all and raises the empty-state overlay instead.
//
// Stage is not self-locking. The coordinator is its single writer and every
// access happens under the coordinator's lock.
type Stage struct {
	camera   models.Camera
	variant  models.ViewMode
	markers  []models.Marker
	heat     *models.HeatSurface
	clusters []models.ClusterNode
	empty    bool

	// markerIdx maps feature ID to the marker's slot for style updates
	// (entrance fades, gem pulses).
	markerIdx map[string]int
}

// NewStage creates a stage with the camera at the default overview.
func NewStage() *Stage {
	return &Stage{
		camera: models.Camera{Lat: CityCenterLat, Lng: CityCenterLng, Zoom: DefaultZoom},
	}
}

// Clear tears down all mounted layers.
func (s *Stage) Clear() {
	s.variant = ""
	s.markers = nil
	s.heat = nil
	s.clusters = nil
	s.markerIdx = nil
	s.empty = false
}

// SetEmpty raises or hides the "no results" overlay. Raising it implies no
// layers are mounted.
func (s *Stage) SetEmpty(empty bool) {
	if empty {
		s.Clear()
	}
	s.empty = empty
}

// MountMarkers replaces all layers with the points variant's markers.
func (s *Stage) MountMarkers(markers []models.Marker) {
	s.Clear()
	s.variant = models.ModePoints
	s.markers = markers
	s.markerIdx = make(map[string]int, len(markers))
	for i, m := range markers {
		s.markerIdx[m.FeatureID] = i
	}
}

// BeginMarkers tears down the previous variant and opens an empty points
// mount for staged insertion by the entrance animator.
func (s *Stage) BeginMarkers(capacity int) {
	s.Clear()
	s.variant = models.ModePoints
	s.markers = make([]models.Marker, 0, capacity)
	s.markerIdx = make(map[string]int, capacity)
}

// AppendMarkers inserts one entrance batch, in batch order.
func (s *Stage) AppendMarkers(markers []models.Marker) {
	for _, m := range markers {
		s.markerIdx[m.FeatureID] = len(s.markers)
		s.markers = append(s.markers, m)
	}
}

// SetMarkerOpacity updates one mounted marker's opacity; unknown IDs are
// ignored (the marker's render pass has been superseded).
func (s *Stage) SetMarkerOpacity(featureID string, opacity float64) {
	if i, ok := s.markerIdx[featureID]; ok {
		s.markers[i].Style.Opacity = opacity
	}
}

// RestyleGemMarkers applies fn to every mounted gem marker's style. Used by
// the tour's gem pulse; a no-op unless the points variant is mounted.
func (s *Stage) RestyleGemMarkers(fn func(gem bool) models.MarkerStyle) {
	if s.variant != models.ModePoints {
		return
	}
	for i := range s.markers {
		if s.markers[i].Detail.Gem {
			s.markers[i].Style = fn(true)
		}
	}
}

// MountHeat replaces all layers with the density variant's heat surface.
func (s *Stage) MountHeat(surface *models.HeatSurface) {
	s.Clear()
	s.variant = models.ModeDensity
	s.heat = surface
}

// MountClusters replaces all layers with the clusters variant's nodes.
func (s *Stage) MountClusters(nodes []models.ClusterNode) {
	s.Clear()
	s.variant = models.ModeClusters
	s.clusters = nodes
}

// ClusterByID returns the mounted cluster node with the given ID.
func (s *Stage) ClusterByID(id string) (models.ClusterNode, bool) {
	for _, n := range s.clusters {
		if n.ID == id {
			return n, true
		}
	}
	return models.ClusterNode{}, false
}

// MountedVariant returns which variant currently owns the overlay layers, or
// "" when nothing is mounted.
func (s *Stage) MountedVariant() models.ViewMode {
	return s.variant
}

// Camera returns the current viewport.
func (s *Stage) Camera() models.Camera {
	return s.camera
}

// SetCamera moves the viewport.
func (s *Stage) SetCamera(cam models.Camera) {
	s.camera = cam
}

// Snapshot copies the mounted overlay state for serving.
func (s *Stage) Snapshot(gen uint64, state models.ViewState) models.RenderSnapshot {
	snap := models.RenderSnapshot{
		Generation: gen,
		State:      state,
		Camera:     s.camera,
		EmptyState: s.empty,
	}
	if len(s.markers) > 0 {
		snap.Markers = make([]models.Marker, len(s.markers))
		copy(snap.Markers, s.markers)
	}
	if s.heat != nil {
		heat := *s.heat
		heat.Cells = make([]models.HeatCell, len(s.heat.Cells))
		copy(heat.Cells, s.heat.Cells)
		snap.Heat = &heat
	}
	if len(s.clusters) > 0 {
		snap.Clusters = make([]models.ClusterNode, len(s.clusters))
		copy(snap.Clusters, s.clusters)
	}
	return snap
}

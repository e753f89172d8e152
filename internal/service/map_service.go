package service

import (
	"github.com/QianfengWen/CSC316/internal/features"
	"github.com/QianfengWen/CSC316/internal/models"
	"github.com/QianfengWen/CSC316/internal/repository"
	"github.com/QianfengWen/CSC316/internal/view"
)

// MapService wires the dataset loader to the view coordinator and fronts it
// for the HTTP handlers. The coordinator stays the single writer; this layer
// only forwards events and reads snapshots.
type MapService struct {
	coord *view.Coordinator
}

// NewMapService loads the dataset once, builds the feature index, and starts
// the coordinator (first render: points with the entrance animation).
func NewMapService(repo *repository.RestaurantRepository, sched view.Scheduler) (*MapService, error) {
	records, err := repo.LoadAll()
	if err != nil {
		return nil, err
	}

	feats := features.BuildIndex(records)
	coord := view.NewCoordinator(feats, sched)
	coord.Start()

	return &MapService{coord: coord}, nil
}

// SetFilter applies a filter toggle click.
func (s *MapService) SetFilter(label string) error {
	return s.coord.SetFilter(label)
}

// SetSearch records a search keystroke (debounced inside the coordinator).
func (s *MapService) SetSearch(term string) {
	s.coord.SetSearchInput(term)
}

// SetMode switches the presentation variant.
func (s *MapService) SetMode(mode models.ViewMode) error {
	return s.coord.SetMode(mode)
}

// SetZoom moves the camera.
func (s *MapService) SetZoom(zoom int) {
	s.coord.SetZoom(zoom)
}

// ReportVisibility forwards a section-visibility ratio from the page.
func (s *MapService) ReportVisibility(ratio float64) {
	s.coord.HandleVisibility(ratio)
}

// View returns the current render snapshot.
func (s *MapService) View() models.RenderSnapshot {
	return s.coord.ViewSnapshot()
}

// Summary returns the derived-widget values for the last render pass.
func (s *MapService) Summary() models.Summary {
	return s.coord.SummarySnapshot()
}

// Controls lists the filter toggles with the active badge.
func (s *MapService) Controls() []models.FilterControl {
	return s.coord.ControlsSnapshot()
}

// TourPhase reports the introductory tour's state.
func (s *MapService) TourPhase() view.TourPhase {
	return s.coord.TourPhase()
}

// Spiderfy expands a cluster node into member markers.
func (s *MapService) Spiderfy(id string) ([]models.Marker, error) {
	return s.coord.SpiderfyCluster(id)
}

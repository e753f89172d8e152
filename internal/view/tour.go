package view

import (
	"log"

	"github.com/QianfengWen/CSC316/internal/models"
)

// TourPhase is the one-shot introductory tour's state.
type TourPhase string

const (
	TourIdle      TourPhase = "idle"
	TourZoomIn    TourPhase = "zoom_in"
	TourZoomOut   TourPhase = "zoom_out"
	TourPulseGems TourPhase = "pulse_gems"
	TourDone      TourPhase = "done"
)

// TourController runs the scripted camera + highlight sequence:
// Idle -> ZoomIn -> ZoomOut -> PulseGems -> Done. It arms on the first
// section-visibility event at or above the threshold and fires at most once
// per process; its visibility subscription is dropped the moment it arms.
// ZoomOut and PulseGems are scheduled as absolute offsets from arming and are
// never cancelled: each step reads whatever view state exists at fire time.
type TourController struct {
	phase TourPhase
}

// NewTourController creates an idle tour.
func NewTourController() *TourController {
	return &TourController{phase: TourIdle}
}

// Phase returns the current tour phase.
func (t *TourController) Phase() TourPhase {
	return t.phase
}

// arm commits ZoomIn immediately and schedules the remaining steps. Called
// with the coordinator lock held, from the tour's visibility subscription.
func (c *Coordinator) armTour() {
	c.tour.phase = TourZoomIn
	c.stage.SetCamera(models.Camera{Lat: CityCenterLat, Lng: CityCenterLng, Zoom: TourZoom})
	log.Printf("[Tour] Armed: zooming to city center")

	c.sched.After(TourZoomOutDelay, c.tourZoomOut)
	c.sched.After(TourPulseDelay, c.tourPulseGems)
}

func (c *Coordinator) tourZoomOut() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tour.phase = TourZoomOut
	cam := c.stage.Camera()
	cam.Zoom = DefaultZoom
	c.stage.SetCamera(cam)
	log.Printf("[Tour] Zoomed back to overview")
}

func (c *Coordinator) tourPulseGems() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tour.phase = TourPulseGems
	c.stage.RestyleGemMarkers(func(bool) models.MarkerStyle {
		return pulsedMarkerStyle()
	})
	log.Printf("[Tour] Pulsing gem markers")

	c.sched.After(TourPulseDuration, c.tourRestoreGems)
}

func (c *Coordinator) tourRestoreGems() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stage.RestyleGemMarkers(func(bool) models.MarkerStyle {
		return baseMarkerStyle(true)
	})
	c.tour.phase = TourDone
	log.Printf("[Tour] Done")
}

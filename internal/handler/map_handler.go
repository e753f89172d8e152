package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QianfengWen/CSC316/internal/models"
	"github.com/QianfengWen/CSC316/internal/service"
	"github.com/QianfengWen/CSC316/pkg/response"
)

// MapHandler adapts page UI events to the view coordinator and serves its
// snapshots back out.
type MapHandler struct {
	service *service.MapService
}

// NewMapHandler creates a new map handler
func NewMapHandler(service *service.MapService) *MapHandler {
	return &MapHandler{service: service}
}

// GetView handles GET /api/v1/map/view
func (h *MapHandler) GetView(c *gin.Context) {
	response.Success(c, h.service.View())
}

// GetSummary handles GET /api/v1/map/summary
func (h *MapHandler) GetSummary(c *gin.Context) {
	response.Success(c, h.service.Summary())
}

// GetControls handles GET /api/v1/map/controls
func (h *MapHandler) GetControls(c *gin.Context) {
	response.Success(c, gin.H{
		"filters": h.service.Controls(),
		"modes":   []models.ViewMode{models.ModePoints, models.ModeDensity, models.ModeClusters},
	})
}

type filterRequest struct {
	Label string `json:"label" binding:"required"`
}

// SetFilter handles POST /api/v1/map/filter
func (h *MapHandler) SetFilter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid filter request", err)
		return
	}
	if err := h.service.SetFilter(req.Label); err != nil {
		response.Error(c, http.StatusBadRequest, "Unknown filter label", err)
		return
	}
	response.Success(c, h.service.Summary())
}

type searchRequest struct {
	Term string `json:"term"`
}

// SetSearch handles POST /api/v1/map/search. The term may be empty (clearing
// the search); commitment is debounced inside the core.
func (h *MapHandler) SetSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid search request", err)
		return
	}
	h.service.SetSearch(req.Term)
	response.Success(c, gin.H{"accepted": true})
}

type modeRequest struct {
	Mode models.ViewMode `json:"mode" binding:"required"`
}

// SetMode handles POST /api/v1/map/mode
func (h *MapHandler) SetMode(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid mode request", err)
		return
	}
	if err := h.service.SetMode(req.Mode); err != nil {
		response.Error(c, http.StatusBadRequest, "Unknown view mode", err)
		return
	}
	response.Success(c, h.service.View())
}

type zoomRequest struct {
	Zoom int `json:"zoom" binding:"required"`
}

// SetZoom handles POST /api/v1/map/zoom
func (h *MapHandler) SetZoom(c *gin.Context) {
	var req zoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid zoom request", err)
		return
	}
	h.service.SetZoom(req.Zoom)
	response.Success(c, h.service.View())
}

type visibilityRequest struct {
	Ratio float64 `json:"ratio"`
}

// ReportVisibility handles POST /api/v1/map/visibility
func (h *MapHandler) ReportVisibility(c *gin.Context) {
	var req visibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid visibility request", err)
		return
	}
	if req.Ratio < 0 || req.Ratio > 1 {
		response.BadRequest(c, "Visibility ratio must be within [0,1]", nil)
		return
	}
	h.service.ReportVisibility(req.Ratio)
	response.Success(c, gin.H{"tour_phase": h.service.TourPhase()})
}

// Spiderfy handles GET /api/v1/map/clusters/:id/spiderfy
func (h *MapHandler) Spiderfy(c *gin.Context) {
	markers, err := h.service.Spiderfy(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Cannot spiderfy cluster", err)
		return
	}
	response.Success(c, gin.H{
		"markers": markers,
		"count":   len(markers),
	})
}

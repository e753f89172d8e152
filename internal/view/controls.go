package view

import (
	"time"

	"github.com/QianfengWen/CSC316/internal/models"
)

// Fixed geography of the page: the map is pinned to Philadelphia.
const (
	CityCenterLat = 39.9526
	CityCenterLng = -75.1652

	DefaultZoom  = 13
	TourZoom     = 15
	MaxZoom      = 18
	SpiderfyZoom = 17
)

// Entrance animation schedule.
const (
	EntranceBatchSize = 25
	EntranceInterval  = 40 * time.Millisecond
	EntranceFadeDelay = 20 * time.Millisecond
)

// Search debounce quiet period.
const SearchDebounce = 300 * time.Millisecond

// Tour schedule: ZoomOut and PulseGems are absolute offsets measured from
// arming, not chained off the previous step. The offsets can overlap a slow
// zoom transition; that matches the page's observed behavior and is kept
// as-is.
const (
	TourZoomOutDelay  = 2500 * time.Millisecond
	TourPulseDelay    = 4500 * time.Millisecond
	TourPulseDuration = 1500 * time.Millisecond
	TourVisibilityMin = 0.30
)

// filterLabels is the fixed allow-list driving the filter toggle controls.
// Order is presentation order.
var filterLabels = []string{
	models.FilterAll,
	models.FilterHiddenGems,
	"Pizza",
	"Italian",
	"Chinese",
	"Mexican",
	"American",
	"Japanese",
	"Thai",
	"Indian",
	"Vegan",
}

// FilterLabels returns the fixed filter allow-list in presentation order.
func FilterLabels() []string {
	out := make([]string, len(filterLabels))
	copy(out, filterLabels)
	return out
}

// ValidFilterLabel reports whether the label is on the allow-list.
func ValidFilterLabel(label string) bool {
	for _, l := range filterLabels {
		if l == label {
			return true
		}
	}
	return false
}

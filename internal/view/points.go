package view

import (
	"github.com/QianfengWen/CSC316/internal/models"
)

// Marker styling. Gem markers are larger and brighter, carry a distinct
// border, and pulse continuously.
const (
	markerColor      = "#e8743b"
	markerBorder     = "#ffffff"
	gemMarkerColor   = "#ffd166"
	gemMarkerBorder  = "#7b2cbf"
	markerRadius     = 6.0
	gemMarkerRadius  = 10.0
	markerOpacity    = 0.85
	gemMarkerOpacity = 1.0
)

// baseMarkerStyle is the at-rest style for a marker; the points variant owns
// all style state, keyed by feature ID through the stage.
func baseMarkerStyle(gem bool) models.MarkerStyle {
	if gem {
		return models.MarkerStyle{
			Radius:      gemMarkerRadius,
			Color:       gemMarkerColor,
			BorderColor: gemMarkerBorder,
			BorderWidth: 2,
			Opacity:     gemMarkerOpacity,
			Pulse:       true,
		}
	}
	return models.MarkerStyle{
		Radius:      markerRadius,
		Color:       markerColor,
		BorderColor: markerBorder,
		BorderWidth: 1,
		Opacity:     markerOpacity,
	}
}

// pulsedMarkerStyle is the enlarged/brightened style the tour applies to gem
// markers during its PulseGems step.
func pulsedMarkerStyle() models.MarkerStyle {
	style := baseMarkerStyle(true)
	style.Radius = gemMarkerRadius * 1.6
	style.BorderWidth = 3
	return style
}

// buildMarker renders one feature into a marker at its baseline style.
func buildMarker(f models.PointFeature) models.Marker {
	return models.Marker{
		FeatureID: f.ID,
		Lat:       f.Lat,
		Lng:       f.Lng,
		Style:     baseMarkerStyle(f.Gem),
		Detail: models.MarkerDetail{
			Name:        f.Name,
			Stars:       f.Stars,
			ReviewCount: f.ReviewCount,
			Cuisines:    f.Cuisines,
			Gem:         f.Gem,
		},
	}
}

// renderPoints mounts one marker per filtered feature at baseline style.
// The entrance-animated first render goes through the animator instead.
func renderPoints(stage *Stage, filtered []models.PointFeature) {
	markers := make([]models.Marker, 0, len(filtered))
	for _, f := range filtered {
		markers = append(markers, buildMarker(f))
	}
	stage.MountMarkers(markers)
}

package view

import (
	"sort"

	"github.com/QianfengWen/CSC316/internal/models"
	"github.com/QianfengWen/CSC316/internal/spatial"
)

// densityPitch is the degree pitch of the density grid; roughly 500m of
// latitude, fine enough that downtown blocks separate.
const densityPitch = 0.005

// heatGradient is the fixed five-stop low-to-critical color ramp.
var heatGradient = [5]struct {
	Stop  float64
	Color string
}{
	{0.00, "#2c7fb8"},
	{0.25, "#7fcdbb"},
	{0.50, "#edf8b1"},
	{0.75, "#fd8d3c"},
	{1.00, "#bd0026"},
}

// gradientColor maps a normalized intensity onto the gradient's stops.
func gradientColor(intensity float64) string {
	color := heatGradient[0].Color
	for _, stop := range heatGradient {
		if intensity >= stop.Stop {
			color = stop.Color
		}
	}
	return color
}

// renderDensity aggregates the filtered coordinates into a smoothed heat
// surface. No per-feature interaction survives aggregation.
func renderDensity(stage *Stage, filtered []models.PointFeature) {
	grid := spatial.NewGrid(CityCenterLat, CityCenterLng, densityPitch)
	for _, f := range filtered {
		grid.Add(f.Lat, f.Lng)
	}

	cells, max := grid.Smooth()
	if max == 0 {
		max = 1
	}

	surface := &models.HeatSurface{
		Cells:    make([]models.HeatCell, 0, len(cells)),
		CellSize: grid.Pitch(),
		Max:      max,
	}
	for _, cell := range cells {
		intensity := cell.Smoothed / max
		surface.Cells = append(surface.Cells, models.HeatCell{
			Lat:       cell.Lat,
			Lng:       cell.Lng,
			Intensity: intensity,
			Count:     cell.Count,
			Color:     gradientColor(intensity),
		})
	}

	// Stable output order keeps snapshots comparable across renders.
	sort.Slice(surface.Cells, func(i, j int) bool {
		if surface.Cells[i].Lat != surface.Cells[j].Lat {
			return surface.Cells[i].Lat < surface.Cells[j].Lat
		}
		return surface.Cells[i].Lng < surface.Cells[j].Lng
	})

	stage.MountHeat(surface)
}

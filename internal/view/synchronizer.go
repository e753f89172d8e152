package view

import (
	"math"

	"github.com/QianfengWen/CSC316/internal/models"
	"github.com/QianfengWen/CSC316/internal/stats"
)

// topCuisineCount is the length of the ranking mini-chart.
const topCuisineCount = 5

// Synchronize rebuilds the derived widgets from the same filtered set the
// renderer consumed. It runs once after every render pass, empty or not: an
// empty set yields the empty-state values (total 0, mean 0, cleared chart)
// alongside the raised overlay. prevTotal is the previously displayed total,
// carried as the tween's starting endpoint.
func Synchronize(filtered []models.PointFeature, state models.ViewState, prevTotal int) models.Summary {
	summary := models.Summary{
		Total: models.CounterTween{From: prevTotal, To: len(filtered)},
		Badge: models.FilterBadge{Label: state.FilterLabel, Count: len(filtered)},
		Empty: len(filtered) == 0,
	}
	if summary.Empty {
		return summary
	}

	var allCuisines []string
	starValues := make([]float64, 0, len(filtered))
	for _, f := range filtered {
		allCuisines = append(allCuisines, f.Cuisines...)
		starValues = append(starValues, f.Stars)
		if f.Gem {
			summary.GemCount++
		}
	}

	summary.DistinctCuisines = stats.Distinct(allCuisines)
	summary.AverageStars = roundHalfUp(stats.Mean(starValues), 2)

	for _, pair := range stats.TopCounts(allCuisines, topCuisineCount) {
		summary.TopCuisines = append(summary.TopCuisines, models.CuisineRank{
			Cuisine: pair.Label,
			Count:   pair.Count,
		})
	}

	return summary
}

// Controls lists the filter toggles with the live badge on the active one.
func Controls(state models.ViewState, badgeCount int) []models.FilterControl {
	controls := make([]models.FilterControl, 0, len(filterLabels))
	for _, label := range filterLabels {
		ctl := models.FilterControl{Label: label, Active: label == state.FilterLabel}
		if ctl.Active {
			count := badgeCount
			ctl.Badge = &count
		}
		controls = append(controls, ctl)
	}
	return controls
}

func roundHalfUp(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

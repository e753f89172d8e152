package view

import (
	"strings"

	"github.com/QianfengWen/CSC316/internal/models"
)

// Resolve returns the order-preserving subsequence of features satisfying the
// view state's category and search predicates. It is pure and total: no side
// effects, no error conditions, safe to call on every control click and every
// debounced keystroke.
func Resolve(features []models.PointFeature, state models.ViewState) []models.PointFeature {
	term := strings.ToLower(strings.TrimSpace(state.SearchTerm))

	out := make([]models.PointFeature, 0, len(features))
	for _, f := range features {
		if !matchesFilter(&f, state.FilterLabel) {
			continue
		}
		if term != "" && !matchesSearch(&f, term) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func matchesFilter(f *models.PointFeature, label string) bool {
	switch label {
	case "", models.FilterAll:
		return true
	case models.FilterHiddenGems:
		return f.Gem
	default:
		return f.HasCuisine(label)
	}
}

func matchesSearch(f *models.PointFeature, term string) bool {
	if strings.Contains(strings.ToLower(f.Name), term) {
		return true
	}
	for _, c := range f.Cuisines {
		if strings.Contains(strings.ToLower(c), term) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(f.Categories), term)
}

package features

// genericLabels are Yelp category names that describe the venue rather than a
// cuisine; they never enter a feature's cuisine list.
var genericLabels = map[string]struct{}{
	"Restaurants":               {},
	"Food":                      {},
	"Nightlife":                 {},
	"Bars":                      {},
	"Event Planning & Services": {},
	"Caterers":                  {},
	"Food Trucks":               {},
	"Food Delivery Services":    {},
}

// gemCuisines is the curated list of under-represented cuisine types. A
// feature is a hidden gem iff its cuisine list intersects this set.
var gemCuisines = map[string]struct{}{
	"Ethiopian":  {},
	"Vegan":      {},
	"Burmese":    {},
	"Laotian":    {},
	"Cambodian":  {},
	"Filipino":   {},
	"Georgian":   {},
	"Senegalese": {},
}

// GemCuisines returns the curated gem-cuisine list.
func GemCuisines() []string {
	out := make([]string, 0, len(gemCuisines))
	for c := range gemCuisines {
		out = append(out, c)
	}
	return out
}

// IsGemCuisine reports whether the cuisine is on the curated gem list.
func IsGemCuisine(name string) bool {
	_, ok := gemCuisines[name]
	return ok
}

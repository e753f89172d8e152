package models

// RawRecord is a restaurant row exactly as the dataset loader delivers it.
// Records are validated once when the feature index is built; after that only
// PointFeature values circulate.
type RawRecord struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Stars       float64 `json:"stars"`
	ReviewCount int     `json:"review_count"`
	Categories  string  `json:"categories"`
}

// PointFeature is an immutable geocoded restaurant feature. Presentation
// attributes (marker size, opacity, pulse) never live here; the active view
// variant owns those in its style table.
type PointFeature struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Stars       float64  `json:"stars"` // 1-5 in 0.5 steps
	ReviewCount int      `json:"review_count"`
	Cuisines    []string `json:"cuisines"`   // ordered, first is primary
	Categories  string   `json:"categories"` // raw category string
	Gem         bool     `json:"gem"`
}

// PrimaryCuisine returns the first cuisine, or "" when none was recognized.
func (f *PointFeature) PrimaryCuisine() string {
	if len(f.Cuisines) == 0 {
		return ""
	}
	return f.Cuisines[0]
}

// HasCuisine reports whether the named cuisine appears in the feature's list.
func (f *PointFeature) HasCuisine(name string) bool {
	for _, c := range f.Cuisines {
		if c == name {
			return true
		}
	}
	return false
}

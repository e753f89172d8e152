package models

// CounterTween carries the endpoints of an animated counter: the previously
// displayed value and the value to animate toward. The tween itself runs at
// the presentation layer.
type CounterTween struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// CuisineRank is one bar of the top-5 cuisine-frequency mini-chart.
type CuisineRank struct {
	Cuisine string `json:"cuisine"`
	Count   int    `json:"count"`
}

// FilterBadge is the live count badge on the currently active filter control.
type FilterBadge struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary is the synchronizer's output, rebuilt after every render pass from
// the same filtered set the renderer consumed.
type Summary struct {
	Total            CounterTween  `json:"total"`
	DistinctCuisines int           `json:"distinct_cuisines"`
	AverageStars     float64       `json:"average_stars"` // 0 when the set is empty
	GemCount         int           `json:"gem_count"`
	TopCuisines      []CuisineRank `json:"top_cuisines"` // at most 5, descending
	Badge            FilterBadge   `json:"badge"`
	Empty            bool          `json:"empty"`
}

// FilterControl describes one filter toggle for the controls listing.
type FilterControl struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
	Badge  *int   `json:"badge,omitempty"` // present only on the active control
}

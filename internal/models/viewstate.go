package models

// ViewMode is one of the three mutually exclusive map presentation strategies.
type ViewMode string

const (
	ModePoints   ViewMode = "points"
	ModeDensity  ViewMode = "density"
	ModeClusters ViewMode = "clusters"
)

// Valid reports whether m names a known view mode.
func (m ViewMode) Valid() bool {
	return m == ModePoints || m == ModeDensity || m == ModeClusters
}

// Reserved filter labels. Everything else on the allow-list is a cuisine name.
const (
	FilterAll        = "All"
	FilterHiddenGems = "Hidden Gems"
)

// ViewState is the complete filter/search/mode state of the map view. It is a
// plain value: the coordinator owns the live copy and threads snapshots into
// the resolver and renderers, so filtering logic stays testable in isolation.
type ViewState struct {
	Mode        ViewMode `json:"mode"`
	FilterLabel string   `json:"filter_label"`
	SearchTerm  string   `json:"search_term"`
}

// DefaultViewState is the state of the very first render pass.
func DefaultViewState() ViewState {
	return ViewState{
		Mode:        ModePoints,
		FilterLabel: FilterAll,
		SearchTerm:  "",
	}
}

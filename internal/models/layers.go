package models

// Camera is the map viewport: center plus zoom level.
type Camera struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}

// MarkerStyle is the renderer-owned presentation of a single marker. Styles
// live in the points variant's style table keyed by feature ID, never on the
// feature itself, so data and presentation lifecycles stay independent.
type MarkerStyle struct {
	Radius      float64 `json:"radius"`
	Color       string  `json:"color"`
	BorderColor string  `json:"border_color"`
	BorderWidth float64 `json:"border_width"`
	Opacity     float64 `json:"opacity"`
	Pulse       bool    `json:"pulse"`
}

// MarkerDetail is the hover/click payload of a points-variant marker.
type MarkerDetail struct {
	Name        string   `json:"name"`
	Stars       float64  `json:"stars"`
	ReviewCount int      `json:"review_count"`
	Cuisines    []string `json:"cuisines"`
	Gem         bool     `json:"gem"`
}

// Marker is one mounted point layer.
type Marker struct {
	FeatureID string       `json:"feature_id"`
	Lat       float64      `json:"lat"`
	Lng       float64      `json:"lng"`
	Style     MarkerStyle  `json:"style"`
	Detail    MarkerDetail `json:"detail"`
}

// HeatCell is one smoothed density-grid cell.
type HeatCell struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Intensity float64 `json:"intensity"` // normalized 0-1
	Count     int     `json:"count"`     // raw member count before smoothing
	Color     string  `json:"color"`     // resolved gradient stop
}

// HeatSurface is the density variant's single mounted layer.
type HeatSurface struct {
	Cells    []HeatCell `json:"cells"`
	CellSize float64    `json:"cell_size"` // grid pitch in degrees
	Max      float64    `json:"max"`       // smoothed value mapped to intensity 1.0
}

// ClusterSize classes a cluster node by exact member count.
type ClusterSize string

const (
	ClusterSmall  ClusterSize = "small"
	ClusterMedium ClusterSize = "medium"
	ClusterLarge  ClusterSize = "large"
)

// ClusterNode is one aggregate node of the clusters variant. Count is always
// the cardinality of the currently filtered features in the node's catchment.
type ClusterNode struct {
	ID        string      `json:"id"`
	Lat       float64     `json:"lat"`
	Lng       float64     `json:"lng"`
	Count     int         `json:"count"`
	Size      ClusterSize `json:"size"`
	Color     string      `json:"color"`
	MemberIDs []string    `json:"member_ids"`
}

// RenderSnapshot is the full overlay state after a render pass: at most one
// variant's layers are populated, matching the stage's exclusive-ownership
// contract.
type RenderSnapshot struct {
	Generation uint64        `json:"generation"`
	State      ViewState     `json:"state"`
	Camera     Camera        `json:"camera"`
	Markers    []Marker      `json:"markers,omitempty"`
	Heat       *HeatSurface  `json:"heat,omitempty"`
	Clusters   []ClusterNode `json:"clusters,omitempty"`
	EmptyState bool          `json:"empty_state"`
}

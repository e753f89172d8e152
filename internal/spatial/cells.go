package spatial

import (
	"github.com/golang/geo/s2"
)

// CellLevelForZoom maps a web-map zoom level to the s2 cell level used for
// cluster grouping. Lower zooms group into coarser cells so nodes merge as the
// user zooms out; the mapping roughly matches Leaflet cluster radii.
func CellLevelForZoom(zoom int) int {
	switch {
	case zoom <= 8:
		level := zoom + 4
		if level < 4 {
			level = 4
		}
		return level
	case zoom <= 12:
		return zoom + 3
	case zoom <= 16:
		return zoom + 2
	default:
		return 18
	}
}

// CellKey returns the s2 cell token containing the coordinate at the given
// cell level. Features sharing a key belong to the same cluster catchment.
func CellKey(lat, lng float64, level int) string {
	id := s2.CellIDFromLatLng(s2.LatLngFromDegrees(lat, lng))
	return id.Parent(level).ToToken()
}

// CellCenter returns the center coordinate of the cell identified by token.
func CellCenter(token string) (float64, float64) {
	id := s2.CellIDFromToken(token)
	ll := id.LatLng()
	return ll.Lat.Degrees(), ll.Lng.Degrees()
}

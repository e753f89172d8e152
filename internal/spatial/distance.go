package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineDistance calculates the great-circle distance between two points in
// meters using the Haversine formula
func HaversineDistance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// ManhattanDegrees is the L1 distance between two coordinates in degree space.
// The entrance animation orders markers by this value for its outward
// radiating reveal; at city scale the degree grid is near enough to planar
// that the cheap metric reads the same as a true one.
func ManhattanDegrees(lat1, lng1, lat2, lng2 float64) float64 {
	return math.Abs(lat1-lat2) + math.Abs(lng1-lng2)
}

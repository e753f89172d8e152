package view

import (
	"math"
	"sort"

	"github.com/QianfengWen/CSC316/internal/models"
	"github.com/QianfengWen/CSC316/internal/spatial"
)

// Cluster size classes by exact member count.
const (
	clusterMediumMin = 10
	clusterLargeMin  = 50
)

var clusterColors = map[models.ClusterSize]string{
	models.ClusterSmall:  "#74c476",
	models.ClusterMedium: "#fd8d3c",
	models.ClusterLarge:  "#de2d26",
}

func clusterSizeFor(count int) models.ClusterSize {
	switch {
	case count >= clusterLargeMin:
		return models.ClusterLarge
	case count >= clusterMediumMin:
		return models.ClusterMedium
	default:
		return models.ClusterSmall
	}
}

// renderClusters groups the filtered features into aggregate nodes by s2 cell
// at the current zoom's cell level. Node counts are recomputed from the
// filtered set on every call, so a stale or unfiltered count can never be
// displayed.
func renderClusters(stage *Stage, filtered []models.PointFeature) {
	level := spatial.CellLevelForZoom(stage.Camera().Zoom)

	buckets := make(map[string][]models.PointFeature)
	for _, f := range filtered {
		key := spatial.CellKey(f.Lat, f.Lng, level)
		buckets[key] = append(buckets[key], f)
	}

	nodes := make([]models.ClusterNode, 0, len(buckets))
	for key, members := range buckets {
		// Node sits at the centroid of its catchment, not the cell center,
		// so single-member nodes land exactly on their feature.
		var latSum, lngSum float64
		ids := make([]string, 0, len(members))
		for _, m := range members {
			latSum += m.Lat
			lngSum += m.Lng
			ids = append(ids, m.ID)
		}
		count := len(members)
		size := clusterSizeFor(count)
		nodes = append(nodes, models.ClusterNode{
			ID:        key,
			Lat:       latSum / float64(count),
			Lng:       lngSum / float64(count),
			Count:     count,
			Size:      size,
			Color:     clusterColors[size],
			MemberIDs: ids,
		})
	}

	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	stage.MountClusters(nodes)
}

// spiderfyRadius is the fan radius in degrees for expanded cluster members.
const spiderfyRadius = 0.0004

// Spiderfy fans a cluster node's members out around the node center for
// individual inspection. Only offered at maximum zoom, where nodes can no
// longer split by zooming in.
func Spiderfy(node models.ClusterNode, features map[string]models.PointFeature) []models.Marker {
	markers := make([]models.Marker, 0, len(node.MemberIDs))
	n := len(node.MemberIDs)
	for i, id := range node.MemberIDs {
		f, ok := features[id]
		if !ok {
			continue
		}
		angle := 2 * math.Pi * float64(i) / float64(n)
		m := buildMarker(f)
		m.Lat = node.Lat + spiderfyRadius*math.Sin(angle)
		m.Lng = node.Lng + spiderfyRadius*math.Cos(angle)
		markers = append(markers, m)
	}
	return markers
}

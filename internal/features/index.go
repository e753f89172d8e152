package features

import (
	"log"
	"strings"

	"github.com/QianfengWen/CSC316/internal/models"
)

// BuildIndex wraps raw restaurant records into immutable point features.
// Records without usable coordinates are dropped silently; everything else is
// kept in input order. The returned slice never changes cardinality or order
// after this call — filtered views are always derived, never destructive.
func BuildIndex(records []models.RawRecord) []models.PointFeature {
	feats := make([]models.PointFeature, 0, len(records))
	dropped := 0

	for _, rec := range records {
		if !validCoordinate(rec.Lat, rec.Lng) {
			dropped++
			continue
		}

		cuisines := ParseCuisines(rec.Categories)
		feats = append(feats, models.PointFeature{
			ID:          rec.ID,
			Name:        rec.Name,
			Lat:         rec.Lat,
			Lng:         rec.Lng,
			Stars:       rec.Stars,
			ReviewCount: rec.ReviewCount,
			Cuisines:    cuisines,
			Categories:  rec.Categories,
			Gem:         isGem(cuisines),
		})
	}

	if dropped > 0 {
		log.Printf("[FeatureIndex] Dropped %d records without valid coordinates", dropped)
	}
	log.Printf("[FeatureIndex] Built %d features from %d records", len(feats), len(records))

	return feats
}

// ParseCuisines derives the ordered cuisine list from a raw comma-separated
// category string. Generic venue labels are excluded; the first surviving
// entry is the primary cuisine.
func ParseCuisines(categories string) []string {
	if categories == "" {
		return nil
	}

	var cuisines []string
	for _, part := range strings.Split(categories, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, generic := genericLabels[name]; generic {
			continue
		}
		cuisines = append(cuisines, name)
	}
	return cuisines
}

func isGem(cuisines []string) bool {
	for _, c := range cuisines {
		if IsGemCuisine(c) {
			return true
		}
	}
	return false
}

func validCoordinate(lat, lng float64) bool {
	if lat == 0 && lng == 0 {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

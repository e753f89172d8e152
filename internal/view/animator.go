package view

import (
	"sort"
	"time"

	"github.com/QianfengWen/CSC316/internal/models"
	"github.com/QianfengWen/CSC316/internal/spatial"
)

// The entrance animation stages the points variant's first appearance:
// markers radiate outward from the city center in fixed-size batches, each
// inserted transparent and faded up shortly after insertion. Every batch and
// fade task carries the render generation that scheduled it; a superseding
// render bumps the generation and turns the stale task into a no-op.

// orderByCenterDistance sorts features by ascending Manhattan distance from
// the fixed city center, keeping the input untouched.
func orderByCenterDistance(filtered []models.PointFeature) []models.PointFeature {
	ordered := make([]models.PointFeature, len(filtered))
	copy(ordered, filtered)
	sort.SliceStable(ordered, func(i, j int) bool {
		di := spatial.ManhattanDegrees(ordered[i].Lat, ordered[i].Lng, CityCenterLat, CityCenterLng)
		dj := spatial.ManhattanDegrees(ordered[j].Lat, ordered[j].Lng, CityCenterLat, CityCenterLng)
		return di < dj
	})
	return ordered
}

// runEntrance plans and schedules the staged insertion. Must be called with
// the coordinator lock held. Once scheduled, batches are never reordered or
// merged; each feature is inserted exactly once, in batch order.
func (c *Coordinator) runEntrance(filtered []models.PointFeature, gen uint64) {
	ordered := orderByCenterDistance(filtered)
	c.stage.BeginMarkers(len(ordered))

	for start, batchIndex := 0, 0; start < len(ordered); start, batchIndex = start+EntranceBatchSize, batchIndex+1 {
		end := start + EntranceBatchSize
		if end > len(ordered) {
			end = len(ordered)
		}
		batch := ordered[start:end]
		delay := time.Duration(batchIndex) * EntranceInterval
		c.sched.After(delay, func() {
			c.applyEntranceBatch(gen, batch)
		})
	}
}

// applyEntranceBatch inserts one batch of transparent markers and schedules
// their fade-in. Stale generations do nothing.
func (c *Coordinator) applyEntranceBatch(gen uint64, batch []models.PointFeature) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}

	markers := make([]models.Marker, 0, len(batch))
	ids := make([]string, 0, len(batch))
	for _, f := range batch {
		m := buildMarker(f)
		m.Style.Opacity = 0
		markers = append(markers, m)
		ids = append(ids, f.ID)
	}
	c.stage.AppendMarkers(markers)

	c.sched.After(EntranceFadeDelay, func() {
		c.applyEntranceFade(gen, ids)
	})
}

// applyEntranceFade raises each inserted marker to its target opacity.
func (c *Coordinator) applyEntranceFade(gen uint64, ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}
	for _, id := range ids {
		f, ok := c.featureByID[id]
		if !ok {
			continue
		}
		c.stage.SetMarkerOpacity(id, baseMarkerStyle(f.Gem).Opacity)
	}
}

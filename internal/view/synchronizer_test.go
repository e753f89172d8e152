package view

import (
	"testing"

	"github.com/QianfengWen/CSC316/internal/models"
)

func TestSynchronizeHiddenGemsScenario(t *testing.T) {
	feats := testFeatures()
	state := models.ViewState{FilterLabel: models.FilterHiddenGems}
	filtered := Resolve(feats, state)

	sum := Synchronize(filtered, state, 3)

	if sum.Total.To != 2 {
		t.Fatalf("total: got %d, want 2", sum.Total.To)
	}
	if sum.DistinctCuisines != 3 {
		t.Fatalf("distinct cuisines: got %d, want 3 (Ethiopian, Pizza, Vegan)", sum.DistinctCuisines)
	}
	if sum.GemCount != 2 {
		t.Fatalf("gem count: got %d, want 2", sum.GemCount)
	}
	if sum.AverageStars != 4.0 {
		t.Fatalf("average stars: got %v, want 4.0", sum.AverageStars)
	}
	if sum.Empty {
		t.Fatal("non-empty set flagged empty")
	}
}

func TestSynchronizeSearchScenario(t *testing.T) {
	feats := testFeatures()
	state := models.ViewState{FilterLabel: models.FilterAll, SearchTerm: "piz"}
	filtered := Resolve(feats, state)

	sum := Synchronize(filtered, state, 0)
	if sum.Total.To != 2 {
		t.Fatalf("total: got %d, want 2", sum.Total.To)
	}
	if sum.Badge.Label != models.FilterAll || sum.Badge.Count != 2 {
		t.Fatalf("badge: got %+v", sum.Badge)
	}
}

func TestSynchronizeEmptySet(t *testing.T) {
	state := models.ViewState{FilterLabel: models.FilterAll, SearchTerm: "zzz"}
	sum := Synchronize(nil, state, 7)

	if !sum.Empty {
		t.Fatal("empty set not flagged")
	}
	if sum.Total.From != 7 || sum.Total.To != 0 {
		t.Fatalf("tween endpoints: got %d->%d, want 7->0", sum.Total.From, sum.Total.To)
	}
	if sum.AverageStars != 0 {
		t.Fatalf("mean stars of empty set: got %v, want 0", sum.AverageStars)
	}
	if sum.DistinctCuisines != 0 || sum.GemCount != 0 {
		t.Fatalf("counters not at empty values: %+v", sum)
	}
	if len(sum.TopCuisines) != 0 {
		t.Fatal("mini-chart not cleared for empty set")
	}
}

func TestSynchronizeTopFiveRanking(t *testing.T) {
	var feats []models.PointFeature
	spread := map[string]int{
		"Pizza": 6, "Thai": 5, "Vegan": 4, "Indian": 3, "Chinese": 2, "Mexican": 1,
	}
	for cuisine, n := range spread {
		for j := 0; j < n; j++ {
			feats = append(feats, models.PointFeature{
				ID: cuisine + string(rune('a'+j)), Name: cuisine,
				Lat: 39.95, Lng: -75.16, Stars: 4,
				Cuisines: []string{cuisine},
			})
		}
	}

	sum := Synchronize(feats, models.ViewState{FilterLabel: models.FilterAll}, 0)
	if len(sum.TopCuisines) != 5 {
		t.Fatalf("mini-chart has %d bars, want 5", len(sum.TopCuisines))
	}
	want := []models.CuisineRank{
		{Cuisine: "Pizza", Count: 6},
		{Cuisine: "Thai", Count: 5},
		{Cuisine: "Vegan", Count: 4},
		{Cuisine: "Indian", Count: 3},
		{Cuisine: "Chinese", Count: 2},
	}
	for i, rank := range sum.TopCuisines {
		if rank != want[i] {
			t.Fatalf("rank %d: got %+v, want %+v", i, rank, want[i])
		}
	}
}

package view

import (
	"testing"

	"github.com/QianfengWen/CSC316/internal/models"
)

func testFeatures() []models.PointFeature {
	return []models.PointFeature{
		{
			ID: "a", Name: "Tony's Pizza", Lat: 39.95, Lng: -75.16,
			Stars: 4.0, ReviewCount: 120,
			Cuisines: []string{"Pizza"}, Categories: "Restaurants, Pizza",
		},
		{
			ID: "b", Name: "Blue Nile", Lat: 39.96, Lng: -75.17,
			Stars: 4.5, ReviewCount: 80,
			Cuisines: []string{"Ethiopian"}, Categories: "Restaurants, Ethiopian",
			Gem: true,
		},
		{
			ID: "c", Name: "Slice & Sprout", Lat: 39.94, Lng: -75.15,
			Stars: 3.5, ReviewCount: 45,
			Cuisines: []string{"Pizza", "Vegan"}, Categories: "Restaurants, Pizza, Vegan",
			Gem: true,
		},
	}
}

func ids(feats []models.PointFeature) []string {
	out := make([]string, len(feats))
	for i, f := range feats {
		out[i] = f.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResolveAllWithEmptySearch(t *testing.T) {
	feats := testFeatures()
	got := Resolve(feats, models.ViewState{Mode: models.ModePoints, FilterLabel: models.FilterAll})

	if !equalIDs(ids(got), []string{"a", "b", "c"}) {
		t.Fatalf("expected full set unchanged, got %v", ids(got))
	}
}

func TestResolveHiddenGems(t *testing.T) {
	feats := testFeatures()
	got := Resolve(feats, models.ViewState{FilterLabel: models.FilterHiddenGems})

	if !equalIDs(ids(got), []string{"b", "c"}) {
		t.Fatalf("expected gems {b,c}, got %v", ids(got))
	}
}

func TestResolveCuisineLabel(t *testing.T) {
	feats := testFeatures()
	got := Resolve(feats, models.ViewState{FilterLabel: "Pizza"})

	if !equalIDs(ids(got), []string{"a", "c"}) {
		t.Fatalf("expected pizza {a,c}, got %v", ids(got))
	}
}

func TestResolveSearchSubstring(t *testing.T) {
	feats := testFeatures()

	cases := []struct {
		name  string
		state models.ViewState
		want  []string
	}{
		{"name match", models.ViewState{FilterLabel: models.FilterAll, SearchTerm: "piz"}, []string{"a", "c"}},
		{"case insensitive", models.ViewState{FilterLabel: models.FilterAll, SearchTerm: "PIZ"}, []string{"a", "c"}},
		{"cuisine match", models.ViewState{FilterLabel: models.FilterAll, SearchTerm: "ethi"}, []string{"b"}},
		{"combined with filter", models.ViewState{FilterLabel: models.FilterHiddenGems, SearchTerm: "piz"}, []string{"c"}},
		{"no match", models.ViewState{FilterLabel: models.FilterAll, SearchTerm: "sushi"}, nil},
		{"whitespace only passes all", models.ViewState{FilterLabel: models.FilterAll, SearchTerm: "   "}, []string{"a", "b", "c"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(feats, tc.state)
			if !equalIDs(ids(got), tc.want) {
				t.Fatalf("got %v, want %v", ids(got), tc.want)
			}
		})
	}
}

// The resolver must return an order-preserving subsequence: no duplicates,
// no insertions, no reordering, for any state.
func TestResolveSubsequenceProperty(t *testing.T) {
	feats := testFeatures()

	states := []models.ViewState{
		{FilterLabel: models.FilterAll},
		{FilterLabel: models.FilterHiddenGems},
		{FilterLabel: "Pizza"},
		{FilterLabel: "Vegan", SearchTerm: "sprout"},
		{FilterLabel: models.FilterAll, SearchTerm: "zzz"},
	}

	for _, state := range states {
		got := Resolve(feats, state)
		pos := -1
		for _, g := range got {
			found := -1
			for i, f := range feats {
				if f.ID == g.ID && i > pos {
					found = i
					break
				}
			}
			if found == -1 {
				t.Fatalf("state %+v: %q out of order or not in source", state, g.ID)
			}
			pos = found
		}
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	feats := testFeatures()
	Resolve(feats, models.ViewState{FilterLabel: models.FilterHiddenGems})

	if !equalIDs(ids(feats), []string{"a", "b", "c"}) {
		t.Fatal("resolver mutated its input")
	}
}

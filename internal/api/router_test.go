package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"

	"github.com/QianfengWen/CSC316/internal/repository"
	"github.com/QianfengWen/CSC316/internal/service"
	"github.com/QianfengWen/CSC316/internal/view"
)

func seedDataset(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open in-memory dataset: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := `CREATE TABLE restaurants (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL NOT NULL,
		lng REAL NOT NULL,
		stars REAL NOT NULL,
		review_count INTEGER NOT NULL,
		categories TEXT
	)`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	rows := [][]interface{}{
		{"a", "Tony's Pizza", 39.9500, -75.1600, 4.0, 120, "Restaurants, Pizza"},
		{"b", "Blue Nile", 39.9600, -75.1700, 4.5, 80, "Restaurants, Ethiopian"},
		{"c", "Slice & Sprout", 39.9400, -75.1500, 3.5, 45, "Restaurants, Pizza, Vegan"},
		{"bad", "Null Island Grill", 0.0, 0.0, 2.0, 3, "Restaurants"},
	}
	for _, r := range rows {
		if _, err := db.Exec(
			`INSERT INTO restaurants (id, name, lat, lng, stars, review_count, categories)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`, r...); err != nil {
			t.Fatalf("seed row: %v", err)
		}
	}
	return db
}

func newTestServer(t *testing.T) (*gin.Engine, *view.ManualScheduler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sched := view.NewManualScheduler()
	repo := repository.NewRestaurantRepository(seedDataset(t))
	svc, err := service.NewMapService(repo, sched)
	if err != nil {
		t.Fatalf("build map service: %v", err)
	}
	sched.Advance(10 * time.Second) // drain the entrance animation

	return SetupRouter(svc), sched
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("%s %s: invalid JSON response %q", method, path, w.Body.String())
	}
	return w, parsed
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	w, body := doJSON(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if body["map"] != true {
		t.Fatal("map not reported available")
	}
}

func TestViewEndpointServesMountedMarkers(t *testing.T) {
	r, _ := newTestServer(t)
	w, body := doJSON(t, r, http.MethodGet, "/api/v1/map/view", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	data := body["data"].(map[string]interface{})
	markers := data["markers"].([]interface{})
	if len(markers) != 3 {
		t.Fatalf("%d markers served, want 3 (invalid row dropped)", len(markers))
	}
}

func TestFilterEndpointUpdatesSummary(t *testing.T) {
	r, _ := newTestServer(t)
	w, body := doJSON(t, r, http.MethodPost, "/api/v1/map/filter", `{"label":"Hidden Gems"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %v", w.Code, body)
	}

	data := body["data"].(map[string]interface{})
	total := data["total"].(map[string]interface{})
	if total["to"].(float64) != 2 {
		t.Fatalf("summary total %v, want 2", total["to"])
	}
	if data["gem_count"].(float64) != 2 {
		t.Fatalf("gem count %v, want 2", data["gem_count"])
	}
}

func TestFilterEndpointRejectsUnknownLabel(t *testing.T) {
	r, _ := newTestServer(t)
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/map/filter", `{"label":"Klingon"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestModeEndpointSwitchesVariant(t *testing.T) {
	r, _ := newTestServer(t)
	w, body := doJSON(t, r, http.MethodPost, "/api/v1/map/mode", `{"mode":"density"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	data := body["data"].(map[string]interface{})
	if data["heat"] == nil {
		t.Fatal("density mode did not mount a heat surface")
	}
	if data["markers"] != nil {
		t.Fatal("points layers survived the mode switch")
	}
}

func TestSearchEndpointDebounces(t *testing.T) {
	r, sched := newTestServer(t)
	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/map/search", `{"term":"piz"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	// Uncommitted until the quiet period elapses.
	_, body := doJSON(t, r, http.MethodGet, "/api/v1/map/view", "")
	data := body["data"].(map[string]interface{})
	if got := data["state"].(map[string]interface{})["search_term"]; got != "" {
		t.Fatalf("search committed before debounce: %v", got)
	}

	sched.Advance(view.SearchDebounce)
	_, body = doJSON(t, r, http.MethodGet, "/api/v1/map/view", "")
	data = body["data"].(map[string]interface{})
	markers := data["markers"].([]interface{})
	if len(markers) != 2 {
		t.Fatalf("%d markers after search, want 2", len(markers))
	}
}

func TestVisibilityEndpointArmsTour(t *testing.T) {
	r, _ := newTestServer(t)
	w, body := doJSON(t, r, http.MethodPost, "/api/v1/map/visibility", `{"ratio":0.5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	data := body["data"].(map[string]interface{})
	if data["tour_phase"] != "zoom_in" {
		t.Fatalf("tour phase %v, want zoom_in", data["tour_phase"])
	}

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/map/visibility", `{"ratio":1.5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out-of-range ratio: status %d, want 400", w.Code)
	}
}

func TestRouterWithoutDatasetServesHealthOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(nil)

	w, body := doJSON(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status %d", w.Code)
	}
	if body["map"] != false {
		t.Fatal("map reported available without a dataset")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/map/view", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("map endpoint present without dataset: %d", rec.Code)
	}
}

func TestControlsEndpointListsAllowList(t *testing.T) {
	r, _ := newTestServer(t)
	_, body := doJSON(t, r, http.MethodGet, "/api/v1/map/controls", "")

	data := body["data"].(map[string]interface{})
	filters := data["filters"].([]interface{})
	first := filters[0].(map[string]interface{})
	if first["label"] != "All" || first["active"] != true {
		t.Fatalf("first control %+v, want active All", first)
	}
	if first["badge"].(float64) != 3 {
		t.Fatalf("badge %v, want 3", first["badge"])
	}
	modes := data["modes"].([]interface{})
	if len(modes) != 3 {
		t.Fatalf("%d modes, want 3", len(modes))
	}
}

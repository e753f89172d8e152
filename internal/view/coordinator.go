package view

import (
	"fmt"
	"log"
	"sync"

	"github.com/QianfengWen/CSC316/internal/models"
)

// Coordinator is the map view's single writer. UI events (filter clicks,
// debounced search input, mode toggles, section-visibility pings) and fired
// timer callbacks are its only inputs; each mutation of the view state
// triggers exactly one render pass, and every render pass bumps the
// generation counter that stale scheduled work checks itself against.
//
// The full feature set never changes cardinality or order after construction;
// only filtered views derived from it vary.
type Coordinator struct {
	mu sync.Mutex

	features    []models.PointFeature
	featureByID map[string]models.PointFeature

	state models.ViewState
	gen   uint64

	stage *Stage
	sched Scheduler
	tour  *TourController

	summary   models.Summary
	prevTotal int
	started   bool

	// visHandlers receive section-visibility events; a handler returning
	// true has consumed its one shot and is unsubscribed.
	visHandlers []func(ratio float64) bool

	// Debounce bookkeeping: only the newest pending search commits.
	searchSeq     uint64
	pendingSearch string
}

// NewCoordinator builds a coordinator over the immutable feature set.
func NewCoordinator(features []models.PointFeature, sched Scheduler) *Coordinator {
	byID := make(map[string]models.PointFeature, len(features))
	for _, f := range features {
		byID[f.ID] = f
	}

	c := &Coordinator{
		features:    features,
		featureByID: byID,
		state:       models.DefaultViewState(),
		stage:       NewStage(),
		sched:       sched,
		tour:        NewTourController(),
	}

	// The tour's one-shot arming subscription.
	c.visHandlers = append(c.visHandlers, func(ratio float64) bool {
		if ratio < TourVisibilityMin {
			return false
		}
		c.armTour()
		return true
	})

	return c
}

// Start runs the very first render pass: always the points variant, always
// with the entrance animation.
func (c *Coordinator) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return
	}
	c.started = true
	c.render(true)
}

// SetFilter applies a filter toggle click. Unknown labels are rejected.
func (c *Coordinator) SetFilter(label string) error {
	if !ValidFilterLabel(label) {
		return fmt.Errorf("unknown filter label %q", label)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.FilterLabel == label {
		return nil
	}
	c.state.FilterLabel = label
	c.render(false)
	return nil
}

// SetSearchInput records a search keystroke. The term is committed, and a
// single render fired, only after the debounce quiet period with no newer
// keystroke.
func (c *Coordinator) SetSearchInput(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pendingSearch = term
	c.searchSeq++
	seq := c.searchSeq
	c.sched.After(SearchDebounce, func() {
		c.commitSearch(seq)
	})
}

func (c *Coordinator) commitSearch(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.searchSeq {
		return // a newer keystroke restarted the quiet period
	}
	if c.state.SearchTerm == c.pendingSearch {
		return
	}
	c.state.SearchTerm = c.pendingSearch
	c.render(false)
}

// SetMode switches the presentation variant. Always allowed; the previous
// variant's layers are torn down before the new variant mounts.
func (c *Coordinator) SetMode(mode models.ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown view mode %q", mode)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Mode == mode {
		return nil
	}
	c.state.Mode = mode
	c.render(false)
	return nil
}

// SetZoom moves the camera. Cluster grouping depends on zoom, so the
// clusters variant re-renders; other variants keep their layers.
func (c *Coordinator) SetZoom(zoom int) {
	if zoom < 3 {
		zoom = 3
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cam := c.stage.Camera()
	if cam.Zoom == zoom {
		return
	}
	cam.Zoom = zoom
	c.stage.SetCamera(cam)
	if c.state.Mode == models.ModeClusters {
		c.render(false)
	}
}

// HandleVisibility delivers a section-visibility ratio (0-1) to the
// subscribed one-shot consumers.
func (c *Coordinator) HandleVisibility(ratio float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	remaining := c.visHandlers[:0]
	for _, h := range c.visHandlers {
		if !h(ratio) {
			remaining = append(remaining, h)
		}
	}
	c.visHandlers = remaining
}

// render runs one pass against the current state. Caller holds the lock.
func (c *Coordinator) render(withEntrance bool) {
	c.gen++
	gen := c.gen

	filtered := Resolve(c.features, c.state)
	if len(filtered) == 0 {
		c.stage.SetEmpty(true)
	} else {
		switch c.state.Mode {
		case models.ModePoints:
			if withEntrance {
				c.runEntrance(filtered, gen)
			} else {
				renderPoints(c.stage, filtered)
			}
		case models.ModeDensity:
			renderDensity(c.stage, filtered)
		case models.ModeClusters:
			renderClusters(c.stage, filtered)
		}
	}

	c.summary = Synchronize(filtered, c.state, c.prevTotal)
	c.prevTotal = len(filtered)

	log.Printf("[View] Render pass gen=%d mode=%s filter=%q search=%q matched=%d",
		gen, c.state.Mode, c.state.FilterLabel, c.state.SearchTerm, len(filtered))
}

// ViewSnapshot copies the current overlay state.
func (c *Coordinator) ViewSnapshot() models.RenderSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage.Snapshot(c.gen, c.state)
}

// SummarySnapshot returns the synchronizer's output for the last render pass.
func (c *Coordinator) SummarySnapshot() models.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}

// ControlsSnapshot lists the filter toggles with the active badge.
func (c *Coordinator) ControlsSnapshot() []models.FilterControl {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Controls(c.state, c.prevTotal)
}

// TourPhase reports the tour FSM's current phase.
func (c *Coordinator) TourPhase() TourPhase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tour.Phase()
}

// SpiderfyCluster fans out a mounted cluster node's members. Only available
// while the clusters variant is mounted and the camera is at maximum zoom.
func (c *Coordinator) SpiderfyCluster(id string) ([]models.Marker, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage.MountedVariant() != models.ModeClusters {
		return nil, fmt.Errorf("clusters variant is not mounted")
	}
	if c.stage.Camera().Zoom < SpiderfyZoom {
		return nil, fmt.Errorf("spiderfy requires zoom >= %d", SpiderfyZoom)
	}
	node, ok := c.stage.ClusterByID(id)
	if !ok {
		return nil, fmt.Errorf("no cluster node %q", id)
	}
	return Spiderfy(node, c.featureByID), nil
}

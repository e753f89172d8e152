package spatial

// GridCell is one bucket of a fixed-pitch degree grid.
type GridCell struct {
	Row, Col int
	Lat, Lng float64 // cell center
	Count    int
	Smoothed float64
}

// Grid accumulates coordinates into a fixed-pitch grid anchored at an origin.
// The density variant feeds filtered features in, smooths, and maps the
// result onto its gradient.
type Grid struct {
	pitch     float64
	originLat float64
	originLng float64
	cells     map[[2]int]*GridCell
}

// NewGrid creates a grid with the given pitch in degrees, anchored so the
// origin coordinate falls on a cell corner.
func NewGrid(originLat, originLng, pitch float64) *Grid {
	return &Grid{
		pitch:     pitch,
		originLat: originLat,
		originLng: originLng,
		cells:     make(map[[2]int]*GridCell),
	}
}

// Add buckets one coordinate.
func (g *Grid) Add(lat, lng float64) {
	row := int((lat - g.originLat) / g.pitch)
	if lat < g.originLat {
		row--
	}
	col := int((lng - g.originLng) / g.pitch)
	if lng < g.originLng {
		col--
	}
	key := [2]int{row, col}
	cell, ok := g.cells[key]
	if !ok {
		cell = &GridCell{
			Row: row,
			Col: col,
			Lat: g.originLat + (float64(row)+0.5)*g.pitch,
			Lng: g.originLng + (float64(col)+0.5)*g.pitch,
		}
		g.cells[key] = cell
	}
	cell.Count++
}

// Smooth spreads each cell's count over its 3x3 neighborhood with a center
// weight of 1 and a neighbor weight of 0.5, filling Smoothed on every touched
// cell. Returns the populated cells and the maximum smoothed value.
func (g *Grid) Smooth() ([]*GridCell, float64) {
	// Neighbor contributions can land in cells that held no raw points.
	for _, cell := range g.snapshot() {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				weight := 0.5
				if dr == 0 && dc == 0 {
					weight = 1.0
				}
				g.bump(cell.Row+dr, cell.Col+dc, weight*float64(cell.Count))
			}
		}
	}

	out := make([]*GridCell, 0, len(g.cells))
	var max float64
	for _, cell := range g.cells {
		out = append(out, cell)
		if cell.Smoothed > max {
			max = cell.Smoothed
		}
	}
	return out, max
}

// Pitch returns the grid pitch in degrees.
func (g *Grid) Pitch() float64 {
	return g.pitch
}

func (g *Grid) snapshot() []*GridCell {
	cells := make([]*GridCell, 0, len(g.cells))
	for _, c := range g.cells {
		if c.Count > 0 {
			cells = append(cells, c)
		}
	}
	return cells
}

func (g *Grid) bump(row, col int, value float64) {
	key := [2]int{row, col}
	cell, ok := g.cells[key]
	if !ok {
		cell = &GridCell{
			Row: row,
			Col: col,
			Lat: g.originLat + (float64(row)+0.5)*g.pitch,
			Lng: g.originLng + (float64(col)+0.5)*g.pitch,
		}
		g.cells[key] = cell
	}
	cell.Smoothed += value
}

package core

import "errors"

// ErrInvalidDimensions reports a grid that would have no rows or no columns.
var ErrInvalidDimensions = errors.New("core: grid dimensions must be positive")

// moore lists the eight neighbour offsets as (row, col) deltas.
var moore = [8][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{-1, 0},
	{0, -1},
	{-1, -1},
	{-1, 1},
	{1, -1},
}

// Grid stores a bounded lattice of cells in row-major order. Every cell keeps
// a cached count of its live Moore neighbours; SetAlive is the only way to
// change a cell and keeps those counts exact after every call.
type Grid struct {
	Rows, Cols int

	alive      []bool
	neighbors  []uint8
	population int

	dirty *DirtyTracker
}

// Dims converts a pixel-space size into grid dimensions. The column count
// comes from the width and the row count from the height, both floored.
func Dims(pixelW, pixelH, cellSize int) (rows, cols int, err error) {
	if cellSize <= 0 || pixelW <= 0 || pixelH <= 0 {
		return 0, 0, ErrInvalidDimensions
	}
	rows, cols = pixelH/cellSize, pixelW/cellSize
	if rows <= 0 || cols <= 0 {
		return 0, 0, ErrInvalidDimensions
	}
	return rows, cols, nil
}

// NewGrid allocates an all-dead grid.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Grid{
		Rows:      rows,
		Cols:      cols,
		alive:     make([]bool, rows*cols),
		neighbors: make([]uint8, rows*cols),
	}, nil
}

// Size reports the grid dimensions with W as columns and H as rows.
func (g *Grid) Size() Size { return Size{W: g.Cols, H: g.Rows} }

// Track attaches a dirty tracker. Passing nil disables tracking.
func (g *Grid) Track(t *DirtyTracker) { g.dirty = t }

// Tracker returns the attached dirty tracker, which may be nil.
func (g *Grid) Tracker() *DirtyTracker { return g.dirty }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.Rows && col < g.Cols
}

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Alive reports whether the cell is alive. Coordinates must be in bounds.
func (g *Grid) Alive(row, col int) bool { return g.alive[g.Index(row, col)] }

// Neighbors returns the cached live-neighbour count. Coordinates must be in bounds.
func (g *Grid) Neighbors(row, col int) int { return int(g.neighbors[g.Index(row, col)]) }

// Population returns the number of live cells.
func (g *Grid) Population() int { return g.population }

// SetAlive changes one cell and updates the counts of its in-bounds
// neighbours. Setting a cell to the state it already has does nothing, so
// repeated calls never double count.
func (g *Grid) SetAlive(row, col int, alive bool) {
	idx := g.Index(row, col)
	if g.alive[idx] == alive {
		return
	}
	g.alive[idx] = alive
	if alive {
		g.population++
	} else {
		g.population--
	}

	for _, d := range moore {
		nr, nc := row+d[0], col+d[1]
		if nr < 0 || nc < 0 || nr >= g.Rows || nc >= g.Cols {
			continue
		}
		n := nr*g.Cols + nc
		if alive {
			g.neighbors[n]++
		} else if g.neighbors[n] > 0 {
			g.neighbors[n]--
		}
	}

	if g.dirty != nil {
		g.dirty.Mark(row, col)
	}
}

// Clear kills every cell, zeroes every count and resets the dirty tracker.
func (g *Grid) Clear() {
	for i := range g.alive {
		g.alive[i] = false
		g.neighbors[i] = 0
	}
	g.population = 0
	if g.dirty != nil {
		g.dirty.Reset()
	}
}

// SeedRandom performs one random trial per five cells (rounded up), setting a
// uniformly chosen cell alive on each trial. Collisions are not retried, so the
// resulting density is at most one in five.
func (g *Grid) SeedRandom(src Float64Source) {
	trials := (g.Rows*g.Cols + 4) / 5
	for i := 0; i < trials; i++ {
		row := int(src.Float64() * float64(g.Rows))
		col := int(src.Float64() * float64(g.Cols))
		if !g.InBounds(row, col) {
			continue
		}
		g.SetAlive(row, col, true)
	}
}

// copyFrom overwrites g with the cells of src. Both grids must have the same
// dimensions. The tracker is left untouched since no cell changes visually.
func (g *Grid) copyFrom(src *Grid) {
	copy(g.alive, src.alive)
	copy(g.neighbors, src.neighbors)
	g.population = src.population
}

// Package sim owns a running Game of Life: the double-buffered grid, the
// dirty tracker, pointer mapping and pause state. A Life is driven from a
// single goroutine by its frontend.
package sim

import (
	"time"

	"mad-life/internal/core"
	"mad-life/internal/render"
)

// Config describes how to build a Life.
type Config struct {
	// PixelW and PixelH give the drawing area; the grid is this size divided
	// by CellSize.
	PixelW, PixelH int
	CellSize       int

	// Paused is the initial playback state.
	Paused bool
	// SeedRandom seeds the grid with Random on construction.
	SeedRandom bool
	// Seed feeds the random source. Zero picks one from the clock.
	Seed int64
	// Halo is the dirty-tracker halo radius.
	Halo int
}

// Stats summarises a run.
type Stats struct {
	Generation int
	Population int
	Peak       int
}

// Life is the simulation controller. It exclusively owns both generation
// buffers and swaps them after every step.
type Life struct {
	cur, nxt *core.Grid
	tracker  *core.DirtyTracker
	mapper   core.Mapper
	renderer render.Renderer
	rng      *core.RNG
	seed     int64

	paused      bool
	pointerDown bool

	generation int
	peak       int
}

// New builds a Life from cfg. A nil renderer paints with render.Full.
func New(cfg Config, r render.Renderer) (*Life, error) {
	rows, cols, err := core.Dims(cfg.PixelW, cfg.PixelH, cfg.CellSize)
	if err != nil {
		return nil, err
	}
	cur, err := core.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	tracker := core.NewDirtyTracker(rows, cols, cfg.Halo)
	cur.Track(tracker)
	nxt.Track(tracker)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if r == nil {
		r = &render.Full{CellSize: cfg.CellSize, Palette: render.DefaultPalette()}
	}

	l := &Life{
		cur:      cur,
		nxt:      nxt,
		tracker:  tracker,
		mapper:   core.NewMapper(cur, cfg.CellSize),
		renderer: r,
		rng:      core.NewRNG(seed),
		seed:     seed,
		paused:   cfg.Paused,
	}
	if cfg.SeedRandom {
		l.Random()
	}
	return l, nil
}

// Size reports the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// CellSize returns the pixel size of one cell.
func (l *Life) CellSize() int { return l.mapper.CellSize }

// Grid exposes the current generation for reading. Callers must not keep it
// across ticks; the next Update swaps it out.
func (l *Life) Grid() *core.Grid { return l.cur }

// Seed returns the seed of the random source.
func (l *Life) Seed() int64 { return l.seed }

// Paused reports whether regular updates are suspended.
func (l *Life) Paused() bool { return l.paused }

// TogglePaused flips between running and paused.
func (l *Life) TogglePaused() { l.paused = !l.paused }

// Update advances one generation unless paused.
func (l *Life) Update() {
	if l.paused {
		return
	}
	l.advance()
}

// ForceUpdate advances exactly one generation regardless of the pause state,
// which is left as it was.
func (l *Life) ForceUpdate() {
	prior := l.paused
	l.paused = false
	l.Update()
	l.paused = prior
}

func (l *Life) advance() {
	core.Step(l.cur, l.nxt)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
	l.observe()
}

// SetAt brings the cell under pixel position (px, py) to life. Positions
// outside the grid are ignored.
func (l *Life) SetAt(px, py int) {
	row, col, ok := l.mapper.Cell(px, py)
	if !ok {
		return
	}
	l.cur.SetAlive(row, col, true)
	l.observe()
}

// Clear kills every cell and schedules a full repaint.
func (l *Life) Clear() {
	l.cur.Clear()
	l.renderer.Invalidate()
}

// Random scatters live cells over the grid.
func (l *Life) Random() {
	l.cur.SeedRandom(l.rng)
	l.observe()
}

// Draw paints the current generation with the configured renderer.
func (l *Life) Draw(dst render.Surface) {
	l.renderer.Draw(dst, l.cur)
}

// Invalidate forces the next Draw to repaint everything, e.g. after the
// frontend lost its surface contents.
func (l *Life) Invalidate() { l.renderer.Invalidate() }

// Stats returns the generation counter and population figures.
func (l *Life) Stats() Stats {
	return Stats{Generation: l.generation, Population: l.cur.Population(), Peak: l.peak}
}

func (l *Life) observe() {
	if p := l.cur.Population(); p > l.peak {
		l.peak = p
	}
}

package render

import "mad-life/internal/core"

// Full clears the surface and paints every live cell on each frame.
type Full struct {
	CellSize int
	Palette  Palette
}

// Draw repaints the whole grid. Pending dirty marks are discarded since the
// frame already reflects them.
func (r *Full) Draw(dst Surface, g *core.Grid) {
	paintAll(dst, g, r.CellSize, r.Palette)
	if t := g.Tracker(); t != nil {
		t.Reset()
	}
}

// Invalidate is a no-op; every frame is a full repaint.
func (r *Full) Invalidate() {}

// Dirty paints the whole grid once and afterwards only the cells reported by
// the grid's tracker. The surface must keep its contents between frames.
type Dirty struct {
	CellSize int
	Palette  Palette

	painted bool
}

// Draw repaints the dirty cells and flushes the tracker. Grids without a
// tracker fall back to a full repaint.
func (r *Dirty) Draw(dst Surface, g *core.Grid) {
	t := g.Tracker()
	if !r.painted || t == nil {
		paintAll(dst, g, r.CellSize, r.Palette)
		if t != nil {
			t.Reset()
		}
		r.painted = true
		return
	}
	size := r.CellSize
	t.Flush(func(row, col int) {
		c := r.Palette.Off
		if g.Alive(row, col) {
			c = r.Palette.On
		}
		dst.DrawRect(c, col*size, row*size, size, size)
	})
}

// Invalidate schedules a full repaint for the next frame.
func (r *Dirty) Invalidate() { r.painted = false }

func paintAll(dst Surface, g *core.Grid, size int, p Palette) {
	dst.Fill(p.Off)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.Alive(row, col) {
				dst.DrawRect(p.On, col*size, row*size, size, size)
			}
		}
	}
}

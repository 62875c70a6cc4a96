package core

// DirtyTracker records which cells need repainting since the last flush. It
// is shared by both generation buffers so marks survive the buffer swap, and
// it is only ever cleared by the consumer.
type DirtyTracker struct {
	rows, cols int
	halo       int

	flags []bool
	order []int
}

// NewDirtyTracker creates a tracker for a rows×cols grid. A positive halo
// also marks the square neighbourhood of that radius around each change.
func NewDirtyTracker(rows, cols, halo int) *DirtyTracker {
	if halo < 0 {
		halo = 0
	}
	return &DirtyTracker{
		rows:  rows,
		cols:  cols,
		halo:  halo,
		flags: make([]bool, rows*cols),
		order: make([]int, 0, 64),
	}
}

// Halo returns the configured halo radius.
func (t *DirtyTracker) Halo() int { return t.halo }

// Mark flags (row, col) and its halo, clipped to the grid.
func (t *DirtyTracker) Mark(row, col int) {
	if t.halo == 0 {
		if row >= 0 && col >= 0 && row < t.rows && col < t.cols {
			t.mark(row*t.cols + col)
		}
		return
	}
	for r := row - t.halo; r <= row+t.halo; r++ {
		if r < 0 || r >= t.rows {
			continue
		}
		for c := col - t.halo; c <= col+t.halo; c++ {
			if c < 0 || c >= t.cols {
				continue
			}
			t.mark(r*t.cols + c)
		}
	}
}

func (t *DirtyTracker) mark(idx int) {
	if t.flags[idx] {
		return
	}
	t.flags[idx] = true
	t.order = append(t.order, idx)
}

// MarkAll flags every cell, forcing a full repaint on the next flush.
func (t *DirtyTracker) MarkAll() {
	for i := range t.flags {
		t.mark(i)
	}
}

// IsDirty reports whether (row, col) is waiting to be repainted.
func (t *DirtyTracker) IsDirty(row, col int) bool {
	if row < 0 || col < 0 || row >= t.rows || col >= t.cols {
		return false
	}
	return t.flags[row*t.cols+col]
}

// Len returns the number of dirty cells.
func (t *DirtyTracker) Len() int { return len(t.order) }

// Flush visits every dirty cell once, in the order they were first marked,
// and then clears all flags. fn may be nil to discard the marks.
func (t *DirtyTracker) Flush(fn func(row, col int)) {
	for _, idx := range t.order {
		if fn != nil {
			fn(idx/t.cols, idx%t.cols)
		}
		t.flags[idx] = false
	}
	t.order = t.order[:0]
}

// Reset clears every flag without visiting them.
func (t *DirtyTracker) Reset() { t.Flush(nil) }

package core

// Step writes the generation following cur into next. next must have the
// same dimensions as cur; its previous contents are discarded.
//
// The rule only ever reads cur, so changes already applied to next during the
// pass never influence other cells of the same generation.
func Step(cur, next *Grid) {
	next.copyFrom(cur)
	for row := 0; row < cur.Rows; row++ {
		base := row * cur.Cols
		for col := 0; col < cur.Cols; col++ {
			idx := base + col
			n := cur.neighbors[idx]
			if cur.alive[idx] {
				if n != 2 && n != 3 {
					next.SetAlive(row, col, false)
				}
			} else if n == 3 {
				next.SetAlive(row, col, true)
			}
		}
	}
}

// Next allocates a new grid holding the generation after cur. It shares cur's
// dirty tracker.
func Next(cur *Grid) *Grid {
	next, err := NewGrid(cur.Rows, cur.Cols)
	if err != nil {
		// cur was built by NewGrid, so its dimensions are valid.
		panic(err)
	}
	next.Track(cur.dirty)
	Step(cur, next)
	return next
}

package core

import "testing"

func aliveSet(g *Grid) map[[2]int]bool {
	out := map[[2]int]bool{}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.Alive(row, col) {
				out[[2]int{row, col}] = true
			}
		}
	}
	return out
}

func expectAlive(t *testing.T, g *Grid, want [][2]int) {
	t.Helper()
	got := aliveSet(g)
	if len(got) != len(want) {
		t.Fatalf("alive cells=%v, expected %v", got, want)
	}
	for _, c := range want {
		if !got[c] {
			t.Fatalf("cell %v dead, expected alive (alive set %v)", c, got)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := mustGrid(t, 11, 11)
	for _, c := range [][2]int{{5, 4}, {5, 5}, {5, 6}} {
		g.SetAlive(c[0], c[1], true)
	}

	g = Next(g)
	expectAlive(t, g, [][2]int{{4, 5}, {5, 5}, {6, 5}})
	checkCounts(t, g)

	g = Next(g)
	expectAlive(t, g, [][2]int{{5, 4}, {5, 5}, {5, 6}})
	checkCounts(t, g)
}

func TestGliderTranslation(t *testing.T) {
	g := mustGrid(t, 12, 12)
	glider := [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}
	for _, c := range glider {
		g.SetAlive(c[0], c[1], true)
	}

	for i := 0; i < 4; i++ {
		g = Next(g)
		checkCounts(t, g)
	}

	moved := make([][2]int, len(glider))
	for i, c := range glider {
		moved[i] = [2]int{c[0] + 1, c[1] + 1}
	}
	expectAlive(t, g, moved)
}

func TestStepUsesSnapshotOnly(t *testing.T) {
	// A row of three on the top edge: the birth below it and the deaths at
	// both ends must all come from the same snapshot.
	cur := mustGrid(t, 4, 5)
	for col := 1; col <= 3; col++ {
		cur.SetAlive(0, col, true)
	}
	next := mustGrid(t, 4, 5)
	next.SetAlive(3, 4, true) // stale contents must be discarded

	Step(cur, next)

	expectAlive(t, next, [][2]int{{0, 2}, {1, 2}})
	checkCounts(t, next)
	expectAlive(t, cur, [][2]int{{0, 1}, {0, 2}, {0, 3}})
}

func TestBoundedEdgesDoNotWrap(t *testing.T) {
	g := mustGrid(t, 5, 5)
	// On a torus the far column would see these three cells and come alive.
	for row := 1; row <= 3; row++ {
		g.SetAlive(row, 0, true)
	}
	g = Next(g)
	expectAlive(t, g, [][2]int{{2, 0}, {2, 1}})
	for row := 0; row < g.Rows; row++ {
		if g.Alive(row, g.Cols-1) {
			t.Fatalf("cell (%d,%d) on the far edge came alive", row, g.Cols-1)
		}
	}
}

func TestStepMarksOnlyChangedCells(t *testing.T) {
	g := mustGrid(t, 9, 9)
	tr := NewDirtyTracker(9, 9, 0)
	g.Track(tr)
	for _, c := range [][2]int{{4, 3}, {4, 4}, {4, 5}} {
		g.SetAlive(c[0], c[1], true)
	}
	tr.Reset()

	g = Next(g)
	if g.Tracker() != tr {
		t.Fatal("next generation must share the tracker")
	}
	want := map[[2]int]bool{{4, 3}: true, {4, 5}: true, {3, 4}: true, {5, 4}: true}
	if tr.Len() != len(want) {
		t.Fatalf("dirty cells=%d, expected %d", tr.Len(), len(want))
	}
	tr.Flush(func(row, col int) {
		if !want[[2]int{row, col}] {
			t.Fatalf("cell (%d,%d) marked dirty but did not change", row, col)
		}
	})
}

package core

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := NewGrid(rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d): %v", rows, cols, err)
	}
	return g
}

// checkCounts recomputes every neighbour count from scratch and compares it
// with the cached value.
func checkCounts(t *testing.T, g *Grid) {
	t.Helper()
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			want := 0
			for _, d := range moore {
				nr, nc := row+d[0], col+d[1]
				if g.InBounds(nr, nc) && g.Alive(nr, nc) {
					want++
				}
			}
			if got := g.Neighbors(row, col); got != want {
				t.Fatalf("cell (%d,%d) cached neighbours=%d, expected %d", row, col, got, want)
			}
		}
	}
}

func TestNewGridRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 3}, {3, -2}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d, %d) err=%v, expected ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestDimsFloorsPixelSize(t *testing.T) {
	rows, cols, err := Dims(900, 603, 4)
	if err != nil {
		t.Fatalf("Dims: %v", err)
	}
	if rows != 150 || cols != 225 {
		t.Fatalf("Dims(900, 603, 4) = %d rows, %d cols; expected 150, 225", rows, cols)
	}
	if _, _, err := Dims(3, 100, 4); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("width smaller than a cell must be rejected, got %v", err)
	}
	if _, _, err := Dims(100, 100, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("zero cell size must be rejected, got %v", err)
	}
}

func TestNewGridStartsDead(t *testing.T) {
	g := mustGrid(t, 6, 9)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.Alive(row, col) || g.Neighbors(row, col) != 0 {
				t.Fatalf("cell (%d,%d) not dead/zero on construction", row, col)
			}
		}
	}
	if g.Population() != 0 {
		t.Fatalf("population=%d, expected 0", g.Population())
	}
}

func TestSetAliveKeepsCountsExact(t *testing.T) {
	g := mustGrid(t, 7, 5)
	ops := []struct {
		row, col int
		alive    bool
	}{
		{3, 2, true}, {3, 3, true}, {2, 2, true}, {3, 2, true}, {0, 0, true},
		{6, 4, true}, {3, 3, false}, {3, 3, false}, {0, 1, true}, {1, 0, true},
		{0, 0, false}, {6, 4, false}, {2, 2, false}, {4, 4, true},
	}
	for i, op := range ops {
		g.SetAlive(op.row, op.col, op.alive)
		if g.Alive(op.row, op.col) != op.alive {
			t.Fatalf("op %d: cell (%d,%d) alive=%v, expected %v", i, op.row, op.col, !op.alive, op.alive)
		}
		checkCounts(t, g)
	}
}

func TestSetAliveIsIdempotent(t *testing.T) {
	once := mustGrid(t, 5, 5)
	twice := mustGrid(t, 5, 5)

	once.SetAlive(2, 2, true)
	twice.SetAlive(2, 2, true)
	twice.SetAlive(2, 2, true)

	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if once.Neighbors(row, col) != twice.Neighbors(row, col) {
				t.Fatalf("cell (%d,%d) neighbours differ: %d vs %d", row, col, once.Neighbors(row, col), twice.Neighbors(row, col))
			}
		}
	}
	if twice.Population() != 1 {
		t.Fatalf("population=%d after duplicate set, expected 1", twice.Population())
	}

	twice.SetAlive(2, 2, false)
	twice.SetAlive(2, 2, false)
	checkCounts(t, twice)
	if twice.Population() != 0 {
		t.Fatalf("population=%d after duplicate clear, expected 0", twice.Population())
	}
}

func TestCornerTogglesStayInBounds(t *testing.T) {
	g := mustGrid(t, 3, 3)
	corners := [][2]int{{0, 0}, {0, 2}, {2, 0}, {2, 2}}
	for round := 0; round < 5; round++ {
		for _, c := range corners {
			g.SetAlive(c[0], c[1], round%2 == 0)
			g.SetAlive(c[0], c[1], false)
			g.SetAlive(c[0], c[1], true)
			g.SetAlive(c[0], c[1], false)
		}
		checkCounts(t, g)
	}
	for i, n := range g.neighbors {
		if n > 8 {
			t.Fatalf("neighbour count at %d wrapped to %d", i, n)
		}
	}
	if g.Population() != 0 {
		t.Fatalf("population=%d, expected 0", g.Population())
	}

	g.SetAlive(0, 0, true)
	if got := g.Neighbors(1, 1); got != 1 {
		t.Fatalf("centre neighbours=%d, expected 1", got)
	}
	if got := g.Neighbors(0, 0); got != 0 {
		t.Fatalf("corner must not count itself, got %d", got)
	}
}

func TestClearResetsEverything(t *testing.T) {
	g := mustGrid(t, 8, 8)
	tr := NewDirtyTracker(8, 8, 0)
	g.Track(tr)
	g.SeedRandom(NewRNG(7))
	g.SetAlive(4, 4, true)

	g.Clear()

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.Alive(row, col) || g.Neighbors(row, col) != 0 {
				t.Fatalf("cell (%d,%d) survived Clear", row, col)
			}
		}
	}
	if g.Population() != 0 {
		t.Fatalf("population=%d after Clear", g.Population())
	}
	if tr.Len() != 0 {
		t.Fatalf("tracker holds %d dirty cells after Clear", tr.Len())
	}
}

type sequence struct {
	vals []float64
	i    int
}

func (s *sequence) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestSeedRandomTrialCount(t *testing.T) {
	g := mustGrid(t, 3, 3)
	src := &sequence{vals: []float64{0, 0, 0.5, 0.99}}
	g.SeedRandom(src)

	// 9 cells need two trials: (0,0) then (1,2).
	if src.i != 4 {
		t.Fatalf("drew %d values, expected 4", src.i)
	}
	if !g.Alive(0, 0) || !g.Alive(1, 2) {
		t.Fatal("expected (0,0) and (1,2) to be seeded")
	}
	if g.Population() != 2 {
		t.Fatalf("population=%d, expected 2", g.Population())
	}
	checkCounts(t, g)
}

func TestSeedRandomCollisionsUnderCount(t *testing.T) {
	g := mustGrid(t, 10, 10)
	g.SeedRandom(&sequence{vals: []float64{0.25}})
	if g.Population() != 1 {
		t.Fatalf("population=%d, expected 1 when every trial collides", g.Population())
	}
	checkCounts(t, g)
}

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mad-life/internal/config"
	"mad-life/internal/storage"
)

func TestNewLifeFromDefaults(t *testing.T) {
	c := config.DefaultConfig()
	c.Grid.Seed = 5
	life, err := newLife(c)
	if err != nil {
		t.Fatalf("newLife: %v", err)
	}
	if s := life.Size(); s.W != 225 || s.H != 225 {
		t.Fatalf("Size=%+v, expected 225x225", s)
	}
	if life.Stats().Population == 0 {
		t.Fatal("default config should seed the grid")
	}
}

func TestWritePNG(t *testing.T) {
	c := config.DefaultConfig()
	c.Grid.Width, c.Grid.Height, c.Grid.CellSize = 16, 8, 4
	c.Grid.SeedRandom = false
	life, err := newLife(c)
	if err != nil {
		t.Fatalf("newLife: %v", err)
	}
	life.Grid().SetAlive(1, 2, true)

	path := filepath.Join(t.TempDir(), "gen.png")
	if err := writePNG(path, life.Draw, 16, 8); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Fatalf("bounds=%v", b)
	}
	// Cell (1,2) covers x 8..11, y 4..7.
	if r, _, _, _ := img.At(9, 5).RGBA(); r>>8 != 0xff {
		t.Fatalf("live cell pixel red=%#x, expected 0xff", r>>8)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0 {
		t.Fatal("dead cell pixel should be black")
	}
}

func TestRunsTable(t *testing.T) {
	out := runsTable([]storage.Run{{
		ID:              3,
		Frontend:        "term",
		Player:          "ada",
		Rows:            40,
		Cols:            120,
		Seed:            9,
		Generations:     1234,
		PeakPopulation:  800,
		FinalPopulation: 77,
		CreatedAt:       time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC),
	}}).String()

	for _, want := range []string{"Frontend", "term", "ada", "40x120", "1234", "2026-01-02 03:04"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var gridLineColor = color.RGBA{R: 48, G: 48, B: 56, A: 255}

// Overlay draws optional cell boundaries on top of the grid. G toggles it.
type Overlay struct {
	rows, cols int
	cellSize   int
	showGrid   bool
	pixel      *ebiten.Image
}

// NewOverlay constructs an overlay for a rows×cols grid.
func NewOverlay(rows, cols, cellSize int) *Overlay {
	o := &Overlay{rows: rows, cols: cols, cellSize: cellSize}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the enabled visuals.
func (o *Overlay) Draw(screen *ebiten.Image) {
	// Lines would cover whole cells below 3px.
	if !o.showGrid || o.cellSize < 3 {
		return
	}
	w := float64(o.cols * o.cellSize)
	h := float64(o.rows * o.cellSize)
	for c := 1; c < o.cols; c++ {
		o.drawRect(screen, float64(c*o.cellSize), 0, 1, h, gridLineColor)
	}
	for r := 1; r < o.rows; r++ {
		o.drawRect(screen, 0, float64(r*o.cellSize), w, 1, gridLineColor)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

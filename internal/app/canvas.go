//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// canvas adapts an offscreen ebiten image to render.Surface. The image
// persists across frames so the dirty renderer can paint only changes.
type canvas struct {
	img   *ebiten.Image
	pixel *ebiten.Image
}

func newCanvas(w, h int) *canvas {
	c := &canvas{img: ebiten.NewImage(w, h), pixel: ebiten.NewImage(1, 1)}
	c.pixel.Fill(color.White)
	return c
}

func (c *canvas) Fill(col color.Color) { c.img.Fill(col) }

func (c *canvas) DrawRect(col color.Color, x, y, w, h int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	// Rectangles replace what was there; dead cells are painted over live ones.
	op.Blend = ebiten.BlendCopy
	c.img.DrawImage(c.pixel, op)
}

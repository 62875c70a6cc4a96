package render

import (
	"image"
	"image/color"
)

// ImageSurface paints into an in-memory RGBA image. It backs the headless
// PNG export and is handy in tests.
type ImageSurface struct {
	Img *image.RGBA
}

// NewImageSurface allocates a w×h image surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Fill paints every pixel with c.
func (s *ImageSurface) Fill(c color.Color) {
	b := s.Img.Bounds()
	s.DrawRect(c, b.Min.X, b.Min.Y, b.Dx(), b.Dy())
}

// DrawRect paints a rectangle clipped to the image bounds.
func (s *ImageSurface) DrawRect(c color.Color, x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.Img.Bounds())
	if r.Empty() {
		return
	}
	px := rgbaBytes(c)
	for yy := r.Min.Y; yy < r.Max.Y; yy++ {
		base := s.Img.PixOffset(r.Min.X, yy)
		row := s.Img.Pix[base : base+4*r.Dx()]
		for i := 0; i < len(row); i += 4 {
			copy(row[i:i+4], px[:])
		}
	}
}

// rgbaBytes converts c into the byte layout of image.RGBA.Pix.
func rgbaBytes(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const cellRune = "█"

// Screen is a terminal drawing surface where one character is one pixel.
// It keeps its contents between frames so the dirty renderer can update it
// in place.
type Screen struct {
	w, h   int
	cells  []string // hex colour per character
	blank  string
	styles map[string]lipgloss.Style
	lg     *lipgloss.Renderer
}

// NewScreen allocates a w×h screen. Characters painted with blank render as
// spaces. r selects the lipgloss renderer; nil uses the default one.
func NewScreen(w, h int, blank color.Color, r *lipgloss.Renderer) *Screen {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	s := &Screen{
		w:      w,
		h:      h,
		cells:  make([]string, w*h),
		blank:  hex(blank),
		styles: map[string]lipgloss.Style{},
		lg:     r,
	}
	for i := range s.cells {
		s.cells[i] = s.blank
	}
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.w }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.h }

// Fill paints every character with c.
func (s *Screen) Fill(c color.Color) {
	h := hex(c)
	for i := range s.cells {
		s.cells[i] = h
	}
}

// DrawRect paints a rectangle clipped to the screen.
func (s *Screen) DrawRect(c color.Color, x, y, w, h int) {
	col := hex(c)
	for yy := max(y, 0); yy < min(y+h, s.h); yy++ {
		for xx := max(x, 0); xx < min(x+w, s.w); xx++ {
			s.cells[yy*s.w+xx] = col
		}
	}
}

// Lit reports whether (x, y) holds a non-blank colour.
func (s *Screen) Lit(x, y int) bool {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return false
	}
	return s.cells[y*s.w+x] != s.blank
}

// String renders the screen, grouping adjacent characters of the same colour
// to keep escape sequences short.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.w*s.h*2 + s.h)

	for y := 0; y < s.h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := s.cells[y*s.w : (y+1)*s.w]
		x := 0
		for x < s.w {
			start := row[x]
			n := 0
			for x < s.w && row[x] == start {
				n++
				x++
			}
			if start == s.blank {
				sb.WriteString(strings.Repeat(" ", n))
				continue
			}
			sb.WriteString(s.style(start).Render(strings.Repeat(cellRune, n)))
		}
	}
	return sb.String()
}

func (s *Screen) style(h string) lipgloss.Style {
	st, ok := s.styles[h]
	if !ok {
		st = s.lg.NewStyle().Foreground(lipgloss.Color(h))
		s.styles[h] = st
	}
	return st
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// Package surface provides the drawing surfaces handed to renderers.
package surface

import "github.com/gdamore/tcell/v2"

// Rect is a rectangle in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by n cells on every side. The result never has a negative size.
func (r Rect) Inset(n int) Rect {
	out := Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Surface is a drawing target in control-local coordinates. Writes outside
// its bounds are ignored.
type Surface interface {
	Size() (w, h int)
	SetContent(x, y int, r rune, style tcell.Style)
	Fill(r Rect, ch rune, style tcell.Style)
}

// Scoped is a Surface valid only until Release is called.
type Scoped interface {
	Surface
	Release()
}

// Screen is a Scoped surface drawing into a clipped region of a tcell.Screen.
type Screen struct {
	screen tcell.Screen
	rect   Rect
}

// New binds a surface to the region rect of screen.
func New(screen tcell.Screen, rect Rect) *Screen {
	return &Screen{screen: screen, rect: rect}
}

// Size returns the size of the bound region.
func (s *Screen) Size() (int, int) { return s.rect.W, s.rect.H }

// SetContent draws one cell. It does nothing after Release.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	if s.screen == nil || x < 0 || y < 0 || x >= s.rect.W || y >= s.rect.H {
		return
	}
	s.screen.SetContent(s.rect.X+x, s.rect.Y+y, r, nil, style)
}

// Fill sets every cell of r (local coordinates) to ch.
func (s *Screen) Fill(r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ch, style)
		}
	}
}

// Release detaches the surface from its screen. Safe to call more than once.
func (s *Screen) Release() { s.screen = nil }

// Released reports whether Release has been called.
func (s *Screen) Released() bool { return s.screen == nil }

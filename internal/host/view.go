package host

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/control"
	"github.com/matheus3301/univ/internal/surface"
)

// View is the windowing peer of one control inside a Window.
type View struct {
	window  *Window
	control *control.Control
	id      string
	bounds  surface.Rect
	style   control.Style
	// screen is only set while the window is drawing.
	screen tcell.Screen
}

// Control returns the hosted control.
func (v *View) Control() *control.Control { return v.control }

// HasFocus reports whether the window is focused and this view holds its focus.
func (v *View) HasFocus() bool {
	return v.window.HasFocus() && v.window.focusedView() == v
}

// RequestRepaint schedules a redraw of the window.
func (v *View) RequestRepaint() {
	v.window.requestRepaint()
}

// AcquireSurface returns a surface over the view's cells. Outside a window
// draw the surface discards everything.
func (v *View) AcquireSurface() surface.Scoped {
	x, y, _, _ := v.window.GetInnerRect()
	return surface.New(v.screen, surface.Rect{
		X: x + v.bounds.X,
		Y: y + v.bounds.Y,
		W: v.bounds.W,
		H: v.bounds.H,
	})
}

// Detach removes the view from its window.
func (v *View) Detach() {
	v.window.remove(v)
}

func (v *View) focusable() bool {
	return !v.style.Has(control.StyleNoFocus)
}

func (v *View) paint(screen tcell.Screen) {
	v.screen = screen
	defer func() { v.screen = nil }()
	v.control.Paint()
}

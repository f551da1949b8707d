package control

import (
	"github.com/matheus3301/univ/internal/surface"
	"github.com/matheus3301/univ/internal/theme"
)

// Paint draws the control through the active theme's renderer. The surface
// is acquired from the windowing peer and released when Paint returns, also
// when the behavior's DoDraw panics.
func (c *Control) Paint() {
	if c.window == nil {
		return
	}
	s := c.window.AcquireSurface()
	defer s.Release()

	r := &Renderer{
		control:  c,
		surface:  s,
		renderer: c.themes.GetRenderer(),
	}
	c.behavior.DoDraw(r)
}

// Renderer binds a theme renderer to one control and one paint call.
type Renderer struct {
	control  *Control
	surface  surface.Surface
	renderer theme.Renderer
}

// Control returns the control being painted.
func (r *Renderer) Control() *Control { return r.control }

// Surface returns the surface being painted on.
func (r *Renderer) Surface() surface.Surface { return r.surface }

// Flags returns the control state the theme renderer draws.
func (r *Renderer) Flags() theme.Flags {
	c := r.control
	return theme.Flags{
		Focused:     c.IsFocused(),
		Pressed:     c.IsPressed(),
		Default:     c.IsDefault(),
		Highlighted: c.IsHighlighted(),
	}
}

// ClientRect is the area inside the border.
func (r *Renderer) ClientRect() surface.Rect {
	w, h := r.surface.Size()
	full := surface.Rect{W: w, H: h}
	if r.control.style.Has(StyleNoBorder) {
		return full
	}
	return full.Inset(1)
}

// DrawBorder draws the border unless the control was created with
// StyleNoBorder.
func (r *Renderer) DrawBorder() {
	if r.control.style.Has(StyleNoBorder) {
		return
	}
	r.renderer.DrawBorder(r.surface, r.Flags())
}

// DrawBackground fills the surface.
func (r *Renderer) DrawBackground() {
	r.renderer.DrawBackground(r.surface, r.Flags())
}

// DrawLabel draws the control's label inside the client area.
func (r *Renderer) DrawLabel() {
	r.DrawLabelIn(r.ClientRect())
}

// DrawLabelIn draws the control's label inside rect.
func (r *Renderer) DrawLabelIn(rect surface.Rect) {
	c := r.control
	r.renderer.DrawLabel(r.surface, rect, c.label, c.accel, r.Flags())
}

// DrawCheck draws a check indicator inside rect.
func (r *Renderer) DrawCheck(rect surface.Rect, checked bool) {
	r.renderer.DrawCheck(r.surface, rect, checked, r.Flags())
}

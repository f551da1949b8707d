package control

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/action"
	"github.com/matheus3301/univ/internal/event"
	"github.com/matheus3301/univ/internal/surface"
	"github.com/matheus3301/univ/internal/theme"
)

type fakeSurface struct {
	w, h     int
	released bool
}

func (s *fakeSurface) Size() (int, int)                                { return s.w, s.h }
func (s *fakeSurface) SetContent(x, y int, r rune, style tcell.Style)  {}
func (s *fakeSurface) Fill(r surface.Rect, ch rune, style tcell.Style) {}
func (s *fakeSurface) Release()                                        { s.released = true }

type fakeWindow struct {
	focused  bool
	repaints int
	detached bool
	surfaces []*fakeSurface
	bounds   surface.Rect
}

func (w *fakeWindow) HasFocus() bool  { return w.focused }
func (w *fakeWindow) RequestRepaint() { w.repaints++ }
func (w *fakeWindow) Detach()         { w.detached = true }
func (w *fakeWindow) AcquireSurface() surface.Scoped {
	s := &fakeSurface{w: w.bounds.W, h: w.bounds.H}
	w.surfaces = append(w.surfaces, s)
	return s
}

type fakeParent struct {
	created   bool
	bg        tcell.Color
	attachErr error
	windows   []*fakeWindow
}

func newParent() *fakeParent {
	return &fakeParent{created: true, bg: tcell.ColorNavy}
}

func (p *fakeParent) IsCreated() bool              { return p.created }
func (p *fakeParent) BackgroundColor() tcell.Color { return p.bg }
func (p *fakeParent) Attach(c *Control, id string, bounds surface.Rect, style Style) (Window, error) {
	if p.attachErr != nil {
		return nil, p.attachErr
	}
	w := &fakeWindow{bounds: bounds}
	p.windows = append(p.windows, w)
	return w, nil
}

func (p *fakeParent) last() *fakeWindow { return p.windows[len(p.windows)-1] }

// mapHandler maps every key to Key and every pointer event to Pointer.
type mapHandler struct {
	Key     action.Action
	Pointer action.Action
	downs   []bool
}

func (h *mapHandler) MapKey(ev *tcell.EventKey, down bool, st theme.State) action.Action {
	h.downs = append(h.downs, down)
	return h.Key
}

func (h *mapHandler) MapPointer(ev event.PointerEvent, st theme.State) action.Action {
	return h.Pointer
}

type recordRenderer struct {
	calls []string
	flags []theme.Flags
	label string
	accel int
}

func (r *recordRenderer) DrawBackground(s surface.Surface, f theme.Flags) {
	r.calls = append(r.calls, "background")
}

func (r *recordRenderer) DrawBorder(s surface.Surface, f theme.Flags) {
	r.calls = append(r.calls, "border")
	r.flags = append(r.flags, f)
}

func (r *recordRenderer) DrawLabel(s surface.Surface, rect surface.Rect, text string, accel int, f theme.Flags) {
	r.calls = append(r.calls, "label")
	r.label, r.accel = text, accel
}

func (r *recordRenderer) DrawCheck(s surface.Surface, rect surface.Rect, checked bool, f theme.Flags) {
	r.calls = append(r.calls, "check")
}

// recordBehavior counts the actions it receives and answers changed.
type recordBehavior struct {
	Base
	changed bool
	pressed bool
	actions []action.Action
	draw    func(r *Renderer)
}

func (b *recordBehavior) PerformAction(a action.Action) bool {
	b.actions = append(b.actions, a)
	return b.changed
}

func (b *recordBehavior) IsPressed() bool { return b.pressed }

func (b *recordBehavior) DoDraw(r *Renderer) {
	if b.draw != nil {
		b.draw(r)
		return
	}
	b.Base.DoDraw(r)
}

func newRegistry(h theme.InputHandler, r theme.Renderer) *theme.Registry {
	reg := theme.NewRegistry(nil, nil)
	_ = reg.Register(&theme.Theme{
		Name:     "test",
		Renderer: r,
		Handlers: map[theme.Kind]theme.InputHandler{theme.KindControl: h},
	})
	return reg
}

package host

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/bus"
	"github.com/matheus3301/univ/internal/control"
	"github.com/matheus3301/univ/internal/event"
	"github.com/matheus3301/univ/internal/surface"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

var (
	ErrWindowNotCreated = errors.New("window is not created")
	ErrDuplicateID      = errors.New("duplicate control id")
	ErrEmptyBounds      = errors.New("control bounds are empty")
)

// Window is a top-level container. Controls created in it are placed at
// their creation position relative to its inner area.
type Window struct {
	*tview.Box
	sched   Scheduler
	bus     *bus.Bus
	logger  *zap.Logger
	created bool
	bg      tcell.Color

	views   []*View
	focus   *View
	hover   *View
	pending bool
	cancel  context.CancelFunc
}

// NewWindow creates an uncreated window. b and logger may be nil.
func NewWindow(sched Scheduler, b *bus.Bus, logger *zap.Logger) *Window {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Window{
		Box:    tview.NewBox(),
		sched:  sched,
		bus:    b,
		logger: logger,
		bg:     tcell.ColorDefault,
	}
}

// Create gives the window its title and background and makes it ready to
// host controls.
func (w *Window) Create(title string, bg tcell.Color) {
	w.bg = bg
	w.SetBackgroundColor(bg)
	w.SetBorder(true)
	w.SetTitle(" " + title + " ")
	w.created = true
}

// IsCreated reports whether Create was called.
func (w *Window) IsCreated() bool { return w.created }

// BackgroundColor returns the background controls inherit.
func (w *Window) BackgroundColor() tcell.Color { return w.bg }

// Attach places c in the window. Attaching a control that is already in the
// window moves it and keeps its view.
func (w *Window) Attach(c *control.Control, id string, bounds surface.Rect, style control.Style) (control.Window, error) {
	if !w.created {
		return nil, ErrWindowNotCreated
	}
	if bounds.Empty() {
		return nil, fmt.Errorf("attach %q: %w", id, ErrEmptyBounds)
	}
	var existing *View
	for _, v := range w.views {
		if v.control == c {
			existing = v
			continue
		}
		if v.id == id {
			return nil, fmt.Errorf("attach %q: %w", id, ErrDuplicateID)
		}
	}

	v := existing
	if v == nil {
		v = &View{window: w, control: c}
		w.views = append(w.views, v)
	}
	v.id = id
	v.bounds = bounds
	v.style = style
	if w.focus == nil && v.focusable() {
		w.focus = v
	}
	if w.focus == v && !v.focusable() {
		w.focus = w.nextFocusable(v, 1)
	}
	w.logger.Debug("control attached", zap.String("id", id), zap.Int("views", len(w.views)))
	w.requestRepaint()
	return v, nil
}

func (w *Window) remove(v *View) {
	i := slices.Index(w.views, v)
	if i < 0 {
		return
	}
	if w.focus == v {
		w.focus = w.nextFocusable(v, 1)
	}
	if w.hover == v {
		w.hover = nil
	}
	w.views = slices.Delete(w.views, i, i+1)
	w.requestRepaint()
}

// Controls returns the hosted controls in creation order.
func (w *Window) Controls() []*control.Control {
	out := make([]*control.Control, len(w.views))
	for i, v := range w.views {
		out[i] = v.control
	}
	return out
}

// Focused returns the control holding the window's focus, or nil.
func (w *Window) Focused() *control.Control {
	if w.focus == nil {
		return nil
	}
	return w.focus.control
}

// SetFocus moves focus to c. It reports false if c is not a focusable
// control of this window.
func (w *Window) SetFocus(c *control.Control) bool {
	v := w.viewOf(c)
	if v == nil || !v.focusable() {
		return false
	}
	if v != w.focus {
		w.focus = v
		w.requestRepaint()
	}
	return true
}

func (w *Window) focusedView() *View { return w.focus }

func (w *Window) viewOf(c *control.Control) *View {
	for _, v := range w.views {
		if v.control == c {
			return v
		}
	}
	return nil
}

// nextFocusable returns the next focusable view after from in direction dir,
// wrapping around, or nil when no other view can take focus.
func (w *Window) nextFocusable(from *View, dir int) *View {
	n := len(w.views)
	if n == 0 {
		return nil
	}
	start := slices.Index(w.views, from)
	for step := 1; step <= n; step++ {
		i := ((start+dir*step)%n + n) % n
		if v := w.views[i]; v != from && v.focusable() {
			return v
		}
	}
	return nil
}

// requestRepaint queues one redraw no matter how many controls ask before
// it runs.
func (w *Window) requestRepaint() {
	if w.pending || w.sched == nil {
		return
	}
	w.pending = true
	w.sched.Schedule(func() { w.pending = false })
}

// Draw draws the window frame and every hosted control.
func (w *Window) Draw(screen tcell.Screen) {
	w.DrawForSubclass(screen, w)
	for _, v := range w.views {
		v.paint(screen)
	}
}

// InputHandler cycles focus on Tab, dispatches Alt+letter to the control
// whose mnemonic matches, and hands every other key to the focused control.
// Terminals report no key releases, so each key is delivered as a press
// followed by a release.
func (w *Window) InputHandler() func(ev *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return w.WrapInputHandler(func(ev *tcell.EventKey, setFocus func(p tview.Primitive)) {
		switch {
		case ev.Key() == tcell.KeyTab:
			w.cycleFocus(1)
			return
		case ev.Key() == tcell.KeyBacktab:
			w.cycleFocus(-1)
			return
		case ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModAlt != 0:
			if w.dispatchMnemonic(ev.Rune()) {
				return
			}
		}
		if w.focus == nil {
			return
		}
		c := w.focus.control
		c.OnKeyDown(ev)
		c.OnKeyUp(ev)
	})
}

func (w *Window) cycleFocus(dir int) {
	next := w.nextFocusable(w.focus, dir)
	if next == nil {
		return
	}
	w.focus = next
	w.requestRepaint()
}

func (w *Window) dispatchMnemonic(r rune) bool {
	for _, v := range w.views {
		c := v.control
		if !c.Mnemonic().Matches(r) {
			continue
		}
		target := c.MnemonicTarget()
		w.SetFocus(target)
		if target == c {
			c.Activate()
		}
		w.logger.Debug("mnemonic dispatched", zap.String("id", v.id), zap.String("key", string(r)))
		return true
	}
	return false
}

// MouseHandler translates tview mouse actions into pointer events for the
// control under the pointer, generating enter and leave as it moves.
func (w *Window) MouseHandler() func(act tview.MouseAction, ev *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
	return w.WrapMouseHandler(func(act tview.MouseAction, ev *tcell.EventMouse, setFocus func(p tview.Primitive)) (bool, tview.Primitive) {
		x, y := ev.Position()
		if !w.InRect(x, y) {
			w.setHover(nil, 0, 0, ev.Modifiers())
			return false, nil
		}
		ix, iy, _, _ := w.GetInnerRect()
		lx, ly := x-ix, y-iy
		target := w.viewAt(lx, ly)
		w.setHover(target, lx, ly, ev.Modifiers())

		kind, button, ok := pointerAction(act)
		if !ok || target == nil {
			return act != tview.MouseMove, nil
		}
		if kind == event.PointerDown {
			setFocus(w)
			w.SetFocus(target.control)
		}
		target.control.OnPointer(event.PointerEvent{
			Kind:   kind,
			Button: button,
			X:      lx - target.bounds.X,
			Y:      ly - target.bounds.Y,
			Mod:    ev.Modifiers(),
		})
		return true, nil
	})
}

func (w *Window) viewAt(x, y int) *View {
	for i := len(w.views) - 1; i >= 0; i-- {
		if w.views[i].bounds.Contains(x, y) {
			return w.views[i]
		}
	}
	return nil
}

func (w *Window) setHover(v *View, x, y int, mod tcell.ModMask) {
	if v == w.hover {
		return
	}
	if old := w.hover; old != nil {
		old.control.OnPointer(event.PointerEvent{Kind: event.PointerLeave, Mod: mod})
	}
	w.hover = v
	if v != nil {
		v.control.OnPointer(event.PointerEvent{
			Kind: event.PointerEnter,
			X:    x - v.bounds.X,
			Y:    y - v.bounds.Y,
			Mod:  mod,
		})
	}
}

// pointerAction maps a tview mouse action to a pointer event kind and button.
func pointerAction(act tview.MouseAction) (event.PointerKind, event.Button, bool) {
	switch act {
	case tview.MouseLeftDown:
		return event.PointerDown, event.Primary, true
	case tview.MouseLeftUp:
		return event.PointerUp, event.Primary, true
	case tview.MouseRightDown:
		return event.PointerDown, event.Secondary, true
	case tview.MouseRightUp:
		return event.PointerUp, event.Secondary, true
	case tview.MouseMiddleDown:
		return event.PointerDown, event.Tertiary, true
	case tview.MouseMiddleUp:
		return event.PointerUp, event.Tertiary, true
	}
	return 0, event.NoButton, false
}

// Start follows theme switches: every hosted control refetches its input
// handler on the UI goroutine and the window is redrawn. It does nothing for
// a window without a bus.
func (w *Window) Start(ctx context.Context) {
	if w.bus == nil {
		return
	}
	ctx, w.cancel = context.WithCancel(ctx)
	ch, unsub := w.bus.Subscribe("theme.", 8)

	go func() {
		defer unsub()
		for {
			select {
			case evt := <-ch:
				w.logger.Debug("rebinding controls", zap.String("event", evt.Kind))
				w.sched.Schedule(w.rebind)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops following theme switches.
func (w *Window) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
}

func (w *Window) rebind() {
	for _, v := range w.views {
		v.control.Rebind()
	}
}

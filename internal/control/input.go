package control

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/action"
	"github.com/matheus3301/univ/internal/event"
)

// OnKeyDown maps a key press through the input handler and performs the
// resulting action.
func (c *Control) OnKeyDown(ev *tcell.EventKey) {
	if c.handler == nil {
		return
	}
	c.Do(c.handler.MapKey(ev, true, c))
}

// OnKeyUp maps a key release through the input handler and performs the
// resulting action.
func (c *Control) OnKeyUp(ev *tcell.EventKey) {
	if c.handler == nil {
		return
	}
	c.Do(c.handler.MapKey(ev, false, c))
}

// OnPointer maps a pointer event through the input handler and performs the
// resulting action.
func (c *Control) OnPointer(ev event.PointerEvent) {
	if c.handler == nil {
		return
	}
	c.Do(c.handler.MapPointer(ev, c))
}

// Do performs a and requests a repaint if it changed the control.
// The no-op action is never passed to the behavior.
func (c *Control) Do(a action.Action) {
	if a.IsNone() {
		return
	}
	if c.PerformAction(a) {
		c.Refresh()
	}
}

// PerformAction hands a to the behavior and reports whether the control
// changed. The base behavior never changes.
func (c *Control) PerformAction(a action.Action) bool {
	return c.behavior.PerformAction(a)
}

// Activate reacts to the control's mnemonic being typed. It reports whether
// the behavior handled it.
func (c *Control) Activate() bool {
	act, ok := c.behavior.(Activator)
	if !ok || !c.IsCreated() {
		return false
	}
	if act.Activate() {
		c.Refresh()
	}
	return true
}

// MnemonicTarget returns the control that should take focus when this
// control's mnemonic is typed.
func (c *Control) MnemonicTarget() *Control {
	if ft, ok := c.behavior.(FocusTarget); ok {
		if t := ft.FocusTarget(); t != nil {
			return t
		}
	}
	return c
}

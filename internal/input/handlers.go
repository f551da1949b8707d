package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/action"
	"github.com/matheus3301/univ/internal/event"
)

// Standard maps nothing. It serves plain controls.
func Standard() *Handler {
	return NewHandler()
}

// Button presses on Space or Enter going down and clicks when the key comes
// back up. The primary pointer button does the same; releasing it after the
// pointer left only releases.
func Button() *Handler {
	h := NewHandler()
	for _, k := range []KeyBinding{
		{Key: tcell.KeyRune, Rune: ' ', Description: "space:press"},
		{Key: tcell.KeyEnter, Description: "enter:press"},
	} {
		h.BindKey(KeyBinding{Key: k.Key, Rune: k.Rune, Up: action.Click, When: Pressed})
		h.BindKey(KeyBinding{Key: k.Key, Rune: k.Rune, Down: action.Press, Description: k.Description})
	}
	h.BindPointer(PointerBinding{Kind: event.PointerDown, Button: event.Primary, Action: action.Press})
	h.BindPointer(PointerBinding{Kind: event.PointerUp, Button: event.Primary, Action: action.Click, When: Pressed})
	h.BindPointer(PointerBinding{Kind: event.PointerLeave, Action: action.Release, When: Pressed})
	h.BindPointer(PointerBinding{Kind: event.PointerEnter, Action: action.Highlight})
	h.BindPointer(PointerBinding{Kind: event.PointerLeave, Action: action.Unhighlight})
	return h
}

// CheckBox toggles on Space and on a primary click.
func CheckBox() *Handler {
	h := NewHandler()
	h.BindKey(KeyBinding{Key: tcell.KeyRune, Rune: ' ', Down: action.Toggle, Description: "space:toggle"})
	h.BindPointer(PointerBinding{Kind: event.PointerUp, Button: event.Primary, Action: action.Toggle})
	h.BindPointer(PointerBinding{Kind: event.PointerEnter, Action: action.Highlight})
	h.BindPointer(PointerBinding{Kind: event.PointerLeave, Action: action.Unhighlight})
	return h
}

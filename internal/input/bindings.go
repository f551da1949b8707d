// Package input contains the bundled, table-driven input handlers.
package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/action"
	"github.com/matheus3301/univ/internal/event"
	"github.com/matheus3301/univ/internal/theme"
)

// Guard restricts a binding to some control states.
type Guard func(st theme.State) bool

// Pressed matches controls in the pressed state.
func Pressed(st theme.State) bool { return st.IsPressed() }

// Focused matches focused controls.
func Focused(st theme.State) bool { return st.IsFocused() }

// KeyBinding maps a key to the actions produced when it goes down and up.
type KeyBinding struct {
	Key         tcell.Key
	Rune        rune
	Down        action.Action
	Up          action.Action
	Description string
	When        Guard
}

// Matches returns true if the event matches this binding.
func (b *KeyBinding) Matches(ev *tcell.EventKey) bool {
	if b.Key != tcell.KeyRune {
		return ev.Key() == b.Key
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == b.Rune
}

// PointerBinding maps a pointer event kind and button to an action.
type PointerBinding struct {
	Kind   event.PointerKind
	Button event.Button
	Action action.Action
	When   Guard
}

// Matches returns true if the event matches this binding.
func (b *PointerBinding) Matches(ev event.PointerEvent) bool {
	return ev.Kind == b.Kind && ev.Button == b.Button
}

// Handler is a theme.InputHandler driven by binding tables. The first
// matching binding whose guard accepts the state wins.
type Handler struct {
	keys    []KeyBinding
	pointer []PointerBinding
}

// NewHandler creates a handler with no bindings.
func NewHandler() *Handler {
	return &Handler{}
}

// BindKey appends a key binding.
func (h *Handler) BindKey(b KeyBinding) *Handler {
	h.keys = append(h.keys, b)
	return h
}

// BindPointer appends a pointer binding.
func (h *Handler) BindPointer(b PointerBinding) *Handler {
	h.pointer = append(h.pointer, b)
	return h
}

// MapKey returns the action bound to ev for the given key direction.
func (h *Handler) MapKey(ev *tcell.EventKey, down bool, st theme.State) action.Action {
	if ev == nil {
		return action.None
	}
	for i := range h.keys {
		b := &h.keys[i]
		if !b.Matches(ev) || (b.When != nil && !b.When(st)) {
			continue
		}
		if down {
			return b.Down
		}
		return b.Up
	}
	return action.None
}

// MapPointer returns the action bound to ev.
func (h *Handler) MapPointer(ev event.PointerEvent, st theme.State) action.Action {
	for i := range h.pointer {
		b := &h.pointer[i]
		if b.Matches(ev) && (b.When == nil || b.When(st)) {
			return b.Action
		}
	}
	return action.None
}

// Hints returns the descriptions of the key bindings that have one.
func (h *Handler) Hints() []string {
	var hints []string
	for _, b := range h.keys {
		if b.Description != "" {
			hints = append(hints, b.Description)
		}
	}
	return hints
}

// Package event holds the pointer events delivered to controls. Keyboard
// events are delivered as *tcell.EventKey.
package event

import "github.com/gdamore/tcell/v2"

// PointerKind is the type of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerEnter
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerEnter:
		return "enter"
	case PointerLeave:
		return "leave"
	}
	return "unknown"
}

// Button identifies a pointer button. Enter and leave events carry NoButton.
type Button int

const (
	NoButton Button = iota
	Primary
	Secondary
	Tertiary
)

// PointerEvent is a pointer event in control-local coordinates.
type PointerEvent struct {
	Kind   PointerKind
	Button Button
	X, Y   int
	Mod    tcell.ModMask
}

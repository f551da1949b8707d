// Package theme defines the look-and-feel capabilities a control consumes and
// the registry that hands them out.
package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/action"
	"github.com/matheus3301/univ/internal/event"
	"github.com/matheus3301/univ/internal/surface"
)

// Kind identifies a family of controls sharing an input convention.
type Kind string

const (
	KindControl  Kind = "control"
	KindButton   Kind = "button"
	KindCheckBox Kind = "checkbox"
	KindStatic   Kind = "static"
)

// Flags describe the visual state a renderer draws.
type Flags struct {
	Focused     bool
	Pressed     bool
	Default     bool
	Highlighted bool
}

// State is the control state an input handler may consult.
type State interface {
	IsFocused() bool
	IsPressed() bool
	IsDefault() bool
}

// Renderer draws widget decorations. Implementations must not keep s after
// returning.
type Renderer interface {
	DrawBackground(s surface.Surface, f Flags)
	DrawBorder(s surface.Surface, f Flags)
	DrawLabel(s surface.Surface, r surface.Rect, text string, accel int, f Flags)
	DrawCheck(s surface.Surface, r surface.Rect, checked bool, f Flags)
}

// InputHandler turns raw input into at most one action.
type InputHandler interface {
	MapKey(ev *tcell.EventKey, down bool, st State) action.Action
	MapPointer(ev event.PointerEvent, st State) action.Action
}

// Theme bundles a renderer with the input handlers for each control kind.
type Theme struct {
	Name     string
	Renderer Renderer
	Handlers map[Kind]InputHandler
}

type nopHandler struct{}

func (nopHandler) MapKey(*tcell.EventKey, bool, State) action.Action  { return action.None }
func (nopHandler) MapPointer(event.PointerEvent, State) action.Action { return action.None }

type nopRenderer struct{}

func (nopRenderer) DrawBackground(surface.Surface, Flags)                       {}
func (nopRenderer) DrawBorder(surface.Surface, Flags)                           {}
func (nopRenderer) DrawLabel(surface.Surface, surface.Rect, string, int, Flags) {}
func (nopRenderer) DrawCheck(surface.Surface, surface.Rect, bool, Flags)        {}

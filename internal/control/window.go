package control

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/univ/internal/surface"
	"github.com/matheus3301/univ/internal/theme"
)

// Themes is the part of the theme registry a control consumes.
type Themes interface {
	GetRenderer() theme.Renderer
	GetInputHandler(kind theme.Kind) theme.InputHandler
}

// Parent is a container controls are created in.
type Parent interface {
	IsCreated() bool
	BackgroundColor() tcell.Color
	// Attach performs the windowing-level construction of c and returns the
	// peer that serves it. A failed Attach must leave the parent unchanged.
	Attach(c *Control, id string, bounds surface.Rect, style Style) (Window, error)
}

// Window is the windowing-layer peer of one created control.
type Window interface {
	HasFocus() bool
	// RequestRepaint schedules a paint. Requests made before the paint runs
	// are coalesced.
	RequestRepaint()
	// AcquireSurface returns a surface covering the control. The caller
	// releases it when painting ends.
	AcquireSurface() surface.Scoped
	Detach()
}

// Validator checks a control's label, e.g. before a dialog is accepted.
type Validator interface {
	Validate(label string) error
}

// Style is a set of creation flags.
type Style uint32

const (
	StyleDefault Style = 0
	// StyleNoBorder suppresses the border decoration.
	StyleNoBorder Style = 1 << iota
	// StyleNoFocus keeps the control out of keyboard focus.
	StyleNoFocus
)

// Has reports whether all flags in f are set.
func (s Style) Has(f Style) bool { return s&f == f }

// Point is a position in parent coordinates.
type Point struct{ X, Y int }

// Size is a width and height in cells.
type Size struct{ W, H int }

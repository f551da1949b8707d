package control

import "github.com/matheus3301/univ/internal/action"

// Behavior is what a concrete control kind supplies to the orchestrator.
// Kinds embed Base and override the methods they need.
type Behavior interface {
	// PerformAction applies a and reports whether the control's appearance
	// changed.
	PerformAction(a action.Action) bool
	// DoDraw draws the control. Overrides usually call Base.DoDraw first.
	DoDraw(r *Renderer)
	IsPressed() bool
	IsDefault() bool
}

// Highlighter is implemented by behaviors with a hover state.
type Highlighter interface {
	IsHighlighted() bool
}

// Activator is implemented by behaviors that react to their mnemonic.
type Activator interface {
	Activate() bool
}

// FocusTarget is implemented by behaviors whose mnemonic moves focus to
// another control.
type FocusTarget interface {
	FocusTarget() *Control
}

// Base is the default behavior: it performs no action and draws the border.
type Base struct{}

func (Base) PerformAction(action.Action) bool { return false }
func (Base) DoDraw(r *Renderer)               { r.DrawBorder() }
func (Base) IsPressed() bool                  { return false }
func (Base) IsDefault() bool                  { return false }

// Package widgets contains concrete control kinds built on control.Control.
package widgets

import (
	"github.com/matheus3301/univ/internal/action"
	"github.com/matheus3301/univ/internal/bus"
	"github.com/matheus3301/univ/internal/control"
	"github.com/matheus3301/univ/internal/theme"
	"go.uber.org/zap"
)

// Button is a push button. It is pressed between Press and Click and fires
// its click callback on Click or when its mnemonic is typed.
type Button struct {
	*control.Control
	pressed     bool
	highlighted bool
	isDefault   bool
	onClick     func()
}

// NewButton creates an uncreated button.
func NewButton(themes control.Themes, b *bus.Bus, logger *zap.Logger) *Button {
	btn := &Button{}
	btn.Control = control.New(theme.KindButton, themes, btn, b, logger)
	return btn
}

// SetOnClick sets the callback fired when the button is clicked.
func (b *Button) SetOnClick(fn func()) {
	b.onClick = fn
}

// SetDefault marks the button as its window's default button.
func (b *Button) SetDefault(isDefault bool) {
	if b.isDefault == isDefault {
		return
	}
	b.isDefault = isDefault
	b.Refresh()
}

func (b *Button) IsPressed() bool     { return b.pressed }
func (b *Button) IsDefault() bool     { return b.isDefault }
func (b *Button) IsHighlighted() bool { return b.highlighted }

// PerformAction updates the pressed and hover state.
func (b *Button) PerformAction(a action.Action) bool {
	switch a {
	case action.Press:
		if b.pressed {
			return false
		}
		b.pressed = true
		return true
	case action.Release:
		// Release is sent when the pointer leaves, so it ends the hover as well.
		changed := b.pressed || b.highlighted
		b.pressed = false
		b.highlighted = false
		return changed
	case action.Click:
		wasPressed := b.pressed
		b.pressed = false
		b.click()
		return wasPressed
	case action.Highlight:
		if b.highlighted {
			return false
		}
		b.highlighted = true
		return true
	case action.Unhighlight:
		if !b.highlighted {
			return false
		}
		b.highlighted = false
		return true
	}
	return false
}

// Activate clicks the button.
func (b *Button) Activate() bool {
	b.click()
	return false
}

func (b *Button) click() {
	if b.onClick != nil {
		b.onClick()
	}
}

// DoDraw fills the background, draws the border and centres the label.
func (b *Button) DoDraw(r *control.Renderer) {
	r.DrawBackground()
	control.Base{}.DoDraw(r)
	r.DrawLabel()
}

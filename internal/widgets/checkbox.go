package widgets

import (
	"github.com/matheus3301/univ/internal/action"
	"github.com/matheus3301/univ/internal/bus"
	"github.com/matheus3301/univ/internal/control"
	"github.com/matheus3301/univ/internal/theme"
	"go.uber.org/zap"
)

// CheckWidth is the number of cells reserved for the indicator and a gap.
const CheckWidth = 4

// CheckBox is a two-state toggle with a label.
type CheckBox struct {
	*control.Control
	checked     bool
	highlighted bool
	onChange    func(checked bool)
}

// NewCheckBox creates an uncreated check box.
func NewCheckBox(themes control.Themes, b *bus.Bus, logger *zap.Logger) *CheckBox {
	cb := &CheckBox{}
	cb.Control = control.New(theme.KindCheckBox, themes, cb, b, logger)
	return cb
}

// SetOnChange sets the callback fired after the checked state changes.
func (cb *CheckBox) SetOnChange(fn func(checked bool)) {
	cb.onChange = fn
}

// Checked reports whether the box is checked.
func (cb *CheckBox) Checked() bool { return cb.checked }

// SetChecked sets the state without firing the change callback.
func (cb *CheckBox) SetChecked(checked bool) {
	if cb.checked == checked {
		return
	}
	cb.checked = checked
	cb.Refresh()
}

func (cb *CheckBox) IsPressed() bool     { return false }
func (cb *CheckBox) IsDefault() bool     { return false }
func (cb *CheckBox) IsHighlighted() bool { return cb.highlighted }

// PerformAction toggles on Toggle and tracks hover.
func (cb *CheckBox) PerformAction(a action.Action) bool {
	switch a {
	case action.Toggle:
		cb.toggle()
		return true
	case action.Highlight, action.Unhighlight:
		h := a == action.Highlight
		if cb.highlighted == h {
			return false
		}
		cb.highlighted = h
		return true
	}
	return false
}

// Activate toggles the box.
func (cb *CheckBox) Activate() bool {
	cb.toggle()
	return true
}

func (cb *CheckBox) toggle() {
	cb.checked = !cb.checked
	if cb.onChange != nil {
		cb.onChange(cb.checked)
	}
}

// DoDraw draws the indicator followed by the label.
func (cb *CheckBox) DoDraw(r *control.Renderer) {
	r.DrawBackground()
	control.Base{}.DoDraw(r)
	cr := r.ClientRect()
	r.DrawCheck(cr, cb.checked)
	label := cr
	label.X += CheckWidth
	label.W -= CheckWidth
	if label.W > 0 {
		r.DrawLabelIn(label)
	}
}

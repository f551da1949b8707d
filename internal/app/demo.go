package app

import (
	"fmt"

	"github.com/matheus3301/univ/internal/control"
	"github.com/matheus3301/univ/internal/theme"
	"github.com/matheus3301/univ/internal/widgets"
)

// Demo holds the controls shown by the demo window.
type Demo struct {
	NameLabel *widgets.StaticText
	Wrap      *widgets.CheckBox
	OK        *widgets.Button
	Cancel    *widgets.Button
	Theme     *widgets.Button
	Quit      *widgets.Button
}

type placement struct {
	ctrl  *control.Control
	id    string
	label string
	pos   control.Point
	size  control.Size
	style control.Style
}

// NewDemo creates the demo controls in the shell's window.
func NewDemo(s *Shell) (*Demo, error) {
	reg, b, logger := s.registry, s.bus, s.logger
	d := &Demo{
		NameLabel: widgets.NewStaticText(reg, b, logger),
		Wrap:      widgets.NewCheckBox(reg, b, logger),
		OK:        widgets.NewButton(reg, b, logger),
		Cancel:    widgets.NewButton(reg, b, logger),
		Theme:     widgets.NewButton(reg, b, logger),
		Quit:      widgets.NewButton(reg, b, logger),
	}

	button := control.Size{W: 12, H: 3}
	for _, p := range []placement{
		{d.NameLabel.Control, "caption", "&Layout:", control.Point{X: 1, Y: 2}, control.Size{W: 10, H: 1}, control.StyleNoBorder | control.StyleNoFocus},
		{d.Wrap.Control, "wrap", "&Wrap lines", control.Point{X: 12, Y: 1}, control.Size{W: 20, H: 3}, control.StyleDefault},
		{d.OK.Control, "ok", "&OK", control.Point{X: 1, Y: 5}, button, control.StyleDefault},
		{d.Cancel.Control, "cancel", "&Cancel", control.Point{X: 14, Y: 5}, button, control.StyleDefault},
		{d.Theme.Control, "theme", "&Theme", control.Point{X: 27, Y: 5}, button, control.StyleDefault},
		{d.Quit.Control, "quit", "&Quit", control.Point{X: 40, Y: 5}, button, control.StyleDefault},
	} {
		if err := p.ctrl.Create(s.window, p.id, p.pos, p.size, p.style, fitWidth(clientWidth(p)), p.id); err != nil {
			return nil, fmt.Errorf("demo: %w", err)
		}
		p.ctrl.SetLabel(p.label)
	}

	d.NameLabel.SetBuddy(d.Wrap.Control)
	d.OK.SetDefault(true)
	d.Wrap.SetOnChange(func(checked bool) {
		s.flash.Info(fmt.Sprintf("wrap lines: %v", checked))
	})
	d.OK.SetOnClick(func() { s.flash.Info("OK") })
	d.Cancel.SetOnClick(func() { s.flash.Info("Cancel") })
	d.Theme.SetOnClick(s.NextTheme)
	d.Quit.SetOnClick(s.Stop)
	return d, nil
}

// clientWidth is the room a label has inside the control's border and, for
// check boxes, next to the indicator.
func clientWidth(p placement) int {
	w := p.size.W
	if !p.style.Has(control.StyleNoBorder) {
		w -= 2
	}
	if p.ctrl.Kind() == theme.KindCheckBox {
		w -= widgets.CheckWidth
	}
	return w
}

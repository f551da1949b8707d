package widgets

import (
	"github.com/matheus3301/univ/internal/bus"
	"github.com/matheus3301/univ/internal/control"
	"github.com/matheus3301/univ/internal/theme"
	"go.uber.org/zap"
)

// StaticText shows a label. Typing its mnemonic moves focus to its buddy,
// the way a field caption does.
type StaticText struct {
	*control.Control
	behavior *staticBehavior
}

type staticBehavior struct {
	control.Base
	buddy *control.Control
}

func (sb *staticBehavior) DoDraw(r *control.Renderer) {
	r.DrawBackground()
	sb.Base.DoDraw(r)
	r.DrawLabel()
}

func (sb *staticBehavior) FocusTarget() *control.Control { return sb.buddy }

// NewStaticText creates an uncreated static text.
func NewStaticText(themes control.Themes, b *bus.Bus, logger *zap.Logger) *StaticText {
	sb := &staticBehavior{}
	return &StaticText{
		Control:  control.New(theme.KindStatic, themes, sb, b, logger),
		behavior: sb,
	}
}

// SetBuddy sets the control that receives focus when the mnemonic is typed.
func (st *StaticText) SetBuddy(c *control.Control) { st.behavior.buddy = c }

// Buddy returns the control set with SetBuddy.
func (st *StaticText) Buddy() *control.Control { return st.behavior.buddy }

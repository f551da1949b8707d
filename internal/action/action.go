// Package action defines the abstract tokens input handlers produce.
package action

// Action is what a raw input event means for a control. Handlers return None
// when the event means nothing.
type Action string

// None is the no-op action.
const None Action = ""

// Actions understood by the bundled widgets. Controls interpret them; the
// base control ignores all of them.
const (
	Press       Action = "press"
	Release     Action = "release"
	Click       Action = "click"
	Toggle      Action = "toggle"
	Highlight   Action = "highlight"
	Unhighlight Action = "unhighlight"
	Focus       Action = "focus"
)

// IsNone reports whether a is the no-op action.
func (a Action) IsNone() bool { return a == None }

func (a Action) String() string {
	if a == None {
		return "none"
	}
	return string(a)
}

package bus

import "time"

// Event kinds published by the toolkit. Subscribers filter on the
// namespace prefix ("theme.", "control.").
const (
	ThemeChanged      = "theme.changed"
	ControlLifecycle  = "control.lifecycle"
	ControlDiagnostic = "control.diagnostic"
)

// Event is a toolkit notification carried on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

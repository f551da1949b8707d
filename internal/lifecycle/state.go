// Package lifecycle tracks the creation state of a control.
package lifecycle

import (
	"fmt"
	"slices"

	"github.com/matheus3301/univ/internal/bus"
)

// State is a control lifecycle state.
type State string

const (
	Uncreated State = "UNCREATED"
	Created   State = "CREATED"
	Destroyed State = "DESTROYED"
)

// validTransitions defines allowed state transitions. Created -> Created is a
// re-creation.
var validTransitions = map[State][]State{
	Uncreated: {Created, Destroyed},
	Created:   {Created, Destroyed},
	Destroyed: {},
}

// Machine tracks and enforces lifecycle transitions for one control. It is
// owned by the UI goroutine and is not safe for concurrent use.
type Machine struct {
	id      string
	current State
	bus     *bus.Bus
}

// NewMachine creates a machine in the Uncreated state. b may be nil.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{current: Uncreated, bus: b}
}

// SetID sets the control identity reported in change events.
func (m *Machine) SetID(id string) { m.id = id }

// Current returns the current state.
func (m *Machine) Current() State { return m.current }

// Transition attempts to move to a new state. Returns error if transition is invalid.
func (m *Machine) Transition(to State) error {
	if !slices.Contains(validTransitions[m.current], to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	m.bus.Emit(bus.ControlLifecycle, Change{ID: m.id, From: from, To: to})
	return nil
}

// Change is the payload of a bus.ControlLifecycle event.
type Change struct {
	ID   string
	From State
	To   State
}

// Package review models the contact review workflow as an explicit state
// machine. The legacy UI kept two independent "show edit" / "show delete"
// booleans in ambient session state, which could in principle both be
// asserted; the FSM makes that unrepresentable.
package review

import "fmt"

// State is one phase of the review workflow.
type State string

const (
	Idle             State = "IDLE"
	Reviewing        State = "REVIEWING"
	ConfirmingEdit   State = "CONFIRMING_EDIT"
	ConfirmingDelete State = "CONFIRMING_DELETE"
)

// Event triggers a transition.
type Event string

const (
	EventSelect       Event = "SELECT"        // a contact was selected for review
	EventRequestEdit  Event = "REQUEST_EDIT"  // reviewer pressed Edit
	EventRequestWipe  Event = "REQUEST_WIPE"  // reviewer pressed Delete
	EventConfirm      Event = "CONFIRM"       // reviewer confirmed the pending action
	EventCancel       Event = "CANCEL"        // reviewer backed out
	EventDeselect     Event = "DESELECT"      // selection cleared
)

// transitions is the full transition table; anything not listed is illegal.
var transitions = map[State]map[Event]State{
	Idle: {
		EventSelect: Reviewing,
	},
	Reviewing: {
		EventRequestEdit: ConfirmingEdit,
		EventRequestWipe: ConfirmingDelete,
		EventDeselect:    Idle,
	},
	ConfirmingEdit: {
		EventConfirm:     Reviewing,
		EventCancel:      Reviewing,
		EventRequestWipe: ConfirmingDelete, // switching intent drops the edit
		EventDeselect:    Idle,
	},
	ConfirmingDelete: {
		EventConfirm:     Idle, // the contact is gone, nothing left to review
		EventCancel:      Reviewing,
		EventRequestEdit: ConfirmingEdit,
		EventDeselect:    Idle,
	},
}

// Machine tracks the review state for one session. Not safe for concurrent
// use; each session owns its machine.
type Machine struct {
	state State
}

func NewMachine() *Machine {
	return &Machine{state: Idle}
}

func (m *Machine) State() State {
	return m.state
}

// Fire applies an event. Illegal transitions leave the state unchanged and
// return an error.
func (m *Machine) Fire(ev Event) error {
	next, ok := transitions[m.state][ev]
	if !ok {
		return fmt.Errorf("illegal transition: %s on %s", ev, m.state)
	}
	m.state = next
	return nil
}

// CanFire reports whether ev is legal in the current state.
func (m *Machine) CanFire(ev Event) bool {
	_, ok := transitions[m.state][ev]
	return ok
}

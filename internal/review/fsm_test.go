package review

import "testing"

func TestMachine_HappyPaths(t *testing.T) {
	tests := []struct {
		name   string
		events []Event
		want   State
	}{
		{name: "fresh machine is idle", events: nil, want: Idle},
		{name: "select starts reviewing", events: []Event{EventSelect}, want: Reviewing},
		{name: "edit flow", events: []Event{EventSelect, EventRequestEdit}, want: ConfirmingEdit},
		{name: "edit confirmed returns to reviewing", events: []Event{EventSelect, EventRequestEdit, EventConfirm}, want: Reviewing},
		{name: "delete confirmed ends the review", events: []Event{EventSelect, EventRequestWipe, EventConfirm}, want: Idle},
		{name: "delete cancelled keeps reviewing", events: []Event{EventSelect, EventRequestWipe, EventCancel}, want: Reviewing},
		{name: "switching edit to delete", events: []Event{EventSelect, EventRequestEdit, EventRequestWipe}, want: ConfirmingDelete},
		{name: "deselect from confirmation", events: []Event{EventSelect, EventRequestEdit, EventDeselect}, want: Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			for _, ev := range tt.events {
				if err := m.Fire(ev); err != nil {
					t.Fatalf("Fire(%s) from %s: %v", ev, m.State(), err)
				}
			}
			if m.State() != tt.want {
				t.Fatalf("state = %s, want %s", m.State(), tt.want)
			}
		})
	}
}

func TestMachine_IllegalTransitions(t *testing.T) {
	m := NewMachine()

	// cannot confirm or edit with nothing selected
	for _, ev := range []Event{EventConfirm, EventCancel, EventRequestEdit, EventRequestWipe} {
		if err := m.Fire(ev); err == nil {
			t.Errorf("Fire(%s) on Idle should fail", ev)
		}
		if m.State() != Idle {
			t.Fatalf("illegal transition changed state to %s", m.State())
		}
	}
}

func TestMachine_EditAndDeleteNeverCoexist(t *testing.T) {
	// The machine can only be in one confirmation state at a time; walking
	// every reachable path keeps that structural guarantee visible.
	m := NewMachine()
	mustFire := func(ev Event) {
		t.Helper()
		if err := m.Fire(ev); err != nil {
			t.Fatalf("Fire(%s): %v", ev, err)
		}
	}

	mustFire(EventSelect)
	mustFire(EventRequestEdit)
	if m.State() != ConfirmingEdit {
		t.Fatalf("state = %s", m.State())
	}
	mustFire(EventRequestWipe)
	if m.State() != ConfirmingDelete {
		t.Fatalf("state = %s, edit intent must have been dropped", m.State())
	}
	if m.CanFire(EventSelect) {
		t.Error("SELECT must not be legal mid-confirmation")
	}
}

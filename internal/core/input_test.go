package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionUp)
	if !f.Has(ActionUp) {
		t.Error("Set(ActionUp) should be visible through Has")
	}
	if f.Empty() {
		t.Error("frame with an action should not be empty")
	}

	f.Clear()
	if f.Has(ActionUp) || !f.Empty() {
		t.Error("Clear should remove all actions")
	}
}

func TestInputOf(t *testing.T) {
	f := InputOf(ActionLeft, ActionConfirm)
	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) {
		t.Errorf("InputOf lost actions: %v", f.Actions)
	}
	if f.Has(ActionRight) {
		t.Error("InputOf set an action that was not passed")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionUp, "Up"},
		{ActionRight, "Right"},
		{ActionCancel, "Cancel"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if tc.a.String() != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, tc.a.String(), tc.expected)
		}
	}
}
